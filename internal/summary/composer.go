// Package summary derives short deterministic explanation strings from
// resolved trip context and season data. It performs no lookups; it only
// projects structured data the pipeline already produced.
package summary

import (
	"fmt"
	"strings"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/season"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// adviceClauses maps advice flags from the season table to rationale
// clauses. Flags without an entry are silently skipped.
var adviceClauses = map[string]string{
	"rain":    "expect rain showers",
	"insects": "bring protection against biting insects",
	"sun":     "the sun is intense, pack sunscreen",
}

// tagClauses maps item tags to rationale clauses.
var tagClauses = map[string]string{
	"humidity": "high humidity, favor quick-drying fabrics",
	"cold":     "cold nights, pack warm layers",
	"altitude": "high altitude, dress in layers",
}

// Compose builds the one-line trip rationale. Identical input always yields
// an identical string: destinations keep itinerary order and clauses follow
// the order the flags were resolved in.
func Compose(tc *trip.Context, info season.Info) string {
	var b strings.Builder

	b.WriteString("Trip to ")
	b.WriteString(destinationPhrase(tc))

	if tc.DurationDays >= 1 {
		fmt.Fprintf(&b, ", %d days", tc.DurationDays)
	} else {
		b.WriteString(", duration unspecified")
	}

	if info.Season != "" {
		fmt.Fprintf(&b, ", %s season", info.Season)
	}
	b.WriteString(".")

	clauses := adviceSentences(info)
	if len(clauses) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(clauses, "; "))
		b.WriteString(".")
	}

	return b.String()
}

// destinationPhrase lists distinct destination countries in itinerary order.
func destinationPhrase(tc *trip.Context) string {
	var countries []string
	seen := make(map[string]bool)
	for _, d := range tc.Destinations {
		if d.Country == "" || seen[d.Country] {
			continue
		}
		seen[d.Country] = true
		countries = append(countries, d.Country)
	}

	switch len(countries) {
	case 0:
		return "an unspecified destination"
	case 1:
		return countries[0]
	default:
		return strings.Join(countries[:len(countries)-1], ", ") + " and " + countries[len(countries)-1]
	}
}

func adviceSentences(info season.Info) []string {
	var out []string
	for _, flag := range info.AdviceFlags {
		if clause, ok := adviceClauses[flag]; ok {
			out = append(out, clause)
		}
	}
	for _, tag := range info.ItemTags {
		if clause, ok := tagClauses[tag]; ok {
			out = append(out, clause)
		}
	}
	return out
}
