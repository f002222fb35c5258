// Package season joins trip context against the season/climate reference
// table, one itinerary leg at a time, and merges the results.
package season

import (
	"context"
	"strings"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/reftable"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// Status tells callers explicitly which "no data" path they are on instead
// of encoding it in errors. Season data is always optional downstream.
type Status int

const (
	// StatusFound: at least one row matched and Info carries data.
	StatusFound Status = iota
	// StatusEmpty: the table was consulted but nothing matched.
	StatusEmpty
	// StatusUnavailable: the table could not be loaded at all.
	StatusUnavailable
)

// RowType distinguishes the two kinds of season table rows.
type RowType string

const (
	TypeClimate RowType = "climate"
	TypeRisk    RowType = "risk"
)

// Row is one parsed season table record.
type Row struct {
	Country     string
	Region      string
	Type        RowType
	Label       string
	Level       string
	Note        string
	StartMonth  string
	EndMonth    string
	AdviceFlags []string
	ItemTags    []string
}

// Risk is one seasonal hazard entry, ordered as the table lists them.
type Risk struct {
	Type  string
	Level string
	Note  string
}

// Info is the merged seasonal picture for a trip.
type Info struct {
	Season      string
	Risks       []Risk
	AdviceFlags []string
	ItemTags    []string
}

// Empty reports whether the info carries no seasonal data at all.
func (i Info) Empty() bool {
	return i.Season == "" && len(i.Risks) == 0 && len(i.AdviceFlags) == 0 && len(i.ItemTags) == 0
}

// Resolver resolves season info from a cached reference table.
type Resolver struct {
	cache *reftable.Cache
}

// NewResolver creates a Resolver around the given table cache.
func NewResolver(cache *reftable.Cache) *Resolver {
	return &Resolver{cache: cache}
}

// Resolve joins the context's legs against the season table. Legs without a
// resolvable country or month contribute nothing; a trip where no leg
// resolves returns StatusEmpty. A missing table returns StatusUnavailable,
// never an error.
func (r *Resolver) Resolve(ctx context.Context, tc *trip.Context) (Info, Status) {
	tableRows, err := r.cache.Rows(ctx)
	if err != nil {
		return Info{}, StatusUnavailable
	}
	rows := ParseRows(tableRows)

	month, monthOK := tc.MonthAbbrev()
	if !monthOK {
		return Info{}, StatusEmpty
	}

	var merged Info
	found := false
	for _, leg := range tc.Destinations {
		if leg.Country == "" {
			continue
		}
		info, ok := resolveLeg(rows, leg, month)
		if !ok {
			continue
		}
		found = true
		mergeInto(&merged, info)
	}

	if !found {
		return Info{}, StatusEmpty
	}
	return merged, StatusFound
}

// resolveLeg matches one leg against the table for the given month.
func resolveLeg(rows []Row, leg trip.Destination, month string) (Info, bool) {
	country := lang.CanonicalCountry(leg.Country)
	region := lang.Fold(leg.Region)

	var info Info
	matched := false
	for _, row := range rows {
		if !rowMatches(row, country, region, month) {
			continue
		}
		matched = true
		switch row.Type {
		case TypeClimate:
			// First climate match wins the season label for this leg.
			if info.Season == "" {
				info.Season = row.Label
			}
		case TypeRisk:
			info.Risks = append(info.Risks, Risk{Type: row.Label, Level: row.Level, Note: row.Note})
		}
		info.AdviceFlags = unionStrings(info.AdviceFlags, row.AdviceFlags)
		info.ItemTags = unionStrings(info.ItemTags, row.ItemTags)
	}
	return info, matched
}

// rowMatches applies the leg-match rule: country must match; a row that
// names a region only matches that region, a row without one matches any;
// the month must fall inside the row's wraparound range.
func rowMatches(row Row, country, region, month string) bool {
	if lang.CanonicalCountry(row.Country) != country {
		return false
	}
	if row.Region != "" && lang.Fold(row.Region) != region {
		return false
	}
	return MonthInRange(month, row.StartMonth, row.EndMonth)
}

// ParseRows converts raw table rows into season Rows, skipping records
// without the required country and type columns.
func ParseRows(raw []reftable.Row) []Row {
	out := make([]Row, 0, len(raw))
	for _, r := range raw {
		row := Row{
			Country:     r.Get("country"),
			Region:      r.Get("region"),
			Type:        RowType(strings.ToLower(r.Get("type"))),
			Label:       r.Get("label"),
			Level:       r.Get("level"),
			Note:        r.Get("note"),
			StartMonth:  normalizeMonth(r.Get("start_month")),
			EndMonth:    normalizeMonth(r.Get("end_month")),
			AdviceFlags: splitList(r.Get("advice_flags")),
			ItemTags:    splitList(r.Get("item_tags")),
		}
		if row.Country == "" || (row.Type != TypeClimate && row.Type != TypeRisk) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func normalizeMonth(s string) string {
	if m, ok := lang.MonthAbbrev(s); ok {
		return m
	}
	return ""
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(strings.ToLower(p)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
