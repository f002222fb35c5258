// Package formatter renders pipeline results as styled terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/packing"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/season"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// FormatContext renders the resolved trip context as a labeled field list.
func FormatContext(tc *trip.Context) string {
	var b strings.Builder

	b.WriteString(Header("Trip Context"))
	b.WriteString("\n\n")

	if len(tc.Destinations) == 0 {
		b.WriteString(field("Destination", Dim("unknown")))
	}
	for i, d := range tc.Destinations {
		label := "Destination"
		if len(tc.Destinations) > 1 {
			label = fmt.Sprintf("Destination %d", i+1)
		}
		value := StyleFg.Render(d.Country)
		if d.Region != "" {
			value += Dim(" (" + d.Region + ")")
		}
		b.WriteString(field(label, value))
	}

	b.WriteString(field("Period", periodValue(tc)))
	b.WriteString(field("Duration", durationValue(tc)))

	if len(tc.Activities) > 0 {
		b.WriteString(field("Activities", StyleBlue.Render(strings.Join(tc.Activities, ", "))))
	} else {
		b.WriteString(field("Activities", Dim("none")))
	}

	if missing := trip.MissingSlots(tc); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, slot := range missing {
			names = append(names, string(slot))
		}
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("Still missing: "+strings.Join(names, ", ")) + "\n")
	}

	return b.String()
}

// FormatSeason renders seasonal info, including the degraded states.
func FormatSeason(info season.Info, status season.Status) string {
	var b strings.Builder

	b.WriteString(Header("Season"))
	b.WriteString("\n\n")

	switch status {
	case season.StatusUnavailable:
		b.WriteString(StyleYellow.Render("Season data is unavailable right now.") + "\n")
		return b.String()
	case season.StatusEmpty:
		b.WriteString(Dim("No seasonal data for this trip.") + "\n")
		return b.String()
	}

	if info.Season != "" {
		b.WriteString(field("Season", StyleGreen.Render(info.Season)))
	}
	for _, risk := range info.Risks {
		line := fmt.Sprintf("%s %s", RiskBadge(risk.Level), StyleFg.Render(risk.Type))
		if risk.Note != "" {
			line += "  " + Dim(risk.Note)
		}
		b.WriteString("  " + line + "\n")
	}
	if len(info.AdviceFlags) > 0 {
		b.WriteString(field("Advice", Dim(strings.Join(info.AdviceFlags, ", "))))
	}

	return b.String()
}

// FormatRecommendations renders the packing list grouped by category, with
// quantities and weights where known.
func FormatRecommendations(list []packing.Recommendation, rationale string) string {
	var b strings.Builder

	b.WriteString(Header("Packing List"))
	b.WriteString("\n\n")

	if rationale != "" {
		b.WriteString(Dim(rationale) + "\n\n")
	}

	if len(list) == 0 {
		b.WriteString(Dim("No items to recommend.") + "\n")
		return b.String()
	}

	category := ""
	for _, rec := range list {
		if rec.Category != category {
			if category != "" {
				b.WriteString("\n")
			}
			category = rec.Category
			b.WriteString(StylePurple.Render(strings.ToUpper(category)) + "\n")
		}

		line := "  " + StyleFg.Render(rec.Name)
		if rec.Quantity > 0 {
			line += StyleBlue.Render(fmt.Sprintf("  x%d", rec.Quantity))
		}
		if rec.WeightGrams > 0 && rec.WeightGrams != packing.WeightUnknown {
			line += Dim(fmt.Sprintf("  %s", FormatWeight(rec.WeightGrams)))
		}
		if rec.MatchesActivity {
			line += "  " + StyleGreen.Render(strings.Join(rec.MatchedTags, ","))
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// FormatWeight renders grams compactly, switching to kilograms at 1000g.
func FormatWeight(grams int) string {
	if grams >= 1000 {
		return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(grams)/1000), ".0") + "kg"
	}
	return fmt.Sprintf("%dg", grams)
}

func field(label, value string) string {
	return fmt.Sprintf("  %s %s\n", Dim(label+":"), value)
}

func periodValue(tc *trip.Context) string {
	switch {
	case tc.StartDate != "" && tc.EndDate != "":
		return StyleFg.Render(tc.StartDate + " to " + tc.EndDate)
	case tc.StartDate != "":
		return StyleFg.Render("from " + tc.StartDate)
	case tc.Month != "":
		return StyleFg.Render(tc.Month)
	}
	return Dim("unknown")
}

func durationValue(tc *trip.Context) string {
	if tc.DurationDays >= 1 {
		return StyleFg.Render(fmt.Sprintf("%d days", tc.DurationDays))
	}
	if days, ok := tc.DurationFromRange(); ok {
		return Dim(fmt.Sprintf("~%d days (from dates)", days))
	}
	return Dim("unknown")
}
