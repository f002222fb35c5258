package cli

import (
	"context"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/engine"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
	"github.com/spf13/pflag"
)

// contextFlags collects the structured trip fields shared by the season and
// recommend commands. The values feed the same normalization path as an API
// payload would, so flags and payloads behave identically.
type contextFlags struct {
	country    string
	region     string
	month      string
	days       int
	activities string
	text       string
}

func (f *contextFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.country, "country", "", "Destination country")
	fs.StringVar(&f.region, "region", "", "Region within the country")
	fs.StringVar(&f.month, "month", "", "Travel month (name or abbreviation)")
	fs.IntVar(&f.days, "days", 0, "Trip duration in days")
	fs.StringVar(&f.activities, "activities", "", "Comma-separated activities")
	fs.StringVar(&f.text, "text", "", "Free-text trip description to extract from")
}

// resolve builds a trip context from the flags, running slot extraction over
// --text when given.
func (f *contextFlags) resolve(ctx context.Context, e *engine.Engine) *trip.Context {
	raw := map[string]any{}
	if f.country != "" {
		raw["country"] = f.country
		raw["region"] = f.region
	}
	if f.month != "" {
		raw["month"] = f.month
	}
	if f.days > 0 {
		raw["durationDays"] = f.days
	}
	if f.activities != "" {
		raw["activities"] = f.activities
	}

	tc := e.ResolveContext(ctx, raw)
	if f.text != "" {
		tc = e.ExtractSlots(ctx, f.text, tc)
	}
	return tc
}
