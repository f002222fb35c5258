package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_NilAndEmptyInput(t *testing.T) {
	for _, raw := range []map[string]any{nil, {}} {
		c := Normalize(raw)
		require.NotNil(t, c)
		assert.NotNil(t, c.Destinations)
		assert.NotNil(t, c.Activities)
		assert.NotNil(t, c.Preferences)
		assert.Zero(t, c.DurationDays)
	}
}

func TestNormalize_PromotesLegacySingularDestination(t *testing.T) {
	c := Normalize(map[string]any{
		"destination": map[string]any{"country": "Vietnam", "region": "north"},
	})
	require.Len(t, c.Destinations, 1)
	assert.Equal(t, Destination{Country: "Vietnam", Region: "north"}, c.Destinations[0])
}

func TestNormalize_LegacyDoesNotDuplicateExistingLeg(t *testing.T) {
	c := Normalize(map[string]any{
		"destinations": []any{
			map[string]any{"country": "Vietnam", "region": ""},
		},
		"destination": map[string]any{"country": "vietnam"},
	})
	assert.Len(t, c.Destinations, 1)
}

func TestNormalize_BareCountryKey(t *testing.T) {
	c := Normalize(map[string]any{"country": "Thailand"})
	require.Len(t, c.Destinations, 1)
	assert.Equal(t, "Thailand", c.Destinations[0].Country)
}

func TestNormalize_CommaSeparatedActivities(t *testing.T) {
	c := Normalize(map[string]any{"activities": "duiken, hiken , duiken"})
	assert.Equal(t, []string{"diving", "hiking"}, c.Activities)
}

func TestNormalize_ActivityList(t *testing.T) {
	c := Normalize(map[string]any{"activities": []any{"wandelen", "snorkelen"}})
	assert.Equal(t, []string{"hiking", "snorkeling"}, c.Activities)
}

func TestNormalize_DurationVariants(t *testing.T) {
	assert.Equal(t, 14, Normalize(map[string]any{"durationDays": float64(14)}).DurationDays)
	assert.Equal(t, 10, Normalize(map[string]any{"duration_days": "10"}).DurationDays)
	assert.Zero(t, Normalize(map[string]any{"durationDays": float64(0)}).DurationDays)
	assert.Zero(t, Normalize(map[string]any{"durationDays": "soon"}).DurationDays)
}

func TestNormalize_PeriodMonth(t *testing.T) {
	c := Normalize(map[string]any{"period": map[string]any{"month": "juli"}})
	assert.Equal(t, "juli", c.Month)
	assert.Empty(t, c.StartDate)
}

func TestNormalize_DateRangeWinsOverMonth(t *testing.T) {
	c := Normalize(map[string]any{
		"month":     "juli",
		"startDate": "2025-07-01",
		"endDate":   "2025-07-14",
	})
	assert.Empty(t, c.Month)
	assert.Equal(t, "2025-07-01", c.StartDate)
	assert.Equal(t, "2025-07-14", c.EndDate)
}

func TestNormalize_Preferences(t *testing.T) {
	c := Normalize(map[string]any{
		"preferences": map[string]any{"budget": "low", "style": "backpacking"},
	})
	assert.Equal(t, "low", c.Preferences["budget"])
	assert.Equal(t, "backpacking", c.Preferences["style"])
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := map[string]any{
		"destinations": []any{
			map[string]any{"country": "Vietnam", "region": ""},
			map[string]any{"country": "Thailand", "region": ""},
		},
		"activities":   "hiking,diving",
		"durationDays": float64(21),
		"month":        "juli",
		"preferences":  map[string]any{"budget": "mid"},
	}

	once := Normalize(raw)
	again := Normalize(rawFromContext(once))
	assert.Equal(t, once, again)
}

// rawFromContext re-encodes a context into the loose payload shape, the way
// a transport round trip would.
func rawFromContext(c *Context) map[string]any {
	dests := make([]any, 0, len(c.Destinations))
	for _, d := range c.Destinations {
		dests = append(dests, map[string]any{"country": d.Country, "region": d.Region})
	}
	acts := make([]any, 0, len(c.Activities))
	for _, a := range c.Activities {
		acts = append(acts, a)
	}
	prefs := make(map[string]any, len(c.Preferences))
	for k, v := range c.Preferences {
		prefs[k] = v
	}
	raw := map[string]any{
		"destinations": dests,
		"activities":   acts,
		"preferences":  prefs,
	}
	if c.DurationDays > 0 {
		raw["durationDays"] = float64(c.DurationDays)
	}
	if c.Month != "" {
		raw["month"] = c.Month
	}
	if c.StartDate != "" {
		raw["startDate"] = c.StartDate
		raw["endDate"] = c.EndDate
	}
	return raw
}
