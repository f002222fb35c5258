package season

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/reftable"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primedResolver(rows []reftable.Row) *Resolver {
	cache := reftable.NewCache(time.Hour, nil)
	cache.Prime(rows)
	return NewResolver(cache)
}

func tripTo(month string, countries ...string) *trip.Context {
	c := trip.NewContext()
	for _, country := range countries {
		c.AddDestination(trip.Destination{Country: country})
	}
	c.SetMonth(month)
	return c
}

var vietnamWet = reftable.Row{
	"country": "Vietnam", "region": "", "type": "climate", "label": "wet",
	"start_month": "Jun", "end_month": "Sep",
	"advice_flags": "rain", "item_tags": "humidity",
}

func TestResolve_ClimateMatch(t *testing.T) {
	r := primedResolver([]reftable.Row{vietnamWet})

	info, status := r.Resolve(context.Background(), tripTo("Jul", "Vietnam"))
	assert.Equal(t, StatusFound, status)
	assert.Equal(t, "wet", info.Season)
	assert.Equal(t, []string{"rain"}, info.AdviceFlags)
	assert.Equal(t, []string{"humidity"}, info.ItemTags)
}

func TestResolve_MonthOutsideRange(t *testing.T) {
	r := primedResolver([]reftable.Row{vietnamWet})
	_, status := r.Resolve(context.Background(), tripTo("Jan", "Vietnam"))
	assert.Equal(t, StatusEmpty, status)
}

func TestResolve_WraparoundRange(t *testing.T) {
	row := reftable.Row{
		"country": "Thailand", "type": "climate", "label": "dry",
		"start_month": "Nov", "end_month": "Feb",
	}
	r := primedResolver([]reftable.Row{row})

	for _, m := range []string{"Nov", "Dec", "Jan", "Feb"} {
		info, status := r.Resolve(context.Background(), tripTo(m, "Thailand"))
		assert.Equal(t, StatusFound, status, m)
		assert.Equal(t, "dry", info.Season, m)
	}
	_, status := r.Resolve(context.Background(), tripTo("Jun", "Thailand"))
	assert.Equal(t, StatusEmpty, status)
}

func TestResolve_RegionRules(t *testing.T) {
	rows := []reftable.Row{
		{"country": "Vietnam", "region": "north", "type": "climate", "label": "cool",
			"start_month": "Jan", "end_month": "Dec"},
		{"country": "Vietnam", "region": "", "type": "risk", "label": "typhoon", "level": "medium",
			"start_month": "Jan", "end_month": "Dec"},
	}
	r := primedResolver(rows)

	// Leg without region: only the region-less risk row matches.
	info, status := r.Resolve(context.Background(), tripTo("Jul", "Vietnam"))
	require.Equal(t, StatusFound, status)
	assert.Empty(t, info.Season)
	require.Len(t, info.Risks, 1)
	assert.Equal(t, "typhoon", info.Risks[0].Type)

	// Leg with the region: both rows match.
	tc := trip.NewContext()
	tc.AddDestination(trip.Destination{Country: "Vietnam", Region: "north"})
	tc.SetMonth("Jul")
	info, status = r.Resolve(context.Background(), tc)
	require.Equal(t, StatusFound, status)
	assert.Equal(t, "cool", info.Season)
	assert.Len(t, info.Risks, 1)
}

func TestResolve_MultiLegMerge(t *testing.T) {
	rows := []reftable.Row{
		{"country": "Vietnam", "type": "climate", "label": "wet",
			"start_month": "Jun", "end_month": "Sep", "advice_flags": "rain"},
		{"country": "Thailand", "type": "climate", "label": "monsoon",
			"start_month": "Jun", "end_month": "Oct", "advice_flags": "rain,insects"},
		{"country": "Thailand", "type": "risk", "label": "jellyfish", "level": "low",
			"start_month": "Jun", "end_month": "Aug"},
	}
	r := primedResolver(rows)

	info, status := r.Resolve(context.Background(), tripTo("Jul", "Vietnam", "Thailand"))
	require.Equal(t, StatusFound, status)
	assert.Equal(t, "wet", info.Season, "first leg's season wins")
	assert.Equal(t, []string{"rain", "insects"}, info.AdviceFlags)
	require.Len(t, info.Risks, 1)
	assert.Equal(t, "jellyfish", info.Risks[0].Type)
}

func TestResolve_DutchCountryNameInContext(t *testing.T) {
	r := primedResolver([]reftable.Row{
		{"country": "Indonesia", "type": "climate", "label": "dry",
			"start_month": "May", "end_month": "Sep"},
	})
	info, status := r.Resolve(context.Background(), tripTo("Jul", "Indonesië"))
	assert.Equal(t, StatusFound, status)
	assert.Equal(t, "dry", info.Season)
}

func TestResolve_MonthFromStartDate(t *testing.T) {
	r := primedResolver([]reftable.Row{vietnamWet})
	tc := trip.NewContext()
	tc.AddDestination(trip.Destination{Country: "Vietnam"})
	tc.SetDateRange("2025-07-01", "2025-07-15")

	info, status := r.Resolve(context.Background(), tc)
	assert.Equal(t, StatusFound, status)
	assert.Equal(t, "wet", info.Season)
}

func TestResolve_NoCountryOrMonth(t *testing.T) {
	r := primedResolver([]reftable.Row{vietnamWet})

	_, status := r.Resolve(context.Background(), trip.NewContext())
	assert.Equal(t, StatusEmpty, status)

	tc := trip.NewContext()
	tc.AddDestination(trip.Destination{Country: "Vietnam"})
	_, status = r.Resolve(context.Background(), tc)
	assert.Equal(t, StatusEmpty, status, "no month resolvable")
}

func TestResolve_TableUnavailable(t *testing.T) {
	cache := reftable.NewCache(time.Hour, func(ctx context.Context) ([]reftable.Row, error) {
		return nil, errors.New("fetch failed")
	})
	r := NewResolver(cache)

	_, status := r.Resolve(context.Background(), tripTo("Jul", "Vietnam"))
	assert.Equal(t, StatusUnavailable, status)
}

func TestResolve_RiskDedupAcrossLegs(t *testing.T) {
	rows := []reftable.Row{
		{"country": "Vietnam", "type": "risk", "label": "dengue", "level": "high",
			"start_month": "Jan", "end_month": "Dec"},
		{"country": "Thailand", "type": "risk", "label": "dengue", "level": "high",
			"start_month": "Jan", "end_month": "Dec"},
	}
	r := primedResolver(rows)

	info, status := r.Resolve(context.Background(), tripTo("Jul", "Vietnam", "Thailand"))
	require.Equal(t, StatusFound, status)
	assert.Len(t, info.Risks, 1, "identical (type, level, note) collapses")
}

func TestMonthInRange_InvalidInputs(t *testing.T) {
	assert.False(t, MonthInRange("Jul", "", ""))
	assert.False(t, MonthInRange("", "Jan", "Dec"))
}

func TestParseRows_SkipsMalformed(t *testing.T) {
	rows := ParseRows([]reftable.Row{
		{"country": "", "type": "climate"},
		{"country": "Vietnam", "type": "weird"},
		{"country": "Vietnam", "type": "CLIMATE", "label": "wet", "start_month": "jun", "end_month": "sep"},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, TypeClimate, rows[0].Type)
	assert.Equal(t, "Jun", rows[0].StartMonth)
}
