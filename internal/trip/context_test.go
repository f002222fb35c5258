package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMonth_ClearsDateRange(t *testing.T) {
	c := NewContext()
	c.SetDateRange("2025-07-01", "2025-07-14")
	c.SetMonth("juli")

	assert.Equal(t, "juli", c.Month)
	assert.Empty(t, c.StartDate)
	assert.Empty(t, c.EndDate)
}

func TestSetDateRange_ClearsMonth(t *testing.T) {
	c := NewContext()
	c.SetMonth("juli")
	c.SetDateRange("2025-07-01", "2025-07-14")

	assert.Empty(t, c.Month)
	assert.Equal(t, "2025-07-01", c.StartDate)
}

func TestMonthAbbrev_FromExplicitMonth(t *testing.T) {
	c := NewContext()
	c.SetMonth("oktober")
	m, ok := c.MonthAbbrev()
	require.True(t, ok)
	assert.Equal(t, "Oct", m)
}

func TestMonthAbbrev_FromStartDate(t *testing.T) {
	c := NewContext()
	c.SetDateRange("2025-11-03", "2025-11-20")
	m, ok := c.MonthAbbrev()
	require.True(t, ok)
	assert.Equal(t, "Nov", m)
}

func TestMonthAbbrev_Unresolvable(t *testing.T) {
	c := NewContext()
	_, ok := c.MonthAbbrev()
	assert.False(t, ok)

	c.Month = "smarch"
	_, ok = c.MonthAbbrev()
	assert.False(t, ok)
}

func TestAddDestination_DedupByCountryRegion(t *testing.T) {
	c := NewContext()
	c.AddDestination(Destination{Country: "Vietnam"})
	c.AddDestination(Destination{Country: "vietnam"})
	c.AddDestination(Destination{Country: "Vietnam", Region: "north"})

	require.Len(t, c.Destinations, 2)
	assert.Equal(t, "Vietnam", c.Destinations[0].Country)
	assert.Equal(t, "north", c.Destinations[1].Region)
}

func TestDurationFromRange(t *testing.T) {
	c := NewContext()
	c.SetDateRange("2025-07-01", "2025-07-15")
	days, ok := c.DurationFromRange()
	require.True(t, ok)
	assert.Equal(t, 14, days)

	c.SetDateRange("2025-07-15", "2025-07-01")
	_, ok = c.DurationFromRange()
	assert.False(t, ok, "inverted range yields no duration")
}

func TestClone_Independent(t *testing.T) {
	c := NewContext()
	c.AddDestination(Destination{Country: "Peru"})
	c.Preferences["budget"] = "low"

	clone := c.Clone()
	clone.AddDestination(Destination{Country: "Chile"})
	clone.Preferences["budget"] = "high"

	assert.Len(t, c.Destinations, 1)
	assert.Equal(t, "low", c.Preferences["budget"])
}
