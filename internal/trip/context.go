package trip

import (
	"time"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"
)

// Destination is one leg of an itinerary. Region is optional and empty when
// the traveler did not narrow the country down.
type Destination struct {
	Country string
	Region  string
}

// Key returns the folded (country, region) identity used for union merges.
func (d Destination) Key() string {
	return lang.Fold(d.Country) + "|" + lang.Fold(d.Region)
}

// Context is the canonical request-scoped trip state. It is created once per
// request, enriched in place by the extraction stages, and read-only for the
// season and packing stages. Zero values mean "unknown"; slices and maps are
// always non-nil after Normalize.
type Context struct {
	// Destinations in itinerary order. The first entry is the primary leg.
	Destinations []Destination

	// Activities holds lowercase canonical activity tags, first-seen order,
	// no duplicates.
	Activities []string

	// DurationDays is the explicit trip length; 0 means unknown.
	DurationDays int

	// Month and StartDate/EndDate are mutually exclusive representations of
	// the travel period. Setting one clears the other.
	Month     string
	StartDate string
	EndDate   string

	// Preferences is an opaque key/value bag (travel style, budget tier,
	// accommodation, work mode). The engine only ever reads it by key.
	Preferences map[string]string
}

// NewContext returns an empty context with all collections initialized.
func NewContext() *Context {
	return &Context{
		Destinations: []Destination{},
		Activities:   []string{},
		Preferences:  map[string]string{},
	}
}

// SetMonth records a travel month and clears any explicit date range.
func (c *Context) SetMonth(month string) {
	if month == "" {
		return
	}
	c.Month = month
	c.StartDate = ""
	c.EndDate = ""
}

// SetDateRange records an explicit date pair and clears the month.
func (c *Context) SetDateRange(start, end string) {
	if start == "" {
		return
	}
	c.StartDate = start
	c.EndDate = end
	c.Month = ""
}

// MonthAbbrev resolves the authoritative period to a canonical 3-letter
// month abbreviation: the explicit month if set, otherwise the month
// component of the start date.
func (c *Context) MonthAbbrev() (string, bool) {
	if c.Month != "" {
		if m, ok := lang.MonthAbbrev(c.Month); ok {
			return m, true
		}
		return "", false
	}
	if c.StartDate != "" {
		if t, err := time.Parse("2006-01-02", c.StartDate); err == nil {
			return lang.MonthFromIndex(int(t.Month()))
		}
	}
	return "", false
}

// AddDestination appends a destination unless its (country, region) identity
// is already present.
func (c *Context) AddDestination(d Destination) {
	if d.Country == "" && d.Region == "" {
		return
	}
	for _, existing := range c.Destinations {
		if existing.Key() == d.Key() {
			return
		}
	}
	c.Destinations = append(c.Destinations, d)
}

// AddActivities unions canonical tags into the activity set, preserving
// first-seen order.
func (c *Context) AddActivities(tags []string) {
	for _, tag := range lang.CanonicalizeActivities(tags) {
		found := false
		for _, existing := range c.Activities {
			if existing == tag {
				found = true
				break
			}
		}
		if !found {
			c.Activities = append(c.Activities, tag)
		}
	}
}

// Clone returns a deep copy. The pipeline mutates contexts in place, so
// callers that need a snapshot must copy first.
func (c *Context) Clone() *Context {
	out := NewContext()
	out.Destinations = append(out.Destinations, c.Destinations...)
	out.Activities = append(out.Activities, c.Activities...)
	out.DurationDays = c.DurationDays
	out.Month = c.Month
	out.StartDate = c.StartDate
	out.EndDate = c.EndDate
	for k, v := range c.Preferences {
		out.Preferences[k] = v
	}
	return out
}

// DurationFromRange derives a day count from the explicit date range. It is
// never applied implicitly: an explicit day count and a derived one stay
// separate, and MissingSlots only accepts the former.
func (c *Context) DurationFromRange() (int, bool) {
	if c.StartDate == "" || c.EndDate == "" {
		return 0, false
	}
	start, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse("2006-01-02", c.EndDate)
	if err != nil {
		return 0, false
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 0, false
	}
	return days, true
}
