package trip

// Slot names a required piece of trip information the pipeline cannot work
// without.
type Slot string

const (
	SlotCountry  Slot = "country"
	SlotDuration Slot = "duration_days"
	SlotPeriod   Slot = "period"
)

// MissingSlots reports which required slots the context does not yet fill,
// in a fixed order.
//
// A slot counts as present when either its structured or its derived form
// resolves: the period slot is satisfied by a month name or a start date.
// The duration slot is only satisfied by an explicit day count; a date range
// does not count, callers wanting that must promote it via
// DurationFromRange first.
func MissingSlots(c *Context) []Slot {
	var missing []Slot

	hasCountry := false
	for _, d := range c.Destinations {
		if d.Country != "" {
			hasCountry = true
			break
		}
	}
	if !hasCountry {
		missing = append(missing, SlotCountry)
	}

	if c.DurationDays < 1 {
		missing = append(missing, SlotDuration)
	}

	if c.Month == "" && c.StartDate == "" {
		missing = append(missing, SlotPeriod)
	}

	return missing
}
