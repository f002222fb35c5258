package season

import "github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"

// MonthInRange reports whether month falls inside the inclusive range
// [start, end], all given as canonical 3-letter abbreviations. The range may
// wrap the year boundary: Nov–Feb contains Dec and Jan but not Jun. A row
// with an unresolvable range matches no month.
func MonthInRange(month, start, end string) bool {
	m, ok := lang.MonthIndex(month)
	if !ok {
		return false
	}
	s, ok := lang.MonthIndex(start)
	if !ok {
		return false
	}
	e, ok := lang.MonthIndex(end)
	if !ok {
		return false
	}

	if s <= e {
		return m >= s && m <= e
	}
	// Wraparound: the range crosses the year boundary.
	return m >= s || m <= e
}
