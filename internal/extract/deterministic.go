// Package extract turns free-text travel descriptions into structured trip
// context. A deterministic pattern tier always runs first and acts as the
// safety floor; an optional completion-assisted tier enriches its result and
// is allowed to fail silently.
package extract

import (
	"regexp"
	"strconv"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// Config tunes the deterministic tier.
type Config struct {
	// CoupleOfWeeksDays is the point estimate for vague phrases like
	// "a couple of weeks" / "een paar weken".
	CoupleOfWeeksDays int

	// CoupleOfMonthsDays is the point estimate for "a couple of months",
	// clamped to the 60–90 day band. Downstream quantity and season lookups
	// need a scalar, so vague phrases never produce ranges.
	CoupleOfMonthsDays int
}

// DefaultConfig returns the standard vague-duration estimates.
func DefaultConfig() Config {
	return Config{
		CoupleOfWeeksDays:  14,
		CoupleOfMonthsDays: 60,
	}
}

func (c Config) coupleOfMonths() int {
	switch {
	case c.CoupleOfMonthsDays < 60:
		return 60
	case c.CoupleOfMonthsDays > 90:
		return 90
	default:
		return c.CoupleOfMonthsDays
	}
}

var (
	daysPattern  = regexp.MustCompile(`(\d+)\s*(?:dagen|dag|days|day)\b`)
	weeksPattern = regexp.MustCompile(`(\d+)\s*(?:weken|week|weeks)\b`)

	// Vague duration phrases map to fixed point estimates.
	coupleWeeksPattern  = regexp.MustCompile(`(?:een\s+paar|paar|a\s+couple\s+of|couple\s+of|a\s+few|few)\s+(?:weken|weeks)`)
	coupleMonthsPattern = regexp.MustCompile(`(?:een\s+paar|paar|a\s+couple\s+of|couple\s+of|a\s+few|few)\s+(?:maanden|months)`)

	// Day-month-year with -, / or . separators; two-digit years allowed.
	datePattern = regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{2,4})\b`)
	isoPattern  = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

// Deterministic runs the pattern tier over an utterance and returns a
// best-effort partial context. Fields without a confident match stay unknown
// rather than guessed. Matching is case- and diacritic-insensitive.
func Deterministic(utterance string, cfg Config) *trip.Context {
	folded := lang.Fold(utterance)
	c := trip.NewContext()

	for _, country := range lang.FindCountries(folded) {
		c.AddDestination(trip.Destination{Country: country})
	}

	c.AddActivities(lang.FindActivities(folded))

	if days, ok := parseDuration(folded, cfg); ok {
		c.DurationDays = days
	}

	if start, end, ok := parseDateRange(folded); ok {
		c.SetDateRange(start, end)
	} else if month, ok := lang.FindMonth(folded); ok {
		c.SetMonth(month)
	}

	return c
}

// parseDuration finds an explicit or vague trip length in folded text and
// returns it as days.
func parseDuration(folded string, cfg Config) (int, bool) {
	if m := daysPattern.FindStringSubmatch(folded); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n, true
		}
	}
	if m := weeksPattern.FindStringSubmatch(folded); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n * 7, true
		}
	}
	if coupleWeeksPattern.MatchString(folded) {
		return cfg.CoupleOfWeeksDays, true
	}
	if coupleMonthsPattern.MatchString(folded) {
		return cfg.coupleOfMonths(), true
	}
	return 0, false
}

// parseDateRange finds the first two dates in the text and treats them as an
// inclusive start/end pair. Dates normalize to ISO-8601; two-digit years
// promote to 2000+yy.
func parseDateRange(folded string) (string, string, bool) {
	dates := findDates(folded)
	if len(dates) < 2 {
		return "", "", false
	}
	return dates[0], dates[1], true
}

func findDates(folded string) []string {
	var out []string
	for _, m := range isoPattern.FindAllStringSubmatch(folded, -1) {
		if d, ok := buildISO(m[3], m[2], m[1]); ok {
			out = append(out, d)
		}
	}
	for _, m := range datePattern.FindAllStringSubmatch(folded, -1) {
		if d, ok := buildISO(m[1], m[2], m[3]); ok {
			out = append(out, d)
		}
	}
	return out
}

func buildISO(dayStr, monthStr, yearStr string) (string, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return "", false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", false
	}
	if year < 100 {
		year += 2000
	}
	if year < 2000 || year > 2200 {
		return "", false
	}
	return strconv.Itoa(year) + "-" + pad2(month) + "-" + pad2(day), true
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
