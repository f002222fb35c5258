package lang

// monthAbbrevs lists the canonical 3-letter month abbreviations in calendar
// order. These are the forms the season reference table uses.
var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// monthSynonyms maps each canonical abbreviation to its accepted surface
// forms (English and Dutch, full names and common short forms). Surface
// forms are stored folded.
var monthSynonyms = map[string][]string{
	"Jan": {"january", "januari", "jan"},
	"Feb": {"february", "februari", "feb"},
	"Mar": {"march", "maart", "mar", "mrt"},
	"Apr": {"april", "apr"},
	"May": {"may", "mei"},
	"Jun": {"june", "juni", "jun"},
	"Jul": {"july", "juli", "jul"},
	"Aug": {"august", "augustus", "aug"},
	"Sep": {"september", "sep", "sept"},
	"Oct": {"october", "oktober", "oct", "okt"},
	"Nov": {"november", "nov"},
	"Dec": {"december", "dec"},
}

var monthBySurface = buildSurfaceIndex(monthSynonyms)

// buildSurfaceIndex inverts a canonical→surfaces table into a folded
// surface→canonical lookup map.
func buildSurfaceIndex(table map[string][]string) map[string]string {
	idx := make(map[string]string)
	for canonical, surfaces := range table {
		for _, s := range surfaces {
			idx[Fold(s)] = canonical
		}
	}
	return idx
}

// MonthAbbrev resolves a free-form month name to its canonical 3-letter
// abbreviation. Accepts English and Dutch names in any casing.
func MonthAbbrev(name string) (string, bool) {
	m, ok := monthBySurface[Fold(name)]
	return m, ok
}

// MonthIndex returns the 1-based calendar index of a canonical month
// abbreviation.
func MonthIndex(abbrev string) (int, bool) {
	for i, m := range monthAbbrevs {
		if m == abbrev {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthFromIndex returns the canonical abbreviation for a 1-based calendar
// index.
func MonthFromIndex(i int) (string, bool) {
	if i < 1 || i > 12 {
		return "", false
	}
	return monthAbbrevs[i-1], true
}

// FindMonth scans folded free text for the first month mention and returns
// its canonical abbreviation. Bare short forms like "mei" or "jul" count;
// matching is boundary-delimited so "junior" does not match "jun".
func FindMonth(text string) (string, bool) {
	folded := Fold(text)
	best := -1
	var found string
	for canonical, surfaces := range monthSynonyms {
		for _, s := range surfaces {
			if i := indexWord(folded, s); i >= 0 && (best < 0 || i < best) {
				best = i
				found = canonical
			}
		}
	}
	return found, best >= 0
}
