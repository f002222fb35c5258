package lang

import "sort"

// countrySynonyms maps canonical country names (as used in the reference
// tables) to accepted surface forms in English and Dutch. Canonical names
// themselves are matched too, so only deviating forms need listing.
var countrySynonyms = map[string][]string{
	"Argentina":     {"argentinie", "argentinië"},
	"Australia":     {"australie", "australië"},
	"Austria":       {"oostenrijk"},
	"Brazil":        {"brazilie", "brazilië", "brasil"},
	"Cambodia":      {"cambodja"},
	"Canada":        {},
	"Chile":         {"chili"},
	"Colombia":      {},
	"Costa Rica":    {},
	"Egypt":         {"egypte"},
	"France":        {"frankrijk"},
	"Germany":       {"duitsland"},
	"Greece":        {"griekenland"},
	"Iceland":       {"ijsland"},
	"India":         {},
	"Indonesia":     {"indonesie", "indonesië", "bali"},
	"Italy":         {"italie", "italië"},
	"Japan":         {},
	"Kenya":         {"kenia"},
	"Laos":          {},
	"Malaysia":      {"maleisie", "maleisië"},
	"Mexico":        {},
	"Morocco":       {"marokko"},
	"Nepal":         {},
	"New Zealand":   {"nieuw-zeeland", "nieuw zeeland"},
	"Norway":        {"noorwegen"},
	"Peru":          {},
	"Philippines":   {"filipijnen", "filippijnen"},
	"Portugal":      {},
	"South Africa":  {"zuid-afrika", "zuid afrika"},
	"Spain":         {"spanje"},
	"Sri Lanka":     {},
	"Switzerland":   {"zwitserland"},
	"Tanzania":      {},
	"Thailand":      {},
	"Turkey":        {"turkije"},
	"United States": {"usa", "verenigde staten", "amerika"},
	"Vietnam":       {},
}

var countryBySurface = buildCountryIndex()

func buildCountryIndex() map[string]string {
	idx := make(map[string]string)
	for canonical, surfaces := range countrySynonyms {
		idx[Fold(canonical)] = canonical
		for _, s := range surfaces {
			idx[Fold(s)] = canonical
		}
	}
	return idx
}

// CanonicalCountry resolves a country name or synonym to its canonical form.
// Unknown names are returned folded so lookups against table rows that use
// the same spelling still work.
func CanonicalCountry(name string) string {
	if c, ok := countryBySurface[Fold(name)]; ok {
		return c
	}
	return Fold(name)
}

// KnownCountry reports whether name resolves to a country in the synonym
// table.
func KnownCountry(name string) bool {
	_, ok := countryBySurface[Fold(name)]
	return ok
}

// FindCountries scans free text for country mentions and returns canonical
// names ordered by position of first occurrence. Each country appears once.
func FindCountries(text string) []string {
	folded := Fold(text)
	positions := make(map[string]int)
	for surface, canonical := range countryBySurface {
		i := indexWord(folded, surface)
		if i < 0 {
			continue
		}
		if prev, ok := positions[canonical]; !ok || i < prev {
			positions[canonical] = i
		}
	}
	names := make([]string, 0, len(positions))
	for name := range positions {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		if positions[names[a]] != positions[names[b]] {
			return positions[names[a]] < positions[names[b]]
		}
		return names[a] < names[b]
	})
	return names
}
