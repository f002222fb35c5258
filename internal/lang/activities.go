package lang

import "sort"

// TagAll is the wildcard activity tag. A product row carrying it applies to
// every trip regardless of the resolved activity set.
const TagAll = "all"

// activitySynonyms maps canonical activity tags to accepted surface forms in
// English and Dutch. Tags are lowercase and language-independent; the
// reference tables and the extractor both canonicalize through this table.
var activitySynonyms = map[string][]string{
	"hiking":     {"hike", "hikes", "hiken", "trekking", "trek", "wandelen", "wandeling", "bergwandelen"},
	"diving":     {"dive", "duiken", "duik", "scuba", "scubaduiken"},
	"snorkeling": {"snorkelen", "snorkel", "snorkelling"},
	"beach":      {"strand", "zonnen", "beaches", "stranden"},
	"surfing":    {"surf", "surfen", "golfsurfen"},
	"cycling":    {"fietsen", "wielrennen", "mountainbiken", "bike", "biking", "cycle"},
	"skiing":     {"ski", "skien", "skiën", "snowboarden", "snowboarding", "wintersport"},
	"citytrip":   {"city trip", "stedentrip", "sightseeing", "city break", "steden"},
	"camping":    {"kamperen", "camp", "wildkamperen"},
	"climbing":   {"klimmen", "climb", "bouldering", "boulderen"},
	"kayaking":   {"kajakken", "kayak", "kanoen", "canoeing"},
	"running":    {"hardlopen", "run", "joggen", "jogging"},
	"fishing":    {"vissen", "fish", "hengelen"},
	"safari":     {"wildsafari", "gamedrive", "game drive"},
	"yoga":       {"yogales"},
	"work":       {"werken", "remote werken", "digital nomad", "workation", "thuiswerken"},
	TagAll:       {"alle", "algemeen", "iedereen", "any"},
}

var activityBySurface = buildActivityIndex()

func buildActivityIndex() map[string]string {
	idx := make(map[string]string)
	for canonical, surfaces := range activitySynonyms {
		idx[Fold(canonical)] = canonical
		for _, s := range surfaces {
			idx[Fold(s)] = canonical
		}
	}
	return idx
}

// CanonicalActivity resolves an activity word to its canonical tag. Unknown
// words come back folded, so catalog-only tags still match themselves.
func CanonicalActivity(word string) string {
	if tag, ok := activityBySurface[Fold(word)]; ok {
		return tag
	}
	return Fold(word)
}

// KnownActivity reports whether word maps to a canonical tag.
func KnownActivity(word string) bool {
	_, ok := activityBySurface[Fold(word)]
	return ok
}

// CanonicalizeActivities maps a list of activity words to canonical tags,
// collapsing duplicates and preserving first-seen order. Empty tokens drop.
func CanonicalizeActivities(words []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, w := range words {
		if Fold(w) == "" {
			continue
		}
		tag := CanonicalActivity(w)
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

// FindActivities scans free text for activity mentions and returns canonical
// tags ordered by position of first occurrence. The wildcard tag is never
// produced from free text.
func FindActivities(text string) []string {
	folded := Fold(text)
	positions := make(map[string]int)
	for surface, canonical := range activityBySurface {
		if canonical == TagAll {
			continue
		}
		i := indexWord(folded, surface)
		if i < 0 {
			continue
		}
		if prev, ok := positions[canonical]; !ok || i < prev {
			positions[canonical] = i
		}
	}
	tags := make([]string, 0, len(positions))
	for tag := range positions {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(a, b int) bool {
		if positions[tags[a]] != positions[tags[b]] {
			return positions[tags[a]] < positions[tags[b]]
		}
		return tags[a] < tags[b]
	})
	return tags
}
