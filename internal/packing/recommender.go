package packing

import (
	"context"
	"sort"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/reftable"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// MaxListSize caps the final recommendation list.
const MaxListSize = 30

// Recommendation wraps a selected product with its ranking diagnostics.
// Scores and match data ride along as ordinary fields so the transport layer
// can surface them for observability.
type Recommendation struct {
	Product
	Score           float64
	MatchesActivity bool
	Generic         bool
	MatchedTags     []string
	Quantity        int // 0 = no computed quantity
}

// Recommender produces ranked packing lists from a cached product catalog.
type Recommender struct {
	cache *reftable.Cache
}

// NewRecommender creates a Recommender around the given catalog cache.
func NewRecommender(cache *reftable.Cache) *Recommender {
	return &Recommender{cache: cache}
}

// Recommend selects, scores, sorts, quantity-adjusts, deduplicates and caps
// catalog items for the context. The activity filter is hard: items that are
// neither generic nor tag-matching are dropped, not down-ranked. If the
// catalog cannot be loaded the list degrades to a single diagnostic entry so
// delivery is never blocked.
func (r *Recommender) Recommend(ctx context.Context, tc *trip.Context) []Recommendation {
	rows, err := r.cache.Rows(ctx)
	if err != nil {
		return []Recommendation{catalogUnavailable()}
	}

	activities := make(map[string]bool, len(tc.Activities))
	for _, a := range tc.Activities {
		activities[lang.CanonicalActivity(a)] = true
	}

	var candidates []Recommendation
	for _, p := range ParseProducts(rows) {
		rec, selected := evaluate(p, activities)
		if selected {
			candidates = append(candidates, rec)
		}
	}

	sortCandidates(candidates)

	for i := range candidates {
		candidates[i].Quantity = quantityFor(candidates[i].Product, tc.DurationDays)
	}

	return capList(dedup(candidates))
}

// evaluate classifies and scores one product against the activity set.
func evaluate(p Product, activities map[string]bool) (Recommendation, bool) {
	rec := Recommendation{Product: p, Generic: p.IsGeneric()}
	for _, tag := range p.Activities {
		if tag != lang.TagAll && activities[tag] {
			rec.MatchesActivity = true
			rec.MatchedTags = append(rec.MatchedTags, tag)
		}
	}

	switch {
	case rec.MatchesActivity:
		rec.Score = 2.0
	case rec.Generic:
		rec.Score = 1.0
	default:
		return rec, false
	}
	return rec, true
}

// sortCandidates applies the canonical three-level order: activity-matching
// rows above generic ones, lighter above heavier (unknown weight last),
// case-insensitive name as the final tiebreak. Stable and deterministic for
// identical inputs.
func sortCandidates(candidates []Recommendation) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.WeightGrams != b.WeightGrams {
			return a.WeightGrams < b.WeightGrams
		}
		return lang.Fold(a.Name) < lang.Fold(b.Name)
	})
}

// quantityFor computes the trip-length quantity. Only clothing gets
// quantities, and only when the duration is known; the band falls back to
// the nearest declared one.
func quantityFor(p Product, durationDays int) int {
	if !p.IsClothing() || durationDays < 1 {
		return 0
	}

	var preference []int
	switch {
	case durationDays <= 15:
		preference = []int{p.QtyShort, p.QtyMedium, p.QtyLong}
	case durationDays <= 30:
		preference = []int{p.QtyMedium, p.QtyShort, p.QtyLong}
	default:
		preference = []int{p.QtyLong, p.QtyMedium, p.QtyShort}
	}
	for _, q := range preference {
		if q > 0 {
			return q
		}
	}
	return 0
}

// dedup keeps the first (highest-ranked) occurrence per (category, name).
func dedup(candidates []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		key := lang.Fold(c.Category) + "|" + lang.Fold(c.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func capList(list []Recommendation) []Recommendation {
	if len(list) > MaxListSize {
		return list[:MaxListSize]
	}
	return list
}

// catalogUnavailable is the placeholder entry returned when the product
// table cannot be loaded.
func catalogUnavailable() Recommendation {
	return Recommendation{
		Product: Product{
			Category:    "info",
			Name:        "Product catalog unavailable, showing no items",
			WeightGrams: WeightUnknown,
		},
		Generic: true,
	}
}
