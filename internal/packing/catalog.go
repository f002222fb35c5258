// Package packing scores and filters the product reference catalog against
// resolved trip context and produces the ranked packing list.
package packing

import (
	"strconv"
	"strings"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/reftable"
)

// WeightUnknown is the sentinel for rows without a usable weight. It sorts
// after every real weight, so unknown-weight items rank last among equals.
const WeightUnknown = 1 << 30

// clothingCategories are the category values that receive computed
// quantities. Catalogs appear in both languages.
var clothingCategories = map[string]bool{
	"clothing": true,
	"kleding":  true,
}

// Product is one canonicalized catalog row.
type Product struct {
	Category    string
	Name        string
	WeightGrams int // WeightUnknown when absent or unparseable
	Activities  []string
	Priority    string
	QtyShort    int // 0 = band not declared
	QtyMedium   int
	QtyLong     int
	URL         string
	Image       string

	// Extra carries unrecognized catalog columns through unmodified.
	Extra map[string]string
}

// IsGeneric reports whether the product applies regardless of activities:
// either it has no activity restriction or it carries the wildcard tag.
func (p Product) IsGeneric() bool {
	if len(p.Activities) == 0 {
		return true
	}
	for _, tag := range p.Activities {
		if tag == lang.TagAll {
			return true
		}
	}
	return false
}

// IsClothing reports whether the product belongs to a clothing category.
func (p Product) IsClothing() bool {
	return clothingCategories[lang.Fold(p.Category)]
}

// knownColumns are the catalog columns mapped onto Product fields; anything
// else lands in Extra.
var knownColumns = map[string]bool{
	"category": true, "name": true, "weight_grams": true, "weight": true,
	"activities": true, "priority": true, "prio": true, "rank": true,
	"qty_short": true, "qty_medium": true, "qty_long": true,
	"url": true, "image": true,
}

// ParseProducts converts raw catalog rows into Products, skipping records
// without the required category and name columns. Activity tokens
// canonicalize through the shared synonym table so "duiken" in the catalog
// matches "diving" in the context.
func ParseProducts(raw []reftable.Row) []Product {
	out := make([]Product, 0, len(raw))
	for _, r := range raw {
		p := Product{
			Category:    r.Get("category"),
			Name:        r.Get("name"),
			WeightGrams: parseWeight(r.Get("weight_grams", "weight")),
			Activities:  lang.CanonicalizeActivities(splitTags(r.Get("activities"))),
			Priority:    r.Get("priority", "prio", "rank"),
			QtyShort:    parseQty(r.Get("qty_short")),
			QtyMedium:   parseQty(r.Get("qty_medium")),
			QtyLong:     parseQty(r.Get("qty_long")),
			URL:         r.Get("url"),
			Image:       r.Get("image"),
		}
		if p.Category == "" || p.Name == "" {
			continue
		}
		for col, val := range r {
			if !knownColumns[col] {
				if p.Extra == nil {
					p.Extra = map[string]string{}
				}
				p.Extra[col] = val
			}
		}
		out = append(out, p)
	}
	return out
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parseWeight(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return WeightUnknown
	}
	return n
}

func parseQty(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
