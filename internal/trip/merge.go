package trip

// MergePolicy declares how one context field combines during a merge.
// Most extractor payloads are authoritative snapshots, so scalars overwrite
// and plain lists replace wholesale; the two evidence-accumulating
// collections (destinations, activities) union instead.
type MergePolicy int

const (
	// PolicyScalarOverwrite: source value wins when it is non-zero.
	PolicyScalarOverwrite MergePolicy = iota
	// PolicySetUnion: elements union by identity key, duplicates collapse.
	PolicySetUnion
	// PolicyMapMerge: merged per key, source entries win.
	PolicyMapMerge
	// PolicyListReplace: a non-empty source list replaces the target list.
	PolicyListReplace
)

// FieldPolicies is the declared merge behavior per context field. Declaring
// it once keeps merge semantics data-driven and testable instead of implicit
// in code branches.
var FieldPolicies = map[string]MergePolicy{
	"Destinations": PolicySetUnion,
	"Activities":   PolicySetUnion,
	"DurationDays": PolicyScalarOverwrite,
	"Month":        PolicyScalarOverwrite,
	"StartDate":    PolicyScalarOverwrite,
	"EndDate":      PolicyScalarOverwrite,
	"Preferences":  PolicyMapMerge,
}

// Merge folds src into dst according to FieldPolicies. Merging is idempotent
// on the union collections: merging the same destination or activity twice
// produces no duplicates. Independent non-zero scalar merges commute.
func Merge(dst, src *Context) {
	if src == nil {
		return
	}

	applyUnion(dst, src)

	if FieldPolicies["DurationDays"] == PolicyScalarOverwrite && src.DurationDays >= 1 {
		dst.DurationDays = src.DurationDays
	}

	// Period scalars go through the setters so the month/date-range
	// exclusivity invariant holds after every merge.
	if src.StartDate != "" {
		dst.SetDateRange(src.StartDate, src.EndDate)
	} else if src.Month != "" {
		dst.SetMonth(src.Month)
	}

	for k, v := range src.Preferences {
		if v != "" {
			dst.Preferences[k] = v
		}
	}
}

func applyUnion(dst, src *Context) {
	for _, d := range src.Destinations {
		dst.AddDestination(d)
	}
	dst.AddActivities(src.Activities)
}
