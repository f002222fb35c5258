package season

// mergeInto folds one leg's info into the running merge. Legs are processed
// in itinerary order: the first non-empty season wins, risks concatenate and
// dedup by composite key, flags and tags union preserving first-seen order.
func mergeInto(dst *Info, src Info) {
	if dst.Season == "" {
		dst.Season = src.Season
	}
	for _, r := range src.Risks {
		if !containsRisk(dst.Risks, r) {
			dst.Risks = append(dst.Risks, r)
		}
	}
	dst.AdviceFlags = unionStrings(dst.AdviceFlags, src.AdviceFlags)
	dst.ItemTags = unionStrings(dst.ItemTags, src.ItemTags)
}

func containsRisk(risks []Risk, r Risk) bool {
	for _, existing := range risks {
		if existing == r {
			return true
		}
	}
	return false
}

// unionStrings appends the elements of add that dst does not already hold,
// preserving order.
func unionStrings(dst, add []string) []string {
	for _, s := range add {
		found := false
		for _, existing := range dst {
			if existing == s {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, s)
		}
	}
	return dst
}
