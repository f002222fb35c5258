package lang

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes characters and strips combining marks, so that
// "Indonesië" and "indonesie" fold to the same form.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips diacritics. All synonym matching in this
// package operates on folded text.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Transform only fails on invalid UTF-8; fall back to the raw string.
		out = s
	}
	return strings.ToLower(out)
}

// containsWord reports whether the folded needle occurs in the folded haystack
// on word boundaries. Needles may contain spaces ("sri lanka").
func containsWord(haystack, needle string) bool {
	return indexWord(haystack, needle) >= 0
}

// indexWord returns the byte offset of the first boundary-delimited occurrence
// of needle in haystack, or -1.
func indexWord(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return -1
		}
		i += from
		before := byte(0)
		if i > 0 {
			before = haystack[i-1]
		}
		after := byte(0)
		if i+len(needle) < len(haystack) {
			after = haystack[i+len(needle)]
		}
		if !isWordByte(before) && !isWordByte(after) {
			return i
		}
		from = i + 1
	}
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
