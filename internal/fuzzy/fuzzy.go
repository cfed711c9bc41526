// Package fuzzy maps noisy user text to the closest entry of a known
// vocabulary, so that answers like "mael" still land on "Male".
package fuzzy

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Threshold is the minimum similarity ratio a vocabulary entry must
// reach to be accepted as a correction.
const Threshold = 0.6

// Correct returns the vocabulary entry closest to input, in the
// vocabulary's original casing, when its similarity ratio is at least
// Threshold. Otherwise the trimmed, lowercased input is returned
// unchanged. Comparison is case-insensitive. When two entries score
// equally, the one earlier in the vocabulary wins.
func Correct(input string, vocabulary []string) string {
	needle := strings.ToLower(strings.TrimSpace(input))

	best := -1
	bestScore := 0.0
	for i, opt := range vocabulary {
		score := ratio(needle, strings.ToLower(opt))
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 && bestScore >= Threshold {
		return vocabulary[best]
	}
	return needle
}

// ratio is the sequence-matcher similarity over runes: twice the
// number of matched characters divided by the total length.
func ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
