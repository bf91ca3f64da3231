// Package similarity scores how alike two addresses are, used to decide
// whether two differently-numbered incidents describe the same event.
package similarity

import (
	"regexp"
)

var whitespace = regexp.MustCompile(`\s+`)

// CompareTwoStrings returns the bigram Dice coefficient of two strings with
// all whitespace stripped. Identical strings score 1; strings shorter than
// two characters score 0 unless identical. Each bigram of the first string
// is consumed at most once when counting overlap.
func CompareTwoStrings(a, b string) float64 {
	first := whitespace.ReplaceAllString(a, "")
	second := whitespace.ReplaceAllString(b, "")

	if first == second {
		return 1 // identical or both empty
	}
	if len(first) < 2 || len(second) < 2 {
		return 0
	}

	firstBigrams := make(map[string]int)
	for i := 0; i < len(first)-1; i++ {
		firstBigrams[first[i:i+2]]++
	}

	intersectionSize := 0
	for i := 0; i < len(second)-1; i++ {
		bigram := second[i : i+2]
		if firstBigrams[bigram] > 0 {
			firstBigrams[bigram]--
			intersectionSize++
		}
	}

	return 2.0 * float64(intersectionSize) / float64(len(first)+len(second)-2)
}
