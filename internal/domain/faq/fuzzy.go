package faq

import "github.com/agnivade/levenshtein"

// similarityRatio returns an edit-distance based similarity in [0,1].
// 1 means identical, 0 means nothing in common.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(longest)
}
