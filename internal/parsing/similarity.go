package parsing

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Similarity returns the longest-matching-blocks ratio of the normalized
// strings scaled to 0-100 and truncated. Two empty inputs score 0.
//
// The ratio is computed in both directions and the larger value is kept,
// which makes the result symmetric regardless of block tie-breaking.
func Similarity(a, b string) int {
	na := runeSeq(Normalize(a))
	nb := runeSeq(Normalize(b))
	if len(na) == 0 && len(nb) == 0 {
		return 0
	}

	forward := difflib.NewMatcher(na, nb).Ratio()
	backward := difflib.NewMatcher(nb, na).Ratio()
	ratio := max(forward, backward)

	return int(ratio * 100)
}

// runeSeq splits s into one element per rune, the unit the matcher aligns on.
func runeSeq(s string) []string {
	seq := make([]string, 0, len(s))
	for _, r := range s {
		seq = append(seq, string(r))
	}
	return seq
}
