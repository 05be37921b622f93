package naming

import "sort"

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-character insertions, deletions, or substitutions to turn
// one into the other. Runs in O(len(a)*len(b)) time with two rows of space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a the shorter string for the row allocation
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity computes a normalized score between 0 and 1 after folding both
// identifiers. 1.0 means the folded forms are identical.
func Similarity(a, b string) float64 {
	fa, fb := Fold(a), Fold(b)
	if len(fa) == 0 && len(fb) == 0 {
		return 1.0
	}

	maxLen := max(len(fa), len(fb))

	return 1.0 - float64(Levenshtein(fa, fb))/float64(maxLen)
}

// nearestThreshold is the minimum similarity for a suggestion to be offered.
const nearestThreshold = 0.5

// Nearest returns up to limit candidates most similar to target, best first.
// Ties break alphabetically so suggestion lists are deterministic.
func Nearest(target string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var hits []scored
	for _, c := range candidates {
		if s := Similarity(target, c); s >= nearestThreshold {
			hits = append(hits, scored{name: c, score: s})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}

		return hits[i].name < hits[j].name
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}

	if b < c {
		return b
	}

	return c
}
