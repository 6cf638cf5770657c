package similar

import (
	"sort"

	"biometa-converter/internal/common"
)

// MinSuggestScore is the lowest normalized similarity still worth
// surfacing as a suggestion.
const MinSuggestScore = 0.5

// Closest returns up to n candidates ranked by name similarity to the
// given field, best first. Candidates below MinSuggestScore are dropped;
// ties break alphabetically so the ranking is deterministic.
func Closest(field string, candidates []string, n int) []string {
	if common.IsEmpty(candidates) || n <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	fieldNorm := NormalizeName(field)
	for _, c := range candidates {
		score := Similarity(fieldNorm, NormalizeName(c))
		if score < MinSuggestScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	if common.IsEmpty(ranked) {
		return nil
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	names := make([]string, n)
	for i := range n {
		names[i] = ranked[i].name
	}

	return names
}
