package textrank

import (
	"sort"
	"strings"
)

// Summary is the outcome of a pipeline run: the selected sentence
// indices in ascending (original document) order and the joined text.
type Summary struct {
	Indices []int
	Text    string
}

// Select picks the n highest-scoring sentences and rebuilds them in
// original order. n is clamped to [1, m]; ties break on the lower
// original index so equal scores always produce the same output. An
// empty sentence list yields an empty Summary.
func Select(sentences []Sentence, scores []float64, n int) Summary {
	m := len(sentences)
	if m == 0 {
		return Summary{}
	}
	if n < 1 {
		n = 1
	}
	if n > m {
		n = m
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})

	selected := make([]int, n)
	copy(selected, order[:n])
	sort.Ints(selected)

	parts := make([]string, 0, n)
	for _, idx := range selected {
		parts = append(parts, sentences[idx].Raw)
	}
	return Summary{Indices: selected, Text: strings.Join(parts, " ")}
}
