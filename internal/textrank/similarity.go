package textrank

import "math"

// normEps avoids division by zero when a vector has zero norm.
const normEps = 1e-9

// BuildSimilarity computes the dense pairwise cosine similarity matrix
// for the given vectors. Each unordered pair is computed once and
// mirrored, so the matrix is exactly symmetric. The diagonal is always
// zero: a sentence never votes for itself. NaN, infinite, and negative
// values are normalized to zero, keeping every entry finite and
// non-negative.
func BuildSimilarity(vectors [][]float64) [][]float64 {
	m := len(vectors)
	sim := make([][]float64, m)
	for i := range sim {
		sim[i] = make([]float64, m)
	}
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			s := cosine(vectors[i], vectors[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	s := dot / (math.Sqrt(na)*math.Sqrt(nb) + normEps)
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	return s
}
