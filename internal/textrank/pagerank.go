package textrank

import "math"

// Params holds the numeric knobs of the centrality ranker. The defaults
// follow the conventional PageRank settings; they are configurable
// because the policy is a heuristic, not a contract.
type Params struct {
	Damping       float64
	Tolerance     float64
	MaxIterations int
}

// DefaultParams returns the standard ranker parameters.
func DefaultParams() Params {
	return Params{
		Damping:       0.85,
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

// Rank scores each node of the similarity graph with weighted PageRank.
// Scores start uniform at 1/m and are redistributed along edges in
// proportion to edge weight until the L1 change drops below the
// tolerance or the iteration cap is hit.
//
// Fallback policy: if iteration fails to converge, every node scores its
// row sum of similarities instead; a node with no positive-weight edges
// scores its row sum (zero) in any case. The result is deterministic for
// a fixed matrix and fixed parameters, and every score is finite and
// non-negative.
func Rank(sim [][]float64, p Params) []float64 {
	m := len(sim)
	if m == 0 {
		return nil
	}

	rowSum := make([]float64, m)
	for i := range sim {
		for _, w := range sim[i] {
			rowSum[i] += w
		}
	}

	scores := make([]float64, m)
	for i := range scores {
		scores[i] = 1.0 / float64(m)
	}

	base := (1 - p.Damping) / float64(m)
	next := make([]float64, m)
	converged := false

	for iter := 0; iter < p.MaxIterations; iter++ {
		for i := 0; i < m; i++ {
			contrib := 0.0
			for j := 0; j < m; j++ {
				if rowSum[j] > 0 {
					contrib += sim[j][i] / rowSum[j] * scores[j]
				}
			}
			next[i] = base + p.Damping*contrib
		}
		delta := 0.0
		for i := 0; i < m; i++ {
			delta += math.Abs(next[i] - scores[i])
		}
		copy(scores, next)
		if delta < p.Tolerance {
			converged = true
			break
		}
	}

	if !converged || !finite(scores) {
		out := make([]float64, m)
		copy(out, rowSum)
		return out
	}

	// isolated nodes score zero under both methods
	for i := range scores {
		if rowSum[i] == 0 {
			scores[i] = 0
		}
	}
	return scores
}

func finite(scores []float64) bool {
	for _, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return false
		}
	}
	return true
}
