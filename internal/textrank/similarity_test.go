package textrank

import (
	"math"
	"testing"
)

func TestBuildSimilarity(t *testing.T) {
	vectors := [][]float64{
		{1, 0, 0},
		{1, 1, 0},
		{0, 0, 0}, // zero-information sentence
		{-1, 0, 0},
	}
	sim := BuildSimilarity(vectors)

	for i := range sim {
		if sim[i][i] != 0 {
			t.Errorf("diagonal [%d][%d] = %v, want 0", i, i, sim[i][i])
		}
		for j := range sim[i] {
			if sim[i][j] != sim[j][i] {
				t.Errorf("matrix not symmetric at (%d,%d): %v vs %v", i, j, sim[i][j], sim[j][i])
			}
			if math.IsNaN(sim[i][j]) || math.IsInf(sim[i][j], 0) {
				t.Errorf("entry (%d,%d) not finite: %v", i, j, sim[i][j])
			}
			if sim[i][j] < 0 {
				t.Errorf("entry (%d,%d) negative: %v", i, j, sim[i][j])
			}
		}
	}

	if got := sim[0][1]; math.Abs(got-1/math.Sqrt2) > 1e-6 {
		t.Errorf("sim[0][1] = %v, want ~%v", got, 1/math.Sqrt2)
	}
	// zero vector compares as zero, not NaN
	if sim[0][2] != 0 {
		t.Errorf("sim against zero vector = %v, want 0", sim[0][2])
	}
	// opposite vectors clamp to zero
	if sim[0][3] != 0 {
		t.Errorf("negative cosine not clamped: %v", sim[0][3])
	}
}

func TestBuildSimilarityEmpty(t *testing.T) {
	if sim := BuildSimilarity(nil); len(sim) != 0 {
		t.Errorf("expected empty matrix, got %v", sim)
	}
}
