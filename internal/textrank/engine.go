// Package textrank implements extractive summarization: sentences are
// vectorized, compared pairwise by cosine similarity, ranked by graph
// centrality over the similarity matrix, and the top sentences are
// returned in original document order.
package textrank

import (
	"strings"

	"github.com/mlfeng/sumrank/internal/embedding"
)

// Engine runs the summarization pipeline. It is stateless per call: the
// only shared resource is the embedding table, which is immutable, so a
// single Engine is safe for concurrent use.
type Engine struct {
	table  *embedding.Table
	params Params
}

// New builds an Engine. table may be nil, which selects the
// document-local TF-IDF vectorizer for every run.
func New(table *embedding.Table, params Params) *Engine {
	if params.Damping <= 0 || params.Damping >= 1 {
		params.Damping = DefaultParams().Damping
	}
	if params.Tolerance <= 0 {
		params.Tolerance = DefaultParams().Tolerance
	}
	if params.MaxIterations <= 0 {
		params.MaxIterations = DefaultParams().MaxIterations
	}
	return &Engine{table: table, params: params}
}

// UsesEmbeddings reports whether runs vectorize through the embedding
// table rather than the TF-IDF fallback.
func (e *Engine) UsesEmbeddings() bool { return e.table != nil }

// Summarize returns the n most central sentences of text joined in
// original order. Empty or whitespace-only input yields "".
func (e *Engine) Summarize(text string, n int) string {
	return e.Run(text, n).Text
}

// Run is Summarize with the selected indices exposed.
func (e *Engine) Run(text string, n int) Summary {
	if strings.TrimSpace(text) == "" {
		return Summary{}
	}
	sentences := Segment(text)
	if len(sentences) == 0 {
		return Summary{}
	}
	vectors := Vectorize(sentences, e.table)
	sim := BuildSimilarity(vectors)
	scores := Rank(sim, e.params)
	return Select(sentences, scores, n)
}
