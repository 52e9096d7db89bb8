package textrank

import (
	"math"
	"sort"

	"github.com/mlfeng/sumrank/internal/embedding"
)

// countEps keeps the embedding average well-defined for sentences with
// no tokens at all.
const countEps = 1e-9

// Vectorize turns sentences into one numeric vector each, in order.
// With an embedding table the vector is the average of the table vectors
// of the sentence's tokens; without one it falls back to a TF-IDF space
// built from the document's own sentences.
func Vectorize(sentences []Sentence, table *embedding.Table) [][]float64 {
	if table != nil {
		return embeddingVectors(sentences, table)
	}
	return tfidfVectors(sentences)
}

func embeddingVectors(sentences []Sentence, table *embedding.Table) [][]float64 {
	dim := table.Dim()
	vectors := make([][]float64, len(sentences))
	for i, sent := range sentences {
		vec := make([]float64, dim)
		for _, tok := range sent.Tokens {
			v, ok := table.Lookup(tok)
			if !ok {
				continue // out-of-vocabulary counts as a zero vector
			}
			for d := 0; d < dim; d++ {
				vec[d] += v[d]
			}
		}
		// denominator counts every token, in-vocabulary or not
		denom := float64(len(sent.Tokens)) + countEps
		for d := 0; d < dim; d++ {
			vec[d] /= denom
		}
		vectors[i] = vec
	}
	return vectors
}

// tfidfVectors treats the document's sentences as a mini-corpus. The
// vocabulary is local to this call, ordered alphabetically so repeated
// runs over the same text produce identical vectors.
func tfidfVectors(sentences []Sentence) [][]float64 {
	df := make(map[string]int)
	for _, sent := range sentences {
		seen := make(map[string]struct{}, len(sent.Tokens))
		for _, tok := range sent.Tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(sentences))
	for i, term := range terms {
		vocab[term] = i
		// smoothed IDF so a term in every sentence still carries weight
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	vectors := make([][]float64, len(sentences))
	for i, sent := range sentences {
		vec := make([]float64, len(terms))
		vectors[i] = vec
		if len(sent.Tokens) == 0 {
			continue
		}
		for _, tok := range sent.Tokens {
			if idx, ok := vocab[tok]; ok {
				vec[idx]++
			}
		}
		total := float64(len(sent.Tokens))
		norm := 0.0
		for idx := range vec {
			vec[idx] = vec[idx] / total * idf[idx]
			norm += vec[idx] * vec[idx]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for idx := range vec {
				vec[idx] /= norm
			}
		}
	}
	return vectors
}
