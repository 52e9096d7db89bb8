package main

import (
	"log"

	"github.com/mlfeng/sumrank/internal/config"
	"github.com/mlfeng/sumrank/internal/embedding"
	"github.com/mlfeng/sumrank/internal/textrank"
)

// buildEngine assembles the summarization engine from config: the
// shared embedding table when one of the configured vector files
// loads, TF-IDF otherwise.
func buildEngine(cfg *config.Config) *textrank.Engine {
	table := embedding.Shared(cfg.Embedding.Paths)
	params := textrank.Params{
		Damping:       cfg.Summarizer.Damping,
		Tolerance:     cfg.Summarizer.Tolerance,
		MaxIterations: cfg.Summarizer.MaxIterations,
	}
	engine := textrank.New(table, params)
	if engine.UsesEmbeddings() {
		log.Printf("Vectorizer: embedding (%d tokens, dim %d)", table.Len(), table.Dim())
	} else {
		log.Printf("Vectorizer: tfidf")
	}
	return engine
}

// vectorizerName reports which vectorizer a run used, for the result
// store.
func vectorizerName(engine *textrank.Engine) string {
	if engine.UsesEmbeddings() {
		return "embedding"
	}
	return "tfidf"
}
