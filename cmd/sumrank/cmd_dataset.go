package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mlfeng/sumrank/internal/config"
	"github.com/mlfeng/sumrank/internal/dataset"
	"github.com/mlfeng/sumrank/internal/index"
	"github.com/mlfeng/sumrank/internal/store"
)

// handleDataset implements the dataset subcommand
func handleDataset(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("dataset", flag.ExitOnError)

	var sentences int
	var output, column string
	var noProgress, noStore bool

	fs.IntVar(&sentences, "n", cfg.Summarizer.Sentences, "Number of sentences per summary")
	fs.StringVar(&output, "o", cfg.Dataset.Output, "Output CSV file")
	fs.StringVar(&column, "column", cfg.Dataset.TextColumn, "Name of the text column")
	fs.BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	fs.BoolVar(&noStore, "no-store", false, "Skip persisting results to the database and index")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    sumrank dataset [options] [file|glob ...]

DESCRIPTION:
    Summarize every row of the given CSV/XLSX datasets. Without
    arguments the configured task file is used. Results are written to
    a CSV file and stored for later search.

OPTIONS:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
EXAMPLES:
    # Run the configured task file
    sumrank dataset

    # Run specific datasets, two sentences per row
    sumrank dataset TASK.xlsx extra.csv -n 2

    # Glob over a directory tree
    sumrank dataset "data/**/*.csv"

    # One-off run without touching the store
    sumrank dataset data.csv -no-store
`)
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	patterns := fs.Args()
	if len(patterns) == 0 {
		patterns = []string{cfg.Dataset.TaskFile}
	}
	paths, err := dataset.ResolveGlobs(patterns)
	if err != nil {
		log.Fatalf("Failed to resolve datasets: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No datasets matched %v", patterns)
	}

	engine := buildEngine(cfg)
	runner := dataset.NewRunner(engine, dataset.NewBatchProgress(!noProgress && dataset.DefaultProgressEnabled()))

	var summaryStore *store.SummaryStore
	var summaryIndex *index.SummaryIndex
	if !noStore {
		db, err := store.Open(cfg.Database.Path)
		if err != nil {
			log.Fatalf("Failed to open result store: %v", err)
		}
		defer db.Close()
		summaryStore = store.NewSummaryStore(db)

		summaryIndex, err = index.Open(cfg.Index.Path)
		if err != nil {
			summaryIndex, err = index.Create(cfg.Index.Path)
			if err != nil {
				log.Fatalf("Failed to create summary index: %v", err)
			}
		}
		defer summaryIndex.Close()
	}

	var all []dataset.RowResult
	for _, path := range paths {
		rows, err := dataset.ReadRows(path, column)
		if err != nil {
			log.Fatalf("Failed to read dataset %s: %v", path, err)
		}
		log.Printf("Summarizing %s (%d rows)", path, len(rows))

		results := runner.SummarizeRows(rows, sentences)
		all = append(all, results...)

		failures := 0
		for _, res := range results {
			if res.Failure != "" {
				failures++
			}
		}
		if failures > 0 {
			log.Printf("%d of %d rows failed in %s", failures, len(results), path)
		}

		if summaryStore != nil {
			run := &store.Run{
				Source:     path,
				Sentences:  sentences,
				Vectorizer: vectorizerName(engine),
			}
			summaries := make([]store.Summary, 0, len(results))
			for _, res := range results {
				summaries = append(summaries, store.Summary{
					RowID:   res.ID,
					Text:    res.Text,
					Summary: res.Summary,
					Failure: res.Failure,
				})
			}
			runID, err := summaryStore.CreateRun(run, summaries)
			if err != nil {
				log.Fatalf("Failed to store run for %s: %v", path, err)
			}
			if err := summaryIndex.IndexRun(run, summaries); err != nil {
				log.Fatalf("Failed to index run %d: %v", runID, err)
			}
			log.Printf("Stored run %d for %s", runID, path)
		}
	}

	if err := dataset.WriteResults(output, all); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}
	log.Printf("Wrote %d summaries to %s", len(all), output)
}
