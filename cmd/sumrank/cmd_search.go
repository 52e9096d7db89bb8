package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mlfeng/sumrank/internal/config"
	"github.com/mlfeng/sumrank/internal/index"
)

// handleSearch implements the search subcommand
func handleSearch(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	var topK int
	var jsonOutput bool

	fs.IntVar(&topK, "k", 10, "Number of results to return")
	fs.BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    sumrank search [options] "<query>"

DESCRIPTION:
    Full-text search over summaries stored by previous dataset runs.

OPTIONS:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
EXAMPLES:
    # Search stored summaries
    sumrank search "climate change"

    # Get top 5 results
    sumrank search "supply chain" -k 5

    # JSON output for scripting
    sumrank search "energy policy" -json
`)
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: search query is required\n\n")
		fs.Usage()
		os.Exit(1)
	}
	query := fs.Arg(0)

	idx, err := index.Open(cfg.Index.Path)
	if err != nil {
		log.Fatalf("Failed to open summary index (run `sumrank dataset` first): %v", err)
	}
	defer idx.Close()

	hits, err := idx.Search(query, topK)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	if jsonOutput {
		outputJSON(hits, query)
	} else {
		outputText(hits, query)
	}
}

// outputText outputs search hits as human-readable text
func outputText(hits []index.Hit, query string) {
	if len(hits) == 0 {
		fmt.Println("No results found")
		return
	}

	fmt.Printf("Found %d result(s) for: %s\n\n", len(hits), query)

	for i, hit := range hits {
		fmt.Printf("%d. run %d, row %d (%s)\n", i+1, hit.RunID, hit.RowID, hit.Source)
		fmt.Printf("   Score: %.3f\n", hit.Score)
		summary := hit.Summary
		if len(summary) > 200 {
			summary = summary[:200] + "..."
		}
		fmt.Printf("   %s\n\n", summary)
	}
}

// outputJSON outputs search hits as JSON
func outputJSON(hits []index.Hit, query string) {
	output := map[string]interface{}{
		"query":   query,
		"count":   len(hits),
		"results": hits,
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal results: %v", err)
	}

	fmt.Println(string(jsonData))
}
