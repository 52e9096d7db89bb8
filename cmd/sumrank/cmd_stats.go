package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mlfeng/sumrank/internal/config"
	"github.com/mlfeng/sumrank/internal/index"
	"github.com/mlfeng/sumrank/internal/store"
)

// handleStats implements the stats subcommand
func handleStats(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	var jsonOutput bool
	fs.BoolVar(&jsonOutput, "json", false, "Output statistics as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    sumrank stats [options]

DESCRIPTION:
    Show statistics for the result store and summary index.

OPTIONS:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open result store: %v", err)
	}
	defer db.Close()

	stats, err := db.Stats()
	if err != nil {
		log.Fatalf("Failed to get store stats: %v", err)
	}

	var indexed uint64
	if idx, err := index.Open(cfg.Index.Path); err == nil {
		indexed, _ = idx.Count()
		idx.Close()
	}

	if jsonOutput {
		out := map[string]interface{}{
			"runs":       stats.RunCount,
			"summaries":  stats.SummaryCount,
			"failures":   stats.FailureCount,
			"size_bytes": stats.SizeBytes,
			"indexed":    indexed,
		}
		jsonData, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal stats: %v", err)
		}
		fmt.Println(string(jsonData))
		return
	}

	fmt.Printf("Runs:       %d\n", stats.RunCount)
	fmt.Printf("Summaries:  %d\n", stats.SummaryCount)
	fmt.Printf("Failures:   %d\n", stats.FailureCount)
	fmt.Printf("Indexed:    %d\n", indexed)
	fmt.Printf("Store size: %d bytes\n", stats.SizeBytes)
}
