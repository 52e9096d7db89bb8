package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mlfeng/sumrank/internal/config"
)

// handleSummarize implements the summarize subcommand
func handleSummarize(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)

	var sentences int
	var jsonOutput bool

	fs.IntVar(&sentences, "n", cfg.Summarizer.Sentences, "Number of sentences to keep")
	fs.BoolVar(&jsonOutput, "json", false, "Output result as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    sumrank summarize [options] [file]

DESCRIPTION:
    Summarize the given text file, or stdin when no file is given,
    down to the n most central sentences in their original order.

OPTIONS:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
EXAMPLES:
    # Summarize a file
    sumrank summarize article.txt

    # One-sentence summary from stdin
    cat article.txt | sumrank summarize -n 1

    # JSON output for scripting
    sumrank summarize article.txt -json
`)
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	var data []byte
	var err error
	if fs.NArg() > 0 {
		data, err = os.ReadFile(fs.Arg(0))
		if err != nil {
			log.Fatalf("Failed to read input file: %v", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
	}

	engine := buildEngine(cfg)
	result := engine.Run(string(data), sentences)

	if jsonOutput {
		out := map[string]interface{}{
			"summary":    result.Text,
			"indices":    result.Indices,
			"sentences":  sentences,
			"vectorizer": vectorizerName(engine),
		}
		jsonData, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal result: %v", err)
		}
		fmt.Println(string(jsonData))
		return
	}

	fmt.Println(result.Text)
}
