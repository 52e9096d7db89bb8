package internal

import (
	"fmt"
	"os"
)

const Version = "1.0.0"

// PrintUsage prints the top-level command help to stderr.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `sumrank - Extractive Text Summarization

Version: %s

USAGE:
    sumrank [global options] <command> [command options]

GLOBAL OPTIONS:
    -config <path>
        Path to config file (default: ~/.sumrank/config/sumrank.yaml)

    -v, -version
        Show version information

    -h, -help
        Show this help message

COMMANDS:
    summarize
        Summarize a text file or stdin

    dataset
        Summarize every row of one or more CSV/XLSX datasets

    search
        Search previously stored summaries

    serve
        Run the HTTP API server

    tui
        Run the interactive terminal frontend

    stats
        Show result store statistics

EXAMPLES:
    # Summarize a file down to 3 sentences
    sumrank summarize article.txt

    # Summarize stdin to a single sentence
    cat article.txt | sumrank summarize -n 1

    # Batch-summarize datasets and write SummaryFile.csv
    sumrank dataset TASK.xlsx
    sumrank dataset "data/**/*.csv" -n 2

    # Search stored summaries
    sumrank search "climate change" -k 5

    # Start the API server
    sumrank serve

For detailed help on each command, use:
    sumrank <command> -help
`, Version)
}
