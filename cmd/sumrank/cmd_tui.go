package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlfeng/sumrank/internal/config"
	"github.com/mlfeng/sumrank/internal/tui"
)

// handleTUI implements the tui subcommand
func handleTUI(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)

	var sentences int
	fs.IntVar(&sentences, "n", cfg.Summarizer.Sentences, "Initial number of sentences")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    sumrank tui [options]

DESCRIPTION:
    Interactive terminal frontend. Paste text and press ctrl+s to
    summarize; ctrl+up/ctrl+down adjust the summary length.

OPTIONS:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	engine := buildEngine(cfg)
	program := tea.NewProgram(tui.New(engine, sentences), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("TUI failed: %v", err)
	}
}
