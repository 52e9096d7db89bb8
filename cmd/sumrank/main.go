package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mlfeng/sumrank/cmd/sumrank/internal"
	"github.com/mlfeng/sumrank/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		internal.PrintUsage()
		os.Exit(1)
	}

	// Parse global flags and find subcommand
	configPath := ""
	args := os.Args[1:]

	// Handle special flags that don't require subcommand
	for _, arg := range args {
		if arg == "-h" || arg == "-help" || arg == "--help" {
			internal.PrintUsage()
			os.Exit(0)
		}
		if arg == "-v" || arg == "-version" || arg == "--version" {
			fmt.Printf("sumrank version %s\n", internal.Version)
			os.Exit(0)
		}
	}

	validSubcommands := map[string]bool{
		"summarize": true,
		"dataset":   true,
		"search":    true,
		"serve":     true,
		"tui":       true,
		"stats":     true,
	}

	subcommandIndex := -1
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			if validSubcommands[arg] {
				subcommandIndex = i
				break
			}
			// Not a known subcommand, might be a value for a flag
		}
	}

	if subcommandIndex == -1 {
		fmt.Fprintf(os.Stderr, "Error: No subcommand specified\n\n")
		internal.PrintUsage()
		os.Exit(1)
	}

	// Parse global flags (before subcommand)
	globalFlags := args[:subcommandIndex]
	for i := 0; i < len(globalFlags); i++ {
		flag := globalFlags[i]
		if flag == "-config" || flag == "--config" {
			if i+1 < len(globalFlags) {
				configPath = globalFlags[i+1]
				i++ // skip next arg
			}
		} else if strings.HasPrefix(flag, "-") {
			fmt.Fprintf(os.Stderr, "Error: Unknown global flag: %s\n\n", flag)
			internal.PrintUsage()
			os.Exit(1)
		}
	}

	// Environment overrides (embedding paths etc.) may live in a .env
	// file next to the invocation; absence is not an error.
	_ = godotenv.Load()

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		// Seed an editable config template on first run.
		if path, pathErr := config.DefaultPath(); pathErr == nil {
			if created, tmplErr := config.WriteDefaultTemplate(path); tmplErr == nil && created {
				fmt.Fprintf(os.Stderr, "Created default config at %s\n", path)
			}
		}
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v\n", err)
	}

	subcommand := args[subcommandIndex]
	subcommandArgs := args[subcommandIndex+1:]

	// The TUI owns the terminal; log files would fight with it.
	if subcommand != "tui" {
		if err := internal.SetupLogging(subcommand); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize log file: %v\n", err)
		}
	}

	switch subcommand {
	case "summarize":
		handleSummarize(cfg, subcommandArgs)
	case "dataset":
		handleDataset(cfg, subcommandArgs)
	case "search":
		handleSearch(cfg, subcommandArgs)
	case "serve":
		handleServe(cfg, subcommandArgs)
	case "tui":
		handleTUI(cfg, subcommandArgs)
	case "stats":
		handleStats(cfg, subcommandArgs)
	default:
		fmt.Printf("Unknown subcommand: %s\n\n", subcommand)
		internal.PrintUsage()
		os.Exit(1)
	}
}
