package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mlfeng/sumrank/internal/config"
	"github.com/mlfeng/sumrank/internal/server"
)

// handleServe implements the serve subcommand
func handleServe(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)

	var addr string
	fs.StringVar(&addr, "addr", cfg.Server.Addr, "Listen address")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `USAGE:
    sumrank serve [options]

DESCRIPTION:
    Run the HTTP API server. Endpoints:
        GET  /api/ping
        POST /api/summarize
        GET  /api/summarize-dataset
        POST /api/upload-dataset

OPTIONS:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}
	cfg.Server.Addr = addr

	engine := buildEngine(cfg)
	srv := server.New(cfg, engine)

	log.Printf("Listening on %s", cfg.Server.Addr)
	if err := srv.Listen(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
