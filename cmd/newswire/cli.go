package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/newswire/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *config.Config
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape the configured listing page once"`
	Count  CountCmd  `cmd:"" help:"Count articles persisted in the SQLite sink"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string `help:"Listing page URL (overrides config)"`
	Fetcher     string `default:"http" enum:"http,rod" help:"Page fetcher: http or rod"`
	Entities    string `default:"prose" enum:"prose,gemini,none" help:"Entity model: prose, gemini or none"`
	Sink        string `default:"sqlite" enum:"sqlite,bigquery,stdout" help:"Destination: sqlite, bigquery or stdout"`
	DryRun      bool   `help:"Extract and report without persisting"`
	Concurrency int    `short:"c" help:"Concurrent enrichment limit (overrides config)"`
}

// CountCmd is the "count" subcommand.
type CountCmd struct{}
