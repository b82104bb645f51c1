package main

import (
	"fmt"

	bq "cloud.google.com/go/bigquery"
	"github.com/fwojciec/newswire"
	"github.com/fwojciec/newswire/bigquery"
	"github.com/fwojciec/newswire/fs"
	"github.com/fwojciec/newswire/gemini"
	"github.com/fwojciec/newswire/goquery"
	nwhttp "github.com/fwojciec/newswire/http"
	"github.com/fwojciec/newswire/pipeline"
	"github.com/fwojciec/newswire/prose"
	"github.com/fwojciec/newswire/rod"
	"github.com/fwojciec/newswire/slog"
	"github.com/fwojciec/newswire/sqlite"
	"google.golang.org/genai"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	cfg := deps.Config

	url := cfg.Source.URL
	if c.URL != "" {
		url = c.URL
	}

	fetcher, err := c.buildFetcher()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newswire.ErrorMessage(err))
		return err
	}
	defer fetcher.Close()

	var client *genai.Client
	if cfg.Strategy.APIKey != "" {
		client, err = genai.NewClient(deps.Ctx, &genai.ClientConfig{
			APIKey:  cfg.Strategy.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newswire.ErrorMessage(err))
			return err
		}
	} else {
		fmt.Fprintln(deps.Stderr, "Hint: set GEMINI_API_KEY to enable adaptive selector resolution")
	}

	resolverOpts := []goquery.ResolverOption{
		goquery.WithStrategyTimeout(cfg.Strategy.Timeout.Std()),
		goquery.WithResolverLogger(deps.Logger),
	}
	if client != nil {
		resolverOpts = append(resolverOpts, goquery.WithStrategy(gemini.NewStrategy(client)))
	}
	resolver := goquery.NewResolver(cfg.Rules, resolverOpts...)
	extractor := goquery.NewExtractor(cfg.Source.Origin, goquery.WithExtractorLogger(deps.Logger))

	entities, err := c.buildEntityModel(client)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newswire.ErrorMessage(err))
		return err
	}

	sink, cleanup, err := c.buildSink(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newswire.ErrorMessage(err))
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	concurrency := cfg.Pipeline.Concurrency
	if c.Concurrency > 0 {
		concurrency = c.Concurrency
	}

	p := &pipeline.Pipeline{
		Fetcher:     slog.NewLoggingFetcher(fetcher, deps.Logger),
		Resolver:    resolver,
		Extractor:   extractor,
		Entities:    entities,
		Labels:      cfg.Entities.LabelTable(),
		Sink:        sink,
		URL:         url,
		Concurrency: concurrency,
		Logger:      deps.Logger,
	}

	report, err := p.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newswire.ErrorMessage(err))
		return err
	}

	printReport(deps, report)
	return nil
}

func (c *ScrapeCmd) buildFetcher() (newswire.Fetcher, error) {
	if c.Fetcher == "rod" {
		return rod.NewFetcher()
	}
	return nwhttp.NewFetcher(), nil
}

func (c *ScrapeCmd) buildEntityModel(client *genai.Client) (newswire.EntityModel, error) {
	switch c.Entities {
	case "gemini":
		if client == nil {
			return nil, newswire.Errorf(newswire.EINVALID, "entity model 'gemini' requires GEMINI_API_KEY")
		}
		return gemini.NewEntityModel(client), nil
	case "none":
		return nil, nil
	default:
		return prose.NewModel(), nil
	}
}

func (c *ScrapeCmd) buildSink(deps *Dependencies) (newswire.Sink, func(), error) {
	if c.DryRun {
		return nil, nil, nil
	}

	switch c.Sink {
	case "bigquery":
		project := deps.Config.Sink.BigQuery.Project
		if project == "" {
			return nil, nil, newswire.Errorf(newswire.EINVALID, "sink 'bigquery' requires BIGQUERY_PROJECT")
		}
		client, err := bq.NewClient(deps.Ctx, project)
		if err != nil {
			return nil, nil, err
		}
		sink := bigquery.NewSink(client, deps.Config.Sink.BigQuery.Dataset, deps.Config.Sink.BigQuery.Table)
		return slog.NewLoggingSink(sink, deps.Logger), func() { _ = client.Close() }, nil
	case "stdout":
		return fs.NewSink(deps.Stdout), nil, nil
	default:
		db := sqlite.NewDB(deps.Config.Sink.SQLitePath)
		if err := db.Open(); err != nil {
			return nil, nil, err
		}
		sink := sqlite.NewSink(db)
		return slog.NewLoggingSink(sink, deps.Logger), func() { _ = db.Close() }, nil
	}
}

func printReport(deps *Dependencies, report *pipeline.Report) {
	fmt.Fprintf(deps.Stdout, "Articles: %d\n", report.TotalArticles)
	if report.TotalArticles == 0 {
		return
	}
	fmt.Fprintf(deps.Stdout, "Avg title words: %.2f\n", report.AvgTitleWordCount)
	fmt.Fprintf(deps.Stdout, "Avg title chars: %.2f\n", report.AvgTitleCharCount)
	fmt.Fprintf(deps.Stdout, "Complexity: min %.2f / avg %.2f / max %.2f\n",
		report.MinTitleComplexity, report.AvgTitleComplexity, report.MaxTitleComplexity)
	if len(report.TopCapitalizedWords) > 0 {
		fmt.Fprintln(deps.Stdout, "Top capitalized words:")
		for _, wc := range report.TopCapitalizedWords {
			fmt.Fprintf(deps.Stdout, "  %-20s %d\n", wc.Word, wc.Count)
		}
	}
}
