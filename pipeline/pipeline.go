// Package pipeline orchestrates a single scrape run: fetch, resolve,
// extract, enrich, annotate, sink. All stages other than the run lifecycle
// are stateless transformations; the pipeline holds no state across runs.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newswire"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the per-record enrichment worker pool.
const DefaultConcurrency = 4

// Pipeline wires the stages of one scrape run.
type Pipeline struct {
	Fetcher   newswire.Fetcher
	Resolver  newswire.Resolver
	Extractor newswire.Extractor

	// Entities is optional; when nil every article carries empty bundles.
	Entities newswire.EntityModel

	// Labels maps model-native labels to canonical classes.
	// Defaults to newswire.DefaultLabelTable when nil.
	Labels newswire.LabelTable

	// Sink is optional; when nil the batch is assembled and reported but
	// not persisted.
	Sink newswire.Sink

	// URL is the listing page scraped each run.
	URL string

	// Concurrency bounds per-record workers. Defaults to DefaultConcurrency.
	Concurrency int

	Logger *slog.Logger
}

// Run executes one scrape of the configured listing page. A fetch or sink
// failure is the run's failure; everything in between degrades at field,
// candidate or record granularity. The sink sees either a complete batch
// or nothing.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	logger := p.logger()
	startedAt := time.Now().UTC()

	html, err := p.Fetcher.Fetch(ctx, p.URL)
	if err != nil {
		return nil, newswire.Errorf(newswire.EUNAVAILABLE, "fetch %s: %v", p.URL, err)
	}

	rules := p.Resolver.Resolve(ctx, html)

	articles, err := p.Extractor.Extract(html, rules)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		logger.Warn("no articles extracted, skipping enrichment and sink", "url", p.URL)
		return &Report{}, nil
	}
	logger.Info("extracted articles", "url", p.URL, "count", len(articles))

	if err := p.process(ctx, articles); err != nil {
		return nil, err
	}

	batch := &newswire.Batch{
		RunID:     uuid.New().String(),
		StartedAt: startedAt,
		Articles:  articles,
	}

	if p.Sink != nil {
		if err := p.Sink.Append(ctx, batch); err != nil {
			return nil, err
		}
	}

	return BuildReport(batch), nil
}

// process enriches and annotates every article using a bounded worker pool.
// Workers mutate articles in place, so document order is untouched.
func (p *Pipeline) process(ctx context.Context, articles []*newswire.Article) error {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, article := range articles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p.enrich(ctx, article)
			article.Metrics = newswire.MeasureTitle(article.Title)
			return nil
		})
	}
	return g.Wait()
}

// enrich attaches the entity bundle for one article. Model failures degrade
// to empty bundles; they never fail the record or the run.
func (p *Pipeline) enrich(ctx context.Context, article *newswire.Article) {
	article.Persons = []string{}
	article.Organizations = []string{}
	article.Locations = []string{}

	if p.Entities == nil {
		return
	}

	text := article.Title
	if article.Kicker != "" {
		text = article.Title + " " + article.Kicker
	}

	entities, err := p.Entities.Analyze(ctx, text)
	if err != nil {
		p.logger().Warn("entity enrichment failed", "link", article.Link, "err", err)
		return
	}

	labels := p.Labels
	if labels == nil {
		labels = newswire.DefaultLabelTable()
	}

	bundle := newswire.BuildBundle(entities, labels)
	article.Persons = bundle.Persons
	article.Organizations = bundle.Organizations
	article.Locations = bundle.Locations
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
