// Package goquery provides CSS-selector-based implementations of the
// newswire Resolver and Extractor using PuerkitoBio/goquery.
package goquery

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newswire"
)

// DefaultStrategyTimeout bounds the remote selector strategy call so a
// stalled remote dependency cannot delay the fallback path.
const DefaultStrategyTimeout = 15 * time.Second

// Ensure Resolver implements newswire.Resolver at compile time.
var _ newswire.Resolver = (*Resolver)(nil)

// Resolver determines the RuleSet for a listing page. When a representative
// candidate container is present it consults a SelectorStrategy for
// layout-adapted rules; any strategy failure falls back to the configured
// default RuleSet. Resolve never fails.
type Resolver struct {
	defaults newswire.RuleSet
	strategy newswire.SelectorStrategy
	timeout  time.Duration
	logger   *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStrategy sets the remote selector strategy. Without one the resolver
// always returns the default RuleSet.
func WithStrategy(s newswire.SelectorStrategy) ResolverOption {
	return func(r *Resolver) {
		r.strategy = s
	}
}

// WithStrategyTimeout overrides DefaultStrategyTimeout.
func WithStrategyTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		r.timeout = d
	}
}

// WithResolverLogger sets the logger used for fallback diagnostics.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver that falls back to the given defaults.
// The defaults must be a valid RuleSet.
func NewResolver(defaults newswire.RuleSet, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		defaults: defaults,
		timeout:  DefaultStrategyTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the RuleSet to use for the given page markup.
func (r *Resolver) Resolve(ctx context.Context, html string) newswire.RuleSet {
	if r.strategy == nil {
		r.logger.Warn("no selector strategy configured, using default rules")
		return r.defaults
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		r.logger.Warn("cannot parse listing page, using default rules", "err", err)
		return r.defaults
	}

	sample := doc.Find(r.defaults.Container).First()
	if sample.Length() == 0 {
		// No representative candidate means there is nothing useful to
		// show the strategy. Skip the remote call entirely.
		r.logger.Warn("no representative container found, using default rules",
			"container", r.defaults.Container)
		return r.defaults
	}

	fragment, err := goquery.OuterHtml(sample)
	if err != nil {
		r.logger.Warn("cannot render representative container, using default rules", "err", err)
		return r.defaults
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rules, err := r.strategy.ProposeRules(ctx, fragment)
	if err != nil {
		r.logger.Warn("selector strategy failed, using default rules", "err", err)
		return r.defaults
	}
	if err := rules.Validate(); err != nil {
		r.logger.Warn("selector strategy returned invalid rules, using default rules", "err", err)
		return r.defaults
	}

	r.logger.Info("using strategy-derived rules",
		"container", rules.Container,
		"title", rules.Title,
		"kicker", rules.Kicker,
		"link", rules.Link,
		"image", rules.Image,
	)
	return rules
}
