package goquery

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newswire"
)

// DateSelector is the fixed auxiliary rule for the publication date field.
// Dates are not part of the resolved RuleSet because the selector strategy
// is only asked about the five required roles.
const DateSelector = ".fecha_actual"

// Ensure Extractor implements newswire.Extractor at compile time.
var _ newswire.Extractor = (*Extractor)(nil)

// Extractor extracts candidate articles from listing markup. Candidates
// missing a mandatory field are dropped individually; third-party markup is
// not trusted to be uniform across listed items.
type Extractor struct {
	origin string
	logger *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithExtractorLogger sets the logger used for per-candidate diagnostics.
func WithExtractorLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor that resolves root-relative URLs against
// the given site origin (scheme and host, no trailing slash).
func NewExtractor(origin string, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		origin: strings.TrimSuffix(origin, "/"),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns one Article per valid candidate container in document
// order. An empty result is valid, not an error.
func (e *Extractor) Extract(html string, rules newswire.RuleSet) ([]*newswire.Article, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newswire.Errorf(newswire.EINVALID, "failed to parse markup: %v", err)
	}

	var articles []*newswire.Article
	doc.Find(rules.Container).Each(func(i int, sel *goquery.Selection) {
		article, err := e.extractCandidate(sel, rules)
		if err != nil {
			e.logger.Warn("candidate dropped", "index", i, "err", err)
			return
		}
		articles = append(articles, article)
	})
	return articles, nil
}

// extractCandidate resolves each field independently so one malformed field
// never aborts the batch, only the candidate that owns it.
func (e *Extractor) extractCandidate(sel *goquery.Selection, rules newswire.RuleSet) (*newswire.Article, error) {
	title := strings.TrimSpace(sel.Find(rules.Title).First().Text())
	if title == "" {
		return nil, newswire.Errorf(newswire.EINVALID, "title not found")
	}

	link, _ := sel.Find(rules.Link).First().Attr("href")
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, newswire.Errorf(newswire.EINVALID, "link not found")
	}

	kicker := strings.TrimSpace(sel.Find(rules.Kicker).First().Text())
	if kicker == "" {
		kicker = newswire.NoKicker
	}

	image, _ := sel.Find(rules.Image).First().Attr("src")
	image = strings.TrimSpace(image)

	date := strings.TrimSpace(sel.Find(DateSelector).First().Text())
	if date == "" {
		date = newswire.NoDate
	}

	return &newswire.Article{
		Title:  title,
		Kicker: kicker,
		Link:   e.Normalize(link),
		Image:  e.Normalize(image),
		Date:   date,
	}, nil
}

// Normalize rewrites root-relative URLs against the configured site origin.
// Absolute URLs and empty strings pass through unchanged, which makes the
// operation idempotent.
func (e *Extractor) Normalize(raw string) string {
	if strings.HasPrefix(raw, "/") {
		return e.origin + raw
	}
	return raw
}
