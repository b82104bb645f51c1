// Package bigquery provides a warehouse implementation of the newswire Sink
// using Google BigQuery streaming inserts.
package bigquery

import (
	"context"
	"encoding/hex"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newswire"
	"github.com/google/uuid"
)

// Row is the BigQuery representation of one article.
type Row struct {
	ID                   string    `bigquery:"id"`
	RunID                string    `bigquery:"run_id"`
	Title                string    `bigquery:"title"`
	Kicker               string    `bigquery:"kicker"`
	Link                 string    `bigquery:"link"`
	Image                string    `bigquery:"image"`
	Published            string    `bigquery:"published"`
	Persons              []string  `bigquery:"persons"`
	Organizations        []string  `bigquery:"organizations"`
	Locations            []string  `bigquery:"locations"`
	TitleWordCount       int       `bigquery:"title_word_count"`
	TitleCharCount       int       `bigquery:"title_char_count"`
	CapitalizedWords     []string  `bigquery:"capitalized_words"`
	TitleComplexityScore float64   `bigquery:"title_complexity_score"`
	ContentHash          string    `bigquery:"content_hash"`
	ScrapedAt            time.Time `bigquery:"scraped_at"`
}

// NewRow converts an article into its warehouse representation.
func NewRow(article *newswire.Article, runID string, scrapedAt time.Time) *Row {
	return &Row{
		ID:                   uuid.New().String(),
		RunID:                runID,
		Title:                article.Title,
		Kicker:               article.Kicker,
		Link:                 article.Link,
		Image:                article.Image,
		Published:            article.Date,
		Persons:              emptyIfNil(article.Persons),
		Organizations:        emptyIfNil(article.Organizations),
		Locations:            emptyIfNil(article.Locations),
		TitleWordCount:       article.Metrics.TitleWordCount,
		TitleCharCount:       article.Metrics.TitleCharCount,
		CapitalizedWords:     emptyIfNil(article.Metrics.CapitalizedWords),
		TitleComplexityScore: article.Metrics.TitleComplexityScore,
		ContentHash:          hashArticle(article),
		ScrapedAt:            scrapedAt,
	}
}

// Compile-time interface verification.
var _ newswire.Sink = (*Sink)(nil)

// Sink streams completed batches into a BigQuery table. Delivery is
// at-least-once; retried runs duplicate rows distinguished by run_id.
type Sink struct {
	inserter *bigquery.Inserter
}

// NewSink creates a Sink writing to the given dataset and table.
func NewSink(client *bigquery.Client, dataset, table string) *Sink {
	return &Sink{inserter: client.Dataset(dataset).Table(table).Inserter()}
}

// Append streams every article of the batch in one insert request.
func (s *Sink) Append(ctx context.Context, batch *newswire.Batch) error {
	if len(batch.Articles) == 0 {
		return nil
	}

	scrapedAt := time.Now().UTC()
	rows := make([]*Row, 0, len(batch.Articles))
	for _, article := range batch.Articles {
		if err := article.Validate(); err != nil {
			return err
		}
		rows = append(rows, NewRow(article, batch.RunID, scrapedAt))
	}

	return s.inserter.Put(ctx, rows)
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// hashArticle fingerprints an article by title and link so downstream
// consumers can deduplicate retried runs.
func hashArticle(article *newswire.Article) string {
	h := xxhash.New()
	_, _ = h.WriteString(article.Title)
	_, _ = h.WriteString("\n")
	_, _ = h.WriteString(article.Link)
	return hex.EncodeToString(h.Sum(nil))
}
