package sqlite

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newswire"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newswire.Sink = (*Sink)(nil)

// Sink appends completed batches to the articles table. Delivery is
// at-least-once: a retried run inserts duplicate rows, distinguished by
// run_id and deduplicable downstream via content_hash.
type Sink struct {
	db *DB
}

// NewSink creates a new Sink.
func NewSink(db *DB) *Sink {
	return &Sink{db: db}
}

// Append inserts every article of the batch in a single statement, so a
// failed append leaves no partial batch behind.
func (s *Sink) Append(ctx context.Context, batch *newswire.Batch) error {
	if len(batch.Articles) == 0 {
		return nil
	}

	scrapedAt := time.Now().UTC().Format(time.RFC3339)

	builder := sq.Insert("articles").Columns(
		"id", "run_id", "title", "kicker", "link", "image", "published",
		"persons", "organizations", "locations",
		"title_word_count", "title_char_count", "capitalized_words",
		"title_complexity_score", "content_hash", "scraped_at",
	)
	for _, article := range batch.Articles {
		if err := article.Validate(); err != nil {
			return err
		}
		builder = builder.Values(
			uuid.New().String(),
			batch.RunID,
			article.Title,
			article.Kicker,
			article.Link,
			article.Image,
			article.Date,
			jsonList(article.Persons),
			jsonList(article.Organizations),
			jsonList(article.Locations),
			article.Metrics.TitleWordCount,
			article.Metrics.TitleCharCount,
			jsonList(article.Metrics.CapitalizedWords),
			article.Metrics.TitleComplexityScore,
			hashArticle(article),
			scrapedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return newswire.Errorf(newswire.EINTERNAL, "build insert: %v", err)
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// CountArticles returns the number of stored rows, optionally filtered by
// run ID.
func (s *Sink) CountArticles(ctx context.Context, runID string) (int, error) {
	query := sq.Select("COUNT(*)").From("articles")
	if runID != "" {
		query = query.Where(sq.Eq{"run_id": runID})
	}

	stmt, args, err := query.ToSql()
	if err != nil {
		return 0, newswire.Errorf(newswire.EINTERNAL, "build count: %v", err)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, stmt, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// jsonList encodes a string slice as a JSON array, treating nil as empty.
func jsonList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
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
