package newswire

import (
	"context"
	"time"
)

// Sentinel values recorded when an optional field is absent from a candidate.
const (
	NoKicker = "No kicker"
	NoDate   = "No date"
)

// Article represents one fully processed news listing entry. Title and Link
// are mandatory; a candidate missing either is never emitted as an Article.
// Link and Image are always in absolute form.
type Article struct {
	Title  string `json:"title"`
	Kicker string `json:"kicker"`
	Link   string `json:"link"`
	Image  string `json:"image"`
	Date   string `json:"date"`

	// Named entities extracted from the title and kicker, in first-seen
	// order with duplicates removed. Always present, possibly empty.
	Persons       []string `json:"persons"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`

	Metrics Metrics `json:"metrics"`
}

// Validate returns an error if the article is missing a mandatory field.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Link == "" {
		return Errorf(EINVALID, "article link required")
	}
	return nil
}

// Batch is the complete ordered output of one pipeline run. It is owned by
// the orchestrator until handed to the Sink and never mutated afterwards.
type Batch struct {
	RunID     string     `json:"runId"`
	StartedAt time.Time  `json:"startedAt"`
	Articles  []*Article `json:"articles"`
}

// Sink receives completed batches. Append is append-only with at-least-once
// delivery: a caller may retry an entire run, and implementations must
// tolerate duplicate rows.
type Sink interface {
	Append(ctx context.Context, batch *Batch) error
}

// Fetcher retrieves the raw markup of a listing page.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch navigates to the URL and returns the page HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
