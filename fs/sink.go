// Package fs provides file-based batch output for local inspection and
// dry runs.
package fs

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/fwojciec/newswire"
)

// Compile-time interface verification.
var _ newswire.Sink = (*Sink)(nil)

// Sink writes batches as JSON lines, one article per line. Each line carries
// the run ID so interleaved runs in one file stay distinguishable.
type Sink struct {
	w io.Writer
}

// NewSink creates a Sink writing to w (a file, os.Stdout, ...).
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// line is the JSON-lines representation of one article.
type line struct {
	RunID     string    `json:"runId"`
	ScrapedAt time.Time `json:"scrapedAt"`
	*newswire.Article
}

// Append writes every article of the batch as one JSON line.
func (s *Sink) Append(_ context.Context, batch *newswire.Batch) error {
	enc := json.NewEncoder(s.w)
	scrapedAt := time.Now().UTC()
	for _, article := range batch.Articles {
		if err := article.Validate(); err != nil {
			return err
		}
		if err := enc.Encode(line{
			RunID:     batch.RunID,
			ScrapedAt: scrapedAt,
			Article:   article,
		}); err != nil {
			return err
		}
	}
	return nil
}
