package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newswire"
)

// Ensure LoggingSink implements newswire.Sink.
var _ newswire.Sink = (*LoggingSink)(nil)

// LoggingSink wraps a Sink with append timing and size logging.
type LoggingSink struct {
	next   newswire.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next newswire.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Append logs the batch being persisted and delegates to the wrapped sink.
func (s *LoggingSink) Append(ctx context.Context, batch *newswire.Batch) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("sink append",
			"run_id", batch.RunID,
			"articles", len(batch.Articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Append(ctx, batch)
}
