package mock

import (
	"context"

	"github.com/fwojciec/newswire"
)

var _ newswire.Sink = (*Sink)(nil)

// Sink is a mock implementation of newswire.Sink.
type Sink struct {
	AppendFn func(ctx context.Context, batch *newswire.Batch) error
}

func (s *Sink) Append(ctx context.Context, batch *newswire.Batch) error {
	return s.AppendFn(ctx, batch)
}
