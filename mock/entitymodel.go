package mock

import (
	"context"

	"github.com/fwojciec/newswire"
)

var _ newswire.EntityModel = (*EntityModel)(nil)

// EntityModel is a mock implementation of newswire.EntityModel.
type EntityModel struct {
	AnalyzeFn func(ctx context.Context, text string) ([]newswire.Entity, error)
}

func (m *EntityModel) Analyze(ctx context.Context, text string) ([]newswire.Entity, error) {
	return m.AnalyzeFn(ctx, text)
}
