package mock

import (
	"context"

	"github.com/fwojciec/newswire"
)

var _ newswire.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of newswire.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, html string) newswire.RuleSet
}

func (r *Resolver) Resolve(ctx context.Context, html string) newswire.RuleSet {
	return r.ResolveFn(ctx, html)
}

var _ newswire.SelectorStrategy = (*SelectorStrategy)(nil)

// SelectorStrategy is a mock implementation of newswire.SelectorStrategy.
type SelectorStrategy struct {
	ProposeRulesFn func(ctx context.Context, fragment string) (newswire.RuleSet, error)
}

func (s *SelectorStrategy) ProposeRules(ctx context.Context, fragment string) (newswire.RuleSet, error) {
	return s.ProposeRulesFn(ctx, fragment)
}
