package mock

import "github.com/fwojciec/newswire"

var _ newswire.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newswire.Extractor.
type Extractor struct {
	ExtractFn func(html string, rules newswire.RuleSet) ([]*newswire.Article, error)
}

func (e *Extractor) Extract(html string, rules newswire.RuleSet) ([]*newswire.Article, error) {
	return e.ExtractFn(html, rules)
}
