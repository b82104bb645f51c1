package newswire

import "context"

// RuleSet maps the field roles of a news listing page to CSS location rules.
// A RuleSet is produced once per pipeline run by a Resolver and is immutable
// afterwards.
type RuleSet struct {
	// Container locates the repeated element wrapping each article.
	Container string `json:"container" yaml:"container"`

	// Title locates the element holding the article title text.
	Title string `json:"title" yaml:"title"`

	// Kicker locates the element holding the kicker/subtitle text.
	Kicker string `json:"kicker" yaml:"kicker"`

	// Link locates the anchor pointing at the full article.
	Link string `json:"link" yaml:"link"`

	// Image locates the article thumbnail element.
	Image string `json:"image" yaml:"image"`
}

// Validate returns EINVALID unless every role maps to a non-empty rule.
// An invalid RuleSet must never be handed to an Extractor.
func (r RuleSet) Validate() error {
	if r.Container == "" {
		return Errorf(EINVALID, "container rule required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "title rule required")
	}
	if r.Kicker == "" {
		return Errorf(EINVALID, "kicker rule required")
	}
	if r.Link == "" {
		return Errorf(EINVALID, "link rule required")
	}
	if r.Image == "" {
		return Errorf(EINVALID, "image rule required")
	}
	return nil
}

// Resolver determines the RuleSet for the current page layout.
// Resolve never fails: implementations fall back to a known-good default
// rule set when the layout cannot be analyzed.
type Resolver interface {
	Resolve(ctx context.Context, html string) RuleSet
}

// SelectorStrategy proposes a RuleSet for a representative article fragment.
// Implementations are treated as untrusted and unreliable: callers must
// validate the result and fall back on any error.
type SelectorStrategy interface {
	ProposeRules(ctx context.Context, fragment string) (RuleSet, error)
}

// Extractor applies a resolved RuleSet to raw markup, producing one Article
// per valid candidate container in document order. Malformed candidates are
// dropped, never fatal; an empty result is valid.
type Extractor interface {
	Extract(html string, rules RuleSet) ([]*Article, error)
}
