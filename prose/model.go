// Package prose provides a local implementation of the newswire EntityModel
// using the prose NLP library. No network access or credentials are required.
package prose

import (
	"context"
	"strings"

	"github.com/fwojciec/newswire"
	"github.com/jdkato/prose/v2"
)

// Ensure Model implements newswire.EntityModel at compile time.
var _ newswire.EntityModel = (*Model)(nil)

// Model extracts named entities with prose's built-in NER. Labels follow
// the OntoNotes scheme (PERSON, GPE, ...), which the default label table
// maps onto the canonical categories.
type Model struct{}

// NewModel creates a new Model.
func NewModel() *Model {
	return &Model{}
}

// Analyze returns labeled entity spans found in the text. The context is
// accepted for interface symmetry; the work is synchronous and CPU-bound.
func (m *Model) Analyze(_ context.Context, text string) ([]newswire.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}

	ents := doc.Entities()
	entities := make([]newswire.Entity, 0, len(ents))
	for _, ent := range ents {
		entities = append(entities, newswire.Entity{Text: ent.Text, Label: ent.Label})
	}
	return entities, nil
}
