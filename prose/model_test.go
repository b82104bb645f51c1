package prose_test

import (
	"context"
	"testing"

	"github.com/fwojciec/newswire/prose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Analyze_EmptyText(t *testing.T) {
	t.Parallel()

	m := prose.NewModel()

	entities, err := m.Analyze(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestModel_Analyze_WhitespaceText(t *testing.T) {
	t.Parallel()

	m := prose.NewModel()

	entities, err := m.Analyze(context.Background(), "  \t\n ")

	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestModel_Analyze_NeverReturnsUnlabeledSpans(t *testing.T) {
	t.Parallel()

	m := prose.NewModel()

	entities, err := m.Analyze(context.Background(), "Google Announces New Features at Conference in San Francisco")

	require.NoError(t, err)
	for _, ent := range entities {
		assert.NotEmpty(t, ent.Text)
		assert.NotEmpty(t, ent.Label)
	}
}
