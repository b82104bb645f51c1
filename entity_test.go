package newswire_test

import (
	"testing"

	"github.com/fwojciec/newswire"
	"github.com/stretchr/testify/assert"
)

func TestBuildBundle(t *testing.T) {
	t.Parallel()

	entities := []newswire.Entity{
		{Text: "Elon Musk", Label: "PERSON"},
		{Text: "SpaceX", Label: "ORG"},
		{Text: "Mars", Label: "LOC"},
		{Text: "Elon Musk", Label: "PERSON"}, // duplicate
		{Text: "Las Vegas", Label: "GPE"},
		{Text: "Thursday", Label: "DATE"}, // unmapped label
	}

	b := newswire.BuildBundle(entities, newswire.DefaultLabelTable())

	assert.Equal(t, []string{"Elon Musk"}, b.Persons)
	assert.Equal(t, []string{"SpaceX"}, b.Organizations)
	assert.Equal(t, []string{"Mars", "Las Vegas"}, b.Locations)
}

func TestBuildBundle_NoEntities(t *testing.T) {
	t.Parallel()

	b := newswire.BuildBundle(nil, newswire.DefaultLabelTable())

	assert.NotNil(t, b.Persons)
	assert.NotNil(t, b.Organizations)
	assert.NotNil(t, b.Locations)
	assert.Empty(t, b.Persons)
	assert.Empty(t, b.Organizations)
	assert.Empty(t, b.Locations)
}

func TestBuildBundle_SameTextDifferentClass(t *testing.T) {
	t.Parallel()

	// Deduplication is per class, not global.
	entities := []newswire.Entity{
		{Text: "Monaco", Label: "GPE"},
		{Text: "Monaco", Label: "ORG"},
	}

	b := newswire.BuildBundle(entities, newswire.DefaultLabelTable())

	assert.Equal(t, []string{"Monaco"}, b.Organizations)
	assert.Equal(t, []string{"Monaco"}, b.Locations)
}
