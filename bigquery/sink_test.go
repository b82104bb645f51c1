package bigquery_test

import (
	"testing"
	"time"

	"github.com/fwojciec/newswire"
	"github.com/fwojciec/newswire/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRow(t *testing.T) {
	t.Parallel()

	article := &newswire.Article{
		Title:     "Macau Revenue Climbs",
		Kicker:    newswire.NoKicker,
		Link:      "https://www.yogonet.com/international/news/124",
		Date:      newswire.NoDate,
		Locations: []string{"Macau"},
	}
	article.Metrics = newswire.MeasureTitle(article.Title)
	scrapedAt := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	row := bigquery.NewRow(article, "run-1", scrapedAt)

	assert.NotEmpty(t, row.ID)
	assert.Equal(t, "run-1", row.RunID)
	assert.Equal(t, "Macau Revenue Climbs", row.Title)
	assert.Equal(t, newswire.NoKicker, row.Kicker)
	assert.Equal(t, newswire.NoDate, row.Published)
	assert.Equal(t, []string{"Macau"}, row.Locations)
	assert.Equal(t, 3, row.TitleWordCount)
	assert.Equal(t, []string{"Macau", "Revenue", "Climbs"}, row.CapitalizedWords)
	assert.NotEmpty(t, row.ContentHash)
	assert.Equal(t, scrapedAt, row.ScrapedAt)

	// Nil slices become empty so warehouse columns are always present.
	require.NotNil(t, row.Persons)
	require.NotNil(t, row.Organizations)
	assert.Empty(t, row.Persons)
}

func TestNewRow_IdenticalArticlesShareContentHash(t *testing.T) {
	t.Parallel()

	article := &newswire.Article{Title: "Same", Link: "https://example.com/a"}

	a := bigquery.NewRow(article, "run-1", time.Now())
	b := bigquery.NewRow(article, "run-2", time.Now())

	assert.Equal(t, a.ContentHash, b.ContentHash)
	assert.NotEqual(t, a.ID, b.ID)
}
