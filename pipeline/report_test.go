package pipeline_test

import (
	"testing"

	"github.com/fwojciec/newswire"
	"github.com/fwojciec/newswire/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func measuredArticle(title string) *newswire.Article {
	a := &newswire.Article{Title: title, Link: "https://example.com/a"}
	a.Metrics = newswire.MeasureTitle(title)
	return a
}

func TestBuildReport_EmptyBatch(t *testing.T) {
	t.Parallel()

	report := pipeline.BuildReport(&newswire.Batch{})

	assert.Zero(t, report.TotalArticles)
	assert.Zero(t, report.AvgTitleWordCount)
	assert.NotNil(t, report.TopCapitalizedWords)
	assert.Empty(t, report.TopCapitalizedWords)
}

func TestBuildReport_Averages(t *testing.T) {
	t.Parallel()

	batch := &newswire.Batch{
		Articles: []*newswire.Article{
			measuredArticle("One two three"), // 3 words, 13 chars
			measuredArticle("Four five"),     // 2 words, 9 chars
		},
	}

	report := pipeline.BuildReport(batch)

	assert.Equal(t, 2, report.TotalArticles)
	assert.InDelta(t, 2.5, report.AvgTitleWordCount, 0.001)
	assert.InDelta(t, 11.0, report.AvgTitleCharCount, 0.001)
}

func TestBuildReport_TopCapitalizedWords(t *testing.T) {
	t.Parallel()

	batch := &newswire.Batch{
		Articles: []*newswire.Article{
			measuredArticle("Macau Casino Revenue"),
			measuredArticle("Macau Regulators Meet"),
			measuredArticle("Casino Expansion In Macau"),
		},
	}

	report := pipeline.BuildReport(batch)

	require.NotEmpty(t, report.TopCapitalizedWords)
	assert.Equal(t, pipeline.WordCount{Word: "Macau", Count: 3}, report.TopCapitalizedWords[0])
	assert.Equal(t, pipeline.WordCount{Word: "Casino", Count: 2}, report.TopCapitalizedWords[1])

	// Equal counts rank by first appearance.
	rest := report.TopCapitalizedWords[2:]
	require.Len(t, rest, 5)
	assert.Equal(t, "Revenue", rest[0].Word)
	assert.Equal(t, "Regulators", rest[1].Word)
	assert.Equal(t, "Meet", rest[2].Word)
	assert.Equal(t, "Expansion", rest[3].Word)
	assert.Equal(t, "In", rest[4].Word)
}

func TestBuildReport_TopCapitalizedWordsCapped(t *testing.T) {
	t.Parallel()

	batch := &newswire.Batch{
		Articles: []*newswire.Article{
			measuredArticle("Alpha Bravo Charlie Delta Echo Foxtrot"),
			measuredArticle("Golf Hotel India Juliett Kilo Lima"),
		},
	}

	report := pipeline.BuildReport(batch)

	assert.Len(t, report.TopCapitalizedWords, pipeline.TopWords)
}

func TestBuildReport_ComplexityBounds(t *testing.T) {
	t.Parallel()

	batch := &newswire.Batch{
		Articles: []*newswire.Article{
			measuredArticle("Hello World"),   // 2*0.5 + 2*1.5 = 4
			measuredArticle("plain words"),   // 2*0.5 = 1
			measuredArticle("Big News: Now"), // 3*0.5 + 3*1.5 + 1*2 = 8
		},
	}

	report := pipeline.BuildReport(batch)

	assert.InDelta(t, 8.0, report.MaxTitleComplexity, 0.001)
	assert.InDelta(t, 1.0, report.MinTitleComplexity, 0.001)
	assert.InDelta(t, (4.0+1.0+8.0)/3.0, report.AvgTitleComplexity, 0.001)
}
