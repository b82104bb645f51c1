package pipeline

import (
	"math"
	"sort"

	"github.com/fwojciec/newswire"
)

// TopWords is the number of capitalized words included in a report.
const TopWords = 10

// WordCount pairs a capitalized word with its frequency across a batch.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Report summarizes one pipeline run. It is a projection over the batch,
// not a mutation of it.
type Report struct {
	TotalArticles       int         `json:"totalArticles"`
	AvgTitleWordCount   float64     `json:"avgTitleWordCount"`
	AvgTitleCharCount   float64     `json:"avgTitleCharCount"`
	TopCapitalizedWords []WordCount `json:"topCapitalizedWords"`
	MaxTitleComplexity  float64     `json:"maxTitleComplexity"`
	MinTitleComplexity  float64     `json:"minTitleComplexity"`
	AvgTitleComplexity  float64     `json:"avgTitleComplexity"`
}

// BuildReport computes the summary statistics for a completed batch.
func BuildReport(batch *newswire.Batch) *Report {
	r := &Report{
		TotalArticles:       len(batch.Articles),
		TopCapitalizedWords: []WordCount{},
	}
	if len(batch.Articles) == 0 {
		return r
	}

	var wordSum, charSum int
	var complexitySum float64
	minComplexity := math.Inf(1)
	maxComplexity := math.Inf(-1)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, article := range batch.Articles {
		wordSum += article.Metrics.TitleWordCount
		charSum += article.Metrics.TitleCharCount

		score := article.Metrics.TitleComplexityScore
		complexitySum += score
		minComplexity = math.Min(minComplexity, score)
		maxComplexity = math.Max(maxComplexity, score)

		for _, word := range article.Metrics.CapitalizedWords {
			if _, ok := counts[word]; !ok {
				firstSeen[word] = order
				order++
			}
			counts[word]++
		}
	}

	total := float64(len(batch.Articles))
	r.AvgTitleWordCount = float64(wordSum) / total
	r.AvgTitleCharCount = float64(charSum) / total
	r.AvgTitleComplexity = complexitySum / total
	r.MinTitleComplexity = minComplexity
	r.MaxTitleComplexity = maxComplexity

	ranked := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}
	// Count descending, first appearance breaking ties, so the ranking is
	// deterministic for equal frequencies.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})
	if len(ranked) > TopWords {
		ranked = ranked[:TopWords]
	}
	r.TopCapitalizedWords = ranked

	return r
}
