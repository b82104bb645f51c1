package newswire

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Metrics are deterministic lexical measurements over an article title.
type Metrics struct {
	TitleWordCount       int      `json:"titleWordCount"`
	TitleCharCount       int      `json:"titleCharCount"`
	CapitalizedWords     []string `json:"capitalizedWords"`
	TitleComplexityScore float64  `json:"titleComplexityScore"`
}

var (
	capitalizedRE = regexp.MustCompile(`^[A-Z][a-z]*$`)
	specialRE     = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// isWordRune reports whether r is a word character under Unicode rules:
// a letter, a number or the underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// TitleWordCount returns the number of whitespace-delimited tokens.
func TitleWordCount(title string) int {
	return len(strings.Fields(title))
}

// TitleCharCount returns the length of the title in characters, including
// spaces and punctuation.
func TitleCharCount(title string) int {
	return utf8.RuneCountInString(title)
}

// CapitalizedWords returns tokens matching one uppercase letter followed by
// zero or more lowercase letters, bounded by word boundaries, in order of
// appearance. Duplicates are retained. Word boundaries follow Unicode
// word-character rules, so a run like "AI", "Q2" or "Casinò" never matches:
// there is no boundary before its trailing word characters and a shorter
// match cannot end inside the run.
func CapitalizedWords(title string) []string {
	var words []string
	for _, run := range strings.FieldsFunc(title, func(r rune) bool { return !isWordRune(r) }) {
		if capitalizedRE.MatchString(run) {
			words = append(words, run)
		}
	}
	return words
}

// TitleComplexityScore scores a title as 0.5 per word, 1.5 per capitalized
// word and 2 per special character, rounded to two decimal places. A special
// character is anything that is neither a Unicode letter, number, underscore
// nor whitespace; accented letters are ordinary word characters.
// Downstream consumers depend on the exact coefficients; do not tune them.
func TitleComplexityScore(title string) float64 {
	words := float64(TitleWordCount(title))
	capitalized := float64(len(CapitalizedWords(title)))
	special := float64(len(specialRE.FindAllString(title, -1)))
	return math.Round((words*0.5+capitalized*1.5+special*2)*100) / 100
}

// MeasureTitle computes all metrics for a title. It is total: any input,
// including the empty string, yields a well-formed Metrics value.
func MeasureTitle(title string) Metrics {
	capitalized := CapitalizedWords(title)
	if capitalized == nil {
		capitalized = []string{}
	}
	return Metrics{
		TitleWordCount:       TitleWordCount(title),
		TitleCharCount:       TitleCharCount(title),
		CapitalizedWords:     capitalized,
		TitleComplexityScore: TitleComplexityScore(title),
	}
}
