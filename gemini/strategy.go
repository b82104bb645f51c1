// Package gemini provides remote-model implementations of the newswire
// SelectorStrategy and EntityModel using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/newswire"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Strategy implements newswire.SelectorStrategy at compile time.
var _ newswire.SelectorStrategy = (*Strategy)(nil)

// Strategy proposes CSS rules for a listing fragment using Google Gemini.
// The caller owns fallback behavior; Strategy reports failures as errors.
type Strategy struct {
	client *genai.Client
}

// NewStrategy creates a new Strategy.
func NewStrategy(client *genai.Client) *Strategy {
	return &Strategy{client: client}
}

// ProposeRules asks the model to identify the five field rules for the
// given representative article fragment.
func (s *Strategy) ProposeRules(ctx context.Context, fragment string) (newswire.RuleSet, error) {
	if fragment == "" {
		return newswire.RuleSet{}, newswire.Errorf(newswire.EINVALID, "fragment required")
	}

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildSelectorPrompt(fragment)}},
		}},
		BuildSelectorConfig(),
	)
	if err != nil {
		return newswire.RuleSet{}, err
	}
	if result == nil {
		return newswire.RuleSet{}, newswire.Errorf(newswire.EINTERNAL, "gemini returned nil result")
	}

	return ParseRuleSet(result.Text())
}

// BuildSelectorConfig returns the GenerateContentConfig for selector calls.
func BuildSelectorConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a web scraping assistant. You analyze HTML samples and identify CSS selectors for news article fields.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildSelectorPrompt builds the user prompt for a representative fragment.
func BuildSelectorPrompt(fragment string) string {
	var sb strings.Builder
	sb.WriteString("Based on this HTML sample of one news article from a listing page, identify CSS selectors for:\n")
	sb.WriteString("1. the container element repeated for each article\n")
	sb.WriteString("2. the title element\n")
	sb.WriteString("3. the kicker/subtitle element\n")
	sb.WriteString("4. the link to the full article\n")
	sb.WriteString("5. the image element\n\n")
	sb.WriteString("Respond with a JSON object with exactly these keys: container, title, kicker, link, image.\n")
	sb.WriteString("Every value must be a non-empty CSS selector relative to the container (the container selector is relative to the document).\n\n")
	fmt.Fprintf(&sb, "<sample>\n%s\n</sample>", fragment)
	return sb.String()
}

// ParseRuleSet extracts the first JSON object from a model reply and decodes
// it into a RuleSet. Replies wrapped in prose or code fences are tolerated;
// a reply missing any required role is an error, never a partial rule set.
func ParseRuleSet(reply string) (newswire.RuleSet, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return newswire.RuleSet{}, newswire.Errorf(newswire.EINVALID, "no JSON object in model reply")
	}

	var rules newswire.RuleSet
	if err := json.Unmarshal([]byte(reply[start:end+1]), &rules); err != nil {
		return newswire.RuleSet{}, newswire.Errorf(newswire.EINVALID, "malformed model reply: %v", err)
	}
	if err := rules.Validate(); err != nil {
		return newswire.RuleSet{}, err
	}
	return rules, nil
}
