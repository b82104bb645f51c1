package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/newswire"
	"google.golang.org/genai"
)

// Ensure EntityModel implements newswire.EntityModel at compile time.
var _ newswire.EntityModel = (*EntityModel)(nil)

// EntityModel extracts named entities using Google Gemini. It is a remote
// alternative to the local prose model for deployments that already carry
// a Gemini credential for selector resolution.
type EntityModel struct {
	client *genai.Client
}

// NewEntityModel creates a new EntityModel.
func NewEntityModel(client *genai.Client) *EntityModel {
	return &EntityModel{client: client}
}

// Analyze returns labeled entity spans found in the text.
func (m *EntityModel) Analyze(ctx context.Context, text string) ([]newswire.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	result, err := m.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildEntityPrompt(text)}},
		}},
		BuildEntityConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, newswire.Errorf(newswire.EINTERNAL, "gemini returned nil result")
	}

	return ParseEntities(result.Text())
}

// BuildEntityConfig returns the GenerateContentConfig for entity calls.
func BuildEntityConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a named-entity recognizer. You label spans of text with PERSON, ORG or GPE.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildEntityPrompt builds the user prompt for entity extraction.
func BuildEntityPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("List every named entity in the text below.\n")
	sb.WriteString("Respond with a JSON array of objects with keys \"text\" and \"label\".\n")
	sb.WriteString("Use label PERSON for people, ORG for organizations and GPE for locations.\n")
	sb.WriteString("Preserve the order of first appearance. Do not invent entities.\n\n")
	fmt.Fprintf(&sb, "Text: %s", text)
	return sb.String()
}

// ParseEntities decodes a JSON array of labeled spans from a model reply.
// Replies wrapped in prose or code fences are tolerated.
func ParseEntities(reply string) ([]newswire.Entity, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end < start {
		return nil, newswire.Errorf(newswire.EINVALID, "no JSON array in model reply")
	}

	var spans []struct {
		Text  string `json:"text"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &spans); err != nil {
		return nil, newswire.Errorf(newswire.EINVALID, "malformed model reply: %v", err)
	}

	entities := make([]newswire.Entity, 0, len(spans))
	for _, span := range spans {
		if span.Text == "" || span.Label == "" {
			continue
		}
		entities = append(entities, newswire.Entity{Text: span.Text, Label: span.Label})
	}
	return entities, nil
}
