// Package gemini implements text generation and token counting with
// Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
	"google.golang.org/genai"
)

// DefaultModel is used when a call does not name a model.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature keeps answers close to the provided context.
const DefaultTemperature = float32(0.4)

var _ docsearch.Generator = (*Generator)(nil)

// Generator implements docsearch.Generator using the Gemini API.
type Generator struct {
	client      *genai.Client
	temperature float32
}

// NewGenerator creates a Generator backed by client.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client, temperature: DefaultTemperature}
}

// Generate sends userPrompt with systemPrompt as the system instruction and
// returns the model's text.
func (g *Generator) Generate(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "prompt required")
	}
	if model == "" {
		model = DefaultModel
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(userPrompt, genai.RoleUser)},
		BuildConfig(systemPrompt, g.temperature),
	)
	if err != nil {
		return "", docsearch.Errorf(docsearch.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for one call.
// An empty systemPrompt leaves the system instruction unset.
func BuildConfig(systemPrompt string, temperature float32) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}
	return config
}
