package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
)

// GenAI completes prompts through the official Go SDK.
type GenAI struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

var _ insight.Completer = (*GenAI)(nil)

// NewGenAI creates an SDK-backed completer for the Gemini API backend.
func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GenAI{client: client, model: model, config: generateConfig()}, nil
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](insight.Temperature),
		TopK:            genai.Ptr[float32](insight.TopK),
		TopP:            genai.Ptr[float32](insight.TopP),
		MaxOutputTokens: insight.MaxOutputTokens,
		SafetySettings: []*genai.SafetySetting{{
			Category:  genai.HarmCategory(insight.SafetyCategory),
			Threshold: genai.HarmBlockThreshold(insight.SafetyThreshold),
		}},
	}
}

func (g *GenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", &insight.GenerationError{Err: err}
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &insight.GenerationError{Err: errNoCandidates}
	}
	c := resp.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return "", &insight.GenerationError{Err: fmt.Errorf("candidate has no parts (finish reason %q)", c.FinishReason)}
	}
	return c.Content.Parts[0].Text, nil
}
