// Package gemini implements insight.Completer against the Gemini
// generateContent endpoint, over plain REST or through the genai SDK.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
)

// REST talks to {base}/models/{model}:generateContent?key=... with resty.
type REST struct {
	client *resty.Client
	apiKey string
	model  string
}

var _ insight.Completer = (*REST)(nil)

// NewREST builds a REST completer. timeout bounds each call.
func NewREST(baseURL, apiKey, model string, timeout time.Duration) *REST {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &REST{client: c, apiKey: apiKey, model: model}
}

// request / response bodies for JSON binding

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func newRequest(prompt string) generateRequest {
	return generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     insight.Temperature,
			TopK:            insight.TopK,
			TopP:            insight.TopP,
			MaxOutputTokens: insight.MaxOutputTokens,
		},
		SafetySettings: []safetySetting{{
			Category:  insight.SafetyCategory,
			Threshold: insight.SafetyThreshold,
		}},
	}
}

// Complete sends prompt and returns the first candidate's first part text.
func (r *REST) Complete(ctx context.Context, prompt string) (string, error) {
	body := newRequest(prompt)

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("key", r.apiKey).
		SetBody(&body).
		Post(fmt.Sprintf("/models/%s:generateContent", r.model))
	if err != nil {
		return "", &insight.GenerationError{Err: err}
	}

	var gr generateResponse
	decodeErr := json.Unmarshal(resp.Body(), &gr)

	if resp.IsError() {
		if decodeErr == nil && gr.Error != nil {
			return "", &insight.GenerationError{Err: fmt.Errorf("status %d: %s", resp.StatusCode(), gr.Error.Message)}
		}
		return "", &insight.GenerationError{Err: fmt.Errorf("status %d", resp.StatusCode())}
	}
	if decodeErr != nil {
		return "", &insight.GenerationError{Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	return firstText(gr)
}

var errNoCandidates = errors.New("no candidates in response")

func firstText(gr generateResponse) (string, error) {
	if len(gr.Candidates) == 0 {
		return "", &insight.GenerationError{Err: errNoCandidates}
	}
	parts := gr.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", &insight.GenerationError{Err: fmt.Errorf("candidate has no parts (finish reason %q)", gr.Candidates[0].FinishReason)}
	}
	return parts[0].Text, nil
}
