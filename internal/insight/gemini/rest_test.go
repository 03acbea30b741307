package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
)

func TestREST_CompleteSendsFixedParameters(t *testing.T) {
	var got generateRequest
	var path, key string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		key = r.URL.Query().Get("key")
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"},{"text":"ignored"}]}}]}`))
	}))
	defer srv.Close()

	c := NewREST(srv.URL+"/v1beta", "secret", "gemini-pro", 5*time.Second)
	text, err := c.Complete(context.Background(), "say hello")
	require.NoError(t, err)

	assert.Equal(t, "hello", text)
	assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", path)
	assert.Equal(t, "secret", key)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "say hello", got.Contents[0].Parts[0].Text)
	assert.Equal(t, 0.7, got.GenerationConfig.Temperature)
	assert.Equal(t, 40, got.GenerationConfig.TopK)
	assert.Equal(t, 0.95, got.GenerationConfig.TopP)
	assert.Equal(t, 2048, got.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, []safetySetting{{Category: "HARM_CATEGORY_MEDICAL", Threshold: "BLOCK_MEDIUM_AND_ABOVE"}}, got.SafetySettings)
}

func TestREST_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"non-2xx with error body", http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, "API key not valid"},
		{"non-2xx plain", http.StatusInternalServerError, `oops`, "status 500"},
		{"undecodable", http.StatusOK, `not json`, "decode response"},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, "no candidates"},
		{"no parts", http.StatusOK, `{"candidates":[{"content":{"parts":[]},"finishReason":"SAFETY"}]}`, "SAFETY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewREST(srv.URL, "k", "gemini-pro", 5*time.Second).Complete(context.Background(), "p")
			var ge *insight.GenerationError
			require.True(t, errors.As(err, &ge), "want *GenerationError, got %T", err)
			assert.Contains(t, err.Error(), "failed to generate content")
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestREST_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewREST(url, "k", "gemini-pro", time.Second).Complete(context.Background(), "p")
	assert.True(t, insight.IsGenerationError(err))
}

func TestREST_MissingTextIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{}]}}]}`))
	}))
	defer srv.Close()

	text, err := NewREST(srv.URL, "k", "gemini-pro", time.Second).Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenAIConfig(t *testing.T) {
	cfg := generateConfig()
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.7, *cfg.Temperature, 1e-6)
	assert.InDelta(t, 40, *cfg.TopK, 1e-6)
	assert.InDelta(t, 0.95, *cfg.TopP, 1e-6)
	assert.EqualValues(t, 2048, cfg.MaxOutputTokens)
	require.Len(t, cfg.SafetySettings, 1)
	assert.EqualValues(t, "HARM_CATEGORY_MEDICAL", cfg.SafetySettings[0].Category)
	assert.EqualValues(t, "BLOCK_MEDIUM_AND_ABOVE", cfg.SafetySettings[0].Threshold)
}
