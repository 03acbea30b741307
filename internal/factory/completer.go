package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/config"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/insight/gemini"
)

// NewCompleter creates the completion backend selected by cfg.Completer.
func NewCompleter(ctx context.Context, cfg *config.Config, log zerolog.Logger) (insight.Completer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%s_GEMINI_API_KEY is required", config.Prefix)
	}

	switch cfg.Completer {
	case "", "rest":
		log.Debug().Str("model", cfg.GeminiModel).Str("base_url", cfg.GeminiBaseURL).Msg("using REST completer")
		return gemini.NewREST(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GenerationTimeout()), nil
	case "genai":
		log.Debug().Str("model", cfg.GeminiModel).Msg("using genai SDK completer")
		return gemini.NewGenAI(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	return nil, fmt.Errorf("unknown COMPLETER: %s", cfg.Completer)
}
