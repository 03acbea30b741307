package insight

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/metrics"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

const (
	fallbackTitle       = "Keep Tracking Your Health"
	fallbackDescription = "Continue logging your symptoms and vitals for better insights."
	defaultInsightTitle = "Health Insight"
)

var errNullReply = errors.New("reply is not a JSON object")

// Client turns journal data into prompts and completions.
type Client struct {
	completer Completer
	log       zerolog.Logger
	now       func() time.Time
}

type ClientOption func(*Client)

// WithClock sets the clock used for generatedAt and ids.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) { c.now = now }
}

func NewClient(completer Completer, log zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{completer: completer, log: log, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) complete(ctx context.Context, op, prompt string) (string, error) {
	started := time.Now()
	text, err := c.completer.Complete(ctx, prompt)
	metrics.Generation(op, started, err)
	if err != nil {
		c.log.Debug().Err(err).Str("operation", op).Dur("elapsed", time.Since(started)).Msg("completion failed")
		return "", NewGenerationError(err)
	}
	c.log.Debug().Str("operation", op).Int("reply_len", len(text)).Dur("elapsed", time.Since(started)).Msg("completion done")
	return text, nil
}

// AnalyzeSymptoms asks for a free-text analysis of the given symptoms and vitals.
func (c *Client) AnalyzeSymptoms(ctx context.Context, symptoms []model.HealthEntry, vitals []model.VitalSign) (string, error) {
	return c.complete(ctx, "analyze_symptoms", symptomAnalysisPrompt(symptoms, vitals))
}

// GenerateHealthInsight asks for a JSON insight and parses it. Failures come
// back as *GenerationError or *ParseError; the caller decides on Fallback.
func (c *Client) GenerateHealthInsight(ctx context.Context, entries []model.HealthEntry, vitals []model.VitalSign, goals []model.HealthGoal) (model.HealthInsight, error) {
	text, err := c.complete(ctx, "generate_insight", insightPrompt(entries, goals))
	if err != nil {
		return model.HealthInsight{}, err
	}
	return c.parseInsight(text)
}

type insightReply struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations"`
	Severity        string   `json:"severity"`
}

func (c *Client) parseInsight(text string) (model.HealthInsight, error) {
	var reply *insightReply
	if err := json.Unmarshal([]byte(StripFences(text)), &reply); err != nil {
		return model.HealthInsight{}, &ParseError{Raw: text, Err: err}
	}
	if reply == nil {
		return model.HealthInsight{}, &ParseError{Raw: text, Err: errNullReply}
	}

	now := c.now()
	in := model.HealthInsight{
		ID:              model.NewID("insight", now),
		GeneratedAt:     now,
		Type:            model.InsightTrend,
		Title:           reply.Title,
		Description:     reply.Description,
		Explanation:     reply.Explanation,
		Severity:        model.InsightSeverity(reply.Severity),
		Recommendations: reply.Recommendations,
	}
	if in.Title == "" {
		in.Title = defaultInsightTitle
	}
	if !in.Severity.Valid() {
		in.Severity = model.InsightInfo
	}
	if in.Recommendations == nil {
		in.Recommendations = []string{}
	}
	return in, nil
}

// StripFences removes a surrounding markdown code fence (```json or ```).
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.NewReplacer("```json\n", "", "```json", "", "```\n", "", "```", "").Replace(s)
	case strings.HasPrefix(s, "```"):
		s = strings.NewReplacer("```\n", "", "```", "").Replace(s)
	}
	return strings.TrimSpace(s)
}

// Fallback is the insight stored when generation or parsing fails.
func Fallback(now time.Time) model.HealthInsight {
	return model.HealthInsight{
		ID:          model.NewID("insight", now),
		GeneratedAt: now,
		Type:        model.InsightTrend,
		Title:       fallbackTitle,
		Description: fallbackDescription,
		Severity:    model.InsightInfo,
	}
}

// IsGenerationError reports whether err came from the completion backend.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}

func (c *Client) ExplainHealthTerm(ctx context.Context, term string) (string, error) {
	return c.complete(ctx, "explain_term", explainTermPrompt(term))
}

// GetHealthAnswer answers a free-form question with the entry count and goal
// titles as context.
func (c *Client) GetHealthAnswer(ctx context.Context, question string, entries []model.HealthEntry, goals []model.HealthGoal) (string, error) {
	return c.complete(ctx, "answer_question", questionPrompt(question, entries, goals))
}

// GenerateHealthPlan asks for a step-by-step plan toward goal.
// history does not currently go into the prompt.
func (c *Client) GenerateHealthPlan(ctx context.Context, goal model.HealthGoal, history []model.HealthEntry) (string, error) {
	return c.complete(ctx, "health_plan", healthPlanPrompt(goal))
}
