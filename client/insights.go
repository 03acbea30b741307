package client

import (
	"context"
	"net/http"
	"net/url"
)

// GenerateInsight asks the service for a new insight over recent data.
// The service stores a fallback insight when the backend fails, so this
// only errors on transport problems.
func (c *Client) GenerateInsight(ctx context.Context) (HealthInsight, error) {
	var out HealthInsight
	err := c.send(c.r(ctx), http.MethodPost, "/api/insights/generate", "/api/insights/generate", http.StatusCreated, &out)
	return out, err
}

// AnalyzeSymptoms returns free-text analysis of recent symptoms.
// ErrValidation means nothing has been logged yet; ErrUpstream means the
// completion backend failed.
func (c *Client) AnalyzeSymptoms(ctx context.Context) (string, error) {
	var out struct {
		Analysis string `json:"analysis"`
	}
	err := c.send(c.r(ctx), http.MethodPost, "/api/analysis/symptoms", "/api/analysis/symptoms", http.StatusOK, &out)
	return out.Analysis, err
}

func (c *Client) ExplainTerm(ctx context.Context, term string) (string, error) {
	var out struct {
		Explanation string `json:"explanation"`
	}
	req := c.r(ctx).SetBody(map[string]string{"term": term})
	err := c.send(req, http.MethodPost, "/api/terms/explain", "/api/terms/explain", http.StatusOK, &out)
	return out.Explanation, err
}

func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	var out struct {
		Answer string `json:"answer"`
	}
	req := c.r(ctx).SetBody(map[string]string{"question": question})
	err := c.send(req, http.MethodPost, "/api/questions", "/api/questions", http.StatusOK, &out)
	return out.Answer, err
}

// PlanGoal returns an action plan for the goal.
func (c *Client) PlanGoal(ctx context.Context, goalID string) (string, error) {
	var out struct {
		Plan string `json:"plan"`
	}
	err := c.send(c.r(ctx), http.MethodPost, "/api/goals/{goalId}/plan",
		"/api/goals/"+url.PathEscape(goalID)+"/plan", http.StatusOK, &out)
	return out.Plan, err
}
