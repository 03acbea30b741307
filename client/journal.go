package client

import (
	"context"
	"net/http"
	"net/url"
)

// AddEntry logs a symptom or note.
func (c *Client) AddEntry(ctx context.Context, in NewEntry) (HealthEntry, error) {
	var out HealthEntry
	err := c.send(c.r(ctx).SetBody(in), http.MethodPost, "/api/entries", "/api/entries", http.StatusCreated, &out)
	return out, err
}

// ListEntries returns entries newer than days ago, newest first.
// days <= 0 returns every entry.
func (c *Client) ListEntries(ctx context.Context, days int) ([]HealthEntry, error) {
	var out struct {
		Entries []HealthEntry `json:"entries"`
	}
	err := c.send(withDays(c.r(ctx), days), http.MethodGet, "/api/entries", "/api/entries", http.StatusOK, &out)
	return out.Entries, err
}

// AddVital records a measurement.
func (c *Client) AddVital(ctx context.Context, in NewVital) (VitalSign, error) {
	var out VitalSign
	err := c.send(c.r(ctx).SetBody(in), http.MethodPost, "/api/vitals", "/api/vitals", http.StatusCreated, &out)
	return out, err
}

// ListVitals returns vitals newer than days ago, newest first.
// days <= 0 returns every vital.
func (c *Client) ListVitals(ctx context.Context, days int) ([]VitalSign, error) {
	var out struct {
		Vitals []VitalSign `json:"vitals"`
	}
	err := c.send(withDays(c.r(ctx), days), http.MethodGet, "/api/vitals", "/api/vitals", http.StatusOK, &out)
	return out.Vitals, err
}

func (c *Client) AddMedication(ctx context.Context, in NewMedication) (Medication, error) {
	var out Medication
	err := c.send(c.r(ctx).SetBody(in), http.MethodPost, "/api/medications", "/api/medications", http.StatusCreated, &out)
	return out, err
}

func (c *Client) ListMedications(ctx context.Context, activeOnly bool) ([]Medication, error) {
	var out struct {
		Medications []Medication `json:"medications"`
	}
	err := c.send(withActive(c.r(ctx), activeOnly), http.MethodGet, "/api/medications", "/api/medications", http.StatusOK, &out)
	return out.Medications, err
}

func (c *Client) AddGoal(ctx context.Context, in NewGoal) (Goal, error) {
	var out Goal
	err := c.send(c.r(ctx).SetBody(in), http.MethodPost, "/api/goals", "/api/goals", http.StatusCreated, &out)
	return out, err
}

func (c *Client) ListGoals(ctx context.Context, activeOnly bool) ([]Goal, error) {
	var out struct {
		Goals []Goal `json:"goals"`
	}
	err := c.send(withActive(c.r(ctx), activeOnly), http.MethodGet, "/api/goals", "/api/goals", http.StatusOK, &out)
	return out.Goals, err
}

// GetGoal returns ErrNotFound (via errors.Is) for an unknown id.
func (c *Client) GetGoal(ctx context.Context, id string) (Goal, error) {
	var out Goal
	err := c.send(c.r(ctx), http.MethodGet, "/api/goals/{goalId}", "/api/goals/"+url.PathEscape(id), http.StatusOK, &out)
	return out, err
}

// UpdateGoalProgress sets the goal's current value. The service marks the
// goal completed once the value reaches the target.
func (c *Client) UpdateGoalProgress(ctx context.Context, id string, current float64) (Goal, error) {
	var out Goal
	body := map[string]float64{"currentValue": current}
	err := c.send(c.r(ctx).SetBody(body), http.MethodPut, "/api/goals/{goalId}/progress",
		"/api/goals/"+url.PathEscape(id)+"/progress", http.StatusOK, &out)
	return out, err
}

func (c *Client) ListInsights(ctx context.Context) ([]HealthInsight, error) {
	var out struct {
		Insights []HealthInsight `json:"insights"`
	}
	err := c.send(c.r(ctx), http.MethodGet, "/api/insights", "/api/insights", http.StatusOK, &out)
	return out.Insights, err
}

func (c *Client) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	err := c.send(c.r(ctx), http.MethodGet, "/api/summary", "/api/summary", http.StatusOK, &out)
	return out, err
}
