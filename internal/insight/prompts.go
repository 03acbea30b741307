package insight

import (
	"fmt"
	"strings"

	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

func symptomAnalysisPrompt(symptoms []model.HealthEntry, vitals []model.VitalSign) string {
	sl := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		sl = append(sl, fmt.Sprintf("- %s: %s (%s)", s.Title, s.Description, s.Severity))
	}
	vl := make([]string, 0, len(vitals))
	for _, v := range vitals {
		vl = append(vl, fmt.Sprintf("- %s: %s %s", v.Type, formatNumber(v.Value), v.Unit))
	}

	return `As a health information assistant, analyze the following symptoms and vital signs.
Provide general information and suggest when to consult a healthcare professional.

IMPORTANT: This is for informational purposes only and does not replace professional medical advice.

Symptoms:
` + strings.Join(sl, "\n") + `

Recent Vital Signs:
` + strings.Join(vl, "\n") + `

Provide:
1. A brief analysis of potential patterns
2. General information about these symptoms
3. When to seek medical attention
4. General self-care recommendations

Keep the response clear, concise, and emphasize consulting healthcare professionals for proper diagnosis.`
}

func insightPrompt(entries []model.HealthEntry, goals []model.HealthGoal) string {
	n := min(len(entries), 5)
	parts := make([]string, 0, n)
	for _, e := range entries[:n] {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Type, e.Title))
	}

	return `Analyze the user's health data and provide personalized insights.

Recent Health Entries: ` + strings.Join(parts, ", ") + `
Active Goals: ` + fmt.Sprintf("%d", len(goals)) + ` goals in progress

Generate a health insight that:
1. Identifies patterns or trends
2. Provides actionable recommendations
3. Explains health information in simple terms
4. Encourages healthy behaviors

Format as JSON:
{
  "title": "Brief insight title",
  "description": "Detailed description",
  "explanation": "Simple explanation of what this means",
  "recommendations": ["Recommendation 1", "Recommendation 2"],
  "severity": "info"
}

Return ONLY valid JSON.`
}

func explainTermPrompt(term string) string {
	return fmt.Sprintf(`Explain the medical/health term "%s" in simple, easy-to-understand language.
Keep it concise (2-3 sentences) and avoid overly technical jargon.
Focus on what it means for general health and wellness.`, term)
}

func questionPrompt(question string, entries []model.HealthEntry, goals []model.HealthGoal) string {
	titles := make([]string, 0, len(goals))
	for _, g := range goals {
		titles = append(titles, g.Title)
	}
	context := fmt.Sprintf("\nUser's recent health entries: %d entries\nActive health goals: %s\n",
		len(entries), strings.Join(titles, ", "))

	return fmt.Sprintf(`As a health information assistant, provide a helpful response to the user's question.

User Question: "%s"

Context: %s

Provide:
1. A clear, helpful answer
2. General health information (not medical diagnosis)
3. When appropriate, suggest consulting healthcare professionals
4. Practical, actionable advice

Keep it conversational and supportive. Emphasize that this is informational and not a replacement for professional medical advice.`, question, context)
}

func healthPlanPrompt(goal model.HealthGoal) string {
	targetDate, _, _ := strings.Cut(goal.TargetDate, "T")

	return fmt.Sprintf(`Create a personalized health plan to help achieve this goal:

Goal: %s
Description: %s
Current Progress: %s %s / %s %s
Target Date: %s

Provide a step-by-step plan with:
1. Weekly milestones
2. Actionable daily habits
3. Tips for staying motivated
4. Ways to track progress

Format it as a clear, structured plan that's easy to follow.`,
		goal.Title, goal.Description,
		formatNumber(goal.CurrentValue), goal.Unit, formatNumber(goal.TargetValue), goal.Unit,
		targetDate)
}

// formatNumber prints 72 as "72" and 98.6 as "98.6".
func formatNumber(f float64) string {
	return fmt.Sprintf("%g", f)
}
