package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

const nutritionDisclaimer = "_This is general wellness guidance, not medical advice. " +
	"For ongoing sleep or health concerns, consult a qualified clinician._"

// NutritionAgent is a wellness advisor focused on caffeine, alcohol and
// lifestyle factors. It counts patterns in recent logs and explains how they
// may affect sleep.
type NutritionAgent struct {
	deps Deps
}

// NewNutritionAgent builds the nutrition agent.
func NewNutritionAgent(deps Deps) *NutritionAgent {
	return &NutritionAgent{deps: deps.withDefaults()}
}

// Name implements core.Agent.
func (a *NutritionAgent) Name() string { return "nutrition" }

// ActionType implements core.Agent; personalized recommendations require
// transparency disclosure.
func (a *NutritionAgent) ActionType() string { return "personalized_recommendation" }

// HandleCore builds lifestyle guidance from the caller's logs.
func (a *NutritionAgent) HandleCore(ctx context.Context, _ string, actx core.Context) (*core.Response, error) {
	if actx.User() == nil {
		return &core.Response{
			Agent: a.Name(),
			Text:  "Please sign in first so I can review your logs.",
		}, nil
	}

	logs := sleepLogs(actx)
	if len(logs) == 0 {
		return &core.Response{
			Agent: a.Name(),
			Text:  "I couldn't find any recent sleep logs to analyze.",
		}, nil
	}

	caffeineDays, alcoholDays := 0, 0
	for _, l := range logs {
		if l.CaffeineAfter3p {
			caffeineDays++
		}
		if l.Alcohol {
			alcoholDays++
		}
	}
	total := len(logs)

	prompt := fmt.Sprintf(`You are a supportive wellness advisor.
A user has provided sleep logs. Explain how lifestyle factors like caffeine, alcohol, and exercise timing may influence their sleep.

Data snapshot (last %d nights):
- Caffeine after 3pm on %d/%d nights
- Alcohol use on %d/%d nights

Write a friendly and clear explanation:
1. Summarize observed patterns (if any).
2. Explain how caffeine, alcohol, and exercise timing can impact sleep quality.
3. Give 2-3 simple suggestions to improve sleep hygiene in these areas.
End with encouragement.`, total, caffeineDays, total, alcoholDays, total)

	text, ok := a.deps.Generator.GenerateText(ctx, prompt)
	if !ok || text == "" {
		text = fmt.Sprintf(
			"In the last %d nights, you logged caffeine after 3pm on %d nights and alcohol on %d nights. "+
				"Both can reduce sleep quality and increase awakenings. "+
				"Try limiting caffeine to before 3pm, reducing alcohol close to bedtime, "+
				"and adding regular daytime exercise for better sleep.",
			total, caffeineDays, alcoholDays)
	}

	return &core.Response{
		Agent: a.Name(),
		Text:  strings.TrimSpace(text) + "\n\n" + nutritionDisclaimer,
		Data: map[string]any{
			"summary": map[string]any{
				"days":                   total,
				"caffeine_after3pm_days": caffeineDays,
				"alcohol_days":           alcoholDays,
			},
		},
	}, nil
}
