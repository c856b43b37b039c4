package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

// qualityWeights is the rule-based sleep quality model: factor → score
// delta applied to the baseline.
var qualityWeights = map[string]float64{
	"caffeine_after3pm": -1.2,
	"alcohol":           -0.8,
	"screen_time_min":   -0.01, // per minute
	"consistent_week":   1.0,
}

const qualityBaseline = 7.0

// PredictionAgent forecasts tonight's sleep quality from recent logs and
// recommends a bedtime window. The model is deliberately simple and
// explainable; its factors are reported as decision factors so the
// transparency check can verify they are explained.
type PredictionAgent struct {
	deps Deps
}

// NewPredictionAgent builds the prediction agent.
func NewPredictionAgent(deps Deps) *PredictionAgent {
	return &PredictionAgent{deps: deps.withDefaults()}
}

// Name implements core.Agent.
func (a *PredictionAgent) Name() string { return "prediction" }

// ActionType implements core.Agent.
func (a *PredictionAgent) ActionType() string { return "predictive_analysis" }

// HandleCore scores tonight's outlook. The numbers are deterministic; the
// provider only narrates them and a decline falls back to a fixed template.
func (a *PredictionAgent) HandleCore(ctx context.Context, _ string, actx core.Context) (*core.Response, error) {
	logs := sleepLogs(actx)
	if len(logs) == 0 {
		return &core.Response{
			Agent: a.Name(),
			Text: "I need a few nights of logs before I can predict tonight's sleep. " +
				"Log your sleep for a couple of days and ask again.",
		}, nil
	}

	score, factors := a.score(logs)
	bedtime := recommendedBedtime(logs)

	text, ok := a.deps.Generator.GenerateText(ctx, predictionPrompt(score, bedtime, factors))
	if !ok || text == "" {
		text = fmt.Sprintf(
			"Based on your sleep logs, tonight's predicted quality is %.1f/10. "+
				"Your recent patterns suggest aiming for bed around %s. "+
				"Individual results may vary; this automated estimate is based on your data, not a diagnosis.",
			score, bedtime)
	}

	return &core.Response{
		Agent: a.Name(),
		Text:  strings.TrimSpace(text),
		Data: map[string]any{
			"predicted_quality":   round2(score),
			"recommended_bedtime": bedtime,
			"decision_factors":    factors,
		},
	}, nil
}

// score applies the weights table to the most recent log, with a
// consistency bonus over the whole window.
func (a *PredictionAgent) score(logs []SleepLog) (float64, map[string]any) {
	latest := logs[len(logs)-1]
	score := qualityBaseline
	factors := map[string]any{}

	if latest.CaffeineAfter3p {
		score += qualityWeights["caffeine_after3pm"]
		factors["caffeine_after3pm"] = true
	}
	if latest.Alcohol {
		score += qualityWeights["alcohol"]
		factors["alcohol"] = true
	}
	if latest.ScreenTimeMin > 0 {
		score += qualityWeights["screen_time_min"] * float64(latest.ScreenTimeMin)
		factors["screen_time_min"] = latest.ScreenTimeMin
	}

	if spread := bedtimeSpread(logs); spread >= 0 && spread <= 45 {
		score += qualityWeights["consistent_week"]
		factors["consistent_week"] = true
	}

	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}
	return score, factors
}

func bedtimeSpread(logs []SleepLog) int {
	summary := summarize(logs)
	if spread, ok := summary["bedtime_consistency_min"].(int); ok {
		return spread
	}
	return -1
}

// recommendedBedtime is the modal bedtime hour across the window, rendered
// as a clock range.
func recommendedBedtime(logs []SleepLog) string {
	counts := map[int]int{}
	for _, l := range logs {
		if !l.Bedtime.IsZero() {
			counts[l.Bedtime.Hour()]++
		}
	}
	best, bestCount := 22, 0
	for hour, count := range counts {
		if count > bestCount {
			best, bestCount = hour, count
		}
	}
	return fmt.Sprintf("%02d:00–%02d:30", best, best)
}

func predictionPrompt(score float64, bedtime string, factors map[string]any) string {
	var names []string
	for f := range factors {
		names = append(names, f)
	}
	return fmt.Sprintf(`You are a sleep forecasting assistant. A rule-based model predicted tonight's sleep quality as %.1f/10, with recommended bedtime %s, based on these factors from the user's own logs: %s.

Write 3-4 friendly sentences: state the automated prediction, explain it is based on their tracked data (name the factors), suggest the bedtime window, and note that individual results may vary and this is not medical advice.`,
		score, bedtime, strings.Join(names, ", "))
}
