package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

const coachDisclaimer = "_This is educational guidance (not medical care). If you have severe trouble " +
	"sleeping, loud snoring, breathing pauses, or insomnia >3 months, talk to a clinician._"

// redFlags map safety labels onto the phrases that raise them.
var redFlags = []struct {
	label string
	cues  []string
}{
	{"apnea", []string{"snore", "gasp", "stop breathing"}},
	{"chronic_insomnia", []string{"> 3 months", "three months", "3 months"}},
}

// CoachAgent produces gentle, actionable sleep improvement plans. When the
// coordinator chained the analytics agent first, the plan is personalized
// from the summary it left in the context.
type CoachAgent struct {
	deps Deps
}

// NewCoachAgent builds the coach agent.
func NewCoachAgent(deps Deps) *CoachAgent {
	return &CoachAgent{deps: deps.withDefaults()}
}

// Name implements core.Agent.
func (a *CoachAgent) Name() string { return "coach" }

// ActionType implements core.Agent; coaching plans require transparency
// disclosure.
func (a *CoachAgent) ActionType() string { return "sleep_coaching_plan" }

// HandleCore generates the plan. Provider declines fall back to the
// rule-based plan so every message yields a response.
func (a *CoachAgent) HandleCore(ctx context.Context, message string, actx core.Context) (*core.Response, error) {
	summary, _ := actx.Analysis()["summary"].(map[string]any)

	var text string
	if summary != nil {
		if generated, ok := a.deps.Generator.GenerateText(ctx, coachPrompt(summary)); ok {
			text = strings.TrimSpace(generated)
		}
	}
	if text == "" {
		tips := planFromSummary(summary)
		var b strings.Builder
		b.WriteString("Here's a 7-day plan based on your recent logs:\n")
		for _, tip := range tips {
			b.WriteString("• " + tip + "\n")
		}
		text = strings.TrimSpace(b.String())
	}

	text = text + "\n\n" + coachDisclaimer

	safety := flagSafety(message)
	if len(safety) > 0 {
		text += "\n\n**Safety:** Please consult a clinician for red-flag symptoms."
	}

	return &core.Response{
		Agent: a.Name(),
		Text:  text,
		Data:  map[string]any{"safety": safety},
	}, nil
}

func coachPrompt(summary map[string]any) string {
	return fmt.Sprintf(`You are a friendly, encouraging, and expert sleep coach.
A user has asked for a sleep plan. Based on their 7-day sleep summary below, create a personalized and actionable sleep improvement plan.

Your response should have three parts:
1. A brief, positive opening (1-2 sentences) acknowledging their data.
2. A prioritized action plan (3-5 bullet points) with specific, actionable tips; briefly explain why each matters based on their data.
3. A concluding sentence of encouragement.

User's 7-day sleep summary:
- Average sleep duration: %v hours/night
- Average awakenings: %v per night
- Average screen time before bed: %v minutes
- Bedtime consistency: ±%v minutes
- Wake time consistency: ±%v minutes

Generate the full response now.`,
		summary["avg_duration_h"], summary["avg_awakenings"], summary["avg_screen_min"],
		summary["bedtime_consistency_min"], summary["wake_consistency_min"])
}

// planFromSummary is the deterministic fallback plan. Baseline tips always
// apply; data-driven ones are added when the summary warrants them.
func planFromSummary(summary map[string]any) []string {
	tips := []string{
		"Pick a **fixed wake-up time** and stick to it daily (anchor the clock).",
		"Start a **60–90 min wind-down** routine (dim lights, paper book, stretch, journal).",
		"Keep the bedroom **cool, dark, quiet**; bed for sleep only.",
	}

	if f, ok := asFloat(summary["avg_screen_min"]); ok && f > 30 {
		tips = append(tips, "Reduce screens in the last hour before bed; if needed, use night-shift + dim.")
	}
	if f, ok := asFloat(summary["avg_duration_h"]); ok && f > 0 && f < 7.0 {
		tips = append(tips, "Target **7–9 hours** in bed; shift in 15–30 min steps over a few nights.")
	}
	if f, ok := asFloat(summary["avg_awakenings"]); ok && f >= 2 {
		tips = append(tips, "If awake >20 min, do a brief reset in dim light, then return to bed.")
	}
	if f, ok := asFloat(summary["bedtime_consistency_min"]); ok && f > 45 {
		tips = append(tips, "Tighten timing: keep bedtime within a **±30–45 min** window for a week.")
	}

	tips = append(tips,
		"Avoid caffeine after **3 pm** and big meals late at night.",
		"Get **morning daylight** and some daytime movement (even a 10–20 min walk).",
	)
	return tips
}

func flagSafety(message string) []string {
	t := strings.ToLower(message)
	var hits []string
	for _, rf := range redFlags {
		for _, cue := range rf.cues {
			if strings.Contains(t, cue) {
				hits = append(hits, rf.label)
				break
			}
		}
	}
	return hits
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
