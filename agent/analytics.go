package agent

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/morpheuslabs/sleepmesh/core"
)

// AnalyticsAgent turns raw sleep logs into digestible insights (duration,
// awakenings, consistency). Its structured summary feeds the coach when the
// coordinator chains the two.
type AnalyticsAgent struct {
	deps Deps
}

// NewAnalyticsAgent builds the analytics agent.
func NewAnalyticsAgent(deps Deps) *AnalyticsAgent {
	return &AnalyticsAgent{deps: deps.withDefaults()}
}

// Name implements core.Agent.
func (a *AnalyticsAgent) Name() string { return "analytics" }

// ActionType implements core.Agent; data analysis requires transparency
// disclosure.
func (a *AnalyticsAgent) ActionType() string { return "data_analysis" }

// HandleCore computes a log summary. It never calls the language model; the
// numbers come straight from the caller-provided logs.
func (a *AnalyticsAgent) HandleCore(_ context.Context, _ string, actx core.Context) (*core.Response, error) {
	if actx.User() == nil {
		return &core.Response{
			Agent: a.Name(),
			Text:  "Please sign in first so I can read your logs.",
		}, nil
	}

	logs := sleepLogs(actx)
	if len(logs) == 0 {
		return &core.Response{
			Agent: a.Name(),
			Text:  "I couldn't find logs in the last 7 days.",
		}, nil
	}

	summary := summarize(logs)
	text := fmt.Sprintf(
		"**7-day snapshot**\n"+
			"• Sleep duration ≈ %s h/night\n"+
			"• Awakenings ≈ %s\n"+
			"• Screen time before bed ≈ %s min\n"+
			"• Bedtime consistency ±%s min; Wake consistency ±%s min\n\n"+
			"Ask me: \"Why was this week different?\" or \"Make me a plan.\"",
		num(summary["avg_duration_h"]),
		num(summary["avg_awakenings"]),
		num(summary["avg_screen_min"]),
		num(summary["bedtime_consistency_min"]),
		num(summary["wake_consistency_min"]),
	)

	return &core.Response{
		Agent: a.Name(),
		Text:  text,
		Data:  map[string]any{"summary": summary},
	}, nil
}

// SleepLog is the lenient shape the analytics and lifestyle agents read out
// of the opaque logs payload.
type SleepLog struct {
	Bedtime         time.Time
	WakeTime        time.Time
	Awakenings      int
	ScreenTimeMin   int
	CaffeineAfter3p bool
	Alcohol         bool
}

// sleepLogs extracts typed logs from the context. Both []SleepLog and the
// generic []map[string]any decoding are accepted; malformed entries are
// skipped rather than failing the request.
func sleepLogs(actx core.Context) []SleepLog {
	switch v := actx.Logs().(type) {
	case []SleepLog:
		return v
	case []map[string]any:
		logs := make([]SleepLog, 0, len(v))
		for _, m := range v {
			logs = append(logs, SleepLog{
				Bedtime:         toTime(m["bedtime"]),
				WakeTime:        toTime(m["wake_time"]),
				Awakenings:      toInt(m["awakenings"]),
				ScreenTimeMin:   toInt(m["screen_time_min"]),
				CaffeineAfter3p: toBool(m["caffeine_after3pm"]),
				Alcohol:         toBool(m["alcohol"]),
			})
		}
		return logs
	default:
		return nil
	}
}

func summarize(logs []SleepLog) map[string]any {
	var durations, awakenings, screen []float64
	var bedtimes, waketimes []time.Time
	for _, l := range logs {
		if !l.Bedtime.IsZero() {
			bedtimes = append(bedtimes, l.Bedtime)
		}
		if !l.WakeTime.IsZero() {
			waketimes = append(waketimes, l.WakeTime)
		}
		if !l.Bedtime.IsZero() && !l.WakeTime.IsZero() {
			durations = append(durations, l.WakeTime.Sub(l.Bedtime).Hours())
		}
		awakenings = append(awakenings, float64(l.Awakenings))
		screen = append(screen, float64(l.ScreenTimeMin))
	}
	return map[string]any{
		"nights":                  len(logs),
		"avg_duration_h":          round2(mean(durations)),
		"avg_awakenings":          round2(mean(awakenings)),
		"avg_screen_min":          round2(mean(screen)),
		"bedtime_consistency_min": clockSpread(bedtimes),
		"wake_consistency_min":    clockSpread(waketimes),
	}
}

// clockSpread is a consistency proxy: the mean absolute deviation of
// clock-time minutes. Returns -1 when fewer than two samples exist.
func clockSpread(xs []time.Time) int {
	if len(xs) < 2 {
		return -1
	}
	minutes := make([]float64, len(xs))
	for i, x := range xs {
		minutes[i] = float64(x.Hour()*60 + x.Minute())
	}
	mu := mean(minutes)
	var dev float64
	for _, m := range minutes {
		dev += math.Abs(m - mu)
	}
	return int(math.Round(dev / float64(len(minutes))))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func num(v any) string { return fmt.Sprintf("%v", v) }

func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func toBool(v any) bool {
	b, _ := v.(bool)
	return b
}
