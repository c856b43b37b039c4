package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morpheuslabs/sleepmesh/core"
	"github.com/morpheuslabs/sleepmesh/model"
)

func TestAnalyticsRequiresUser(t *testing.T) {
	a := NewAnalyticsAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "analyze", core.Context{})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "sign in")
	assert.Nil(t, resp.Data)
}

func TestAnalyticsRequiresLogs(t *testing.T) {
	a := NewAnalyticsAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "analyze", core.Context{core.KeyUser: "u1"})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "couldn't find logs")
}

func TestAnalyticsSummary(t *testing.T) {
	bed1 := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)
	bed2 := time.Date(2026, 1, 2, 23, 30, 0, 0, time.UTC)
	logs := []SleepLog{
		{Bedtime: bed1, WakeTime: bed1.Add(8 * time.Hour), Awakenings: 1, ScreenTimeMin: 30},
		{Bedtime: bed2, WakeTime: bed2.Add(8 * time.Hour), Awakenings: 3, ScreenTimeMin: 60},
	}

	a := NewAnalyticsAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "analyze",
		core.Context{core.KeyUser: "u1", core.KeyLogs: logs})
	require.NoError(t, err)

	summary, ok := resp.Data["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, summary["nights"])
	assert.Equal(t, 8.0, summary["avg_duration_h"])
	assert.Equal(t, 2.0, summary["avg_awakenings"])
	assert.Equal(t, 45.0, summary["avg_screen_min"])
	assert.Equal(t, 15, summary["bedtime_consistency_min"])
	assert.Equal(t, 15, summary["wake_consistency_min"])
	assert.Contains(t, resp.Text, "7-day snapshot")
}

func TestAnalyticsAcceptsGenericLogMaps(t *testing.T) {
	logs := []map[string]any{
		{
			"bedtime":           "2026-01-01T23:00:00Z",
			"wake_time":         "2026-01-02T07:00:00Z",
			"awakenings":        float64(2),
			"screen_time_min":   45,
			"caffeine_after3pm": true,
		},
	}

	a := NewAnalyticsAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "analyze",
		core.Context{core.KeyUser: "u1", core.KeyLogs: logs})
	require.NoError(t, err)

	summary := resp.Data["summary"].(map[string]any)
	assert.Equal(t, 1, summary["nights"])
	assert.Equal(t, 8.0, summary["avg_duration_h"])
	assert.Equal(t, 2.0, summary["avg_awakenings"])
}

func TestCoachFallbackPlan(t *testing.T) {
	a := NewCoachAgent(Deps{})

	t.Run("without analysis the baseline plan applies", func(t *testing.T) {
		resp, err := a.HandleCore(context.Background(), "help me sleep", core.Context{})
		require.NoError(t, err)
		assert.Contains(t, resp.Text, "fixed wake-up time")
		assert.Contains(t, resp.Text, "not medical care")
	})

	t.Run("summary drives data-specific tips", func(t *testing.T) {
		actx := core.Context{}
		actx.SetAnalysis(map[string]any{"summary": map[string]any{
			"avg_screen_min":          90.0,
			"avg_duration_h":          6.0,
			"avg_awakenings":          3.0,
			"bedtime_consistency_min": 60,
		}})
		resp, err := a.HandleCore(context.Background(), "help me sleep", actx)
		require.NoError(t, err)
		assert.Contains(t, resp.Text, "Reduce screens")
		assert.Contains(t, resp.Text, "7–9 hours")
		assert.Contains(t, resp.Text, "±30–45 min")
	})
}

func TestCoachFlagsSafetyCues(t *testing.T) {
	a := NewCoachAgent(Deps{})
	resp, err := a.HandleCore(context.Background(),
		"my partner says I snore and gasp at night", core.Context{})
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "**Safety:**")
	assert.Contains(t, resp.Data["safety"], "apnea")
}

func TestNutritionCountsLifestyleDays(t *testing.T) {
	logs := []SleepLog{
		{CaffeineAfter3p: true, Alcohol: true},
		{CaffeineAfter3p: true},
		{},
	}

	a := NewNutritionAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "how is my caffeine?",
		core.Context{core.KeyUser: "u1", core.KeyLogs: logs})
	require.NoError(t, err)

	summary := resp.Data["summary"].(map[string]any)
	assert.Equal(t, 3, summary["days"])
	assert.Equal(t, 2, summary["caffeine_after3pm_days"])
	assert.Equal(t, 1, summary["alcohol_days"])
	assert.Contains(t, resp.Text, "not medical advice")
}

func TestNutritionGuards(t *testing.T) {
	a := NewNutritionAgent(Deps{})

	resp, err := a.HandleCore(context.Background(), "caffeine?", core.Context{})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "sign in")

	resp, err = a.HandleCore(context.Background(), "caffeine?", core.Context{core.KeyUser: "u1"})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "recent sleep logs")
}

func TestAddictionWithoutCues(t *testing.T) {
	a := NewAddictionAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "I slept great", core.Context{})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "didn't detect addiction-related concerns")
}

func TestAddictionFallbackGuidance(t *testing.T) {
	a := NewAddictionAgent(Deps{})
	resp, err := a.HandleCore(context.Background(),
		"I can't stop drinking coffee every day", core.Context{})
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "reducing gradually")
	assert.Contains(t, resp.Text, "not medical or addiction treatment")
	assert.Equal(t, true, resp.Data["triggered"])
}

func TestPredictionNeedsLogs(t *testing.T) {
	a := NewPredictionAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "predict", core.Context{})
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "a few nights of logs")
}

func TestPredictionScoring(t *testing.T) {
	bed1 := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)
	bed2 := time.Date(2026, 1, 2, 23, 30, 0, 0, time.UTC)
	logs := []SleepLog{
		{Bedtime: bed1, WakeTime: bed1.Add(8 * time.Hour)},
		{Bedtime: bed2, WakeTime: bed2.Add(8 * time.Hour),
			CaffeineAfter3p: true, ScreenTimeMin: 60},
	}

	a := NewPredictionAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "tonight?",
		core.Context{core.KeyUser: "u1", core.KeyLogs: logs})
	require.NoError(t, err)

	// 7.0 baseline - 1.2 caffeine - 0.6 screens + 1.0 consistency bonus.
	assert.Equal(t, 6.2, resp.Data["predicted_quality"])
	assert.Equal(t, "23:00–23:30", resp.Data["recommended_bedtime"])

	factors, ok := resp.Data["decision_factors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, factors["caffeine_after3pm"])
	assert.Equal(t, 60, factors["screen_time_min"])
	assert.Equal(t, true, factors["consistent_week"])
	assert.NotContains(t, factors, "alcohol")
}

func TestPredictionScoreClamped(t *testing.T) {
	// A pile of negative factors cannot push the score below 1.
	bed := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)
	logs := []SleepLog{{
		Bedtime: bed, WakeTime: bed.Add(8 * time.Hour),
		CaffeineAfter3p: true, Alcohol: true, ScreenTimeMin: 600,
	}}

	a := NewPredictionAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "tonight?",
		core.Context{core.KeyUser: "u1", core.KeyLogs: logs})
	require.NoError(t, err)

	quality := resp.Data["predicted_quality"].(float64)
	assert.GreaterOrEqual(t, quality, 1.0)
	assert.LessOrEqual(t, quality, 10.0)
}

func TestStorytellerFallsBackToFixedStory(t *testing.T) {
	a := NewStorytellerAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "a lake at dusk", core.Context{})
	require.NoError(t, err)

	assert.Equal(t, fallbackStory, resp.Text)
	assert.Equal(t, "a lake at dusk", resp.Data["topic"])
}

func TestStorytellerUsesGeneratedStory(t *testing.T) {
	mock := model.NewMockGenerator("story")
	mock.SetDefault("Once upon a quiet evening...")
	a := NewStorytellerAgent(Deps{Generator: mock})

	resp, err := a.HandleCore(context.Background(), "", core.Context{core.KeyDisplayName: "Sam"})
	require.NoError(t, err)
	assert.Equal(t, "Once upon a quiet evening...", resp.Text)
	assert.NotContains(t, resp.Data, "topic")
}

func TestInformationFallbackApology(t *testing.T) {
	a := NewInformationAgent(Deps{})
	resp, err := a.HandleCore(context.Background(), "what is REM sleep?", core.Context{})
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "couldn't retrieve information")
	assert.Equal(t, "general_inquiry", resp.Data["topic"])
}
