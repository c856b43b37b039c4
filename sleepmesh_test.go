package sleepmesh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morpheuslabs/sleepmesh/agent"
	"github.com/morpheuslabs/sleepmesh/core"
	"github.com/morpheuslabs/sleepmesh/model"
	"github.com/morpheuslabs/sleepmesh/session"
)

func TestHandleGreeting(t *testing.T) {
	store := session.NewInMemoryStore()
	store.SetDisplayName("u1", "Sam")

	mesh, err := New(func(o *Options) { o.Store = store })
	require.NoError(t, err)

	resp, err := mesh.Handle(context.Background(), "c1", "u1", "hi")
	require.NoError(t, err)

	assert.Equal(t, "coordinator", resp.Agent)
	assert.Contains(t, resp.Text, "Hi Sam!")
	assert.Contains(t, resp.Text, "Analyze my last 7 days")
	assert.True(t, resp.Checked(), "even the menu passes through validation")

	history, err := store.History(context.Background(), "c1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "hi", history[0].Text)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, "coordinator", history[1].Agent)
	assert.NotEmpty(t, history[0].ID)
}

func TestHandleDependencyScenario(t *testing.T) {
	mesh, err := New()
	require.NoError(t, err)

	resp, err := mesh.Handle(context.Background(), "c1", "u1",
		"I've been drinking too much coffee every day and can't sleep")
	require.NoError(t, err)

	assert.Equal(t, "addiction", resp.Agent)
	require.True(t, resp.Checked())
	assert.Contains(t, resp.Checks, core.CategoryFairness)
	assert.Contains(t, resp.Checks, core.CategoryTransparency)
	assert.Contains(t, resp.Checks, core.CategoryEthicalData)
	assert.Contains(t, resp.Checks, core.CategoryOverall)
}

func TestHandleChainedCoachingWithLogs(t *testing.T) {
	mesh, err := New(func(o *Options) {
		g := model.NewMockGenerator("router")
		g.SetDefault("coach")
		o.Generator = g
	})
	require.NoError(t, err)

	bed := time.Date(2026, 1, 1, 23, 0, 0, 0, time.UTC)
	logs := []agent.SleepLog{
		{Bedtime: bed, WakeTime: bed.Add(8 * time.Hour)},
		{Bedtime: bed.AddDate(0, 0, 1), WakeTime: bed.AddDate(0, 0, 1).Add(8 * time.Hour)},
	}

	resp, err := mesh.Handle(context.Background(), "c1", "u1", "make me a plan",
		func(o *HandleOptions) {
			o.Context = core.Context{core.KeyLogs: logs}
		})
	require.NoError(t, err)
	assert.Equal(t, "coach", resp.Agent)
	assert.NotEmpty(t, resp.RiskLevel)
}

func TestHandleAnonymousUser(t *testing.T) {
	mesh, err := New()
	require.NoError(t, err)

	// Routed to analytics by the fallback; without a signed-in user the
	// agent asks for sign-in instead of failing.
	resp, err := mesh.Handle(context.Background(), "c1", "", "analyze my week")
	require.NoError(t, err)
	assert.Equal(t, "analytics", resp.Agent)
	assert.Contains(t, resp.Text, "sign in")
}

func TestHandleSkipChecks(t *testing.T) {
	mesh, err := New(func(o *Options) { o.SkipChecks = true })
	require.NoError(t, err)

	resp, err := mesh.Handle(context.Background(), "c1", "u1", "hi")
	require.NoError(t, err)
	assert.False(t, resp.Checked())
}
