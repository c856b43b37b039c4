package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockGenerator(t *testing.T) {
	ctx := context.Background()
	mock := NewMockGenerator("test")

	_, ok := mock.GenerateText(ctx, "unknown prompt")
	assert.False(t, ok, "unregistered prompts decline without a default")

	mock.AddResponse("hello", "world")
	text, ok := mock.GenerateText(ctx, "hello")
	assert.True(t, ok)
	assert.Equal(t, "world", text)

	mock.SetDefault("fallback")
	text, ok = mock.GenerateText(ctx, "unknown prompt")
	assert.True(t, ok)
	assert.Equal(t, "fallback", text)

	assert.Equal(t, 3, mock.Calls())
	assert.Equal(t, "mock", mock.Info().Provider)
}

func TestMockGeneratorHonorsCancellation(t *testing.T) {
	mock := NewMockGenerator("test")
	mock.SetDefault("fallback")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok := mock.GenerateText(ctx, "anything")
	assert.False(t, ok)
}

func TestUnavailableAlwaysDeclines(t *testing.T) {
	_, ok := Unavailable{}.GenerateText(context.Background(), "anything")
	assert.False(t, ok)
	assert.Equal(t, "none", Unavailable{}.Info().Provider)
}

func TestChainOrder(t *testing.T) {
	ctx := context.Background()

	first := NewMockGenerator("first")
	second := NewMockGenerator("second")
	second.SetDefault("from second")

	chain := NewChain(first, second)
	text, ok := chain.GenerateText(ctx, "anything")
	assert.True(t, ok)
	assert.Equal(t, "from second", text, "a decline falls through to the next member")
	assert.Equal(t, 1, first.Calls())

	first.SetDefault("from first")
	text, ok = chain.GenerateText(ctx, "anything")
	assert.True(t, ok)
	assert.Equal(t, "from first", text, "the first non-empty result wins")
	assert.Equal(t, 1, second.Calls())
}

func TestChainInfo(t *testing.T) {
	assert.Equal(t, "none", NewChain().Info().Provider)

	chain := NewChain(NewMockGenerator("primary"), NewMockGenerator("secondary"))
	assert.Equal(t, "chain:primary", chain.Info().Name)
}

func TestChainAllDecline(t *testing.T) {
	chain := NewChain(Unavailable{}, Unavailable{})
	_, ok := chain.GenerateText(context.Background(), "anything")
	assert.False(t, ok)
}
