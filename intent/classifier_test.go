package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morpheuslabs/sleepmesh/model"
)

func TestClassifyPrimaryDecision(t *testing.T) {
	mock := model.NewMockGenerator("router")
	mock.SetDefault("prediction")
	c := NewClassifier(mock)

	label := c.Classify(context.Background(), "how will I sleep?")
	assert.Equal(t, LabelPrediction, label)
	assert.Equal(t, 1, mock.Calls())
}

func TestClassifyNormalizesReplies(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected Label
	}{
		{"quoted and capitalized", `"Analytics."`, LabelAnalytics},
		{"single quotes", "'storyteller'", LabelStoryteller},
		{"surrounding whitespace", "  coach  ", LabelCoach},
		{"first token of a sentence", "information is the best fit here", LabelInformation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := model.NewMockGenerator("router")
			mock.SetDefault(tt.reply)
			c := NewClassifier(mock)
			assert.Equal(t, tt.expected, c.Classify(context.Background(), "tell me about sleep"))
		})
	}
}

func TestClassifyOutOfSetReplyFallsBack(t *testing.T) {
	mock := model.NewMockGenerator("router")
	mock.SetDefault("weather")
	c := NewClassifier(mock)

	// The fallback keyword rules decide instead of the out-of-set reply.
	label := c.Classify(context.Background(), "show me my weekly trend report")
	assert.Equal(t, LabelAnalytics, label)
}

func TestClassifyIsTotalWithoutProvider(t *testing.T) {
	c := NewClassifier(model.Unavailable{})

	// Nothing matches any keyword rule: coaching is the universal default.
	label := c.Classify(context.Background(), "xyzzy")
	assert.Equal(t, LabelCoach, label)

	// Identical input, identical output.
	assert.Equal(t, label, c.Classify(context.Background(), "xyzzy"))
}

func TestClassifyDemotesUnconfirmedAddiction(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Label
	}{
		{
			name:     "lifestyle with personal phrasing goes to nutrition",
			message:  "I love my evening coffee ritual",
			expected: LabelNutrition,
		},
		{
			name:     "lifestyle without personal phrasing goes to information",
			message:  "coffee before noon",
			expected: LabelInformation,
		},
		{
			name:     "no lifestyle vocabulary goes to coach",
			message:  "help me wind down at night",
			expected: LabelCoach,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := model.NewMockGenerator("router")
			mock.SetDefault("addiction")
			c := NewClassifier(mock)
			assert.Equal(t, tt.expected, c.Classify(context.Background(), tt.message))
		})
	}
}

func TestClassifyKeepsConfirmedAddiction(t *testing.T) {
	mock := model.NewMockGenerator("router")
	mock.SetDefault("addiction")
	c := NewClassifier(mock)

	label := c.Classify(context.Background(), "I think I'm addicted to my phone at night")
	assert.Equal(t, LabelAddiction, label)
}

func TestFallbackRuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Label
	}{
		{"analytics keywords win first", "analyze my week", LabelAnalytics},
		{"prediction keywords", "what's the optimal bedtime tonight?", LabelPrediction},
		{"dependency cues", "I need to quit caffeine", LabelAddiction},
		{"lifestyle plus personal", "should I cut my coffee?", LabelNutrition},
		{"lifestyle plus neutral phrasing", "explain the effect of screens on sleep", LabelInformation},
		{"bare lifestyle defaults to nutrition", "diet and sleeping", LabelNutrition},
		{"coach keywords", "give me some advice", LabelCoach},
		{"nothing matches defaults to coach", "good evening to all", LabelCoach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fallback(tt.message))
		})
	}
}

func TestHasDependencyCues(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected bool
	}{
		{"empty", "", false},
		{"explicit trigger", "am I addicted?", true},
		{"withdrawal trigger", "withdrawal symptoms keep me up", true},
		{"bare substance mention does not fire", "I had coffee with breakfast", false},
		{"substance plus concerning phrase fires", "I've been drinking too much coffee every day and can't sleep", true},
		{"digital habit with loss of control", "I can't stop scrolling at night", true},
		{"concerning phrase without substance", "I worry about my schedule", false},
		{"quite is not quit", "I'm quite tired tonight", false},
		{"instead is not tea", "I walk to work instead of driving every day", false},
		{"equity is not quit", "equity markets keep me up at night", false},
		{"tea as a word still counts", "I drink tea every day and sleep badly", true},
		{"explicit quitting phrase fires", "I need to quit my evening tea habit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasDependencyCues(tt.message))
		})
	}
}
