package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
	"github.com/morpheuslabs/sleepmesh/intent"
)

const addictionDisclaimer = "_This is supportive educational guidance, not medical or addiction treatment. " +
	"If you struggle with addiction, please consult a qualified clinician or counselor._"

// AddictionAgent supports users mentioning addictive behaviors (caffeine,
// alcohol, nicotine, digital habits). It offers gentle, safe reduction
// advice and encourages professional help.
type AddictionAgent struct {
	deps Deps
}

// NewAddictionAgent builds the addiction-support agent.
func NewAddictionAgent(deps Deps) *AddictionAgent {
	return &AddictionAgent{deps: deps.withDefaults()}
}

// Name implements core.Agent.
func (a *AddictionAgent) Name() string { return "addiction" }

// ActionType implements core.Agent; behavioral-change suggestions require
// transparency disclosure.
func (a *AddictionAgent) ActionType() string { return "behavioral_change_suggestion" }

// HandleCore produces supportive guidance. When the message carries no
// dependency cues at all (possible only on direct dispatch), it says so
// rather than inventing a concern.
func (a *AddictionAgent) HandleCore(ctx context.Context, message string, _ core.Context) (*core.Response, error) {
	if !intent.HasDependencyCues(message) {
		return &core.Response{
			Agent: a.Name(),
			Text:  "I didn't detect addiction-related concerns in your message.",
		}, nil
	}

	prompt := fmt.Sprintf(`You are a supportive wellness advisor. A user is asking about addiction or dependence.

User message: %q

Write a structured response with three parts:
1. **Acknowledgment** (1-2 sentences): Empathize and normalize their concern.
2. **Safe, practical steps** (3-4 bullet points): Provide beginner-level strategies for reducing or managing addictive behaviors (like caffeine, alcohol, nicotine). Keep it gentle, encouraging, and not medicalized.
3. **Encouragement**: End with a positive, supportive note.`, message)

	text, ok := a.deps.Generator.GenerateText(ctx, prompt)
	if !ok || text == "" {
		text = "It sounds like you're concerned about dependence. " +
			"Here are a few ideas that might help:\n" +
			"• Start by reducing gradually instead of quitting abruptly.\n" +
			"• Replace the habit with a healthier routine (like tea instead of coffee, or a walk instead of a drink).\n" +
			"• Keep a journal of triggers and patterns.\n" +
			"• Reach out for support from a friend or professional if it feels overwhelming.\n\n" +
			"You're not alone — small steps add up!"
	}

	return &core.Response{
		Agent: a.Name(),
		Text:  strings.TrimSpace(text) + "\n\n" + addictionDisclaimer,
		Data:  map[string]any{"triggered": true},
	}, nil
}
