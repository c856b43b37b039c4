package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

// InformationAgent answers general knowledge questions about sleep science
// in neutral terms.
type InformationAgent struct {
	deps Deps
}

// NewInformationAgent builds the information agent.
func NewInformationAgent(deps Deps) *InformationAgent {
	return &InformationAgent{deps: deps.withDefaults()}
}

// Name implements core.Agent.
func (a *InformationAgent) Name() string { return "information" }

// ActionType implements core.Agent. Neutral facts carry no mandatory
// transparency disclosure.
func (a *InformationAgent) ActionType() string { return "general_response" }

// HandleCore answers the question, or apologizes when the provider declines.
func (a *InformationAgent) HandleCore(ctx context.Context, message string, _ core.Context) (*core.Response, error) {
	prompt := fmt.Sprintf(`You are a helpful sleep science explainer. Answer the user's question clearly and concisely, based on general knowledge about sleep science.

- Keep your answer focused on the user's question.
- Use formatting like bullet points or bold text to make the information easy to digest.
- At the end of your response, ALWAYS include the disclaimer: "_This is for informational purposes and is not medical advice._"

User's question: %q

Your answer:`, message)

	text, ok := a.deps.Generator.GenerateText(ctx, prompt)
	if !ok || text == "" {
		text = "I'm sorry, I couldn't retrieve information on that topic at the moment. " +
			"Please try asking in a different way."
	}

	return &core.Response{
		Agent: a.Name(),
		Text:  strings.TrimSpace(text),
		Data:  map[string]any{"topic": "general_inquiry"},
	}, nil
}
