package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
	"github.com/morpheuslabs/sleepmesh/intent"
	"github.com/morpheuslabs/sleepmesh/logging"
)

// WelcomeMenu lists the capabilities shown on a greeting or empty message.
var WelcomeMenu = []string{
	"• Log last night's sleep",
	"• Analyze my last 7 days",
	"• Give me a 7-day improvement plan",
	"• Predict tonight's sleep quality",
	"• Get optimal bedtime recommendation",
	"• What do reputable sources say about caffeine/screens/bedtime?",
	"• Get lifestyle guidance from my logs (caffeine/alcohol)",
	"• Tell me a bedtime story",
}

var greetingTokens = map[string]bool{"hi": true, "hello": true, "hey": true}

// Coordinator is the central routing agent. It owns the intent classifier
// and a fixed registry of domain agents, special-cases greetings and
// dependency-sensitive language, chains analytics into coaching, and
// dispatches every answering agent through the wrapping Invoker so the
// responsible-AI pass always applies to whichever agent answers.
type Coordinator struct {
	classifier *intent.Classifier
	invoker    *core.Invoker
	registry   map[intent.Label]core.Agent
	logger     logging.Logger

	analytics core.Agent
	coach     core.Agent
	addiction core.Agent
}

// CoordinatorOptions configures a Coordinator.
type CoordinatorOptions struct {
	// Logger receives routing diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
}

// NewCoordinator wires the classifier, the wrapping invoker and the domain
// agents into a coordinator. The label→agent registry is a fixed table built
// here, so a missing registration is a startup-time error rather than a
// runtime surprise.
func NewCoordinator(
	classifier *intent.Classifier,
	invoker *core.Invoker,
	agents Registry,
	optFns ...func(o *CoordinatorOptions),
) (*Coordinator, error) {
	opts := CoordinatorOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry := map[intent.Label]core.Agent{
		intent.LabelAnalytics:   agents.Analytics,
		intent.LabelCoach:       agents.Coach,
		intent.LabelInformation: agents.Information,
		intent.LabelNutrition:   agents.Nutrition,
		intent.LabelAddiction:   agents.Addiction,
		intent.LabelPrediction:  agents.Prediction,
		intent.LabelStoryteller: agents.Storyteller,
	}
	for label, a := range registry {
		if a == nil {
			return nil, fmt.Errorf("no agent registered for label %q", label)
		}
	}

	return &Coordinator{
		classifier: classifier,
		invoker:    invoker,
		registry:   registry,
		logger:     opts.Logger,
		analytics:  agents.Analytics,
		coach:      agents.Coach,
		addiction:  agents.Addiction,
	}, nil
}

// Registry names the domain agent behind each routing label.
type Registry struct {
	Analytics   core.Agent
	Coach       core.Agent
	Information core.Agent
	Nutrition   core.Agent
	Addiction   core.Agent
	Prediction  core.Agent
	Storyteller core.Agent
}

// Name implements core.Agent.
func (c *Coordinator) Name() string { return "coordinator" }

// ActionType implements core.Agent.
func (c *Coordinator) ActionType() string { return "request_routing" }

// HandleCore routes the message:
//
//  1. Empty message or bare greeting token returns the fixed welcome menu
//     without consulting the classifier or any provider.
//  2. Dependency-sensitive language short-circuits straight to the
//     addiction agent; it always wins over classification.
//  3. Otherwise the classifier picks one label and the registered agent is
//     dispatched. The analytics→coach pair is chained: the analytics result
//     is computed first and spliced into the context for the coach.
//
// Dispatched responses come back already validated; the Invoker will not
// check them twice.
func (c *Coordinator) HandleCore(ctx context.Context, message string, actx core.Context) (*core.Response, error) {
	if actx == nil {
		actx = core.NewContext()
	}

	trimmed := strings.TrimSpace(message)
	if trimmed == "" || greetingTokens[strings.ToLower(trimmed)] {
		return c.welcome(actx), nil
	}

	if intent.HasDependencyCues(message) {
		c.logger.Info("dependency cues detected, bypassing classification")
		return c.invoker.Invoke(ctx, c.addiction, message, actx)
	}

	label := c.classifier.Classify(ctx, message)
	c.logger.Info("message routed", "intent", label.String())

	switch label {
	case intent.LabelAnalytics, intent.LabelCoach:
		return c.chainAnalysis(ctx, label, message, actx)
	default:
		target, ok := c.registry[label]
		if !ok {
			// Classification is total over the registry; coaching answers
			// anything that somehow slips through.
			target = c.coach
		}
		return c.invoker.Invoke(ctx, target, message, actx)
	}
}

// chainAnalysis serves the two labels that need precomputed analytics. For
// the analytics label the analysis is the answer. For coaching the raw
// analytics output is spliced into the context first, then the coach is
// dispatched with the enriched context; the chain is strictly sequential.
func (c *Coordinator) chainAnalysis(ctx context.Context, label intent.Label, message string, actx core.Context) (*core.Response, error) {
	if label == intent.LabelAnalytics {
		return c.invoker.Invoke(ctx, c.analytics, message, actx)
	}

	// Internal precompute: the analytics output is consumed by the coach,
	// not returned, so it goes through the unwrapped core logic.
	analysis, err := c.analytics.HandleCore(ctx, message, actx)
	if err != nil {
		c.logger.Warn("analytics precompute failed, coaching without analysis", "error", err)
	} else if analysis.Data != nil {
		actx.SetAnalysis(analysis.Data)
	}
	return c.invoker.Invoke(ctx, c.coach, message, actx)
}

// welcome renders the capability menu with an optional personalized
// salutation.
func (c *Coordinator) welcome(actx core.Context) *core.Response {
	namePart := ""
	if dn := strings.TrimSpace(actx.DisplayName()); dn != "" {
		namePart = " " + dn
	}
	text := fmt.Sprintf(
		"Hi%s! I'm your sleep coordinator.\n\n"+
			"Here are some things you can try:\n%s\n\n"+
			"Or just ask in your own words — I'll route it to the right agent.",
		namePart, strings.Join(WelcomeMenu, "\n"))
	return &core.Response{Agent: c.Name(), Text: text}
}
