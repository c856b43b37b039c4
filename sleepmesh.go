// Package sleepmesh is a multi-agent sleep wellness assistant. Free-text
// messages are routed by a coordinating agent to specialized domain agents
// (analytics, coaching, information, nutrition, addiction support,
// prediction, storytelling), and every outgoing response passes through a
// responsible-AI validation engine that checks fairness, transparency and
// ethical data handling.
package sleepmesh

import (
	"context"
	"time"

	"github.com/morpheuslabs/sleepmesh/agent"
	"github.com/morpheuslabs/sleepmesh/core"
	"github.com/morpheuslabs/sleepmesh/intent"
	"github.com/morpheuslabs/sleepmesh/internal/util"
	"github.com/morpheuslabs/sleepmesh/logging"
	"github.com/morpheuslabs/sleepmesh/model"
	"github.com/morpheuslabs/sleepmesh/rai"
	"github.com/morpheuslabs/sleepmesh/session"
)

const errorReply = "I apologize, but I ran into a problem handling your message. Please try again."

// Options configures a Mesh.
type Options struct {
	// Generator backs the classifier and the domain agents. Defaults to a
	// provider that always declines, which forces deterministic fallbacks.
	Generator model.Generator
	// Validator gates every response. Defaults to the built-in engine.
	Validator core.Validator
	// Store persists conversation turns and profile names. Defaults to the
	// in-memory store.
	Store core.ConversationStore
	// Logger receives structured diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
	// SkipChecks disables the responsible-AI pass. Test/tooling use only.
	SkipChecks bool
}

// Mesh is the assembled assistant: coordinator, domain agents, classifier,
// validation engine and conversation store wired together. Safe for
// concurrent use.
type Mesh struct {
	coordinator *agent.Coordinator
	invoker     *core.Invoker
	store       core.ConversationStore
	logger      logging.Logger
}

// New assembles a Mesh.
func New(optFns ...func(o *Options)) (*Mesh, error) {
	opts := Options{
		Generator: model.Unavailable{},
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Validator == nil {
		opts.Validator = rai.NewEngine(func(o *rai.Options) {
			o.Logger = opts.Logger
		})
	}
	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore()
	}

	invoker := core.NewInvoker(opts.Validator, func(o *core.InvokerOptions) {
		o.Logger = opts.Logger
		o.SkipChecks = opts.SkipChecks
	})

	classifier := intent.NewClassifier(opts.Generator, func(o *intent.Options) {
		o.Logger = opts.Logger
	})

	deps := agent.Deps{Generator: opts.Generator, Logger: opts.Logger}
	coordinator, err := agent.NewCoordinator(classifier, invoker, agent.Registry{
		Analytics:   agent.NewAnalyticsAgent(deps),
		Coach:       agent.NewCoachAgent(deps),
		Information: agent.NewInformationAgent(deps),
		Nutrition:   agent.NewNutritionAgent(deps),
		Addiction:   agent.NewAddictionAgent(deps),
		Prediction:  agent.NewPredictionAgent(deps),
		Storyteller: agent.NewStorytellerAgent(deps),
	}, func(o *agent.CoordinatorOptions) {
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}

	return &Mesh{
		coordinator: coordinator,
		invoker:     invoker,
		store:       opts.Store,
		logger:      opts.Logger,
	}, nil
}

// HandleOptions configures a single Handle call.
type HandleOptions struct {
	// Context seeds the per-request context, typically with the caller's
	// profile under core.KeyUser and recent sleep records under
	// core.KeyLogs. History and display name are attached on top.
	Context core.Context
}

// Handle processes one user message in a conversation: it attaches the
// bounded history and the caller's display name to the request context,
// routes the message through the coordinator, persists both turns and
// returns the validated response.
//
// An agent failure never surfaces as an error to the caller; a minimal
// apology response is returned instead.
func (m *Mesh) Handle(ctx context.Context, conversationID, userID, message string, optFns ...func(o *HandleOptions)) (*core.Response, error) {
	hopts := HandleOptions{}
	for _, fn := range optFns {
		fn(&hopts)
	}

	actx := core.NewContext()
	for k, v := range hopts.Context {
		actx[k] = v
	}
	if userID != "" {
		if _, ok := actx[core.KeyUser]; !ok {
			actx[core.KeyUser] = userID
		}
		if name, err := m.store.DisplayName(ctx, userID); err == nil && name != "" {
			actx[core.KeyDisplayName] = name
		}
	}
	if history, err := m.store.History(ctx, conversationID, core.MaxHistoryTurns); err == nil && len(history) > 0 {
		actx[core.KeyHistory] = history
	} else if err != nil {
		m.logger.Warn("history load failed", "conversation_id", conversationID, "error", err)
	}

	resp, err := m.invoker.Invoke(ctx, m.coordinator, message, actx)
	if err != nil {
		m.logger.Error("message handling failed", "conversation_id", conversationID, "error", err)
		resp = &core.Response{Agent: m.coordinator.Name(), Text: errorReply}
	}

	m.record(ctx, conversationID, core.Turn{
		Role: "user",
		Text: message,
	})
	m.record(ctx, conversationID, core.Turn{
		Role:  "assistant",
		Agent: resp.Agent,
		Text:  resp.Text,
	})

	return resp, nil
}

// record appends one turn; persistence failures are logged, never fatal.
func (m *Mesh) record(ctx context.Context, conversationID string, turn core.Turn) {
	turn.ID = util.NewID()
	turn.ConversationID = conversationID
	turn.CreatedAt = time.Now().UTC()
	if err := m.store.AppendTurn(ctx, turn); err != nil {
		m.logger.Warn("turn persistence failed", "conversation_id", conversationID, "error", err)
	}
}
