package core

// Conventional Context keys. The core never interprets the user or log
// payloads; it only forwards them to agents and the validation engine.
const (
	// KeyUser holds the opaque caller identity (profile map, id, etc.).
	KeyUser = "user"
	// KeyLogs holds opaque historical records supplied by the caller.
	KeyLogs = "logs"
	// KeyAnalysis holds a prior chained agent's structured output.
	KeyAnalysis = "analysis"
	// KeyDisplayName holds the salutation text used in greetings only.
	KeyDisplayName = "display_name"
	// KeyHistory holds ordered prior turns, most recent last.
	KeyHistory = "history"
)

// MaxHistoryTurns bounds the conversation history attached to a Context.
const MaxHistoryTurns = 20

// Context is the mutable key/value bag passed by reference through one
// request's call chain. It is created fresh per message, mutated in place
// only by the coordinator while chaining, and never persisted by the core.
type Context map[string]any

// NewContext returns an empty request context.
func NewContext() Context { return Context{} }

// User returns the opaque caller identity, or nil when anonymous.
func (c Context) User() any {
	if c == nil {
		return nil
	}
	return c[KeyUser]
}

// Logs returns the opaque historical records, or nil.
func (c Context) Logs() any {
	if c == nil {
		return nil
	}
	return c[KeyLogs]
}

// Analysis returns the chained analysis payload, or nil when no upstream
// agent has run in this request.
func (c Context) Analysis() map[string]any {
	if c == nil {
		return nil
	}
	if m, ok := c[KeyAnalysis].(map[string]any); ok {
		return m
	}
	return nil
}

// SetAnalysis records a chained agent's output for downstream consumers.
func (c Context) SetAnalysis(data map[string]any) { c[KeyAnalysis] = data }

// DisplayName returns the greeting name, or "".
func (c Context) DisplayName() string {
	if c == nil {
		return ""
	}
	if s, ok := c[KeyDisplayName].(string); ok {
		return s
	}
	return ""
}

// FieldNames returns the declared top-level keys of the context. Used by the
// ethical-data-handling check to compare against the essential-fields set.
func (c Context) FieldNames() []string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	return names
}
