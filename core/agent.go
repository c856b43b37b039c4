package core

import "context"

// Agent is the polymorphic unit of work: it converts a message plus request
// context into a response. Implementations provide only the core logic;
// callers must go through an Invoker so the responsible-AI pass cannot be
// bypassed by construction.
type Agent interface {
	// Name identifies the agent in responses ("coach", "analytics", ...).
	Name() string
	// ActionType tags the kind of action the agent performs. The
	// transparency check uses it to decide whether disclosure is mandatory.
	ActionType() string
	// HandleCore runs the agent's variant-specific logic. It must not apply
	// validation itself.
	HandleCore(ctx context.Context, message string, actx Context) (*Response, error)
}

// DataSourcer lets an agent override the default data-source inventory that
// the wrapper reports to the validation engine.
type DataSourcer interface {
	DataSources(actx Context) []string
}

// defaultDataSources inspects the conventional context keys and names the
// data present. Agents that consult other inputs implement DataSourcer.
func defaultDataSources(actx Context) []string {
	var sources []string
	if actx.Logs() != nil {
		sources = append(sources, "user_sleep_logs")
	}
	if actx.User() != nil {
		sources = append(sources, "user_profile")
	}
	if actx.Analysis() != nil {
		sources = append(sources, "sleep_analysis")
	}
	return sources
}
