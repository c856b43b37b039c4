package core

import "context"

// Check category names used across the validation pipeline.
const (
	CategoryFairness     = "fairness"
	CategoryTransparency = "transparency"
	CategoryEthicalData  = "ethical_data_handling"
	CategoryOverall      = "overall"
	// CategorySystemError is the synthetic category substituted when the
	// validation engine itself fails; the request must still succeed.
	CategorySystemError = "system_error"
)

// CheckResult is one category's verdict on a generated response.
type CheckResult struct {
	Passed      bool           `json:"passed"`
	RiskLevel   RiskLevel      `json:"risk_level"`
	Category    string         `json:"category"`
	Message     string         `json:"message"`
	Suggestions []string       `json:"suggestions"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// CheckRequest carries everything the validation engine inspects for one
// wrapper invocation.
type CheckRequest struct {
	// Text is the agent-produced response text under inspection.
	Text string
	// ActionType hints whether transparency disclosure is mandatory.
	ActionType string
	// Context is the request context (field names feed data minimization).
	Context Context
	// DataSources lists the data the agent consulted.
	DataSources []string
	// DecisionFactors are the factors the agent reports having weighed.
	DecisionFactors map[string]any
}

// CheckReport aggregates the per-category verdicts plus the overall roll-up:
// Overall.Passed is the AND of all categories, Overall.RiskLevel the MAX.
type CheckReport struct {
	Checks  map[string]CheckResult
	Overall CheckResult
}

// Validator runs responsible-AI checks over a candidate response. The rai
// package provides the production implementation.
type Validator interface {
	Validate(ctx context.Context, req CheckRequest) (CheckReport, error)
}

// Response is the caller-facing result of one handled message. Agent core
// logic fills Agent, Text and Data; the Invoker adds the responsible-AI
// fields before the response leaves the pipeline.
type Response struct {
	Agent string         `json:"agent"`
	Text  string         `json:"text"`
	Data  map[string]any `json:"data,omitempty"`

	Checks    map[string]CheckResult `json:"responsible_ai_checks,omitempty"`
	Passed    bool                   `json:"responsible_ai_passed"`
	RiskLevel RiskLevel              `json:"responsible_ai_risk_level,omitempty"`
}

// Checked reports whether a validation pass has already been folded into the
// response. The Invoker uses this to guarantee exactly one check per request
// even when the coordinator returns a nested agent's wrapped response.
func (r *Response) Checked() bool { return r != nil && r.Checks != nil }

// EnsureData lazily allocates the Data payload.
func (r *Response) EnsureData() map[string]any {
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	return r.Data
}

// DecisionFactors extracts the reserved decision_factors entry from the
// response data, if the producing agent recorded any.
func (r *Response) DecisionFactors() map[string]any {
	if r.Data == nil {
		return nil
	}
	if m, ok := r.Data["decision_factors"].(map[string]any); ok {
		return m
	}
	return nil
}
