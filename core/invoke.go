package core

import (
	"context"
	"fmt"

	"github.com/morpheuslabs/sleepmesh/logging"
)

// Fixed remediation fragments applied when aggregate risk is critical. The
// original text is always preserved between the apology and the disclaimers.
const (
	apologyPrefix = "I apologize, but I need to modify my response to ensure it meets our responsible AI guidelines. "

	disclaimerBlock = "**Important Disclaimers:**\n" +
		"- This is AI-generated educational guidance, not medical advice\n" +
		"- Individual results may vary based on personal circumstances\n" +
		"- Please consult healthcare providers for serious sleep disorders\n" +
		"- You have full control over your data and can modify or delete it anytime"
)

// ModificationKey is the reserved Data key recording a critical rewrite.
const ModificationKey = "responsible_ai_modification"

// Invoker is the only supported way to execute an agent. It runs the agent's
// core logic, applies the responsible-AI validation pass, merges the verdict
// into the response and rewrites the text when aggregate risk is critical.
//
// The zero value is not usable; construct with NewInvoker.
type Invoker struct {
	validator Validator
	logger    logging.Logger
	// skipChecks disables validation for this invoker instance. Meant for
	// tests and trusted offline tooling only.
	skipChecks bool
}

// InvokerOptions configures an Invoker.
type InvokerOptions struct {
	// Logger receives wrapper diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
	// SkipChecks disables the validation pass (default off).
	SkipChecks bool
}

// NewInvoker builds an Invoker around the given validator.
func NewInvoker(v Validator, optFns ...func(o *InvokerOptions)) *Invoker {
	opts := InvokerOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Invoker{validator: v, logger: opts.Logger, skipChecks: opts.SkipChecks}
}

// Invoke executes the agent's core logic and gates the result through the
// validation engine. When the core response already carries check results
// (a nested dispatch wrapped it), Invoke returns it untouched so every
// response is checked exactly once per request.
//
// A validator failure never fails the request: a synthetic system_error
// category at medium risk is substituted and the response proceeds.
func (iv *Invoker) Invoke(ctx context.Context, a Agent, message string, actx Context) (*Response, error) {
	if actx == nil {
		actx = NewContext()
	}

	resp, err := a.HandleCore(ctx, message, actx)
	if err != nil {
		return nil, fmt.Errorf("agent %q: %w", a.Name(), err)
	}
	if resp == nil {
		return nil, fmt.Errorf("agent %q: nil response", a.Name())
	}
	if iv.skipChecks || resp.Checked() {
		return resp, nil
	}

	report := iv.validate(ctx, a, resp, actx)

	resp.Checks = make(map[string]CheckResult, len(report.Checks)+1)
	for name, check := range report.Checks {
		resp.Checks[name] = check
	}
	resp.Checks[CategoryOverall] = report.Overall
	resp.Passed = report.Overall.Passed
	resp.RiskLevel = report.Overall.RiskLevel

	if resp.RiskLevel == RiskCritical {
		remediate(resp, report)
		iv.logger.Warn("critical responsible-AI findings, response rewritten", "agent", a.Name())
	}
	return resp, nil
}

// validate runs the engine and degrades to the synthetic system_error
// category when the engine itself fails.
func (iv *Invoker) validate(ctx context.Context, a Agent, resp *Response, actx Context) CheckReport {
	sources := defaultDataSources(actx)
	if ds, ok := a.(DataSourcer); ok {
		sources = ds.DataSources(actx)
	}

	report, err := iv.validator.Validate(ctx, CheckRequest{
		Text:            resp.Text,
		ActionType:      a.ActionType(),
		Context:         actx,
		DataSources:     sources,
		DecisionFactors: resp.DecisionFactors(),
	})
	if err == nil {
		return report
	}

	iv.logger.Error("responsible-AI validation failed", "agent", a.Name(), "error", err)
	fallback := CheckResult{
		Passed:      false,
		RiskLevel:   RiskMedium,
		Category:    CategorySystemError,
		Message:     fmt.Sprintf("Responsible AI check failed: %v", err),
		Suggestions: []string{"Manual review recommended"},
		Metadata:    map[string]any{},
	}
	return CheckReport{
		Checks:  map[string]CheckResult{CategorySystemError: fallback},
		Overall: fallback,
	}
}

// remediate rewrites a critical response: apology prefix, unmodified original
// text, the four fixed disclaimer bullets, and a modification record under
// the reserved Data key.
func remediate(resp *Response, report CheckReport) {
	var criticalIssues []string
	var modifications []string
	for _, check := range report.Checks {
		if check.RiskLevel != RiskCritical {
			continue
		}
		msg := check.Message
		if msg == "" {
			msg = "Critical issue detected"
		}
		criticalIssues = append(criticalIssues, msg)
		modifications = append(modifications, check.Suggestions...)
	}

	resp.Text = apologyPrefix + resp.Text + "\n\n" + disclaimerBlock
	resp.EnsureData()[ModificationKey] = map[string]any{
		"modified":           true,
		"critical_issues":    criticalIssues,
		"modifications_made": modifications,
	}
}
