package rai

import (
	"context"
	"time"

	"github.com/morpheuslabs/sleepmesh/core"
	"github.com/morpheuslabs/sleepmesh/logging"
)

// Engine runs the three responsible-AI check categories and aggregates the
// verdicts. It is stateless across requests and safe for concurrent use.
type Engine struct {
	logger logging.Logger
	now    func() time.Time
}

// Options configures an Engine.
type Options struct {
	// Logger receives per-category diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
}

// NewEngine constructs a validation engine.
func NewEngine(optFns ...func(o *Options)) *Engine {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{logger: opts.Logger, now: time.Now}
}

// Validate implements core.Validator. All three categories are always
// evaluated; there is no short-circuiting. The overall result carries a
// timestamp and the evaluated category names but no remediation text of its
// own; remediation belongs to the invocation wrapper.
func (e *Engine) Validate(ctx context.Context, req core.CheckRequest) (core.CheckReport, error) {
	if err := ctx.Err(); err != nil {
		return core.CheckReport{}, err
	}

	checks := map[string]core.CheckResult{
		core.CategoryFairness:     e.checkFairness(req),
		core.CategoryTransparency: e.checkTransparency(req),
		core.CategoryEthicalData:  e.checkEthicalData(req),
	}

	passed := true
	names := make([]string, 0, len(checks))
	levels := make([]core.RiskLevel, 0, len(checks))
	for name, check := range checks {
		passed = passed && check.Passed
		names = append(names, name)
		levels = append(levels, check.RiskLevel)
		observeCheck(name, check)
	}

	overall := core.CheckResult{
		Passed:      passed,
		RiskLevel:   core.MaxRisk(levels...),
		Category:    "comprehensive",
		Message:     "Comprehensive responsible AI check completed",
		Suggestions: []string{},
		Metadata: map[string]any{
			"timestamp":      e.now().Format(time.RFC3339),
			"checks_run":     names,
			"overall_passed": passed,
		},
	}

	e.logger.Info("comprehensive responsible AI check completed", "risk", overall.RiskLevel.String())

	return core.CheckReport{Checks: checks, Overall: overall}, nil
}
