package rai

import (
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

// checkTransparency verifies that responses disclose reasoning, data sources
// and limitations whenever the action type makes disclosure mandatory, and
// independently that the response identifies itself as AI-generated and
// explains reported decision factors.
func (e *Engine) checkTransparency(req core.CheckRequest) core.CheckResult {
	var issues []string
	var suggestions []string
	risk := core.RiskLow

	required := transparencyRequiredActions[req.ActionType]
	if required {
		if !containsAny(req.Text, explanationIndicators) {
			issues = append(issues, "Response lacks explanation of AI reasoning")
			suggestions = append(suggestions, "Add explanation of how recommendations were generated")
			risk = core.MaxRisk(risk, core.RiskMedium)
		}
		if !containsAny(req.Text, dataSourceIndicators) {
			issues = append(issues, "Response doesn't disclose data sources used")
			suggestions = append(suggestions, "Mention what data was analyzed to generate this response")
			risk = core.MaxRisk(risk, core.RiskMedium)
		}
		if !containsAny(req.Text, limitationIndicators) {
			issues = append(issues, "Response doesn't acknowledge AI limitations")
			suggestions = append(suggestions, "Include disclaimer about AI limitations and when to seek human help")
			risk = core.MaxRisk(risk, core.RiskMedium)
		}
	}

	if !containsAny(req.Text, attributionIndicators) {
		issues = append(issues, "Response doesn't clearly identify it's from AI")
		suggestions = append(suggestions, "Make it clear this is AI-generated advice")
		risk = core.MaxRisk(risk, core.RiskLow)
	}

	if len(req.DecisionFactors) > 0 && !explainsDecisionFactors(req.Text, req.DecisionFactors) {
		issues = append(issues, "Key decision factors not explained to user")
		suggestions = append(suggestions, "Explain what factors influenced this recommendation")
		risk = core.MaxRisk(risk, core.RiskMedium)
	}

	if len(issues) == 0 {
		suggestions = append(suggestions, "Response meets transparency requirements")
	}

	e.logger.Info("transparency check completed", "action_type", req.ActionType, "issues", len(issues))

	return core.CheckResult{
		Passed:      len(issues) == 0,
		RiskLevel:   risk,
		Category:    core.CategoryTransparency,
		Message:     joinOrDefault(issues, "Transparency check passed"),
		Suggestions: suggestions,
		Metadata: map[string]any{
			"action_type":           req.ActionType,
			"data_sources":          req.DataSources,
			"decision_factors":      keysOf(req.DecisionFactors),
			"requires_transparency": required,
		},
	}
}

// explainsDecisionFactors requires at least half of the reported factors to
// be named in the response text.
func explainsDecisionFactors(text string, factors map[string]any) bool {
	t := strings.ToLower(text)
	mentioned := 0
	for factor := range factors {
		if strings.Contains(t, strings.ToLower(factor)) {
			mentioned++
		}
	}
	return float64(mentioned) >= float64(len(factors))*0.5
}

func containsAny(text string, indicators []string) bool {
	t := strings.ToLower(text)
	for _, ind := range indicators {
		if strings.Contains(t, ind) {
			return true
		}
	}
	return false
}

func keysOf(m map[string]any) []string {
	if len(m) == 0 {
		return []string{}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
