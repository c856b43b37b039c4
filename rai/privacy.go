package rai

import (
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

// checkEthicalData scans the response text for identifier/medical/location/
// financial leakage, enforces data minimization on the declared context
// fields, and looks for consent, security-assurance and user-rights language.
func (e *Engine) checkEthicalData(req core.CheckRequest) core.CheckResult {
	var issues []string
	var suggestions []string
	risk := core.RiskLow

	violations := detectPrivacyViolations(req.Text)
	if len(violations) > 0 {
		issues = append(issues, violations...)
		suggestions = append(suggestions, "Remove or anonymize sensitive information")
		risk = core.MaxRisk(risk, core.RiskHigh)
	}

	if !followsDataMinimization(req.Context) {
		issues = append(issues, "More data collected than necessary for sleep coaching")
		suggestions = append(suggestions, "Only collect data essential for sleep improvement")
		risk = core.MaxRisk(risk, core.RiskMedium)
	}

	if !containsAny(req.Text, consentIndicators) {
		issues = append(issues, "Response lacks appropriate consent language")
		suggestions = append(suggestions, "Include information about data usage and user rights")
		risk = core.MaxRisk(risk, core.RiskMedium)
	}

	sensitive := handlesSensitiveData(req.Context)
	if sensitive && !containsAny(req.Text, securityIndicators) {
		issues = append(issues, "No security assurance for sensitive data handling")
		suggestions = append(suggestions, "Mention data security measures when handling sensitive information")
		risk = core.MaxRisk(risk, core.RiskMedium)
	}

	if !containsAny(req.Text, userRightsIndicators) {
		issues = append(issues, "Response doesn't inform about user data rights")
		suggestions = append(suggestions, "Include information about user's right to access, modify, or delete data")
		risk = core.MaxRisk(risk, core.RiskLow)
	}

	if len(issues) == 0 {
		suggestions = append(suggestions, "Ethical data handling requirements met")
	}

	e.logger.Info("ethical data handling check completed", "issues", len(issues), "risk", risk.String())

	return core.CheckResult{
		Passed:      len(issues) == 0,
		RiskLevel:   risk,
		Category:    core.CategoryEthicalData,
		Message:     joinOrDefault(issues, "Ethical data handling check passed"),
		Suggestions: suggestions,
		Metadata: map[string]any{
			"privacy_violations":      violations,
			"sensitive_data_detected": sensitive,
			"data_types":              req.Context.FieldNames(),
		},
	}
}

func detectPrivacyViolations(text string) []string {
	var violations []string
	for _, pp := range privacyPatterns {
		if pp.re.MatchString(text) {
			violations = append(violations,
				fmt.Sprintf("Potential %s exposure detected", strings.ReplaceAll(pp.category, "_", " ")))
		}
	}
	return violations
}

// followsDataMinimization allows at most three context fields beyond the
// essential-fields set.
func followsDataMinimization(actx core.Context) bool {
	if len(actx) == 0 {
		return true
	}
	extra := 0
	for field := range actx {
		if !essentialFields[field] {
			extra++
		}
	}
	return extra <= 3
}

func handlesSensitiveData(actx core.Context) bool {
	for _, field := range sensitiveFields {
		if _, ok := actx[field]; ok {
			return true
		}
	}
	return false
}
