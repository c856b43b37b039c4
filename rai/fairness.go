package rai

import (
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/core"
)

// checkFairness scans for biased phrasing, scores inclusive and accessible
// language, and flags stereotyping about the caller's demographic attributes.
func (e *Engine) checkFairness(req core.CheckRequest) core.CheckResult {
	var issues []string
	var suggestions []string
	risk := core.RiskLow

	var familiesDetected []string
	seen := map[string]bool{}
	for _, bp := range biasPatterns {
		match := bp.re.FindString(req.Text)
		if match == "" {
			continue
		}
		if !seen[bp.family] {
			seen[bp.family] = true
			familiesDetected = append(familiesDetected, bp.family)
			issues = append(issues, fmt.Sprintf("Potential %s detected: %s",
				strings.ReplaceAll(bp.family, "_", " "), match))
		}
		risk = core.MaxRisk(risk, core.RiskMedium)
	}

	inclusiveScore := inclusiveLanguageScore(req.Text)
	if inclusiveScore < 0.7 {
		issues = append(issues, "Response may not be sufficiently inclusive")
		suggestions = append(suggestions, "Use more inclusive language that considers diverse backgrounds")
		risk = core.MaxRisk(risk, core.RiskMedium)
	}

	accessibilityScore := accessibilityScore(req.Text)
	if accessibilityScore < 0.8 {
		issues = append(issues, "Response may not consider accessibility needs")
		suggestions = append(suggestions, "Include alternatives for users with different abilities")
	}

	if containsStereotyping(req.Text) {
		issues = append(issues, "Response may contain stereotyping")
		suggestions = append(suggestions, "Provide personalized advice based on individual data, not assumptions")
		risk = core.MaxRisk(risk, core.RiskHigh)
	}

	if len(issues) == 0 {
		suggestions = append(suggestions, "Response appears fair and unbiased")
	}

	e.logger.Info("fairness check completed", "issues", len(issues), "risk", risk.String())

	return core.CheckResult{
		Passed:      len(issues) == 0,
		RiskLevel:   risk,
		Category:    core.CategoryFairness,
		Message:     joinOrDefault(issues, "Fairness check passed"),
		Suggestions: suggestions,
		Metadata: map[string]any{
			"inclusive_score":     inclusiveScore,
			"accessibility_score": accessibilityScore,
			"bias_types_detected": familiesDetected,
		},
	}
}

// inclusiveLanguageScore rates hedged versus absolute phrasing on [0,1].
// Neutral text scores 0.8.
func inclusiveLanguageScore(text string) float64 {
	t := strings.ToLower(text)
	inclusive := countContained(t, inclusiveTerms)
	exclusive := countContained(t, exclusiveTerms)
	if inclusive+exclusive == 0 {
		return 0.8
	}
	return float64(inclusive) / float64(inclusive+exclusive+1)
}

// accessibilityScore rates adaptive versus command phrasing on [0,1].
// Neutral text scores 0.9.
func accessibilityScore(text string) float64 {
	t := strings.ToLower(text)
	accessible := countContained(t, accessibleTerms)
	inaccessible := countContained(t, inaccessibleTerms)
	if accessible+inaccessible == 0 {
		return 0.9
	}
	return float64(accessible+1) / float64(accessible+inaccessible+1)
}

func containsStereotyping(text string) bool {
	for _, re := range stereotypingPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// countContained counts how many of the terms appear in t (each term counts
// once regardless of repetitions).
func countContained(t string, terms []string) int {
	n := 0
	for _, term := range terms {
		if strings.Contains(t, term) {
			n++
		}
	}
	return n
}

func joinOrDefault(issues []string, def string) string {
	if len(issues) == 0 {
		return def
	}
	return strings.Join(issues, "; ")
}
