package intent

import "strings"

// Keyword banks for the deterministic fallback. Matching is lowercase
// substring containment; "analy" deliberately covers analyze/analysis/
// analytics.
var (
	analyticsWords  = []string{"analy", "trend", "week", "report", "summary", "insight"}
	predictionWords = []string{"predict", "tonight", "tomorrow", "quality", "bedtime", "when should", "optimal"}
	coachWords      = []string{"plan", "tips", "improve", "advice", "coach"}

	lifestyleTerms = []string{
		"caffeine", "coffee", "alcohol", "diet", "food", "eating",
		"exercise", "workout", "screens", "screen",
	}
	personalCues = []string{
		"my ", "i ", "i'm", "i am", "based on my", "my logs",
		"last night", "last week", "should i", "what should i",
	}
	neutralPhrasings = []string{
		"explain", "what is", "define", "tell me about",
		"effect of", "impact of", "how does",
	}
)

// fallbackRule pairs a predicate with the label it selects. Rules are
// evaluated in order; the first match wins.
type fallbackRule struct {
	label Label
	match func(t string) bool
}

var fallbackRules = []fallbackRule{
	{LabelAnalytics, func(t string) bool { return anyContained(t, analyticsWords) }},
	{LabelPrediction, func(t string) bool { return anyContained(t, predictionWords) }},
	{LabelAddiction, func(t string) bool { return HasDependencyCues(t) }},
	{LabelNutrition, func(t string) bool {
		return anyContained(t, lifestyleTerms) && anyContained(t, personalCues)
	}},
	{LabelInformation, func(t string) bool {
		return anyContained(t, lifestyleTerms) && anyContained(t, neutralPhrasings)
	}},
	// Lifestyle vocabulary with no personal or neutral phrasing still goes
	// to the personalized route, the safer assumption.
	{LabelNutrition, func(t string) bool { return anyContained(t, lifestyleTerms) }},
	{LabelCoach, func(t string) bool { return anyContained(t, coachWords) }},
}

// Fallback deterministically classifies a message with keyword rules. It
// never yields "no decision": when nothing matches, the label is coach, the
// universal default.
func Fallback(message string) Label {
	t := strings.ToLower(message)
	for _, rule := range fallbackRules {
		if rule.match(t) {
			return rule.label
		}
	}
	return LabelCoach
}

func anyContained(t string, words []string) bool {
	for _, w := range words {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}
