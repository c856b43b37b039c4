package intent

import (
	"regexp"
	"strings"
)

// dependencyTriggers fire the dependency context on their own. A bare "quit"
// is deliberately absent: it shadows words like "quite", and the explicit
// phrase lives in concerningPhrases.
var dependencyTriggers = []string{
	"addict", "dependen", "craving", "alcohol", "caffeine",
	"nicotine", "smoking", "withdrawal",
}

// substanceVocab names habit-forming substances and behaviors; a substance
// mention alone is not enough, it must pair with a concerning phrase. Tokens
// short enough to hide inside everyday words ("tea" in "instead") are matched
// on word boundaries via shortSubstanceRe instead.
var substanceVocab = []string{
	// caffeine
	"coffee", "energy drink", "espresso", "latte", "cappuccino",
	// alcohol
	"wine", "beer", "vodka", "whiskey", "drinking", "cocktail",
	// nicotine
	"cigarette", "vaping", "tobacco",
	// digital
	"social media", "scrolling", "screen time", "gaming",
}

var shortSubstanceRe = regexp.MustCompile(`\btea\b`)

// concerningPhrases signal distress or loss of control around a habit.
var concerningPhrases = []string{
	"too much", "can't stop", "cant stop", "every day", "multiple times",
	"worry about", "problem with", "bad habit", "need to quit",
}

// HasDependencyCues is the deterministic dependency-context predicate. It
// confirms the dependency route when the message carries an explicit
// dependency trigger, or pairs a substance mention with concerning phrasing.
// Dependency-sensitive language always wins over classification, and the
// guard rule demotes a primary "addiction" decision this predicate does not
// confirm.
func HasDependencyCues(message string) bool {
	if message == "" {
		return false
	}
	t := strings.ToLower(message)

	for _, trigger := range dependencyTriggers {
		if strings.Contains(t, trigger) {
			return true
		}
	}

	substance := shortSubstanceRe.MatchString(t)
	if !substance {
		for _, word := range substanceVocab {
			if strings.Contains(t, word) {
				substance = true
				break
			}
		}
	}
	if !substance {
		return false
	}
	for _, phrase := range concerningPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}
