package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/morpheuslabs/sleepmesh/logging"
	"github.com/morpheuslabs/sleepmesh/model"
)

// labelDescriptions enumerate the closed set for the primary prompt, one
// line per label.
var labelDescriptions = []struct {
	label Label
	desc  string
}{
	{LabelAnalytics, "analyze past data, trends, summaries, reports"},
	{LabelCoach, "advice, plans, tips to improve sleep"},
	{LabelInformation, "neutral facts/definitions about topics (sleep science, caffeine/alcohol/screens in general)"},
	{LabelNutrition, "personalized lifestyle guidance using the user's logs (caffeine timing, alcohol days, exercise); use only when the user seeks personal advice or refers to their logs or own habits"},
	{LabelAddiction, "ONLY if message indicates dependency or quitting (e.g., 'addicted', 'can't stop', 'withdrawal', 'craving', 'too much', 'need to quit')"},
	{LabelPrediction, "sleep quality predictions, bedtime recommendations, forecasting tonight's sleep"},
	{LabelStoryteller, "short calming bedtime story"},
}

// Classifier chooses one label from the closed set. The LLM-backed primary
// phase is consulted first; any failure or out-of-set reply falls through to
// the deterministic keyword fallback, so classification is total.
type Classifier struct {
	generator model.Generator
	logger    logging.Logger
}

// Options configures a Classifier.
type Options struct {
	// Logger receives routing diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
}

// NewClassifier builds a classifier over the given text generator. Pass
// model.Unavailable{} to force pure deterministic behavior.
func NewClassifier(g model.Generator, optFns ...func(o *Options)) *Classifier {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{generator: g, logger: opts.Logger}
}

// Classify returns exactly one label for the message. With the primary
// phase unavailable, identical input always yields identical output.
func (c *Classifier) Classify(ctx context.Context, message string) Label {
	if label, ok := c.primary(ctx, message); ok {
		c.logger.Debug("intent classified", "label", label.String(), "via_llm", true)
		return label
	}
	label := Fallback(message)
	c.logger.Debug("intent classified", "label", label.String(), "via_llm", false)
	return label
}

// primary asks the language model to choose a label. It returns ok=false on
// provider decline or any reply outside the closed set; that is a normal
// no-decision outcome, not an error.
func (c *Classifier) primary(ctx context.Context, message string) (Label, bool) {
	raw, ok := c.generator.GenerateText(ctx, buildPrompt(message))
	if !ok {
		return "", false
	}

	label, ok := normalize(raw)
	if !ok {
		return "", false
	}

	// Guard: demote a false-positive dependency decision unless explicit
	// dependency cues confirm it.
	if label == LabelAddiction && !HasDependencyCues(message) {
		return demoteAddiction(message), true
	}
	return label, true
}

// buildPrompt embeds the message in a fixed prompt enumerating every label
// with a one-line description and requests a single-word answer.
func buildPrompt(message string) string {
	var b strings.Builder
	b.WriteString("Route the user's sleep message to exactly one agent:\n")
	for _, ld := range labelDescriptions {
		fmt.Fprintf(&b, "- %s: %s\n", ld.label, ld.desc)
	}
	fmt.Fprintf(&b, "\nUser message: %q\n\n", message)
	b.WriteString("Respond with just one word: ")
	for i, l := range AllLabels {
		if i > 0 {
			if i == len(AllLabels)-1 {
				b.WriteString(", or ")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteString(l.String())
	}
	b.WriteString(".")
	return b.String()
}

// normalize cleans a model reply down to a candidate label: trim, lowercase,
// strip quotes and periods, take the first token. Out-of-set replies count
// as no decision.
func normalize(raw string) (Label, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer("'", "", `"`, "", ".", "").Replace(cleaned)
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return "", false
	}
	label := Label(fields[0])
	if !label.Valid() {
		return "", false
	}
	return label, true
}

// demoteAddiction remaps an unconfirmed dependency decision: lifestyle
// vocabulary with first-person phrasing goes to personalized guidance,
// lifestyle vocabulary alone to neutral information, anything else to
// generic coaching.
func demoteAddiction(message string) Label {
	t := strings.ToLower(message)
	if anyContained(t, lifestyleTerms) {
		if anyContained(t, personalCues) {
			return LabelNutrition
		}
		return LabelInformation
	}
	return LabelCoach
}
