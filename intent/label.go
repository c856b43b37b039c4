package intent

// Label is the closed-set routing decision produced by the classifier. One
// member exists per registered domain agent; any classifier output outside
// the set counts as "no decision" and triggers the deterministic fallback.
type Label string

const (
	// LabelAnalytics routes to past-data analysis.
	LabelAnalytics Label = "analytics"
	// LabelCoach routes to sleep improvement advice and plans.
	LabelCoach Label = "coach"
	// LabelInformation routes to neutral facts and definitions.
	LabelInformation Label = "information"
	// LabelNutrition routes to personalized lifestyle guidance.
	LabelNutrition Label = "nutrition"
	// LabelAddiction routes to dependency support. The most sensitive route;
	// gated by the dependency-context predicate.
	LabelAddiction Label = "addiction"
	// LabelPrediction routes to sleep quality forecasting.
	LabelPrediction Label = "prediction"
	// LabelStoryteller routes to bedtime story generation.
	LabelStoryteller Label = "storyteller"
)

// AllLabels lists the closed set in prompt order.
var AllLabels = []Label{
	LabelAnalytics,
	LabelCoach,
	LabelInformation,
	LabelNutrition,
	LabelAddiction,
	LabelPrediction,
	LabelStoryteller,
}

var labelSet = func() map[Label]bool {
	set := make(map[Label]bool, len(AllLabels))
	for _, l := range AllLabels {
		set[l] = true
	}
	return set
}()

// Valid reports whether l is a member of the closed set.
func (l Label) Valid() bool { return labelSet[l] }

// String returns the wire form of the label.
func (l Label) String() string { return string(l) }
