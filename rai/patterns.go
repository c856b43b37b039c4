package rai

import "regexp"

// biasPattern is one compiled matcher within a bias family.
type biasPattern struct {
	family string
	re     *regexp.Regexp
}

// biasPatterns are the matcher families that can indicate unfair or biased
// phrasing. Ordered so findings report deterministically.
var biasPatterns = []biasPattern{
	{"age_bias", regexp.MustCompile(`(?i)\b(too old|too young|at your age|elderly|senior)\b`)},
	{"age_bias", regexp.MustCompile(`(?i)\byoung people|older people\b`)},
	{"gender_bias", regexp.MustCompile(`(?i)\b(men|women|male|female) (are|should|need to|typically)\b`)},
	{"gender_bias", regexp.MustCompile(`(?i)\bgender-specific\b`)},
	{"cultural_bias", regexp.MustCompile(`(?i)\b(all people|everyone|typical|normal) (from|in) [A-Z][a-z]+\b`)},
	{"cultural_bias", regexp.MustCompile(`(?i)\bcultural assumptions\b`)},
	{"socioeconomic_bias", regexp.MustCompile(`(?i)\b(poor|rich|wealthy|low-income|high-income) people\b`)},
	{"socioeconomic_bias", regexp.MustCompile(`(?i)\bexpensive solutions only\b`)},
	{"accessibility_bias", regexp.MustCompile(`(?i)\bjust (walk|run|exercise|go to gym)\b`)},
	{"accessibility_bias", regexp.MustCompile(`(?i)\bsimply (avoid|stop|change)\b`)},
	{"medical_assumptions", regexp.MustCompile(`(?i)\ball patients with\b`)},
	{"medical_assumptions", regexp.MustCompile(`(?i)\beveryone with your condition\b`)},
}

// stereotypingPatterns flag generalizations about the caller's demographic
// attributes; any match raises fairness risk to high.
var stereotypingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)people like you`),
	regexp.MustCompile(`(?i)given your (age|gender|background)`),
	regexp.MustCompile(`(?i)typical for someone who`),
	regexp.MustCompile(`(?i)most (men|women|people) your age`),
}

// privacyPatterns detect identifier, medical, location and financial leakage
// in response text; any match raises ethical-data-handling risk to high.
var privacyPatterns = []struct {
	category string
	re       *regexp.Regexp
}{
	{"personal_identifiers", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{"personal_identifiers", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{"personal_identifiers", regexp.MustCompile(`\b\d{10,}\b`)},
	{"medical_details", regexp.MustCompile(`(?i)\bmedication:|prescription:|diagnosis:`)},
	{"medical_details", regexp.MustCompile(`(?i)\bdoctor said|physician|specialist|therapist`)},
	{"location_data", regexp.MustCompile(`(?i)\baddress:|live at|located at`)},
	{"location_data", regexp.MustCompile(`(?i)\bGPS|coordinates|latitude|longitude`)},
	{"financial_info", regexp.MustCompile(`(?i)\bincome:|salary:|credit card|bank account`)},
	{"financial_info", regexp.MustCompile(`\$\d+,?\d*\.?\d{0,2}`)},
}

// transparencyRequiredActions are the action types for which disclosure of
// reasoning, data sources and limitations is mandatory.
var transparencyRequiredActions = map[string]bool{
	"personalized_recommendation":  true,
	"data_analysis":                true,
	"pattern_detection":            true,
	"risk_assessment":              true,
	"behavioral_change_suggestion": true,
	"sleep_coaching_plan":          true,
}

// Keyword banks used by the phrasing scores and indicator checks. Matching
// is plain lowercase substring containment, mirroring the scoring model the
// thresholds were tuned against.
var (
	inclusiveTerms = []string{
		"everyone", "all people", "individuals", "people", "users",
		"may", "might", "could", "consider", "explore", "options",
	}
	exclusiveTerms = []string{
		"all women", "all men", "typical", "normal", "standard",
		"everyone should", "you must", "always", "never",
	}

	accessibleTerms = []string{
		"alternative", "option", "adapt", "modify", "accommodate",
		"if you're able", "as comfortable", "within your abilities",
	}
	inaccessibleTerms = []string{
		"just", "simply", "easy", "quick", "obviously", "clearly",
	}

	explanationIndicators = []string{
		"based on", "because", "due to", "analysis shows", "data indicates",
		"considering your", "taking into account", "the reason", "this suggests",
	}
	dataSourceIndicators = []string{
		"your sleep logs", "based on your data", "from your records",
		"your sleep history", "tracking shows", "your patterns",
	}
	limitationIndicators = []string{
		"disclaimer", "not medical advice", "consult", "healthcare provider",
		"limitations", "may not apply", "individual results", "seek professional",
	}
	attributionIndicators = []string{
		"ai", "algorithm", "automated", "system", "morpheus",
		"sleep coach", "digital assistant",
	}

	consentIndicators = []string{
		"with your permission", "you can opt out", "data usage",
		"privacy", "consent", "your choice", "control",
	}
	securityIndicators = []string{
		"secure", "encrypted", "protected", "safe", "security",
		"confidential", "privacy", "safeguarded",
	}
	userRightsIndicators = []string{
		"delete", "modify", "access", "export", "control",
		"rights", "manage", "update", "remove",
	}
)

// essentialFields is the data-minimization allow-list: context fields beyond
// this set count as extra, and more than three extras is a finding.
var essentialFields = map[string]bool{
	"sleep_duration": true,
	"bedtime":        true,
	"wake_time":      true,
	"sleep_quality":  true,
	"awakenings":     true,
	"user_id":        true,
	"date":           true,
}

// sensitiveFields mark a context as carrying sensitive data, which makes the
// security-assurance language check mandatory.
var sensitiveFields = []string{
	"medical_conditions", "medications", "mental_health",
	"personal_notes", "location", "financial_info",
}
