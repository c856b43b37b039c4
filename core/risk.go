package core

// RiskLevel classifies the severity of a responsible-AI finding. Levels form
// a total order (low < medium < high < critical); aggregation across check
// categories always takes the maximum, never an average.
type RiskLevel string

const (
	// RiskLow indicates no significant findings.
	RiskLow RiskLevel = "low"
	// RiskMedium indicates findings that should be reviewed but do not block.
	RiskMedium RiskLevel = "medium"
	// RiskHigh indicates findings such as privacy leakage or stereotyping.
	RiskHigh RiskLevel = "high"
	// RiskCritical indicates the response must be rewritten before delivery.
	RiskCritical RiskLevel = "critical"
)

// severity maps each level onto the total order. Unknown levels rank below
// low so a malformed value can never escalate a response.
func (r RiskLevel) severity() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether r is as severe as other or more.
func (r RiskLevel) AtLeast(other RiskLevel) bool { return r.severity() >= other.severity() }

// String returns the wire representation of the level.
func (r RiskLevel) String() string { return string(r) }

// MaxRisk returns the most severe of the given levels, or RiskLow when none
// are provided.
func MaxRisk(levels ...RiskLevel) RiskLevel {
	max := RiskLow
	for _, l := range levels {
		if l.severity() > max.severity() {
			max = l
		}
	}
	return max
}
