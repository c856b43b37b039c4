package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxRisk(t *testing.T) {
	tests := []struct {
		name     string
		levels   []RiskLevel
		expected RiskLevel
	}{
		{"empty defaults to low", nil, RiskLow},
		{"single", []RiskLevel{RiskMedium}, RiskMedium},
		{"max wins regardless of order", []RiskLevel{RiskHigh, RiskLow, RiskMedium}, RiskHigh},
		{"critical dominates", []RiskLevel{RiskLow, RiskCritical, RiskHigh}, RiskCritical},
		{"unknown never escalates", []RiskLevel{RiskLevel("bogus"), RiskLow}, RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaxRisk(tt.levels...))
		})
	}
}

func TestRiskLevelAtLeast(t *testing.T) {
	assert.True(t, RiskCritical.AtLeast(RiskHigh))
	assert.True(t, RiskMedium.AtLeast(RiskMedium))
	assert.False(t, RiskLow.AtLeast(RiskMedium))
	assert.False(t, RiskLevel("bogus").AtLeast(RiskLow))
}
