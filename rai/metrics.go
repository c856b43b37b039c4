package rai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/morpheuslabs/sleepmesh/core"
)

var (
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sleepmesh",
		Subsystem: "rai",
		Name:      "checks_total",
		Help:      "Responsible AI category checks by outcome and risk level.",
	}, []string{"category", "passed", "risk_level"})

	findingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sleepmesh",
		Subsystem: "rai",
		Name:      "findings_total",
		Help:      "Responsible AI suggestions emitted per category.",
	}, []string{"category"})
)

func observeCheck(category string, check core.CheckResult) {
	passed := "false"
	if check.Passed {
		passed = "true"
	}
	checksTotal.WithLabelValues(category, passed, check.RiskLevel.String()).Inc()
	if !check.Passed {
		findingsTotal.WithLabelValues(category).Add(float64(len(check.Suggestions)))
	}
}
