package engine

import "github.com/sadopc/reviewr/internal/model"

// RuleStatus is the outcome of the monthly savings rule.
type RuleStatus string

const (
	RuleMet     RuleStatus = "MET"
	RulePartial RuleStatus = "PARTIAL"
	RuleMissed  RuleStatus = "DIDN'T MEET"
)

// Thresholds are the per-month minimum contributions.
type Thresholds struct {
	EmergencyMin float64
	TravelMin    float64
}

// DefaultThresholds are 50,000 local and 250 foreign.
var DefaultThresholds = Thresholds{EmergencyMin: 50000, TravelMin: 250}

// EvaluateMonth checks m's contributions against th.
func EvaluateMonth(m model.MonthlyRecord, th Thresholds) RuleStatus {
	emergency := m.EmergencyFund >= th.EmergencyMin
	travel := m.TravelFund >= th.TravelMin
	switch {
	case emergency && travel:
		return RuleMet
	case emergency || travel:
		return RulePartial
	default:
		return RuleMissed
	}
}
