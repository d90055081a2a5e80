package engine

import "github.com/sadopc/reviewr/internal/model"

// Status is a traffic-light meter reading.
type Status string

const (
	StatusStable         Status = "STABLE"
	StatusMonitoring     Status = "MONITORING"
	StatusActionRequired Status = "ACTION REQUIRED"
)

// LeverageStatus rates the week's total real actions against target.
func LeverageStatus(totalActions, target int) Status {
	switch {
	case totalActions >= target:
		return StatusStable
	case totalActions > 0:
		return StatusMonitoring
	default:
		return StatusActionRequired
	}
}

// HealthStatus rates the week's training sessions.
func HealthStatus(sessions int) Status {
	switch {
	case sessions >= MinEnergy:
		return StatusStable
	case sessions == 1:
		return StatusMonitoring
	default:
		return StatusActionRequired
	}
}

// WealthStatus rates one month's emergency contribution against target.
func WealthStatus(contribution, target float64) Status {
	switch {
	case contribution >= target:
		return StatusStable
	case contribution > 0:
		return StatusMonitoring
	default:
		return StatusActionRequired
	}
}

// Meters groups the three readings shown on the dashboard.
type Meters struct {
	Leverage Status `json:"leverage" yaml:"leverage"`
	Health   Status `json:"health" yaml:"health"`
	Wealth   Status `json:"wealth" yaml:"wealth"`
}

// Sessions is the week's training count: energy for current records, the old
// muay thai counter for legacy ones.
func Sessions(w model.WeeklyRecord) int {
	if s, ok := w.Strategy(); ok {
		return s.Energy
	}
	if w.MuayThaiSessions != nil {
		return *w.MuayThaiSessions
	}
	return 0
}

// TotalActions counts real tags for either outcome shape.
func TotalActions(w model.WeeklyRecord) int {
	switch o := w.Outcome.(type) {
	case model.CurrentWeek:
		return o.Strategy.TotalActions()
	case model.LegacyWeek:
		return o.JobProgress.Count() + o.DecisionOwnership.Count() + o.FrontendOutput.Count()
	}
	return 0
}

// ReadMeters computes all three meters for a week and a month.
func ReadMeters(w model.WeeklyRecord, m model.MonthlyRecord, p Params) Meters {
	return Meters{
		Leverage: LeverageStatus(TotalActions(w), p.TargetActions),
		Health:   HealthStatus(Sessions(w)),
		Wealth:   WealthStatus(m.EmergencyFund, p.Rules.EmergencyMin),
	}
}
