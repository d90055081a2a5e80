package engine

import (
	"time"

	"github.com/sadopc/reviewr/internal/model"
)

// Goals are the cumulative savings targets. All must be positive.
type Goals struct {
	Emergency float64
	Car       float64
	Travel    float64
	// LifestyleLock is a milestone on the emergency goal.
	LifestyleLock float64
}

// Params is everything the derivations need besides the records themselves.
type Params struct {
	Goals         Goals
	Rules         Thresholds
	TargetActions int
	ForeignRate   float64
}

// DefaultParams mirror the built-in config defaults.
var DefaultParams = Params{
	Goals: Goals{
		Emergency:     1350000,
		Car:           1500000,
		Travel:        1500,
		LifestyleLock: 400000,
	},
	Rules:         DefaultThresholds,
	TargetActions: 4,
	ForeignRate:   130,
}

// GoalCard is one savings goal as shown on the dashboard.
type GoalCard struct {
	Name       string  `json:"name" yaml:"name"`
	Total      float64 `json:"total" yaml:"total"`
	Goal       float64 `json:"goal" yaml:"goal"`
	Percent    float64 `json:"percent" yaml:"percent"`
	Allocation float64 `json:"allocation" yaml:"allocation"`
	Remaining  string  `json:"remaining" yaml:"remaining"`
}

// Reached reports whether the goal is complete.
func (g GoalCard) Reached() bool { return g.Total >= g.Goal }

// NewGoalCard derives percent and months remaining for one goal.
func NewGoalCard(name string, total, goal, allocation float64) GoalCard {
	return GoalCard{
		Name:       name,
		Total:      total,
		Goal:       goal,
		Percent:    Progress(total, goal),
		Allocation: allocation,
		Remaining:  PeriodsRemaining(total, goal, allocation),
	}
}

// WeekSummary is one row of weekly history.
type WeekSummary struct {
	ID         string  `json:"id" yaml:"id"`
	WeekEnding string  `json:"weekEnding" yaml:"week_ending"`
	Verdict    Verdict `json:"verdict" yaml:"verdict"`
	Actions    int     `json:"actions" yaml:"actions"`
	Sessions   int     `json:"sessions" yaml:"sessions"`
	Legacy     bool    `json:"legacy,omitempty" yaml:"legacy,omitempty"`
	Submitted  bool    `json:"submitted" yaml:"submitted"`
}

// SummarizeWeek derives the history row for w.
func SummarizeWeek(w model.WeeklyRecord) WeekSummary {
	_, current := w.Strategy()
	return WeekSummary{
		ID:         w.ID,
		WeekEnding: w.WeekEnding,
		Verdict:    ClassifyWeek(w),
		Actions:    TotalActions(w),
		Sessions:   Sessions(w),
		Legacy:     !current,
		Submitted:  w.Submitted,
	}
}

// MonthSummary is one row of monthly history.
type MonthSummary struct {
	Month         string     `json:"month" yaml:"month"`
	EmergencyFund float64    `json:"emergencyFund" yaml:"emergency_fund"`
	CarFund       float64    `json:"carFund" yaml:"car_fund"`
	TravelFund    float64    `json:"travelFund" yaml:"travel_fund"`
	Status        RuleStatus `json:"status" yaml:"status"`
	SubmittedDate *time.Time `json:"submittedDate,omitempty" yaml:"submitted_date,omitempty"`
}

// SummarizeMonth derives the history row for m.
func SummarizeMonth(m model.MonthlyRecord, th Thresholds) MonthSummary {
	return MonthSummary{
		Month:         m.Month,
		EmergencyFund: m.EmergencyFund,
		CarFund:       m.CarFund,
		TravelFund:    m.TravelFund,
		Status:        EvaluateMonth(m, th),
		SubmittedDate: m.SubmittedDate,
	}
}

// Dashboard is the fully derived home screen.
type Dashboard struct {
	Emergency GoalCard `json:"emergency" yaml:"emergency"`
	Car       GoalCard `json:"car" yaml:"car"`
	Travel    GoalCard `json:"travel" yaml:"travel"`

	// LifestyleLocked holds while the emergency total is under the milestone.
	LifestyleLocked  bool    `json:"lifestyleLocked" yaml:"lifestyle_locked"`
	LifestyleLockPct float64 `json:"lifestyleLockPct" yaml:"lifestyle_lock_pct"`

	LatestWeek *WeekSummary   `json:"latestWeek,omitempty" yaml:"latest_week,omitempty"`
	Meters     Meters         `json:"meters" yaml:"meters"`
	Weeks      []WeekSummary  `json:"weeks" yaml:"weeks"`
	Months     []MonthSummary `json:"months" yaml:"months"`
}

// BuildDashboard folds a snapshot into the dashboard.
func BuildDashboard(d model.AppData, p Params) Dashboard {
	emergency := TotalForGoal(d.Months, EmergencyFund)
	car := TotalForGoal(d.Months, CarFund)
	travel := TotalForGoal(d.Months, TravelFund)

	// Months remaining projects from the newest month, submitted or not.
	latest, _ := LatestMonth(d.Months)

	dash := Dashboard{
		Emergency:        NewGoalCard("Emergency Fund", emergency, p.Goals.Emergency, latest.EmergencyFund),
		Car:              NewGoalCard("Car Fund", car, p.Goals.Car, latest.CarFund),
		Travel:           NewGoalCard("Travel Fund", travel, p.Goals.Travel, latest.TravelFund),
		LifestyleLocked:  emergency < p.Goals.LifestyleLock,
		LifestyleLockPct: Progress(p.Goals.LifestyleLock, p.Goals.Emergency),
		Weeks:            []WeekSummary{},
		Months:           []MonthSummary{},
	}

	for _, w := range SubmittedWeeks(d.Weeks) {
		dash.Weeks = append(dash.Weeks, SummarizeWeek(w))
	}
	if len(dash.Weeks) > 0 {
		lw := dash.Weeks[0]
		dash.LatestWeek = &lw
	}
	for _, m := range SubmittedMonths(d.Months) {
		dash.Months = append(dash.Months, SummarizeMonth(m, p.Rules))
	}

	week, _ := LatestWeek(d.Weeks)
	dash.Meters = ReadMeters(week, latest, p)
	return dash
}

// PreviewGoals returns the goal cards as they would read if editing were
// submitted now, projecting from editing's own allocation.
func PreviewGoals(months map[string]model.MonthlyRecord, editing model.MonthlyRecord, p Params) []GoalCard {
	return []GoalCard{
		NewGoalCard("Emergency Fund", LivePreview(months, editing, EmergencyFund), p.Goals.Emergency, editing.EmergencyFund),
		NewGoalCard("Car Fund", LivePreview(months, editing, CarFund), p.Goals.Car, editing.CarFund),
		NewGoalCard("Travel Fund", LivePreview(months, editing, TravelFund), p.Goals.Travel, editing.TravelFund),
	}
}
