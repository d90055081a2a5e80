package engine

import (
	"sort"

	"github.com/sadopc/reviewr/internal/model"
)

// Selector picks one contribution out of a month.
type Selector func(model.MonthlyRecord) float64

// Contribution selectors for the three savings goals.
var (
	EmergencyFund Selector = func(m model.MonthlyRecord) float64 { return m.EmergencyFund }
	CarFund       Selector = func(m model.MonthlyRecord) float64 { return m.CarFund }
	TravelFund    Selector = func(m model.MonthlyRecord) float64 { return m.TravelFund }
)

// TotalForGoal sums sel over submitted months only.
func TotalForGoal(months map[string]model.MonthlyRecord, sel Selector) float64 {
	var total float64
	for _, k := range sortedMonthKeys(months) {
		if m := months[k]; m.Submitted {
			total += sel(m)
		}
	}
	return total
}

// LivePreview is the total a goal would reach with the month being edited.
// The edited month's stored amount is taken out first when it was already
// submitted, so it is never counted twice.
func LivePreview(months map[string]model.MonthlyRecord, editing model.MonthlyRecord, sel Selector) float64 {
	total := TotalForGoal(months, sel)
	if stored, ok := months[editing.Month]; ok && stored.Submitted {
		total -= sel(stored)
	}
	return total + sel(editing)
}

// LatestSubmittedWeek returns the newest submitted week.
func LatestSubmittedWeek(weeks map[string]model.WeeklyRecord) (model.WeeklyRecord, bool) {
	submitted := SubmittedWeeks(weeks)
	if len(submitted) == 0 {
		return model.WeeklyRecord{}, false
	}
	return submitted[0], true
}

// LatestWeek returns the newest week regardless of submission.
func LatestWeek(weeks map[string]model.WeeklyRecord) (model.WeeklyRecord, bool) {
	keys := sortedWeekKeys(weeks)
	if len(keys) == 0 {
		return model.WeeklyRecord{}, false
	}
	return weeks[keys[0]], true
}

// LatestMonth returns the newest month regardless of submission.
func LatestMonth(months map[string]model.MonthlyRecord) (model.MonthlyRecord, bool) {
	keys := sortedMonthKeys(months)
	if len(keys) == 0 {
		return model.MonthlyRecord{}, false
	}
	return months[keys[0]], true
}

// SubmittedWeeks returns submitted weeks newest first.
func SubmittedWeeks(weeks map[string]model.WeeklyRecord) []model.WeeklyRecord {
	var out []model.WeeklyRecord
	for _, k := range sortedWeekKeys(weeks) {
		if w := weeks[k]; w.Submitted {
			out = append(out, w)
		}
	}
	return out
}

// SubmittedMonths returns submitted months newest first.
func SubmittedMonths(months map[string]model.MonthlyRecord) []model.MonthlyRecord {
	var out []model.MonthlyRecord
	for _, k := range sortedMonthKeys(months) {
		if m := months[k]; m.Submitted {
			out = append(out, m)
		}
	}
	return out
}

// Keys are ISO dates and "YYYY-MM", so lexical order is chronological.
func sortedWeekKeys(weeks map[string]model.WeeklyRecord) []string {
	keys := make([]string, 0, len(weeks))
	for k := range weeks {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

func sortedMonthKeys(months map[string]model.MonthlyRecord) []string {
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
