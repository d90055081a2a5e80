package model

import (
	"encoding/json"
	"sort"
	"time"
)

// AppData is the whole persisted state: every week and every month.
type AppData struct {
	Weeks  map[string]WeeklyRecord  `json:"weeks"`
	Months map[string]MonthlyRecord `json:"months"`
}

// EmptyAppData returns a snapshot with no records.
func EmptyAppData() AppData {
	return AppData{
		Weeks:  map[string]WeeklyRecord{},
		Months: map[string]MonthlyRecord{},
	}
}

// ParseAppData decodes web-app JSON. Anything it cannot decode collapses to
// an empty snapshot.
func ParseAppData(data []byte) AppData {
	var d AppData
	if err := json.Unmarshal(data, &d); err != nil {
		return EmptyAppData()
	}
	if d.Weeks == nil {
		d.Weeks = map[string]WeeklyRecord{}
	}
	if d.Months == nil {
		d.Months = map[string]MonthlyRecord{}
	}
	// Keys are authoritative; older exports sometimes left ids blank.
	for k, w := range d.Weeks {
		if w.ID == "" {
			w.ID = k
			d.Weeks[k] = w
		}
	}
	for k, m := range d.Months {
		if m.Month == "" {
			m.Month = k
			d.Months[k] = m
		}
	}
	return d
}

// WeekKeys returns week ids newest first.
func (d AppData) WeekKeys() []string {
	keys := make([]string, 0, len(d.Weeks))
	for k := range d.Weeks {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// MonthKeys returns month ids newest first.
func (d AppData) MonthKeys() []string {
	keys := make([]string, 0, len(d.Months))
	for k := range d.Months {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// MonthKey is the UTC "YYYY-MM" key for t.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthKeyLayout)
}

// WeekEnding returns the Sunday on or after t, at midnight in t's location.
func WeekEnding(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := 0
	if wd := day.Weekday(); wd != time.Sunday {
		diff = 7 - int(wd)
	}
	return day.AddDate(0, 0, diff)
}
