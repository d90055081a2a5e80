package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// WeekKeyLayout is the layout of a week id: the ISO date of its ending Sunday.
const WeekKeyLayout = "2006-01-02"

// Strategy is the four observations recorded for a week.
type Strategy struct {
	Leverage TagSet[LeverageTag] `json:"leverage"`
	Decision TagSet[DecisionTag] `json:"decision"`
	Frontend TagSet[FrontendTag] `json:"frontend"`
	// Energy is the number of training sessions, 0 to 2.
	Energy int `json:"energy"`
}

// TotalActions counts real tags across all three observations.
func (s Strategy) TotalActions() int {
	return s.Leverage.Count() + s.Decision.Count() + s.Frontend.Count()
}

// WeekOutcome is what a week recorded. It is either a LegacyWeek, written
// before the strategy block existed, or a CurrentWeek.
type WeekOutcome interface {
	isWeekOutcome()
}

// LegacyWeek is the outcome shape of records that predate Strategy.
type LegacyWeek struct {
	JobProgress       TagSet[LeverageTag]
	DecisionOwnership TagSet[DecisionTag]
	FrontendOutput    TagSet[FrontendTag]
}

// CurrentWeek is the outcome shape of every record written today.
type CurrentWeek struct {
	Strategy Strategy
}

func (LegacyWeek) isWeekOutcome()  {}
func (CurrentWeek) isWeekOutcome() {}

// RecalibrationWeight names what weighed on a week.
type RecalibrationWeight string

const (
	WeightLowEnergy RecalibrationWeight = "Low Energy"
	WeightFriction  RecalibrationWeight = "Friction"
	WeightScope     RecalibrationWeight = "Scope"
)

// RecalibrationWord is the one-word adjustment for next week.
type RecalibrationWord string

const (
	WordSmaller RecalibrationWord = "Smaller"
	WordRest    RecalibrationWord = "Rest"
	WordSteady  RecalibrationWord = "Steady"
)

type Recalibration struct {
	Weight RecalibrationWeight `json:"weight"`
	Word   RecalibrationWord   `json:"word"`
}

// DayLog holds per-day frontend tags, keyed by date.
type DayLog struct {
	Date         string   `json:"date"`
	FrontendTags []string `json:"frontendTags"`
}

// WeeklyRecord is one calendar week keyed by its ending Sunday.
type WeeklyRecord struct {
	ID            string
	WeekEnding    string
	Outcome       WeekOutcome
	Recalibration *Recalibration
	// MuayThaiSessions is the older training counter, nil when never answered.
	MuayThaiSessions *int
	ReviewNotes      string
	DailyLogs        map[string]DayLog
	Submitted        bool
}

// NewWeek returns an empty current-shape record for the week ending on sunday.
func NewWeek(sunday time.Time) WeeklyRecord {
	return WeeklyRecord{
		ID:         sunday.Format(WeekKeyLayout),
		WeekEnding: sunday.Format("Mon Jan 02 2006"),
		Outcome:    CurrentWeek{},
		DailyLogs:  map[string]DayLog{},
	}
}

// Strategy returns the current-shape strategy. A record with no outcome is
// current-shape and empty, the way it is written. Legacy records report an
// empty strategy and ok=false.
func (w WeeklyRecord) Strategy() (Strategy, bool) {
	switch o := w.Outcome.(type) {
	case CurrentWeek:
		return o.Strategy, true
	case nil:
		return Strategy{}, true
	}
	return Strategy{}, false
}

// WithStrategy returns a copy upgraded to the current shape with s.
func (w WeeklyRecord) WithStrategy(s Strategy) WeeklyRecord {
	w.Outcome = CurrentWeek{Strategy: s}
	return w
}

// EndDate parses the week id.
func (w WeeklyRecord) EndDate() (time.Time, error) {
	return time.Parse(WeekKeyLayout, w.ID)
}

// weekWire is the stored JSON shape, shared with the web app.
type weekWire struct {
	ID                string               `json:"id"`
	WeekEnding        string               `json:"weekEnding"`
	JobProgress       *TagSet[LeverageTag] `json:"jobProgress,omitempty"`
	DecisionOwnership *TagSet[DecisionTag] `json:"decisionOwnership,omitempty"`
	FrontendOutput    *TagSet[FrontendTag] `json:"frontendOutput,omitempty"`
	Strategy          *Strategy            `json:"strategy,omitempty"`
	Recalibration     *Recalibration       `json:"recalibration,omitempty"`
	MuayThaiSessions  *int                 `json:"muayThaiSessions"`
	ReviewNotes       string               `json:"reviewNotes"`
	Submitted         bool                 `json:"submitted,omitempty"`
	DailyLogs         map[string]DayLog    `json:"dailyLogs"`
}

// MarshalJSON writes the shape matching the record's outcome variant.
func (w WeeklyRecord) MarshalJSON() ([]byte, error) {
	wire := weekWire{
		ID:               w.ID,
		WeekEnding:       w.WeekEnding,
		Recalibration:    w.Recalibration,
		MuayThaiSessions: w.MuayThaiSessions,
		ReviewNotes:      w.ReviewNotes,
		Submitted:        w.Submitted,
		DailyLogs:        w.DailyLogs,
	}
	if wire.DailyLogs == nil {
		wire.DailyLogs = map[string]DayLog{}
	}
	switch o := w.Outcome.(type) {
	case CurrentWeek:
		s := o.Strategy
		wire.Strategy = &s
	case LegacyWeek:
		wire.JobProgress = &o.JobProgress
		wire.DecisionOwnership = &o.DecisionOwnership
		wire.FrontendOutput = &o.FrontendOutput
	case nil:
		wire.Strategy = &Strategy{}
	default:
		return nil, fmt.Errorf("unknown week outcome %T", w.Outcome)
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes either stored shape and normalizes it.
func (w *WeeklyRecord) UnmarshalJSON(data []byte) error {
	var wire weekWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*w = normalizeWeek(wire)
	return nil
}

// normalizeWeek picks the outcome variant once so consumers never sniff for
// missing fields.
func normalizeWeek(wire weekWire) WeeklyRecord {
	w := WeeklyRecord{
		ID:               wire.ID,
		WeekEnding:       wire.WeekEnding,
		Recalibration:    wire.Recalibration,
		MuayThaiSessions: wire.MuayThaiSessions,
		ReviewNotes:      wire.ReviewNotes,
		DailyLogs:        wire.DailyLogs,
		Submitted:        wire.Submitted,
	}
	if w.DailyLogs == nil {
		w.DailyLogs = map[string]DayLog{}
	}

	if wire.Strategy != nil {
		w.Outcome = CurrentWeek{Strategy: *wire.Strategy}
		return w
	}

	var legacy LegacyWeek
	if wire.JobProgress != nil {
		legacy.JobProgress = *wire.JobProgress
	}
	if wire.DecisionOwnership != nil {
		legacy.DecisionOwnership = *wire.DecisionOwnership
	}
	if wire.FrontendOutput != nil {
		legacy.FrontendOutput = *wire.FrontendOutput
	}
	w.Outcome = legacy
	return w
}
