package engine

import "github.com/sadopc/reviewr/internal/model"

// Verdict is the three-tier weekly outcome.
type Verdict string

const (
	OnTrack         Verdict = "On track"
	PartialProgress Verdict = "Partial progress"
	DoBetter        Verdict = "Do better"
)

// MinEnergy is the training floor for a week.
const MinEnergy = 2

// ClassifyWeek grades one week. Records that predate the strategy block are
// always on track.
func ClassifyWeek(w model.WeeklyRecord) Verdict {
	s, ok := w.Strategy()
	if !ok {
		return OnTrack
	}
	return ClassifyStrategy(s)
}

// ClassifyStrategy grades a strategy on its own. Training dominates.
func ClassifyStrategy(s model.Strategy) Verdict {
	if s.Energy < MinEnergy {
		return DoBetter
	}
	if !s.Leverage.HasProgress() || !s.Frontend.HasProgress() {
		return PartialProgress
	}
	return OnTrack
}
