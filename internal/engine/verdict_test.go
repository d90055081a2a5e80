package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/reviewr/internal/model"
)

func week(s model.Strategy) model.WeeklyRecord {
	return model.WeeklyRecord{ID: "2025-03-09", Outcome: model.CurrentWeek{Strategy: s}}
}

func TestClassifyWeek(t *testing.T) {
	tests := []struct {
		name string
		s    model.Strategy
		want Verdict
	}{
		{
			name: "training floor dominates",
			s: model.Strategy{
				Energy:   1,
				Leverage: model.NewTagSet(model.LeverageApplicationSent),
				Frontend: model.NewTagSet(model.FrontendNewFeature),
			},
			want: DoBetter,
		},
		{
			name: "sentinel leverage is no progress",
			s: model.Strategy{
				Energy:   2,
				Leverage: model.NewTagSet(model.LeverageNone),
				Frontend: model.NewTagSet(model.FrontendNewFeature),
			},
			want: PartialProgress,
		},
		{
			name: "on track",
			s: model.Strategy{
				Energy:   2,
				Leverage: model.NewTagSet(model.LeverageRecruiter),
				Frontend: model.NewTagSet(model.FrontendRefactored),
			},
			want: OnTrack,
		},
		{
			name: "empty frontend",
			s: model.Strategy{
				Energy:   2,
				Leverage: model.NewTagSet(model.LeverageRecruiter),
			},
			want: PartialProgress,
		},
		{
			name: "decision ignored",
			s: model.Strategy{
				Energy:   2,
				Leverage: model.NewTagSet(model.LeverageOffer),
				Decision: model.NoneRecorded[model.DecisionTag](),
				Frontend: model.NewTagSet(model.FrontendBasics),
			},
			want: OnTrack,
		},
		{
			name: "zero energy empty week",
			s:    model.Strategy{},
			want: DoBetter,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWeek(week(tt.s)))
		})
	}
}

func TestClassifyLegacyWeekIsOnTrack(t *testing.T) {
	w := model.WeeklyRecord{ID: "2024-01-07", Outcome: model.LegacyWeek{}}
	assert.Equal(t, OnTrack, ClassifyWeek(w))
}

func TestClassifyNilOutcomeMatchesStoredShape(t *testing.T) {
	w := model.WeeklyRecord{ID: "2025-03-09"}
	assert.Equal(t, DoBetter, ClassifyWeek(w))

	b, err := json.Marshal(w)
	require.NoError(t, err)
	var back model.WeeklyRecord
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, ClassifyWeek(w), ClassifyWeek(back))
}
