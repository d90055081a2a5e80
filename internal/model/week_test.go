package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeek(t *testing.T) {
	sunday := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	w := NewWeek(sunday)

	assert.Equal(t, "2025-03-09", w.ID)
	assert.Equal(t, "Sun Mar 09 2025", w.WeekEnding)
	s, ok := w.Strategy()
	assert.True(t, ok)
	assert.Equal(t, 0, s.TotalActions())
	assert.NotNil(t, w.DailyLogs)
}

func TestDecodeCurrentWeek(t *testing.T) {
	raw := `{
		"id": "2025-03-09",
		"weekEnding": "Sun Mar 09 2025",
		"strategy": {
			"leverage": ["Recruiter outreach", "Interview prep"],
			"decision": ["No decision ownership"],
			"frontend": "Refactored code",
			"energy": 2
		},
		"recalibration": {"weight": "Scope", "word": "Smaller"},
		"reviewNotes": "solid",
		"submitted": true
	}`

	var w WeeklyRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &w))

	s, ok := w.Strategy()
	require.True(t, ok)
	assert.Equal(t, 2, s.Leverage.Count())
	assert.True(t, s.Decision.IsNone())
	assert.Equal(t, []FrontendTag{FrontendRefactored}, s.Frontend.Tags())
	assert.Equal(t, 2, s.Energy)
	assert.Equal(t, 3, s.TotalActions())
	require.NotNil(t, w.Recalibration)
	assert.Equal(t, WeightScope, w.Recalibration.Weight)
	assert.True(t, w.Submitted)
	assert.NotNil(t, w.DailyLogs)
}

func TestDecodeLegacyWeek(t *testing.T) {
	raw := `{
		"id": "2024-06-02",
		"weekEnding": "Sun Jun 02 2024",
		"jobProgress": ["Job application sent"],
		"decisionOwnership": "Led product decision",
		"frontendOutput": null,
		"muayThaiSessions": 1,
		"submitted": true
	}`

	var w WeeklyRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &w))

	_, ok := w.Strategy()
	assert.False(t, ok)
	legacy, ok := w.Outcome.(LegacyWeek)
	require.True(t, ok)
	assert.True(t, legacy.JobProgress.HasProgress())
	assert.True(t, legacy.DecisionOwnership.Contains(DecisionLedProduct))
	assert.True(t, legacy.FrontendOutput.IsEmpty())
	require.NotNil(t, w.MuayThaiSessions)
	assert.Equal(t, 1, *w.MuayThaiSessions)
}

func TestWeekRoundTripKeepsVariant(t *testing.T) {
	legacy := WeeklyRecord{
		ID:      "2024-06-02",
		Outcome: LegacyWeek{JobProgress: NewTagSet(LeverageOffer)},
	}
	b, err := json.Marshal(legacy)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"strategy"`)

	var back WeeklyRecord
	require.NoError(t, json.Unmarshal(b, &back))
	assert.IsType(t, LegacyWeek{}, back.Outcome)

	current := legacy.WithStrategy(Strategy{Energy: 1, Leverage: NewTagSet(LeverageOffer)})
	b, err = json.Marshal(current)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &back))
	s, ok := back.Strategy()
	require.True(t, ok)
	assert.Equal(t, 1, s.Energy)
	assert.True(t, s.Leverage.Contains(LeverageOffer))
}

func TestMarshalNilOutcomeWritesEmptyStrategy(t *testing.T) {
	b, err := json.Marshal(WeeklyRecord{ID: "2025-01-05"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"strategy"`)
}

func TestNilOutcomeIsCurrentShapeBeforeAndAfterRoundTrip(t *testing.T) {
	w := WeeklyRecord{ID: "2025-01-05"}
	_, ok := w.Strategy()
	assert.True(t, ok, "nil outcome should read as current-shape")

	b, err := json.Marshal(w)
	require.NoError(t, err)
	var back WeeklyRecord
	require.NoError(t, json.Unmarshal(b, &back))
	_, ok = back.Strategy()
	assert.True(t, ok)
	assert.IsType(t, CurrentWeek{}, back.Outcome)
}

func TestWeekEnding(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC), "2025-03-09"},  // Sunday
		{time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), "2025-03-16"},  // Monday
		{time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC), "2025-03-16"}, // Saturday
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "2026-01-04"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekEnding(tt.in).Format(WeekKeyLayout))
	}
}
