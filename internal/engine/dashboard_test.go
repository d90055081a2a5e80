package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/reviewr/internal/model"
)

func TestBuildDashboardEmpty(t *testing.T) {
	d := BuildDashboard(model.EmptyAppData(), DefaultParams)

	assert.Zero(t, d.Emergency.Total)
	assert.Equal(t, NoEstimate, d.Emergency.Remaining)
	assert.Nil(t, d.LatestWeek)
	assert.Empty(t, d.Weeks)
	assert.Empty(t, d.Months)
	assert.True(t, d.LifestyleLocked)
	assert.Equal(t, Meters{StatusActionRequired, StatusActionRequired, StatusActionRequired}, d.Meters)
}

func TestBuildDashboard(t *testing.T) {
	data := model.EmptyAppData()
	data.Months["2025-01"] = month("2025-01", true, 300000, 100000, 500)
	data.Months["2025-02"] = month("2025-02", true, 150000, 50000, 250)
	data.Months["2025-03"] = month("2025-03", false, 100000, 0, 0)

	data.Weeks["2025-03-02"] = model.WeeklyRecord{ID: "2025-03-02", Submitted: true, Outcome: model.CurrentWeek{Strategy: model.Strategy{
		Energy:   2,
		Leverage: model.NewTagSet(model.LeverageRecruiter),
		Frontend: model.NewTagSet(model.FrontendNewFeature),
	}}}
	data.Weeks["2025-02-23"] = model.WeeklyRecord{ID: "2025-02-23", Submitted: true, Outcome: model.LegacyWeek{}}
	data.Weeks["2025-03-09"] = model.NewWeek(mustDate(t, "2025-03-09"))

	d := BuildDashboard(data, DefaultParams)

	assert.Equal(t, 450000.0, d.Emergency.Total)
	assert.InDelta(t, 33.333, d.Emergency.Percent, 0.001)
	assert.Equal(t, 100000.0, d.Emergency.Allocation, "projects from the newest month")
	assert.Equal(t, "9 months", d.Emergency.Remaining)
	assert.Equal(t, NoEstimate, d.Car.Remaining)
	assert.Equal(t, 750.0, d.Travel.Total)
	assert.False(t, d.LifestyleLocked)

	require.NotNil(t, d.LatestWeek)
	assert.Equal(t, "2025-03-02", d.LatestWeek.ID)
	assert.Equal(t, OnTrack, d.LatestWeek.Verdict)
	require.Len(t, d.Weeks, 2)
	assert.True(t, d.Weeks[1].Legacy)
	assert.Equal(t, OnTrack, d.Weeks[1].Verdict)

	require.Len(t, d.Months, 2)
	assert.Equal(t, RuleMet, d.Months[0].Status)
	assert.Equal(t, "2025-02", d.Months[0].Month)

	assert.Equal(t, StatusActionRequired, d.Meters.Leverage, "meters read the newest week")
	assert.Equal(t, StatusStable, d.Meters.Wealth)
}

func TestPreviewGoals(t *testing.T) {
	months := map[string]model.MonthlyRecord{
		"2025-01": month("2025-01", true, 1000, 0, 10),
	}
	cards := PreviewGoals(months, month("2025-02", false, 500, 0, 5), DefaultParams)

	require.Len(t, cards, 3)
	assert.Equal(t, 1500.0, cards[0].Total)
	assert.Equal(t, 500.0, cards[0].Allocation)
	assert.Equal(t, 15.0, cards[2].Total)
	assert.False(t, cards[1].Reached())
}
