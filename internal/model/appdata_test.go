package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAppDataCorrupt(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"weeks": 5}`, `[]`} {
		d := ParseAppData([]byte(raw))
		assert.NotNil(t, d.Weeks, raw)
		assert.NotNil(t, d.Months, raw)
		assert.Empty(t, d.Weeks, raw)
	}
}

func TestParseAppDataFillsKeys(t *testing.T) {
	d := ParseAppData([]byte(`{"weeks":{"2025-01-05":{"submitted":true}},"months":{"2025-01":{"income":5}}}`))

	assert.Equal(t, "2025-01-05", d.Weeks["2025-01-05"].ID)
	assert.Equal(t, "2025-01", d.Months["2025-01"].Month)
	assert.NotNil(t, d.Months["2025-01"].Debts)
}

func TestParseAppDataMissingMonths(t *testing.T) {
	d := ParseAppData([]byte(`{"weeks":{}}`))
	assert.NotNil(t, d.Months)
}

func TestKeysSortedDescending(t *testing.T) {
	d := EmptyAppData()
	d.Months["2024-12"] = NewMonth("2024-12")
	d.Months["2025-02"] = NewMonth("2025-02")
	d.Months["2025-01"] = NewMonth("2025-01")
	d.Weeks["2025-01-05"] = WeeklyRecord{ID: "2025-01-05"}
	d.Weeks["2025-01-12"] = WeeklyRecord{ID: "2025-01-12"}

	assert.Equal(t, []string{"2025-02", "2025-01", "2024-12"}, d.MonthKeys())
	assert.Equal(t, []string{"2025-01-12", "2025-01-05"}, d.WeekKeys())
}

func TestMonthKeyUsesUTC(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*3600)
	local := time.Date(2025, 3, 1, 1, 0, 0, 0, nairobi)

	assert.Equal(t, "2025-02", MonthKey(local))
}
