package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadopc/reviewr/internal/model"
)

func sampleMonth() model.MonthlyRecord {
	m := model.NewMonth("2025-03")
	m.Income = 150000
	m.ExtraIncome = []model.Entry{{Label: "side gig", Amount: 10000}}
	m.Expenses = model.FixedExpenses{
		Rent:         35000,
		HouseKeeping: 4000,
		Water:        800,
		Internet:     3000,
		Electricity:  2200,
		Phone:        1000,
		Food:         99999, // tracked in flexible budgets, not fixed
	}
	m.Budgets = []model.BudgetEntry{
		{Category: "Food & Groceries", Limit: 20000, Items: []model.Entry{{Amount: 12000}, {Amount: 3000}}},
		{Category: "Transport", Limit: 5000, Items: []model.Entry{{Amount: 6000}}},
		{Category: "Misc", Items: []model.Entry{{Amount: 500}}},
	}
	m.OneOffs = []model.Entry{{Label: "doctor", Amount: 2500}}
	m.Debts = []model.DebtEntry{
		{Label: "HELB", Type: model.DebtStudentLoan, MonthlyPayment: 4000},
		{Type: model.DebtOther},
	}
	m.EmergencyFund = 50000
	m.CarFund = 10000
	m.TravelFund = 100
	return m
}

func TestBuildLedger(t *testing.T) {
	l := BuildLedger(sampleMonth(), 130)

	assert.Equal(t, 160000.0, l.Income)
	assert.Equal(t, 46000.0, l.Fixed)
	assert.Equal(t, 21500.0, l.Budgets)
	assert.Equal(t, 2500.0, l.OneOffs)
	assert.Equal(t, 4000.0, l.DebtPayments)
	assert.Equal(t, 60000.0, l.SavingsLocal)
	assert.Equal(t, 13000.0, l.SavingsForeign)
	assert.Equal(t, 147000.0, l.TotalOut)
	assert.Equal(t, 13000.0, l.Leftover)
	assert.False(t, l.OverBudget())
}

func TestBuildLedgerBudgetUsage(t *testing.T) {
	l := BuildLedger(sampleMonth(), 130)
	require.Len(t, l.Usage, 3)

	food := l.Usage[0]
	assert.InDelta(t, 75.0, food.Percent, 1e-9)
	assert.False(t, food.Over)
	assert.Equal(t, 5000.0, food.Remaining)

	transport := l.Usage[1]
	assert.Equal(t, 100.0, transport.Percent)
	assert.True(t, transport.Over)
	assert.Equal(t, -1000.0, transport.Remaining)

	misc := l.Usage[2]
	assert.False(t, misc.HasLimit())
	assert.Zero(t, misc.Percent)
	assert.False(t, misc.Over)
}

func TestBuildLedgerBreakdown(t *testing.T) {
	l := BuildLedger(sampleMonth(), 130)

	labels := make([]string, len(l.Breakdown))
	for i, it := range l.Breakdown {
		labels[i] = it.Label
	}
	assert.Equal(t, []string{"Rent", "House Keeping", "HELB", "Internet", "Electricity", "Phone & Subs", "Water"}, labels)
}

func TestBuildLedgerOverBudget(t *testing.T) {
	m := model.NewMonth("2025-04")
	m.Income = 10000
	m.Expenses.Rent = 15000

	l := BuildLedger(m, 130)
	assert.True(t, l.OverBudget())
	assert.Equal(t, -5000.0, l.Leftover)
}

func TestBuildLedgerExactSums(t *testing.T) {
	m := model.NewMonth("2025-05")
	m.OneOffs = []model.Entry{{Amount: 0.1}, {Amount: 0.2}}

	assert.Equal(t, 0.3, BuildLedger(m, 130).OneOffs)
}
