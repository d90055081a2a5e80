package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sadopc/reviewr/internal/model"
)

// BudgetUsage is how much of one flexible budget has been spent.
type BudgetUsage struct {
	Category  string  `json:"category" yaml:"category"`
	Spent     float64 `json:"spent" yaml:"spent"`
	Limit     float64 `json:"limit" yaml:"limit"`
	Percent   float64 `json:"percent" yaml:"percent"`
	Over      bool    `json:"over" yaml:"over"`
	Remaining float64 `json:"remaining" yaml:"remaining"`
}

// HasLimit reports whether the budget was given a limit.
func (b BudgetUsage) HasLimit() bool { return b.Limit > 0 }

// LineItem is one bar of the fixed-cost breakdown.
type LineItem struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Ledger is the money-in, money-out summary of one month, in local currency.
type Ledger struct {
	Income         float64 `json:"income" yaml:"income"`
	Fixed          float64 `json:"fixed" yaml:"fixed"`
	Budgets        float64 `json:"budgets" yaml:"budgets"`
	OneOffs        float64 `json:"oneOffs" yaml:"one_offs"`
	DebtPayments   float64 `json:"debtPayments" yaml:"debt_payments"`
	SavingsLocal   float64 `json:"savingsLocal" yaml:"savings_local"`
	SavingsForeign float64 `json:"savingsForeign" yaml:"savings_foreign"`
	TotalOut       float64 `json:"totalOut" yaml:"total_out"`
	// Leftover is negative when the month is over budget.
	Leftover float64 `json:"leftover" yaml:"leftover"`

	Usage     []BudgetUsage `json:"usage" yaml:"usage"`
	Breakdown []LineItem    `json:"breakdown" yaml:"breakdown"`
}

// OverBudget reports whether more went out than came in.
func (l Ledger) OverBudget() bool { return l.Leftover < 0 }

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func sumEntries(entries []model.Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(dec(e.Amount))
	}
	return total
}

// BuildLedger summarises m. Foreign savings are converted at rate local units
// per foreign unit.
func BuildLedger(m model.MonthlyRecord, rate float64) Ledger {
	exp := m.Expenses
	fixedItems := []LineItem{
		{"Rent", exp.Rent},
		{"House Keeping", exp.HouseKeeping},
		{"Water", exp.Water},
		{"Internet", exp.Internet},
		{"Electricity", exp.Electricity},
		{"Phone & Subs", exp.Phone},
	}

	fixed := decimal.Zero
	for _, it := range fixedItems {
		fixed = fixed.Add(dec(it.Value))
	}

	budgets := decimal.Zero
	usage := make([]BudgetUsage, 0, len(m.Budgets))
	for _, b := range m.Budgets {
		spent := sumEntries(b.Items)
		budgets = budgets.Add(spent)
		usage = append(usage, budgetUsage(b, spent))
	}

	oneOffs := sumEntries(m.OneOffs)
	income := dec(m.Income).Add(sumEntries(m.ExtraIncome))

	debts := decimal.Zero
	breakdown := fixedItems
	for _, d := range m.Debts {
		debts = debts.Add(dec(d.MonthlyPayment))
		if d.MonthlyPayment > 0 {
			breakdown = append(breakdown, LineItem{d.Name(), d.MonthlyPayment})
		}
	}

	local := dec(m.EmergencyFund).Add(dec(m.CarFund))
	foreign := dec(m.TravelFund).Mul(dec(rate))
	totalOut := fixed.Add(budgets).Add(oneOffs).Add(debts).Add(local).Add(foreign)

	return Ledger{
		Income:         income.InexactFloat64(),
		Fixed:          fixed.InexactFloat64(),
		Budgets:        budgets.InexactFloat64(),
		OneOffs:        oneOffs.InexactFloat64(),
		DebtPayments:   debts.InexactFloat64(),
		SavingsLocal:   local.InexactFloat64(),
		SavingsForeign: foreign.InexactFloat64(),
		TotalOut:       totalOut.InexactFloat64(),
		Leftover:       income.Sub(totalOut).InexactFloat64(),
		Usage:          usage,
		Breakdown:      sortBreakdown(breakdown),
	}
}

func budgetUsage(b model.BudgetEntry, spent decimal.Decimal) BudgetUsage {
	u := BudgetUsage{
		Category: b.Category,
		Spent:    spent.InexactFloat64(),
		Limit:    b.Limit,
	}
	if b.Limit > 0 {
		limit := dec(b.Limit)
		u.Percent = decimal.Min(spent.Div(limit).Mul(decimal.NewFromInt(100)), decimal.NewFromInt(100)).InexactFloat64()
		u.Over = spent.GreaterThan(limit)
		u.Remaining = limit.Sub(spent).InexactFloat64()
	}
	return u
}

// sortBreakdown drops zero rows and orders the rest largest first.
func sortBreakdown(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.Value > 0 {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
