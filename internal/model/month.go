package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MonthKeyLayout is the layout of a month id.
const MonthKeyLayout = "2006-01"

// Entry is a labelled amount: extra income, a one-off expense, or a budget
// line item.
type Entry struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// NewEntry returns an entry with a fresh id.
func NewEntry(label string, amount float64) Entry {
	return Entry{ID: uuid.NewString(), Label: label, Amount: amount}
}

// FixedExpenses are the recurring cost fields of a month.
type FixedExpenses struct {
	Rent         float64 `json:"rent"`
	Food         float64 `json:"food"`
	Transport    float64 `json:"transport"`
	Water        float64 `json:"water"`
	Internet     float64 `json:"internet"`
	Electricity  float64 `json:"electricity"`
	Phone        float64 `json:"phone"`
	Personal     float64 `json:"personal"`
	Social       float64 `json:"social"`
	Misc         float64 `json:"misc"`
	HouseKeeping float64 `json:"houseKeeping"`
}

// UnmarshalJSON folds the old single "utilities" field into internet when the
// split utility fields are absent.
func (f *FixedExpenses) UnmarshalJSON(data []byte) error {
	type plain FixedExpenses
	var aux struct {
		plain
		Utilities *float64 `json:"utilities"`
		Water     *float64 `json:"water"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*f = FixedExpenses(aux.plain)
	if aux.Water != nil {
		f.Water = *aux.Water
	}
	if aux.Utilities != nil && aux.Water == nil {
		f.Internet = *aux.Utilities
		f.Water = 0
		f.Electricity = 0
		f.HouseKeeping = 0
	}
	return nil
}

// BudgetEntry is a flexible spending category with its line items.
type BudgetEntry struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Items    []Entry `json:"items"`
}

// Spent sums the line items.
func (b BudgetEntry) Spent() float64 {
	var total float64
	for _, it := range b.Items {
		total += it.Amount
	}
	return total
}

// BudgetCategoryPresets seed the category picker.
var BudgetCategoryPresets = []string{
	"Food & Groceries",
	"Transport",
	"Personal & Clothing",
	"Social & Entertainment",
	"Miscellaneous",
}

// DebtType is the closed set of debt categories.
type DebtType string

const (
	DebtCreditCard   DebtType = "Credit Card"
	DebtMobileLoan   DebtType = "Mobile Loan"
	DebtPersonalLoan DebtType = "Personal Loan"
	DebtCarLoan      DebtType = "Car Loan"
	DebtStudentLoan  DebtType = "Student Loan"
	DebtBusinessLoan DebtType = "Business Loan"
	DebtMortgage     DebtType = "Mortgage"
	DebtOther        DebtType = "Other"
)

// DebtTypes lists every debt type in picker order.
var DebtTypes = []DebtType{
	DebtCreditCard,
	DebtMobileLoan,
	DebtPersonalLoan,
	DebtCarLoan,
	DebtStudentLoan,
	DebtBusinessLoan,
	DebtMortgage,
	DebtOther,
}

// ParseDebtType maps unknown values to DebtOther.
func ParseDebtType(s string) DebtType {
	for _, t := range DebtTypes {
		if string(t) == s {
			return t
		}
	}
	return DebtOther
}

// UnmarshalJSON keeps the enum closed.
func (t *DebtType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseDebtType(s)
	return nil
}

// DebtEntry is one outstanding obligation.
type DebtEntry struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	Type           DebtType `json:"type"`
	Balance        float64  `json:"balance"`
	MonthlyPayment float64  `json:"monthlyPayment"`
	// InterestRate is the annual rate in percent.
	InterestRate float64 `json:"interestRate"`
}

// NewDebt returns a personal loan entry with a fresh id, the picker default.
func NewDebt() DebtEntry {
	return DebtEntry{ID: uuid.NewString(), Type: DebtPersonalLoan}
}

// Name is the label, or the type when no label was given.
func (d DebtEntry) Name() string {
	if d.Label != "" {
		return d.Label
	}
	return string(d.Type)
}

// MonthlyRecord is one calendar month of finances keyed by "YYYY-MM".
type MonthlyRecord struct {
	Month string `json:"month"`

	EmergencyFund float64 `json:"emergencyFund"`
	TravelFund    float64 `json:"travelFund"`
	CarFund       float64 `json:"carFund"`

	Submitted     bool       `json:"submitted,omitempty"`
	SubmittedDate *time.Time `json:"submittedDate,omitempty"`

	Income      float64       `json:"income"`
	ExtraIncome []Entry       `json:"extraIncome"`
	Expenses    FixedExpenses `json:"expenses"`
	Budgets     []BudgetEntry `json:"budgets"`
	OneOffs     []Entry       `json:"oneOffs"`
	Debts       []DebtEntry   `json:"debts"`
}

// NewMonth returns the all-zero record for id.
func NewMonth(id string) MonthlyRecord {
	return MonthlyRecord{
		Month:       id,
		ExtraIncome: []Entry{},
		Budgets:     []BudgetEntry{},
		OneOffs:     []Entry{},
		Debts:       []DebtEntry{},
	}
}

// UnmarshalJSON fills collections that older records lack.
func (m *MonthlyRecord) UnmarshalJSON(data []byte) error {
	type plain MonthlyRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = MonthlyRecord(p)
	if m.ExtraIncome == nil {
		m.ExtraIncome = []Entry{}
	}
	if m.Budgets == nil {
		m.Budgets = []BudgetEntry{}
	}
	for i := range m.Budgets {
		if m.Budgets[i].Items == nil {
			m.Budgets[i].Items = []Entry{}
		}
	}
	if m.OneOffs == nil {
		m.OneOffs = []Entry{}
	}
	if m.Debts == nil {
		m.Debts = []DebtEntry{}
	}
	return nil
}

// TotalIncome is base income plus every extra income entry.
func (m MonthlyRecord) TotalIncome() float64 {
	total := m.Income
	for _, e := range m.ExtraIncome {
		total += e.Amount
	}
	return total
}

// DebtPayments sums the monthly payment of every debt.
func (m MonthlyRecord) DebtPayments() float64 {
	var total float64
	for _, d := range m.Debts {
		total += d.MonthlyPayment
	}
	return total
}

// Clone returns a deep copy so callers can edit without aliasing slices.
func (m MonthlyRecord) Clone() MonthlyRecord {
	c := m
	c.ExtraIncome = append([]Entry{}, m.ExtraIncome...)
	c.OneOffs = append([]Entry{}, m.OneOffs...)
	c.Debts = append([]DebtEntry{}, m.Debts...)
	c.Budgets = make([]BudgetEntry, len(m.Budgets))
	for i, b := range m.Budgets {
		b.Items = append([]Entry{}, b.Items...)
		c.Budgets[i] = b
	}
	if m.SubmittedDate != nil {
		t := *m.SubmittedDate
		c.SubmittedDate = &t
	}
	return c
}
