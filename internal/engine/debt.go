package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/sadopc/reviewr/internal/model"
)

// Band is a debt-to-income risk tier.
type Band string

const (
	BandExcellent Band = "Excellent"
	BandHealthy   Band = "Healthy"
	BandCaution   Band = "Caution"
	BandWarning   Band = "Warning"
	BandCritical  Band = "Critical"
)

// Severity ranks an advisory for display.
type Severity string

const (
	SeverityInfo   Severity = "info"
	SeverityWarn   Severity = "warn"
	SeverityDanger Severity = "danger"
)

// Advisory is one piece of debt advice.
type Advisory struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Text     string   `json:"text" yaml:"text"`
}

// DebtHealth is the assessment of one month's obligations.
type DebtHealth struct {
	DTI        float64    `json:"dti" yaml:"dti"`
	Band       Band       `json:"band" yaml:"band"`
	Payments   float64    `json:"payments" yaml:"payments"`
	Advisories []Advisory `json:"advisories" yaml:"advisories"`
}

// Rate thresholds in percent per annum.
const (
	highRate          = 20
	consolidationRate = 15
)

// BandFor buckets a DTI percentage. Upper bounds are exclusive.
func BandFor(dti float64) Band {
	switch {
	case dti < 15:
		return BandExcellent
	case dti < 28:
		return BandHealthy
	case dti < 36:
		return BandCaution
	case dti < 50:
		return BandWarning
	default:
		return BandCritical
	}
}

// AssessDebt rates debts against income. ok is false when there is nothing to
// assess: no payments, or no income to divide by.
func AssessDebt(income float64, debts []model.DebtEntry) (DebtHealth, bool) {
	var payments float64
	for _, d := range debts {
		payments += d.MonthlyPayment
	}
	if payments <= 0 || income <= 0 {
		return DebtHealth{}, false
	}

	dti := payments / income * 100
	return DebtHealth{
		DTI:        dti,
		Band:       BandFor(dti),
		Payments:   payments,
		Advisories: advise(dti, debts),
	}, true
}

// AssessMonth is AssessDebt over a month's total income.
func AssessMonth(m model.MonthlyRecord) (DebtHealth, bool) {
	return AssessDebt(m.TotalIncome(), m.Debts)
}

func advise(dti float64, debts []model.DebtEntry) []Advisory {
	pct := int(math.Round(dti))
	var out []Advisory

	switch {
	case dti >= 50:
		out = append(out, Advisory{SeverityDanger, fmt.Sprintf("CRITICAL: %d%% of your income goes to debt payments. Stop all non-essential spending and seek debt restructuring advice from your bank immediately.", pct)})
	case dti >= 36:
		out = append(out, Advisory{SeverityWarn, fmt.Sprintf("WARNING: Your debt-to-income ratio (%d%%) is in the danger zone. Lenders consider above 36%% high risk. Do not take on any new debt until this is below 30%%.", pct)})
	case dti >= 28:
		out = append(out, Advisory{SeverityWarn, fmt.Sprintf("CAUTION: Your DTI of %d%% is elevated. Prioritise paying down high-interest debt before building savings goals further.", pct)})
	default:
		out = append(out, Advisory{SeverityInfo, fmt.Sprintf("Your debt-to-income ratio is %d%% — within a healthy range. Keep up payments and avoid new consumer debt.", pct)})
	}

	var (
		mobile     bool
		creditCard bool
		anyOver15  bool
		highNames  []string
	)
	for _, d := range debts {
		switch d.Type {
		case model.DebtMobileLoan:
			mobile = true
		case model.DebtCreditCard:
			creditCard = true
		}
		if d.InterestRate > highRate && d.Type != model.DebtMobileLoan {
			highNames = append(highNames, d.Name())
		}
		if d.InterestRate > consolidationRate {
			anyOver15 = true
		}
	}

	if mobile {
		out = append(out, Advisory{SeverityDanger, "Mobile loans (M-Shwari, Tala, Branch, etc.) carry effective annual rates of 90–180%. These are the most expensive money you can borrow. Pay these off first before everything else — even before saving."})
	}
	if len(highNames) > 0 {
		out = append(out, Advisory{SeverityDanger, fmt.Sprintf("\"%s\" carries interest above 20%% p.a. — this is bad debt. Use the Avalanche method: pay minimums on all debts, then throw every extra shilling at the highest-rate debt first.", strings.Join(highNames, ", "))})
	}
	if creditCard {
		out = append(out, Advisory{SeverityWarn, "Never carry a credit card balance month to month. The compounding interest erases any rewards benefit. Always pay the full statement balance before the due date."})
	}
	if len(debts) > 2 && anyOver15 {
		out = append(out, Advisory{SeverityInfo, "With multiple debts, ask your bank about debt consolidation — a single personal loan at a lower rate can simplify payments and reduce total interest paid."})
	}
	return out
}
