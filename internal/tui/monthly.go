package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/model"
	"github.com/sadopc/reviewr/internal/store"
)

// monthFields are the amount inputs of the month form, in display order.
var monthFields = []struct {
	key, title string
	get        func(*model.MonthlyRecord) *float64
}{
	{"income", "Base income", func(m *model.MonthlyRecord) *float64 { return &m.Income }},
	{"emergency", "Emergency fund contribution", func(m *model.MonthlyRecord) *float64 { return &m.EmergencyFund }},
	{"car", "Car fund contribution", func(m *model.MonthlyRecord) *float64 { return &m.CarFund }},
	{"travel", "Travel fund contribution (foreign)", func(m *model.MonthlyRecord) *float64 { return &m.TravelFund }},
	{"rent", "Rent", func(m *model.MonthlyRecord) *float64 { return &m.Expenses.Rent }},
	{"houseKeeping", "House keeping", func(m *model.MonthlyRecord) *float64 { return &m.Expenses.HouseKeeping }},
	{"water", "Water", func(m *model.MonthlyRecord) *float64 { return &m.Expenses.Water }},
	{"internet", "Internet", func(m *model.MonthlyRecord) *float64 { return &m.Expenses.Internet }},
	{"electricity", "Electricity", func(m *model.MonthlyRecord) *float64 { return &m.Expenses.Electricity }},
	{"phone", "Phone & subscriptions", func(m *model.MonthlyRecord) *float64 { return &m.Expenses.Phone }},
}

const (
	entryExtraIncome = "extra"
	entryOneOff      = "oneoff"
	budgetPrefix     = "budget:"
)

type monthlyModel struct {
	store  *store.Store
	cfg    config.Config
	width  int
	height int

	month  model.MonthlyRecord
	months map[string]model.MonthlyRecord

	formActive bool
	form       *huh.Form
	formType   string // "month", "entry", "submit"

	// Form values as pointers (survive value copies)
	fields     map[string]*string
	entryKind  *string
	entryLabel *string
	entryValue *string
	confirm    *bool
}

func newMonthlyModel(s *store.Store, cfg config.Config) monthlyModel {
	fields := make(map[string]*string, len(monthFields))
	for _, f := range monthFields {
		v := ""
		fields[f.key] = &v
	}
	kind, label, value, confirm := entryOneOff, "", "", false
	return monthlyModel{
		store:      s,
		cfg:        cfg,
		month:      model.NewMonth(model.MonthKey(time.Now())),
		months:     map[string]model.MonthlyRecord{},
		fields:     fields,
		entryKind:  &kind,
		entryLabel: &label,
		entryValue: &value,
		confirm:    &confirm,
	}
}

func (m *monthlyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *monthlyModel) setMonth(cur model.MonthlyRecord, months map[string]model.MonthlyRecord, cfg config.Config) {
	m.month = cur
	m.months = months
	m.cfg = cfg
}

func (m monthlyModel) update(msg tea.Msg) (monthlyModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, ok := navigateMonth(msg); ok {
			return m, cmd
		}
		if m.month.Submitted {
			switch {
			case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Add), key.Matches(msg, keys.Submit):
				return m, errorCmd(store.ErrSubmitted)
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Edit):
			return m.showMonthForm()
		case key.Matches(msg, keys.Add):
			return m.showEntryForm()
		case key.Matches(msg, keys.Submit):
			return m.showSubmitForm()
		}
	}
	return m, nil
}

func (m monthlyModel) showMonthForm() (monthlyModel, tea.Cmd) {
	cur := m.month
	var income, fixed []huh.Field
	for i, f := range monthFields {
		*m.fields[f.key] = amountField(*f.get(&cur))
		in := huh.NewInput().Title(f.title).Value(m.fields[f.key]).Validate(validAmount)
		if i < 4 {
			income = append(income, in)
		} else {
			fixed = append(fixed, in)
		}
	}
	m.formType = "month"

	m.form = huh.NewForm(
		huh.NewGroup(income...).Title("Income & savings"),
		huh.NewGroup(fixed...).Title("Fixed costs"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m monthlyModel) showEntryForm() (monthlyModel, tea.Cmd) {
	*m.entryKind = entryOneOff
	*m.entryLabel = ""
	*m.entryValue = ""
	m.formType = "entry"

	options := []huh.Option[string]{
		huh.NewOption("One-off expense", entryOneOff),
		huh.NewOption("Extra income", entryExtraIncome),
	}
	for _, c := range m.budgetCategories() {
		options = append(options, huh.NewOption("Budget: "+c, budgetPrefix+c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Kind").Options(options...).Value(m.entryKind),
			huh.NewInput().Title("Label").Value(m.entryLabel),
			huh.NewInput().Title("Amount").Value(m.entryValue).Validate(validAmount),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m monthlyModel) showSubmitForm() (monthlyModel, tea.Cmd) {
	*m.confirm = false
	m.formType = "submit"
	rule := engine.EvaluateMonth(m.month, m.cfg.Params().Rules)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Submit %s?", cli.FormatMonth(m.month.Month))).
				Description(fmt.Sprintf("Savings rule: %s. Contributions count toward goals once submitted.", rule)).
				Affirmative("Complete & start "+cli.FormatMonth(shiftMonth(m.month.Month, 1))).
				Negative("Cancel").
				Value(m.confirm),
		),
	).WithShowHelp(true)

	m.formActive = true
	return m, m.form.Init()
}

// budgetCategories lists the month's categories, then unused presets.
func (m monthlyModel) budgetCategories() []string {
	seen := map[string]bool{}
	var out []string
	for _, b := range m.month.Budgets {
		if !seen[b.Category] {
			seen[b.Category] = true
			out = append(out, b.Category)
		}
	}
	for _, c := range model.BudgetCategoryPresets {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// applyFields copies the month form into a clone of the month.
func (m monthlyModel) applyFields() model.MonthlyRecord {
	out := m.month.Clone()
	for _, f := range monthFields {
		v, _ := parseAmount(*m.fields[f.key])
		*f.get(&out) = v
	}
	return out
}

// applyEntry adds the entry form's line to a clone of the month.
func (m monthlyModel) applyEntry() model.MonthlyRecord {
	out := m.month.Clone()
	amount, _ := parseAmount(*m.entryValue)
	label := strings.TrimSpace(*m.entryLabel)
	e := model.NewEntry(label, amount)

	switch kind := *m.entryKind; {
	case kind == entryExtraIncome:
		out.ExtraIncome = append(out.ExtraIncome, e)
	case strings.HasPrefix(kind, budgetPrefix):
		category := strings.TrimPrefix(kind, budgetPrefix)
		for i := range out.Budgets {
			if out.Budgets[i].Category == category {
				out.Budgets[i].Items = append(out.Budgets[i].Items, e)
				return out
			}
		}
		out.Budgets = append(out.Budgets, model.BudgetEntry{
			ID:       uuid.NewString(),
			Category: category,
			Items:    []model.Entry{e},
		})
	default:
		out.OneOffs = append(out.OneOffs, e)
	}
	return out
}

func (m monthlyModel) updateForm(msg tea.Msg) (monthlyModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		switch m.formType {
		case "month":
			return m.put(m.applyFields(), "Month saved")
		case "entry":
			if strings.TrimSpace(*m.entryValue) == "" {
				return m, nil
			}
			return m.put(m.applyEntry(), "Entry added")
		case "submit":
			if !*m.confirm {
				return m, nil
			}
			return m.submit(time.Now())
		}
	}

	return m, cmd
}

// submit locks the shown month and moves the view on to the next one.
func (m monthlyModel) submit(now time.Time) (monthlyModel, tea.Cmd) {
	sub, err := m.store.SubmitMonth(m.month, now)
	if err != nil {
		return m, errorCmd(err)
	}
	m.month = sub
	text := fmt.Sprintf("%s submitted, starting %s", cli.FormatMonth(sub.Month), cli.FormatMonth(shiftMonth(sub.Month, 1)))
	return m, tea.Batch(loadSnapshot(m.store), shiftCmd(1, true), statusCmd(text))
}

func (m monthlyModel) put(rec model.MonthlyRecord, done string) (monthlyModel, tea.Cmd) {
	if err := m.store.PutMonth(rec); err != nil {
		return m, errorCmd(err)
	}
	m.month = rec
	return m, tea.Batch(loadSnapshot(m.store), statusCmd(done))
}

func (m monthlyModel) view() string {
	w := m.width - 4
	title := titleStyle.Render(cli.FormatMonth(m.month.Month))

	if m.formActive && m.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	p := m.cfg.Params()
	local, foreign := m.cfg.Currency.Local, m.cfg.Currency.Foreign
	l := engine.BuildLedger(m.month, m.cfg.Currency.ForeignRate)
	amt := func(v float64) string { return cli.FormatAmount(local, v) }
	label := lipgloss.NewStyle().Width(18)

	leftover := highlightStyle.Render(amt(l.Leftover))
	if l.OverBudget() {
		leftover = errorStyle.Render(amt(l.Leftover) + "  over budget")
	}

	ledger := []string{
		titleStyle.Render("Ledger"),
		"  " + label.Render("Income") + amt(l.Income),
		"  " + label.Render("Fixed costs") + amt(l.Fixed),
		"  " + label.Render("Budgets") + amt(l.Budgets),
		"  " + label.Render("One-offs") + amt(l.OneOffs),
		"  " + label.Render("Debt payments") + amt(l.DebtPayments),
		"  " + label.Render("Savings") + amt(l.SavingsLocal),
		"  " + label.Render("Travel") + amt(l.SavingsForeign) + mutedStyle.Render(
			fmt.Sprintf("  (%s)", cli.FormatAmount(foreign, m.month.TravelFund))),
		"  " + label.Render("Total out") + amt(l.TotalOut),
		"  " + label.Render("Leftover") + leftover,
	}

	for _, u := range l.Usage {
		line := fmt.Sprintf("  %s %s", label.Render(u.Category), amt(u.Spent))
		if u.HasLimit() {
			style := successStyle
			if u.Over {
				style = errorStyle
			}
			line += style.Render(fmt.Sprintf(" / %s (%s)", amt(u.Limit), cli.FormatPercent(u.Percent)))
		}
		ledger = append(ledger, line)
	}

	var breakdown []string
	if len(l.Breakdown) > 0 {
		breakdown = append(breakdown, titleStyle.Render("Fixed breakdown"))
		for _, it := range l.Breakdown {
			breakdown = append(breakdown, "  "+label.Render(it.Label)+amt(it.Value))
		}
	}

	preview := []string{
		titleStyle.Render("Goals with this month"),
	}
	for i, g := range engine.PreviewGoals(m.months, m.month, p) {
		cur := local
		if i == 2 {
			cur = foreign
		}
		preview = append(preview, fmt.Sprintf("  %s %s  %s",
			label.Render(g.Name), cli.FormatAmount(cur, g.Total), mutedStyle.Render(cli.FormatPercent(g.Percent))))
	}
	preview = append(preview, "", "  Savings rule  "+renderRule(engine.EvaluateMonth(m.month, p.Rules)))

	var debt []string
	if h, ok := engine.AssessMonth(m.month); ok {
		debt = append(debt, titleStyle.Render("Debt health"),
			fmt.Sprintf("  DTI %s  %s", cli.FormatPercent(h.DTI), highlightStyle.Render(string(h.Band))))
		for _, a := range h.Advisories {
			debt = append(debt, "  "+lipgloss.NewStyle().Width(max(20, w-8)).Render(renderAdvisory(a)))
		}
	}

	rows := []string{title, ""}
	rows = append(rows, ledger...)
	if len(breakdown) > 0 {
		rows = append(rows, "")
		rows = append(rows, breakdown...)
	}
	rows = append(rows, "")
	rows = append(rows, preview...)
	if len(debt) > 0 {
		rows = append(rows, "")
		rows = append(rows, debt...)
	}
	rows = append(rows, "")
	if m.month.Submitted {
		rows = append(rows, lockedStyle.Render("  Submitted, locked  [/]: month"))
	} else {
		rows = append(rows, mutedStyle.Render("  enter: edit  a: add entry  s: submit  [/]: month"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
