package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/model"
	"github.com/sadopc/reviewr/internal/store"
)

type debtsModel struct {
	store  *store.Store
	cfg    config.Config
	width  int
	height int

	month  model.MonthlyRecord
	cursor int

	formActive bool
	form       *huh.Form
	formType   string // "new", "edit"

	// Form field pointers (survive value copies)
	formLabel    *string
	formDebtType *string
	formBalance  *string
	formPayment  *string
	formRate     *string

	editingID string
}

func newDebtsModel(s *store.Store, cfg config.Config) debtsModel {
	label, typ, bal, pay, rate := "", string(model.DebtPersonalLoan), "", "", ""
	return debtsModel{
		store:        s,
		cfg:          cfg,
		month:        model.NewMonth(""),
		formLabel:    &label,
		formDebtType: &typ,
		formBalance:  &bal,
		formPayment:  &pay,
		formRate:     &rate,
	}
}

func (d *debtsModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d *debtsModel) setMonth(m model.MonthlyRecord, cfg config.Config) {
	d.month = m
	d.cfg = cfg
	if d.cursor >= len(m.Debts) {
		d.cursor = max(0, len(m.Debts)-1)
	}
}

func (d debtsModel) update(msg tea.Msg) (debtsModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	if cmd, ok := navigateMonth(km); ok {
		return d, cmd
	}

	switch {
	case key.Matches(km, keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(km, keys.Down):
		if d.cursor < len(d.month.Debts)-1 {
			d.cursor++
		}
	case key.Matches(km, keys.New):
		if d.month.Submitted {
			return d, errorCmd(store.ErrSubmitted)
		}
		return d.showForm(model.NewDebt(), "new")
	case key.Matches(km, keys.Change), key.Matches(km, keys.Enter):
		if d.month.Submitted {
			return d, errorCmd(store.ErrSubmitted)
		}
		if len(d.month.Debts) > 0 {
			return d.showForm(d.month.Debts[d.cursor], "edit")
		}
	case key.Matches(km, keys.Delete):
		if d.month.Submitted {
			return d, errorCmd(store.ErrSubmitted)
		}
		if len(d.month.Debts) > 0 {
			return d.put(d.withoutDebt(d.month.Debts[d.cursor].ID), "Debt removed")
		}
	}
	return d, nil
}

func (d debtsModel) showForm(debt model.DebtEntry, kind string) (debtsModel, tea.Cmd) {
	*d.formLabel = debt.Label
	*d.formDebtType = string(debt.Type)
	*d.formBalance = amountField(debt.Balance)
	*d.formPayment = amountField(debt.MonthlyPayment)
	*d.formRate = amountField(debt.InterestRate)
	d.formType = kind
	d.editingID = debt.ID

	typeOptions := make([]huh.Option[string], len(model.DebtTypes))
	for i, t := range model.DebtTypes {
		typeOptions[i] = huh.NewOption(string(t), string(t))
	}

	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Label").Placeholder("defaults to the type").Value(d.formLabel),
			huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(d.formDebtType),
			huh.NewInput().Title("Balance").Value(d.formBalance).Validate(validAmount),
			huh.NewInput().Title("Monthly payment").Value(d.formPayment).Validate(validAmount),
			huh.NewInput().Title("Interest rate (% per year)").Value(d.formRate).Validate(validAmount),
		),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d debtsModel) formDebt() model.DebtEntry {
	balance, _ := parseAmount(*d.formBalance)
	payment, _ := parseAmount(*d.formPayment)
	rate, _ := parseAmount(*d.formRate)
	return model.DebtEntry{
		ID:             d.editingID,
		Label:          strings.TrimSpace(*d.formLabel),
		Type:           model.ParseDebtType(*d.formDebtType),
		Balance:        balance,
		MonthlyPayment: payment,
		InterestRate:   rate,
	}
}

// withDebt replaces the debt with the same id, or appends it.
func (d debtsModel) withDebt(debt model.DebtEntry) model.MonthlyRecord {
	out := d.month.Clone()
	for i := range out.Debts {
		if out.Debts[i].ID == debt.ID {
			out.Debts[i] = debt
			return out
		}
	}
	out.Debts = append(out.Debts, debt)
	return out
}

func (d debtsModel) withoutDebt(id string) model.MonthlyRecord {
	out := d.month.Clone()
	kept := out.Debts[:0]
	for _, debt := range out.Debts {
		if debt.ID != id {
			kept = append(kept, debt)
		}
	}
	out.Debts = kept
	return out
}

func (d debtsModel) updateForm(msg tea.Msg) (debtsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		text := "Debt updated"
		if d.formType == "new" {
			text = "Debt added"
		}
		return d.put(d.withDebt(d.formDebt()), text)
	}

	return d, cmd
}

func (d debtsModel) put(m model.MonthlyRecord, done string) (debtsModel, tea.Cmd) {
	if err := d.store.PutMonth(m); err != nil {
		return d, errorCmd(err)
	}
	d.setMonth(m, d.cfg)
	return d, tea.Batch(loadSnapshot(d.store), statusCmd(done))
}

func (d debtsModel) view() string {
	w := d.width - 4
	title := titleStyle.Render("Debts · " + cli.FormatMonth(d.month.Month))

	if d.formActive && d.form != nil {
		heading := "New Debt"
		if d.formType == "edit" {
			heading = "Edit Debt"
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(heading), "", d.form.View()),
		)
	}

	if len(d.month.Debts) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No debts recorded this month. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	local := d.cfg.Currency.Local
	var rows []string
	rows = append(rows, title, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-22s %-14s %14s %12s %8s", "Name", "Type", "Balance", "Payment", "Rate"))
	rows = append(rows, header)

	for i, debt := range d.month.Debts {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := style.Render(fmt.Sprintf("%s%-22s %-14s %14s %12s %7.1f%%",
			cursor,
			truncate(debt.Name(), 22),
			debt.Type,
			cli.FormatAmount(local, debt.Balance),
			cli.FormatAmount(local, debt.MonthlyPayment),
			debt.InterestRate,
		))
		rows = append(rows, row)
	}

	rows = append(rows, "", fmt.Sprintf("  Monthly payments  %s", highlightStyle.Render(cli.FormatAmount(local, d.month.DebtPayments()))))

	if h, ok := engine.AssessMonth(d.month); ok {
		rows = append(rows, fmt.Sprintf("  Debt-to-income    %s  %s", cli.FormatPercent(h.DTI), string(h.Band)))
		for _, a := range h.Advisories {
			rows = append(rows, "  "+lipgloss.NewStyle().Width(max(20, w-8)).Render(renderAdvisory(a)))
		}
	} else if d.month.DebtPayments() > 0 {
		rows = append(rows, mutedStyle.Render("  Add this month's income to see debt-to-income."))
	}

	rows = append(rows, "")
	if d.month.Submitted {
		rows = append(rows, lockedStyle.Render("  Month submitted, locked"))
	} else {
		rows = append(rows, mutedStyle.Render("  n: new  e: edit  d: delete  [/]: month"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
