package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/model"
	"github.com/sadopc/reviewr/internal/store"
)

type weeklyModel struct {
	store  *store.Store
	width  int
	height int

	week   model.WeeklyRecord
	target int

	formActive bool
	form       *huh.Form
	formType   string // "review", "submit"

	// Form field pointers (survive value copies)
	leverage *[]string
	decision *[]string
	frontend *[]string
	energy   *int
	weight   *string
	word     *string
	notes    *string
	confirm  *bool
}

func newWeeklyModel(s *store.Store, target int) weeklyModel {
	var lev, dec, fe []string
	energy, weight, word, notes, confirm := 0, "", "", "", false
	return weeklyModel{
		store:    s,
		target:   target,
		week:     model.NewWeek(model.WeekEnding(time.Now())),
		leverage: &lev,
		decision: &dec,
		frontend: &fe,
		energy:   &energy,
		weight:   &weight,
		word:     &word,
		notes:    &notes,
		confirm:  &confirm,
	}
}

func (m *weeklyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *weeklyModel) setWeek(w model.WeeklyRecord, target int) {
	m.week = w
	m.target = target
}

// editableStrategy is what the form starts from. Legacy weeks carry their
// old answers across so upgrading them loses nothing.
func editableStrategy(w model.WeeklyRecord) model.Strategy {
	switch o := w.Outcome.(type) {
	case model.CurrentWeek:
		return o.Strategy
	case model.LegacyWeek:
		return model.Strategy{
			Leverage: o.JobProgress,
			Decision: o.DecisionOwnership,
			Frontend: o.FrontendOutput,
			Energy:   engine.Sessions(w),
		}
	}
	return model.Strategy{}
}

func (m weeklyModel) update(msg tea.Msg) (weeklyModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Edit):
			if m.week.Submitted {
				return m, errorCmd(store.ErrSubmitted)
			}
			return m.showReviewForm()
		case key.Matches(msg, keys.Submit):
			if m.week.Submitted {
				return m, errorCmd(store.ErrSubmitted)
			}
			return m.showSubmitForm()
		}
	}
	return m, nil
}

func (m weeklyModel) showReviewForm() (weeklyModel, tea.Cmd) {
	s := editableStrategy(m.week)
	*m.leverage = tagStrings(s.Leverage.Selected())
	*m.decision = tagStrings(s.Decision.Selected())
	*m.frontend = tagStrings(s.Frontend.Selected())
	*m.energy = s.Energy
	*m.weight, *m.word = "", ""
	if r := m.week.Recalibration; r != nil {
		*m.weight, *m.word = string(r.Weight), string(r.Word)
	}
	*m.notes = m.week.ReviewNotes
	m.formType = "review"

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Leverage").
				Description("Job search actions. The last option clears the rest.").
				Options(huh.NewOptions(tagStrings(model.LeverageOptions)...)...).
				Value(m.leverage),
			huh.NewMultiSelect[string]().Title("Decision ownership").
				Options(huh.NewOptions(tagStrings(model.DecisionOptions)...)...).
				Value(m.decision),
			huh.NewMultiSelect[string]().Title("Frontend output").
				Options(huh.NewOptions(tagStrings(model.FrontendOptions)...)...).
				Value(m.frontend),
		).Title("Strategy"),
		huh.NewGroup(
			huh.NewSelect[int]().Title("Training sessions").
				Options(
					huh.NewOption("0", 0),
					huh.NewOption("1", 1),
					huh.NewOption("2", 2),
				).Value(m.energy),
			huh.NewSelect[string]().Title("What weighed on the week").
				Options(
					huh.NewOption("Nothing", ""),
					huh.NewOption(string(model.WeightLowEnergy), string(model.WeightLowEnergy)),
					huh.NewOption(string(model.WeightFriction), string(model.WeightFriction)),
					huh.NewOption(string(model.WeightScope), string(model.WeightScope)),
				).Value(m.weight),
			huh.NewSelect[string]().Title("Next week, one word").
				Options(
					huh.NewOption("None", ""),
					huh.NewOption(string(model.WordSmaller), string(model.WordSmaller)),
					huh.NewOption(string(model.WordRest), string(model.WordRest)),
					huh.NewOption(string(model.WordSteady), string(model.WordSteady)),
				).Value(m.word),
			huh.NewText().Title("Review notes").Value(m.notes),
		).Title("Reflection"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m weeklyModel) showSubmitForm() (weeklyModel, tea.Cmd) {
	*m.confirm = false
	m.formType = "submit"
	verdict := engine.ClassifyWeek(m.week)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Submit week ending %s?", m.week.ID)).
				Description(fmt.Sprintf("Verdict: %s. Submitted weeks are locked.", verdict)).
				Affirmative("Submit").
				Negative("Cancel").
				Value(m.confirm),
		),
	).WithShowHelp(true)

	m.formActive = true
	return m, m.form.Init()
}

// reviewed applies the form values to the week.
func (m weeklyModel) reviewed() model.WeeklyRecord {
	s := model.Strategy{
		Leverage: model.NewTagSet(toTags[model.LeverageTag](*m.leverage)...),
		Decision: model.NewTagSet(toTags[model.DecisionTag](*m.decision)...),
		Frontend: model.NewTagSet(toTags[model.FrontendTag](*m.frontend)...),
		Energy:   *m.energy,
	}
	w := m.week.WithStrategy(s)
	w.ReviewNotes = strings.TrimSpace(*m.notes)
	w.Recalibration = nil
	if *m.weight != "" && *m.word != "" {
		w.Recalibration = &model.Recalibration{
			Weight: model.RecalibrationWeight(*m.weight),
			Word:   model.RecalibrationWord(*m.word),
		}
	}
	return w
}

func (m weeklyModel) updateForm(msg tea.Msg) (weeklyModel, tea.Cmd) {
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
		case "review":
			w := m.reviewed()
			if err := m.store.PutWeek(w); err != nil {
				return m, errorCmd(err)
			}
			m.week = w
			return m, tea.Batch(loadSnapshot(m.store), statusCmd("Week saved"))
		case "submit":
			if !*m.confirm {
				return m, nil
			}
			w, err := m.store.SubmitWeek(m.week)
			if err != nil {
				return m, errorCmd(err)
			}
			text := fmt.Sprintf("Week %s submitted: %s", w.ID, engine.ClassifyWeek(w))
			return m, tea.Batch(loadSnapshot(m.store), statusCmd(text))
		}
	}

	return m, cmd
}

func (m weeklyModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Week ending " + m.week.ID)
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	title := titleStyle.Render("Week ending " + m.week.ID)
	if m.week.WeekEnding != "" {
		title += mutedStyle.Render("  " + m.week.WeekEnding)
	}

	verdict := engine.ClassifyWeek(m.week)
	actions := engine.TotalActions(m.week)

	rows := []string{
		title,
		"",
		fmt.Sprintf("  Verdict  %s", renderVerdict(verdict)),
		fmt.Sprintf("  Actions  %d / %d   Leverage %s", actions, m.target,
			renderStatus(engine.LeverageStatus(actions, m.target))),
		fmt.Sprintf("  Energy   %d        Health %s", engine.Sessions(m.week),
			renderStatus(engine.HealthStatus(engine.Sessions(m.week)))),
		"",
	}

	s := editableStrategy(m.week)
	rows = append(rows, renderPills("Leverage", model.LeverageOptions, s.Leverage.Contains)...)
	rows = append(rows, "")
	rows = append(rows, renderPills("Decision", model.DecisionOptions, s.Decision.Contains)...)
	rows = append(rows, "")
	rows = append(rows, renderPills("Frontend", model.FrontendOptions, s.Frontend.Contains)...)

	if r := m.week.Recalibration; r != nil {
		rows = append(rows, "", fmt.Sprintf("  Recalibration  %s → %s", r.Weight, highlightStyle.Render(string(r.Word))))
	}
	if m.week.ReviewNotes != "" {
		rows = append(rows, "", "  "+mutedStyle.Render(m.week.ReviewNotes))
	}

	rows = append(rows, "")
	if m.week.Submitted {
		rows = append(rows, lockedStyle.Render("  Submitted, locked"))
	} else {
		rows = append(rows, mutedStyle.Render("  enter: review  s: submit"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

// renderPills shows every option with the selected ones marked.
func renderPills[T ~string](label string, options []T, selected func(T) bool) []string {
	rows := []string{"  " + highlightStyle.Render(label)}
	for _, opt := range options {
		if selected(opt) {
			rows = append(rows, successStyle.Render("    ● "+string(opt)))
		} else {
			rows = append(rows, mutedStyle.Render("    ○ "+string(opt)))
		}
	}
	return rows
}
