package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/store"
)

type settingsModel struct {
	store  *store.Store
	cfg    config.Config
	save   func(config.Config) error
	width  int
	height int

	lastPush string
	lastPull string

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	emergency     *string
	car           *string
	travel        *string
	lifestyleLock *string
	emergencyMin  *string
	travelMin     *string
	targetActions *string
	foreignRate   *string
}

func newSettingsModel(s *store.Store, cfg config.Config, save func(config.Config) error) settingsModel {
	e, c, t, ll := "", "", "", ""
	em, tm, ta, fr := "", "", "", ""
	return settingsModel{
		store:         s,
		cfg:           cfg,
		save:          save,
		emergency:     &e,
		car:           &c,
		travel:        &t,
		lifestyleLock: &ll,
		emergencyMin:  &em,
		travelMin:     &tm,
		targetActions: &ta,
		foreignRate:   &fr,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type syncTimesMsg struct {
	lastPush string
	lastPull string
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return syncTimesMsg{
			lastPush: s.syncTime(store.SettingLastPush),
			lastPull: s.syncTime(store.SettingLastPull),
		}
	}
}

func (s settingsModel) syncTime(k string) string {
	at, err := s.store.LastSynced(k)
	if err != nil || at.IsZero() {
		return "never"
	}
	return at.Local().Format("2006-01-02 15:04")
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case syncTimesMsg:
		s.lastPush = msg.lastPush
		s.lastPull = msg.lastPull
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.emergency = amountField(s.cfg.Goals.Emergency)
	*s.car = amountField(s.cfg.Goals.Car)
	*s.travel = amountField(s.cfg.Goals.Travel)
	*s.lifestyleLock = amountField(s.cfg.Goals.LifestyleLock)
	*s.emergencyMin = amountField(s.cfg.Rules.EmergencyMin)
	*s.travelMin = amountField(s.cfg.Rules.TravelMin)
	*s.targetActions = strconv.Itoa(s.cfg.Rules.TargetActions)
	*s.foreignRate = amountField(s.cfg.Currency.ForeignRate)

	local, foreign := s.cfg.Currency.Local, s.cfg.Currency.Foreign

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Emergency fund goal ("+local+")").Value(s.emergency).Validate(positiveAmount),
			huh.NewInput().Title("Car fund goal ("+local+")").Value(s.car).Validate(positiveAmount),
			huh.NewInput().Title("Travel fund goal ("+foreign+")").Value(s.travel).Validate(positiveAmount),
			huh.NewInput().Title("Lifestyle lock milestone ("+local+")").Value(s.lifestyleLock).Validate(validAmount),
		).Title("Goals"),
		huh.NewGroup(
			huh.NewInput().Title("Monthly emergency minimum ("+local+")").Value(s.emergencyMin).Validate(validAmount),
			huh.NewInput().Title("Monthly travel minimum ("+foreign+")").Value(s.travelMin).Validate(validAmount),
			huh.NewInput().Title("Weekly target actions").Value(s.targetActions).Validate(positiveInt),
			huh.NewInput().Title(fmt.Sprintf("%s per %s", local, foreign)).Value(s.foreignRate).Validate(positiveAmount),
		).Title("Rules"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func positiveAmount(v string) error {
	f, err := parseAmount(v)
	if err != nil {
		return err
	}
	if f <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func positiveInt(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a whole number above zero")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		cfg := s.formConfig()
		if err := cfg.Validate(); err != nil {
			return s, errorCmd(err)
		}
		if s.save != nil {
			if err := s.save(cfg); err != nil {
				return s, errorCmd(err)
			}
		}
		s.cfg = cfg
		return s, func() tea.Msg { return configSavedMsg{cfg: cfg} }
	}

	return s, cmd
}

func (s settingsModel) formConfig() config.Config {
	cfg := s.cfg
	cfg.Goals.Emergency, _ = parseAmount(*s.emergency)
	cfg.Goals.Car, _ = parseAmount(*s.car)
	cfg.Goals.Travel, _ = parseAmount(*s.travel)
	cfg.Goals.LifestyleLock, _ = parseAmount(*s.lifestyleLock)
	cfg.Rules.EmergencyMin, _ = parseAmount(*s.emergencyMin)
	cfg.Rules.TravelMin, _ = parseAmount(*s.travelMin)
	cfg.Rules.TargetActions, _ = strconv.Atoi(*s.targetActions)
	cfg.Currency.ForeignRate, _ = parseAmount(*s.foreignRate)
	return cfg
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	local, foreign := s.cfg.Currency.Local, s.cfg.Currency.Foreign
	label := lipgloss.NewStyle().Width(24)
	row := func(k, v string) string {
		return "  " + label.Render(k) + " " + highlightStyle.Render(v)
	}

	rows := []string{
		title,
		"",
		row("Emergency goal", cli.FormatAmount(local, s.cfg.Goals.Emergency)),
		row("Car goal", cli.FormatAmount(local, s.cfg.Goals.Car)),
		row("Travel goal", cli.FormatAmount(foreign, s.cfg.Goals.Travel)),
		row("Lifestyle lock", cli.FormatAmount(local, s.cfg.Goals.LifestyleLock)),
		"",
		row("Emergency minimum", cli.FormatAmount(local, s.cfg.Rules.EmergencyMin)),
		row("Travel minimum", cli.FormatAmount(foreign, s.cfg.Rules.TravelMin)),
		row("Target actions", strconv.Itoa(s.cfg.Rules.TargetActions)),
		row("Exchange rate", fmt.Sprintf("1 %s = %g %s", foreign, s.cfg.Currency.ForeignRate, local)),
		"",
		row("Database", s.cfg.Storage.DBPath),
	}

	if s.cfg.Mirror.Enabled {
		rows = append(rows,
			row("Mirror", s.cfg.Mirror.URL),
			row("Last push", s.lastPush),
			row("Last pull", s.lastPull),
		)
	} else {
		rows = append(rows, row("Mirror", "disabled"))
	}

	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
