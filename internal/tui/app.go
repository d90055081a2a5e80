package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/export"
	"github.com/sadopc/reviewr/internal/model"
	"github.com/sadopc/reviewr/internal/store"
)

var exportFormats = []string{"CSV (weeks)", "CSV (months)", "JSON", "YAML"}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	cfg    config.Config
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard dashboardModel
	weekly    weeklyModel
	monthly   monthlyModel
	debts     debtsModel
	history   historyModel
	settings  settingsModel

	// Last snapshot, kept so month navigation can re-resolve without a reload.
	data        model.AppData
	thisMonth   model.MonthlyRecord
	monthOffset int // months away from the current one

	help   help.Model
	status string
}

// NewApp builds the TUI over s. save persists settings edits; nil keeps
// them in memory only.
func NewApp(s *store.Store, cfg config.Config, save func(config.Config) error) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		cfg:        cfg,
		activeView: viewDashboard,
		dashboard:  newDashboardModel(cfg),
		weekly:     newWeeklyModel(s, cfg.Rules.TargetActions),
		monthly:    newMonthlyModel(s, cfg),
		debts:      newDebtsModel(s, cfg),
		history:    newHistoryModel(cfg),
		settings:   newSettingsModel(s, cfg, save),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadSnapshot(a.store),
		a.settings.refresh(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.weekly.setSize(a.width, contentHeight)
		a.monthly.setSize(a.width, contentHeight)
		a.debts.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewWeekly
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewMonthly
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewDebts
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewHistory
			return a, nil
		case key.Matches(msg, keys.Tab6):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			if a.activeView == viewSettings {
				return a, a.settings.refresh()
			}
			return a, nil
		}

	case dataMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("Error: %v", msg.err)
			return a, nil
		}
		a.apply(msg)
		return a, nil

	case configSavedMsg:
		a.cfg = msg.cfg
		a.status = "Settings saved"
		return a, loadSnapshot(a.store)

	case syncTimesMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd

	case monthShiftMsg:
		if !msg.force && !a.canShift(msg.delta) {
			a.status = "Start this month before moving on"
			return a, nil
		}
		a.monthOffset += msg.delta
		a.applyMonth()
		return a, nil

	case statusMsg:
		a.status = msg.text
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

// apply hands a fresh snapshot to every view.
func (a *App) apply(msg dataMsg) {
	a.dashboard.setData(msg.data, a.cfg)
	a.history.setData(msg.data, a.cfg)
	a.weekly.setWeek(msg.week, a.cfg.Rules.TargetActions)
	a.data = msg.data
	a.thisMonth = msg.month
	a.applyMonth()
}

// canShift reports whether the month views may move by delta. Past months
// are always open; moving past the current month needs the shown one stored.
func (a App) canShift(delta int) bool {
	if delta <= 0 || a.monthOffset+delta <= 0 {
		return true
	}
	_, stored := a.data.Months[a.monthly.month.Month]
	return stored
}

// applyMonth resolves the month being shown and hands it to the month views.
func (a *App) applyMonth() {
	shown := a.thisMonth
	if a.monthOffset != 0 {
		id := shiftMonth(a.thisMonth.Month, a.monthOffset)
		var ok bool
		if shown, ok = a.data.Months[id]; !ok {
			shown = model.NewMonth(id)
		}
	}
	a.monthly.setMonth(shown, a.data.Months, a.cfg)
	a.debts.setMonth(shown, a.cfg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewWeekly:
		a.weekly, cmd = a.weekly.update(msg)
	case viewMonthly:
		a.monthly, cmd = a.monthly.update(msg)
	case viewDebts:
		a.debts, cmd = a.debts.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewWeekly:
		return a.weekly.formActive
	case viewMonthly:
		return a.monthly.formActive
	case viewDebts:
		return a.debts.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewWeekly:
		content = a.weekly.view()
	case viewMonthly:
		content = a.monthly.view()
	case viewDebts:
		content = a.debts.view()
	case viewHistory:
		content = a.history.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(a.height-headerHeight-footerHeight, 1)

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("reviewr")
	gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(tabRow)-4, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)

	gap := max(a.width-lipgloss.Width(left)-lipgloss.Width(status)-2, 1)
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		home, _ := os.UserHomeDir()
		return a, a.doExport(a.exportCursor, home)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int, dir string) tea.Cmd {
	st, params := a.store, a.cfg.Params()
	return func() tea.Msg {
		now := time.Now()
		d := engine.BuildDashboard(st.Snapshot(), params)
		dateStr := now.Format("2006-01-02")

		var name string
		var write func(io.Writer) error
		switch format {
		case 0:
			name = fmt.Sprintf("reviewr-weeks-%s.csv", dateStr)
			write = func(w io.Writer) error { return export.WeeksCSV(w, d.Weeks) }
		case 1:
			name = fmt.Sprintf("reviewr-months-%s.csv", dateStr)
			write = func(w io.Writer) error { return export.MonthsCSV(w, d.Months) }
		case 2:
			name = fmt.Sprintf("reviewr-%s.json", dateStr)
			write = func(w io.Writer) error { return export.ToJSON(w, export.NewReport(d, now)) }
		default:
			name = fmt.Sprintf("reviewr-%s.yaml", dateStr)
			write = func(w io.Writer) error { return export.ToYAML(w, export.NewReport(d, now)) }
		}

		path := filepath.Join(dir, name)
		if err := export.ToFile(path, write); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
