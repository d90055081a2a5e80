package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/model"
)

type dashboardModel struct {
	cfg    config.Config
	width  int
	height int

	dash engine.Dashboard
}

func newDashboardModel(cfg config.Config) dashboardModel {
	return dashboardModel{
		cfg:  cfg,
		dash: engine.BuildDashboard(model.EmptyAppData(), cfg.Params()),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

func (d *dashboardModel) setData(data model.AppData, cfg config.Config) {
	d.cfg = cfg
	d.dash = engine.BuildDashboard(data, cfg.Params())
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	w := d.width - 4
	local, foreign := d.cfg.Currency.Local, d.cfg.Currency.Foreign

	goals := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Savings Goals"),
		"",
		d.renderGoal(d.dash.Emergency, local, w),
		d.renderLifestyleLock(local),
		"",
		d.renderGoal(d.dash.Car, local, w),
		"",
		d.renderGoal(d.dash.Travel, foreign, w),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Width(w).Render(goals),
		panelStyle.Width(w).Render(d.renderWeek()),
		panelStyle.Width(w).Render(d.renderMeters()),
	)
}

func (d dashboardModel) renderGoal(g engine.GoalCard, currency string, w int) string {
	name := highlightStyle.Render(g.Name)
	if g.Reached() {
		name = successStyle.Render(g.Name + " ✓")
	}
	header := fmt.Sprintf("%s  %s / %s", name,
		cli.FormatAmount(currency, g.Total), mutedStyle.Render(cli.FormatAmount(currency, g.Goal)))

	barWidth := max(10, min(w-20, 50))
	bar := cli.RenderProgressBar(g.Percent, barWidth)

	remaining := mutedStyle.Render(fmt.Sprintf("  %s / month  ·  %s",
		cli.FormatAmount(currency, g.Allocation), g.Remaining))

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, remaining)
}

func (d dashboardModel) renderLifestyleLock(currency string) string {
	if !d.dash.LifestyleLocked {
		return successStyle.Render("  Lifestyle unlocked")
	}
	return warningStyle.Render(fmt.Sprintf("  Lifestyle locked until %s (%s)",
		cli.FormatAmount(currency, d.cfg.Goals.LifestyleLock),
		cli.FormatPercent(d.dash.LifestyleLockPct)))
}

func (d dashboardModel) renderWeek() string {
	title := titleStyle.Render("Latest Review")
	lw := d.dash.LatestWeek
	if lw == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("No submitted weeks yet. Press 2 to review this week."),
		)
	}

	rows := []string{
		title,
		fmt.Sprintf("  Week ending %s  %s", lw.ID, renderVerdict(lw.Verdict)),
		mutedStyle.Render(fmt.Sprintf("  %d actions · %d sessions", lw.Actions, lw.Sessions)),
	}
	if lw.Legacy {
		rows = append(rows, mutedStyle.Render("  (recorded in the old format)"))
	}
	return strings.Join(rows, "\n")
}

func (d dashboardModel) renderMeters() string {
	m := d.dash.Meters
	label := lipgloss.NewStyle().Width(12)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Status"),
		"  "+label.Render("Leverage")+renderStatus(m.Leverage),
		"  "+label.Render("Health")+renderStatus(m.Health),
		"  "+label.Render("Wealth")+renderStatus(m.Wealth),
	)
}
