package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/model"
)

// chartMonths is how many submitted months one chart page shows.
const chartMonths = 6

var (
	emergencyBarStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	carBarStyle       = lipgloss.NewStyle().Foreground(colorSecondary)
	travelBarStyle    = lipgloss.NewStyle().Foreground(colorWarning)
)

type historyModel struct {
	cfg    config.Config
	width  int
	height int

	months []model.MonthlyRecord // submitted, newest first
	weeks  []engine.WeekSummary
	rows   []engine.MonthSummary
	offset int // pages back from the newest

	chart barchart.Model
}

func newHistoryModel(cfg config.Config) historyModel {
	return historyModel{
		cfg:   cfg,
		chart: barchart.New(60, 12),
	}
}

func (h *historyModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
	h.buildChart()
}

func (h *historyModel) setData(d model.AppData, cfg config.Config) {
	h.cfg = cfg
	h.months = engine.SubmittedMonths(d.Months)
	dash := engine.BuildDashboard(d, cfg.Params())
	h.weeks = dash.Weeks
	h.rows = dash.Months
	if h.offset > h.maxOffset() {
		h.offset = h.maxOffset()
	}
	h.buildChart()
}

func (h historyModel) maxOffset() int {
	if len(h.months) == 0 {
		return 0
	}
	return (len(h.months) - 1) / chartMonths
}

// page returns the months on the current page, oldest first.
func (h historyModel) page() []model.MonthlyRecord {
	start := h.offset * chartMonths
	if start >= len(h.months) {
		return nil
	}
	end := min(start+chartMonths, len(h.months))
	out := make([]model.MonthlyRecord, 0, end-start)
	for i := end - 1; i >= start; i-- {
		out = append(out, h.months[i])
	}
	return out
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Left):
			if h.offset < h.maxOffset() {
				h.offset++
				h.buildChart()
			}
		case key.Matches(msg, keys.Right):
			if h.offset > 0 {
				h.offset--
				h.buildChart()
			}
		}
	}
	return h, nil
}

func (h *historyModel) buildChart() {
	chartWidth := max(h.width-8, 20)
	chartHeight := 12
	if h.height > 40 {
		chartHeight = 16
	}

	h.chart = barchart.New(chartWidth, chartHeight)

	rate := h.cfg.Currency.ForeignRate
	var bars []barchart.BarData
	for _, m := range h.page() {
		bars = append(bars, barchart.BarData{
			Label: cli.FormatMonth(m.Month),
			Values: []barchart.BarValue{
				{Name: "Emergency", Value: max(m.EmergencyFund, 0), Style: emergencyBarStyle},
				{Name: "Car", Value: max(m.CarFund, 0), Style: carBarStyle},
				{Name: "Travel", Value: max(m.TravelFund*rate, 0), Style: travelBarStyle},
			},
		})
	}
	if len(bars) == 0 {
		return
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func (h historyModel) view() string {
	w := h.width - 4
	title := titleStyle.Render("History")

	var chartView string
	if len(h.months) == 0 {
		chartView = mutedStyle.Render("  No submitted months yet")
	} else {
		chartView = lipgloss.JoinVertical(lipgloss.Left,
			h.chart.View(),
			"  "+emergencyBarStyle.Render("█ Emergency")+"  "+carBarStyle.Render("█ Car")+"  "+
				travelBarStyle.Render("█ Travel ("+h.cfg.Currency.Local+")"),
		)
	}

	nav := mutedStyle.Render(fmt.Sprintf("  ←/→: older/newer  page %d of %d", h.offset+1, h.maxOffset()+1))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", chartView, "", h.renderMonths(w), "", h.renderWeeks(w), "", nav,
		),
	)
}

func (h historyModel) renderMonths(w int) string {
	if len(h.rows) == 0 {
		return ""
	}
	local, foreign := h.cfg.Currency.Local, h.cfg.Currency.Foreign

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-10s %16s %16s %12s  %s", "Month", "Emergency", "Car", "Travel", "Rule")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 72))))
	for _, m := range h.rows {
		rows = append(rows, fmt.Sprintf("  %-10s %16s %16s %12s  %s",
			cli.FormatMonth(m.Month),
			cli.FormatAmount(local, m.EmergencyFund),
			cli.FormatAmount(local, m.CarFund),
			cli.FormatAmount(foreign, m.TravelFund),
			renderRule(m.Status),
		))
	}
	return strings.Join(rows, "\n")
}

func (h historyModel) renderWeeks(w int) string {
	if len(h.weeks) == 0 {
		return mutedStyle.Render("  No submitted weeks yet")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-18s %8s %9s", "Week", "Verdict", "Actions", "Sessions")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 54))))
	for _, s := range h.weeks {
		verdict := lipgloss.NewStyle().Width(18).Render(renderVerdict(s.Verdict))
		rows = append(rows, fmt.Sprintf("  %-12s %s %8d %9d", s.ID, verdict, s.Actions, s.Sessions))
	}
	return strings.Join(rows, "\n")
}
