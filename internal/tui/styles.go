package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/reviewr/internal/engine"
)

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorSecondary = lipgloss.Color("#2EC4B6")
	colorAccent    = lipgloss.Color("#FF6B6B")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorBg        = lipgloss.Color("#1A1B26")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Meters
	stableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	monitoringStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	actionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	// Locked records
	lockedStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Italic(true)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

func renderStatus(s engine.Status) string {
	switch s {
	case engine.StatusStable:
		return stableStyle.Render(string(s))
	case engine.StatusMonitoring:
		return monitoringStyle.Render(string(s))
	}
	return actionStyle.Render(string(s))
}

func renderVerdict(v engine.Verdict) string {
	switch v {
	case engine.OnTrack:
		return stableStyle.Render(string(v))
	case engine.PartialProgress:
		return monitoringStyle.Render(string(v))
	}
	return actionStyle.Render(string(v))
}

func renderRule(r engine.RuleStatus) string {
	switch r {
	case engine.RuleMet:
		return stableStyle.Render(string(r))
	case engine.RulePartial:
		return monitoringStyle.Render(string(r))
	}
	return actionStyle.Render(string(r))
}

func renderAdvisory(a engine.Advisory) string {
	switch a.Severity {
	case engine.SeverityDanger:
		return errorStyle.Render("▲ " + a.Text)
	case engine.SeverityWarn:
		return warningStyle.Render("▲ " + a.Text)
	}
	return highlightStyle.Render("● " + a.Text)
}
