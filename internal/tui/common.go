package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/reviewr/internal/config"
	"github.com/sadopc/reviewr/internal/model"
	"github.com/sadopc/reviewr/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewWeekly
	viewMonthly
	viewDebts
	viewHistory
	viewSettings
)

var viewNames = []string{"Dashboard", "Weekly", "Monthly", "Debts", "History", "Settings"}

// --- Messages ---

// dataMsg carries a fresh snapshot and the records under review. Every view
// rebuilds from it.
type dataMsg struct {
	data  model.AppData
	week  model.WeeklyRecord
	month model.MonthlyRecord
	err   error
}

type statusMsg struct {
	text    string
	isError bool
}

type configSavedMsg struct {
	cfg config.Config
}

// monthShiftMsg moves the month shown by the monthly and debts views. Forced
// shifts skip the started-month check; submit uses them.
type monthShiftMsg struct {
	delta int
	force bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// loadSnapshot reads everything back from the store after a mutation.
func loadSnapshot(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		msg := dataMsg{data: s.Snapshot()}
		msg.week, msg.err = s.CurrentWeek(now)
		if msg.err != nil {
			return msg
		}
		msg.month, msg.err = s.CurrentMonth(now)
		return msg
	}
}

func shiftCmd(delta int, force bool) tea.Cmd {
	return func() tea.Msg { return monthShiftMsg{delta: delta, force: force} }
}

// shiftMonth returns the "YYYY-MM" key delta months away from id.
func shiftMonth(id string, delta int) string {
	t, err := time.Parse(model.MonthKeyLayout, id)
	if err != nil {
		return id
	}
	return t.AddDate(0, delta, 0).Format(model.MonthKeyLayout)
}

// navigateMonth maps the prev/next keys shared by the month views.
func navigateMonth(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Prev):
		return shiftCmd(-1, false), true
	case key.Matches(msg, keys.Next):
		return shiftCmd(1, false), true
	}
	return nil, false
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func errorCmd(err error) tea.Cmd {
	text := fmt.Sprintf("Error: %v", err)
	if errors.Is(err, store.ErrSubmitted) {
		text = "Already submitted, records are locked"
	}
	return func() tea.Msg { return statusMsg{text: text, isError: true} }
}

// parseAmount reads a form field. Blank means zero; thousands separators are
// tolerated.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}

func validAmount(s string) error {
	_, err := parseAmount(s)
	return err
}

// amountField renders v for editing in a form input.
func amountField(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func tagStrings[T ~string](tags []T) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

func toTags[T ~string](values []string) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
