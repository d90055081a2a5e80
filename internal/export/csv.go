package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/reviewr/internal/engine"
)

// WeeksCSV writes one row per week summary.
func WeeksCSV(out io.Writer, weeks []engine.WeekSummary) error {
	w := csv.NewWriter(out)

	// Header
	if err := w.Write([]string{"Week", "Week Ending", "Verdict", "Actions", "Sessions", "Legacy", "Submitted"}); err != nil {
		return err
	}

	for _, s := range weeks {
		row := []string{
			s.ID,
			s.WeekEnding,
			string(s.Verdict),
			strconv.Itoa(s.Actions),
			strconv.Itoa(s.Sessions),
			strconv.FormatBool(s.Legacy),
			strconv.FormatBool(s.Submitted),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// MonthsCSV writes one row per month summary.
func MonthsCSV(out io.Writer, months []engine.MonthSummary) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"Month", "Emergency", "Car", "Travel", "Rule", "Submitted"}); err != nil {
		return err
	}

	for _, m := range months {
		submitted := ""
		if m.SubmittedDate != nil {
			submitted = m.SubmittedDate.UTC().Format(time.RFC3339)
		}
		row := []string{
			m.Month,
			formatAmount(m.EmergencyFund),
			formatAmount(m.CarFund),
			formatAmount(m.TravelFund),
			string(m.Status),
			submitted,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// formatAmount writes amounts without exponent or trailing zeros.
func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ToFile creates path and hands it to write.
func ToFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
