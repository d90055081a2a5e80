package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/model"
)

var weekCmd = &cobra.Command{
	Use:   "week [YYYY-MM-DD]",
	Short: "Show a week's review and verdict (default: the week being reviewed)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(_ *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var w model.WeeklyRecord
	if len(args) == 1 {
		if _, err := time.Parse(model.WeekKeyLayout, args[0]); err != nil {
			return fmt.Errorf("invalid week %q (expected YYYY-MM-DD)", args[0])
		}
		w, err = sess.store.Week(args[0])
	} else {
		w, err = sess.store.CurrentWeek(time.Now())
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WEEK ENDING " + w.ID))
	fmt.Println()

	sum := engine.SummarizeWeek(w)
	state := "in progress"
	if w.Submitted {
		state = "submitted"
	}
	fmt.Printf("  Verdict:  %s  %s\n", verdictStyle(sum.Verdict), cli.MutedText.Render("("+state+")"))
	fmt.Printf("  Actions:  %d / %d\n", sum.Actions, sess.cfg.Rules.TargetActions)
	fmt.Printf("  Sessions: %d\n", sum.Sessions)
	fmt.Println()

	var rows [][]string
	switch o := w.Outcome.(type) {
	case model.CurrentWeek:
		rows = [][]string{
			{"Leverage", tagList(o.Strategy.Leverage.Selected())},
			{"Decision", tagList(o.Strategy.Decision.Selected())},
			{"Frontend", tagList(o.Strategy.Frontend.Selected())},
			{"Energy", fmt.Sprintf("%d", o.Strategy.Energy)},
		}
	case model.LegacyWeek:
		rows = [][]string{
			{"Job progress", tagList(o.JobProgress.Selected())},
			{"Decision ownership", tagList(o.DecisionOwnership.Selected())},
			{"Frontend output", tagList(o.FrontendOutput.Selected())},
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Observation", "Recorded"},
		Rows:    rows,
	}))

	if w.Recalibration != nil {
		fmt.Printf("\n  Recalibration: %s / %s\n", w.Recalibration.Weight, w.Recalibration.Word)
	}
	if w.ReviewNotes != "" {
		fmt.Printf("\n  Notes: %s\n", w.ReviewNotes)
	}
	fmt.Println()
	return nil
}

func tagList[T ~string](tags []T) string {
	if len(tags) == 0 {
		return "—"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
