package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show goal progress, the latest verdict and status meters",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	d := engine.BuildDashboard(sess.store.Snapshot(), sess.cfg.Params())
	cur := sess.cfg.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("REVIEWR STATUS"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Saved", "Target", "Progress", "Per Month", "Remaining"},
		Rows: [][]string{
			goalRow(d.Emergency, cur.Local),
			goalRow(d.Car, cur.Local),
			goalRow(d.Travel, cur.Foreign),
		},
	}))

	if d.LifestyleLocked {
		fmt.Printf("  Lifestyle lock: %s toward %s\n",
			cli.FormatPercent(d.LifestyleLockPct),
			cli.FormatAmount(cur.Local, sess.cfg.Goals.LifestyleLock))
	} else {
		fmt.Println("  Lifestyle lock: " + cli.GoodStyle.Render("unlocked"))
	}
	fmt.Println()

	if d.LatestWeek != nil {
		fmt.Printf("  Latest week:  %s  %s\n", d.LatestWeek.ID, verdictStyle(d.LatestWeek.Verdict))
	} else {
		fmt.Println("  Latest week:  " + cli.MutedText.Render("no submitted weeks"))
	}
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Meters",
		Headers: []string{"Meter", "Status"},
		Rows: [][]string{
			{"Leverage", statusStyle(d.Meters.Leverage)},
			{"Health", statusStyle(d.Meters.Health)},
			{"Wealth", statusStyle(d.Meters.Wealth)},
		},
	}))
	fmt.Println()
	return nil
}

func goalRow(g engine.GoalCard, currency string) []string {
	name := g.Name
	if g.Reached() {
		name += " ✓"
	}
	return []string{
		name,
		cli.FormatAmount(currency, g.Total),
		cli.FormatAmount(currency, g.Goal),
		cli.FormatPercent(g.Percent),
		cli.FormatAmount(currency, g.Allocation),
		g.Remaining,
	}
}

func verdictStyle(v engine.Verdict) string {
	switch v {
	case engine.OnTrack:
		return cli.GoodStyle.Render(string(v))
	case engine.PartialProgress:
		return cli.WarnStyle.Render(string(v))
	default:
		return cli.BadStyle.Render(string(v))
	}
}

func statusStyle(s engine.Status) string {
	switch s {
	case engine.StatusStable:
		return cli.GoodStyle.Render(string(s))
	case engine.StatusMonitoring:
		return cli.WarnStyle.Render(string(s))
	default:
		return cli.BadStyle.Render(string(s))
	}
}

func ruleStyle(r engine.RuleStatus) string {
	switch r {
	case engine.RuleMet:
		return cli.GoodStyle.Render(string(r))
	case engine.RulePartial:
		return cli.WarnStyle.Render(string(r))
	default:
		return cli.BadStyle.Render(string(r))
	}
}
