package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/reviewr/internal/cli"
	"github.com/sadopc/reviewr/internal/engine"
	"github.com/sadopc/reviewr/internal/model"
)

var monthCmd = &cobra.Command{
	Use:   "month [YYYY-MM]",
	Short: "Show a month's ledger, rule status and debt health",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)
}

func runMonth(_ *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	id := model.MonthKey(time.Now())
	if len(args) == 1 {
		if _, err := time.Parse(model.MonthKeyLayout, args[0]); err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", args[0])
		}
		id = args[0]
	}

	m, err := sess.store.Month(id)
	if err != nil {
		return err
	}

	cfg := sess.cfg
	local := cfg.Currency.Local
	l := engine.BuildLedger(m, cfg.Currency.ForeignRate)

	fmt.Println()
	fmt.Println(cli.RenderTitle(cli.FormatMonth(id)))
	fmt.Println()

	status := "open"
	if m.Submitted && m.SubmittedDate != nil {
		status = "submitted " + m.SubmittedDate.Local().Format("2006-01-02")
	} else if m.Submitted {
		status = "submitted"
	}
	fmt.Printf("  Savings rule: %s  %s\n", ruleStyle(engine.EvaluateMonth(m, cfg.Params().Rules)), cli.MutedText.Render("("+status+")"))
	fmt.Println()

	leftover := cli.FormatAmount(local, l.Leftover)
	if l.OverBudget() {
		leftover = cli.BadStyle.Render(leftover)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Ledger",
		Headers: []string{"Line", "Amount"},
		Rows: [][]string{
			{"Income", cli.FormatAmount(local, l.Income)},
			{"---"},
			{"Fixed costs", cli.FormatAmount(local, l.Fixed)},
			{"Flexible budgets", cli.FormatAmount(local, l.Budgets)},
			{"One-offs", cli.FormatAmount(local, l.OneOffs)},
			{"Debt payments", cli.FormatAmount(local, l.DebtPayments)},
			{"Savings", cli.FormatAmount(local, l.SavingsLocal)},
			{"Travel (" + cfg.Currency.Foreign + " converted)", cli.FormatAmount(local, l.SavingsForeign)},
			{"---"},
			{"Total out", cli.FormatAmount(local, l.TotalOut)},
			{"Leftover", leftover},
		},
	}))

	if len(l.Usage) > 0 {
		rows := make([][]string, 0, len(l.Usage))
		for _, u := range l.Usage {
			limit, pct := "—", "—"
			if u.HasLimit() {
				limit = cli.FormatAmount(local, u.Limit)
				pct = cli.FormatPercent(u.Percent)
				if u.Over {
					pct = cli.BadStyle.Render(pct)
				}
			}
			rows = append(rows, []string{u.Category, cli.FormatAmount(local, u.Spent), limit, pct})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Budgets",
			Headers: []string{"Category", "Spent", "Limit", "Used"},
			Rows:    rows,
		}))
	}

	if h, ok := engine.AssessMonth(m); ok {
		fmt.Println()
		fmt.Printf("  Debt-to-income: %s  %s\n", cli.FormatPercent(h.DTI), bandStyle(h.Band))
		for _, a := range h.Advisories {
			fmt.Println("    " + severityStyle(a.Severity) + " " + a.Text)
		}
	}
	fmt.Println()
	return nil
}

func bandStyle(b engine.Band) string {
	switch b {
	case engine.BandExcellent, engine.BandHealthy:
		return cli.GoodStyle.Render(string(b))
	case engine.BandCaution:
		return cli.WarnStyle.Render(string(b))
	default:
		return cli.BadStyle.Render(string(b))
	}
}

func severityStyle(s engine.Severity) string {
	switch s {
	case engine.SeverityDanger:
		return cli.BadStyle.Render("!")
	case engine.SeverityWarn:
		return cli.WarnStyle.Render("!")
	default:
		return cli.InfoStyle.Render("i")
	}
}
