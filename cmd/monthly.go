package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary/renderer"
)

type monthlyCmd struct {
	month string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly cash-flow report" }
func (*monthlyCmd) Usage() string {
	return `lum monthly [-month <YYYY-MM>]

  Displays income, expense, donation and savings for a month, the month's
  strategy and its transactions. Defaults to the current month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to report on, YYYY-MM (defaults to the current month).")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := c.month
	if month == "" {
		now := renderer.Now()
		month = renderer.MonthKey(now.Year(), now.Month())
	} else if _, err := time.Parse("2006-01", month); err != nil {
		return usage(fmt.Sprintf("invalid month %q, want YYYY-MM", month))
	}

	d, cfg, err := openDashboard()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderMonth(renderer.NewMonthView(d, month, cfg.Currency)))
	return subcommands.ExitSuccess
}
