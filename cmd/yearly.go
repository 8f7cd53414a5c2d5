package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary/renderer"
)

type yearlyCmd struct {
	year int
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the yearly report with breakdown and trend" }
func (*yearlyCmd) Usage() string {
	return `lum yearly [-year <YYYY>]

  Displays the yearly summary, the expense category breakdown and the
  month-by-month flow trend. Defaults to the current year.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Year to report on (defaults to the current year).")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year := c.year
	if year == 0 {
		year = renderer.Now().Year()
	}

	d, cfg, err := openDashboard()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.RenderYear(renderer.NewYearView(d, year, cfg.Currency)))
	return subcommands.ExitSuccess
}
