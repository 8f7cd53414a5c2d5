package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary/date"
	"github.com/luminary-app/luminary/renderer"
)

type planCmd struct {
	date string
	ids  bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "display the weekly planner" }
func (*planCmd) Usage() string {
	return `lum plan [-date <date>] [-ids]

  Displays the week containing the given date (default today): schedule,
  meals, day plans and the todo list.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Any day of the week to display (defaults to today).")
	f.BoolVar(&c.ids, "ids", false, "Also list event ids, for event edit and rm.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		return fail(err)
	}
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderWeek(renderer.NewWeekView(d, day)))

	if c.ids {
		for _, wd := range date.Week(day) {
			for _, ev := range d.Schedule.On(wd) {
				fmt.Printf("%s  %s  %s %s\n", ev.ID, wd.Key(), ev.Time, ev.Activity)
			}
		}
	}
	return subcommands.ExitSuccess
}

// parseDay parses a -date flag value, defaulting to today when empty.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
