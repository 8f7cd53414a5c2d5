package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/date"
	"github.com/luminary-app/luminary/renderer"
)

type targetCmd struct {
	month string
	date  string
	week  int
	done  bool
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "manage strategies, day plans and reflections" }
func (*targetCmd) Usage() string {
	return `lum target strategy [-month <YYYY-MM>] "<text>"
lum target day [-date <date>] "<text>"
lum target day [-date <date>] -done
lum target reflect [-week <1..53>] "<text>"

  Sets the monthly content strategy, the plan for a single day, or the
  reflection for a week of the year. Day plans appear in lum plan, the
  strategy in lum monthly.
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month of the strategy, YYYY-MM (defaults to the current month).")
	f.StringVar(&c.date, "date", "", "Day of the plan (defaults to today).")
	f.IntVar(&c.week, "week", 0, "Week number of the reflection (defaults to the current ISO week).")
	f.BoolVar(&c.done, "done", false, "Toggle the day plan's completion instead of setting text.")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}
	text := strings.Join(f.Args()[1:], " ")

	switch f.Arg(0) {
	case "strategy":
		month := c.month
		if month == "" {
			now := renderer.Now()
			month = renderer.MonthKey(now.Year(), now.Month())
		} else if _, err := time.Parse("2006-01", month); err != nil {
			return usage(fmt.Sprintf("invalid month %q, want YYYY-MM", month))
		}
		d.Targets.SetStrategy(month, text)
		if err := d.Commit(luminary.KeyStrategies); err != nil {
			return fail(err)
		}

	case "day":
		day, err := parseDay(c.date)
		if err != nil {
			return fail(err)
		}
		if c.done {
			if !d.Targets.ToggleDayPlan(day) {
				return usage(fmt.Sprintf("no day plan on %s", day))
			}
		} else {
			d.Targets.SetDayPlan(day, text)
		}
		if err := d.Commit(luminary.KeyDayPlans); err != nil {
			return fail(err)
		}

	case "reflect":
		week := c.week
		if week == 0 {
			week = date.ISOWeekNumber(date.Today())
		}
		if err := d.Targets.SetReflection(week, text); err != nil {
			return fail(err)
		}
		if err := d.Commit(luminary.KeyReflections); err != nil {
			return fail(err)
		}

	default:
		return usage("expected one of: strategy, day, reflect")
	}
	return subcommands.ExitSuccess
}
