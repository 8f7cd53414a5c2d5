package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
)

type eventCmd struct {
	date string
	time string
}

func (*eventCmd) Name() string     { return "event" }
func (*eventCmd) Synopsis() string { return "add, edit or remove a schedule event" }
func (*eventCmd) Usage() string {
	return `lum event add [-date <date>] "<HH:MM> <activity>"
lum event edit [-date <date>] [-time <HH:MM>] <id> <activity>
lum event rm [-date <date>] <id>

  Manages the schedule of a single day. An entry without a leading time is
  kept as an untimed activity. Removing an event also cancels the focus
  timer if it was bound to it.
`
}

func (c *eventCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Day of the event (defaults to today).")
	f.StringVar(&c.time, "time", "", "New time for edit, HH:MM.")
}

func (c *eventCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		return fail(err)
	}
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "add":
		raw := strings.Join(f.Args()[1:], " ")
		ev, ok := d.Schedule.Add(day, raw)
		if !ok {
			return usage("nothing to add")
		}
		if err := d.Commit(luminary.KeySchedule); err != nil {
			return fail(err)
		}
		fmt.Printf("Added %s %s on %s\n", ev.Time, ev.Activity, day)

	case "edit":
		if f.NArg() < 3 {
			return usage("event edit needs an id and an activity")
		}
		id, activity := f.Arg(1), strings.Join(f.Args()[2:], " ")
		at := c.time
		if !givenFlags(f)["time"] {
			for _, ev := range d.Schedule.On(day) {
				if ev.ID == id {
					at = ev.Time
					break
				}
			}
		}
		if !d.Schedule.Edit(day, id, at, activity) {
			return usage(fmt.Sprintf("no event %q on %s", id, day))
		}
		if err := d.Commit(luminary.KeySchedule); err != nil {
			return fail(err)
		}
		fmt.Printf("Edited event %s\n", id)

	case "rm":
		if f.NArg() < 2 {
			return usage("event rm needs an id")
		}
		id := f.Arg(1)
		removed, err := d.RemoveEvent(day, id)
		if err != nil {
			return fail(err)
		}
		if !removed {
			return usage(fmt.Sprintf("no event %q on %s", id, day))
		}
		fmt.Printf("Removed event %s\n", id)

	default:
		return usage("expected one of: add, edit, rm")
	}
	return subcommands.ExitSuccess
}
