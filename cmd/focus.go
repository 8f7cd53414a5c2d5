package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
)

type focusCmd struct {
	minutes int
	event   string
}

func (*focusCmd) Name() string     { return "focus" }
func (*focusCmd) Synopsis() string { return "run a focus timer" }
func (*focusCmd) Usage() string {
	return `lum focus [-minutes <n>] [-event <id>]

  Runs a countdown in the terminal, optionally bound to a schedule event,
  and rings the bell when it expires. Ctrl-C abandons it; the timer is
  never persisted.
`
}

func (c *focusCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.minutes, "minutes", 25, "Length of the focus session.")
	f.StringVar(&c.event, "event", "", "Schedule event id to bind the session to.")
}

func (c *focusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.minutes <= 0 {
		return usage("minutes must be positive")
	}
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	d.Timer.Start(c.event, c.minutes*60)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nAbandoned.")
			return subcommands.ExitSuccess
		case <-ticker.C:
			if d.Timer.Tick() {
				// \a rings the terminal bell
				fmt.Print("\r\aTime's up!       \n")
				d.Timer.Dismiss()
				return subcommands.ExitSuccess
			}
			remaining := d.Timer.Remaining()
			fmt.Printf("\r%02d:%02d ", remaining/60, remaining%60)
		}
	}
}
