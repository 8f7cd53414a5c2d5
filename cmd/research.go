package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
)

type researchCmd struct {
	date string
	tags string
}

func (*researchCmd) Name() string     { return "research" }
func (*researchCmd) Synopsis() string { return "manage the research notebook" }
func (*researchCmd) Usage() string {
	return `lum research add [-date <date>] [-tags <a, b>] "<title>" "<preview>"
lum research edit [-tags <a, b>] <id> "<title>" "<preview>"
lum research rm <id>

  Keeps dated research notes. A note's date is set once at creation and
  never rewritten by edits. Notes also appear under lum stock.
`
}

func (c *researchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date of a new note (defaults to today).")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
}

func (c *researchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "add":
		if f.NArg() < 2 {
			return usage("research add needs a title")
		}
		day, err := parseDay(c.date)
		if err != nil {
			return fail(err)
		}
		note, ok := d.Research.Add(day, f.Arg(1), f.Arg(2), c.tags)
		if !ok {
			return usage("a note needs a title")
		}
		if err := d.Commit(luminary.KeyResearch); err != nil {
			return fail(err)
		}
		fmt.Printf("Added note %s\n", note.ID)

	case "edit":
		if f.NArg() < 3 {
			return usage("research edit needs an id and a title")
		}
		if !d.Research.Update(f.Arg(1), f.Arg(2), f.Arg(3), c.tags) {
			return usage(fmt.Sprintf("no note %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyResearch); err != nil {
			return fail(err)
		}

	case "rm":
		if !d.Research.Delete(f.Arg(1)) {
			return usage(fmt.Sprintf("no note %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyResearch); err != nil {
			return fail(err)
		}

	default:
		return usage("expected one of: add, edit, rm")
	}
	return subcommands.ExitSuccess
}
