package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
)

type todoCmd struct {
	category string
}

func (*todoCmd) Name() string     { return "todo" }
func (*todoCmd) Synopsis() string { return "manage the todo list" }
func (*todoCmd) Usage() string {
	return `lum todo
lum todo add [-category <work|personal|health>] "<text>"
lum todo done <id>
lum todo rm <id>

  Lists, adds, toggles or removes todos. The list is global, not tied to a
  week.
`
}

func (c *todoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "personal", "Category of a new todo.")
}

func (c *todoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "":
		for _, item := range d.Todos.Items() {
			mark := " "
			if item.Completed {
				mark = "x"
			}
			fmt.Printf("%s  [%s] %s (%s)\n", item.ID, mark, item.Text, item.Category)
		}

	case "add":
		category, err := luminary.ParseTodoCategory(c.category)
		if err != nil {
			return fail(err)
		}
		item, ok := d.Todos.Add(strings.Join(f.Args()[1:], " "), category)
		if !ok {
			return usage("nothing to add")
		}
		if err := d.Commit(luminary.KeyTodos); err != nil {
			return fail(err)
		}
		fmt.Printf("Added todo %s\n", item.ID)

	case "done":
		if !d.Todos.Toggle(f.Arg(1)) {
			return usage(fmt.Sprintf("no todo %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyTodos); err != nil {
			return fail(err)
		}

	case "rm":
		if !d.Todos.Delete(f.Arg(1)) {
			return usage(fmt.Sprintf("no todo %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyTodos); err != nil {
			return fail(err)
		}

	default:
		return usage("expected one of: add, done, rm")
	}
	return subcommands.ExitSuccess
}
