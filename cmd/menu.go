package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/date"
	"github.com/luminary-app/luminary/menu"
)

type menuCmd struct {
	date        string
	breakfast   string
	lunch       string
	dinner      string
	snack       string
	ingredients string
	cuisine     string
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the weekly meal plan" }
func (*menuCmd) Usage() string {
	return `lum menu set [-date <date>] [-breakfast <dish>] [-lunch <dish>] [-dinner <dish>] [-snack <dish>]
lum menu clear [-date <date>]
lum menu gen [-date <date>] [-ingredients <list>] [-cuisine <style>]

  Edits the meal plan of a single day, or generates a full week of plans
  with the configured text-generation model and merges it over the week
  containing the date.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Day to edit, or any day of the week to generate for (defaults to today).")
	f.StringVar(&c.breakfast, "breakfast", "", "Breakfast dish.")
	f.StringVar(&c.lunch, "lunch", "", "Lunch dish.")
	f.StringVar(&c.dinner, "dinner", "", "Dinner dish.")
	f.StringVar(&c.snack, "snack", "", "Snack.")
	f.StringVar(&c.ingredients, "ingredients", "", "Ingredients to build the generated week around.")
	f.StringVar(&c.cuisine, "cuisine", "", "Cuisine style for the generated week.")
}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(c.date)
	if err != nil {
		return fail(err)
	}
	d, cfg, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "set":
		plan, _ := d.Menu.Plan(day)
		if c.breakfast != "" {
			plan.Breakfast = c.breakfast
		}
		if c.lunch != "" {
			plan.Lunch = c.lunch
		}
		if c.dinner != "" {
			plan.Dinner = c.dinner
		}
		if c.snack != "" {
			plan.Snack = c.snack
		}
		d.Menu.SetPlan(day, plan)
		if err := d.Commit(luminary.KeyMenu); err != nil {
			return fail(err)
		}
		fmt.Printf("Updated meals on %s\n", day)

	case "clear":
		d.Menu.Clear(day)
		if err := d.Commit(luminary.KeyMenu); err != nil {
			return fail(err)
		}
		fmt.Printf("Cleared meals on %s\n", day)

	case "gen":
		g, err := menu.NewGenerator(ctx, cfg.Model)
		if err != nil {
			return fail(err)
		}
		plans, err := menu.GenerateWeek(ctx, g, c.ingredients, c.cuisine)
		if err != nil {
			return fail(err)
		}
		if err := d.Menu.Merge(date.StartOfWeek(day), plans); err != nil {
			return fail(err)
		}
		if err := d.Commit(luminary.KeyMenu); err != nil {
			return fail(err)
		}
		fmt.Printf("Planned the week of %s\n", date.StartOfWeek(day))

	default:
		return usage("expected one of: set, clear, gen")
	}
	return subcommands.ExitSuccess
}
