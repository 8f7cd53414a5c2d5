package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/renderer"
	"github.com/shopspring/decimal"
)

type wishCmd struct {
	cost  string
	north bool
}

func (*wishCmd) Name() string     { return "wish" }
func (*wishCmd) Synopsis() string { return "manage the wishlist" }
func (*wishCmd) Usage() string {
	return `lum wish
lum wish add [-cost <n>] [-north] "<title>"
lum wish edit [-cost <n>] <id> "<title>"
lum wish done <id>
lum wish rm <id>

  Lists or edits the wishlist. Small joys carry a cost; -north adds a
  costless long-term north star instead.
`
}

func (c *wishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cost, "cost", "0", "Cost of a small joy.")
	f.BoolVar(&c.north, "north", false, "Add a long-term north star instead of a small joy.")
}

func (c *wishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, cfg, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "":
		printMarkdown(renderer.RenderWishlist(renderer.NewWishlistView(d, cfg.Currency)))
		for _, item := range d.Wishlist.Items() {
			fmt.Printf("%s  %s\n", item.ID, item.Title)
		}

	case "add":
		title := strings.Join(f.Args()[1:], " ")
		var item luminary.WishlistItem
		var ok bool
		if c.north {
			item, ok = d.Wishlist.AddNorthStar(title)
		} else {
			item, ok = d.Wishlist.AddSmallJoy(title, luminary.ParseAmount(c.cost))
		}
		if !ok {
			return usage("a wish needs a title")
		}
		if err := d.Commit(luminary.KeyWishlist); err != nil {
			return fail(err)
		}
		fmt.Printf("Added wish %s\n", item.ID)

	case "edit":
		if f.NArg() < 3 {
			return usage("wish edit needs an id and a title")
		}
		// A nil cost keeps the stored one; -north cannot be changed after the fact.
		var cost *decimal.Decimal
		if givenFlags(f)["cost"] {
			amount := luminary.ParseAmount(c.cost)
			cost = &amount
		}
		if !d.Wishlist.Rename(f.Arg(1), strings.Join(f.Args()[2:], " "), cost) {
			return usage(fmt.Sprintf("no wish %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyWishlist); err != nil {
			return fail(err)
		}

	case "done":
		if !d.Wishlist.Toggle(f.Arg(1)) {
			return usage(fmt.Sprintf("no wish %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyWishlist); err != nil {
			return fail(err)
		}

	case "rm":
		if !d.Wishlist.Delete(f.Arg(1)) {
			return usage(fmt.Sprintf("no wish %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyWishlist); err != nil {
			return fail(err)
		}

	default:
		return usage("expected one of: add, edit, done, rm")
	}
	return subcommands.ExitSuccess
}
