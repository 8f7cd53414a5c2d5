package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/renderer"
)

type bankCmd struct {
	typ     string
	balance string
	remarks string
}

func (*bankCmd) Name() string     { return "bank" }
func (*bankCmd) Synopsis() string { return "manage bank accounts and show net worth" }
func (*bankCmd) Usage() string {
	return `lum bank
lum bank add [-type <checking|savings|investment>] [-balance <n>] [-remarks <text>] "<name>"
lum bank edit [-type <t>] [-balance <n>] [-remarks <text>] <id> "<name>"
lum bank rm <id>

  Lists accounts with the net worth total, or edits them. Balances may be
  negative and are never reconciled against the ledger.
`
}

func (c *bankCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "checking", "Account type: checking, savings or investment.")
	f.StringVar(&c.balance, "balance", "0", "Account balance, sign kept.")
	f.StringVar(&c.remarks, "remarks", "", "Free-form remarks.")
}

func (c *bankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, cfg, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "":
		printMarkdown(renderer.RenderAccounts(renderer.NewAccountsView(d, cfg.Currency)))

	case "add":
		typ, err := luminary.ParseAccountType(c.typ)
		if err != nil {
			return fail(err)
		}
		acc, ok := d.Accounts.Add(strings.Join(f.Args()[1:], " "), luminary.ParseNumber(c.balance), c.remarks, typ)
		if !ok {
			return usage("an account needs a name")
		}
		if err := d.Commit(luminary.KeyAccounts); err != nil {
			return fail(err)
		}
		fmt.Printf("Added account %s\n", acc.ID)

	case "edit":
		if f.NArg() < 3 {
			return usage("bank edit needs an id and a name")
		}
		id, name := f.Arg(1), strings.Join(f.Args()[2:], " ")
		var existing *luminary.BankAccount
		for _, acc := range d.Accounts.List() {
			if acc.ID == id {
				existing = &acc
				break
			}
		}
		if existing == nil {
			return usage(fmt.Sprintf("no account %q", id))
		}
		// Unset flags keep the stored values instead of their defaults.
		given := givenFlags(f)
		typ, balance, remarks := existing.Type, existing.Balance, existing.Remarks
		if given["type"] {
			if typ, err = luminary.ParseAccountType(c.typ); err != nil {
				return fail(err)
			}
		}
		if given["balance"] {
			balance = luminary.ParseNumber(c.balance)
		}
		if given["remarks"] {
			remarks = c.remarks
		}
		if !d.Accounts.Update(id, name, balance, remarks, typ) {
			return usage(fmt.Sprintf("no account %q", id))
		}
		if err := d.Commit(luminary.KeyAccounts); err != nil {
			return fail(err)
		}

	case "rm":
		if !d.Accounts.Delete(f.Arg(1)) {
			return usage(fmt.Sprintf("no account %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyAccounts); err != nil {
			return fail(err)
		}

	default:
		return usage("expected one of: add, edit, rm")
	}
	return subcommands.ExitSuccess
}
