package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
)

type txCmd struct {
	date     string
	typ      string
	category string
	amount   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "manage the transaction ledger" }
func (*txCmd) Usage() string {
	return `lum tx
lum tx add [-date <date>] [-type <income|expense|donation>] [-category <name>] -amount <n> "<description>"
lum tx edit [-date <date>] [-type <t>] [-category <name>] [-amount <n>] <id> "<description>"
lum tx rm <id>

  Lists or edits transactions. Amounts are stored as magnitudes; the type
  carries the direction. Malformed amounts become zero, negative amounts
  their magnitude.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date of the transaction (defaults to today).")
	f.StringVar(&c.typ, "type", "expense", "Transaction type: income, expense or donation.")
	f.StringVar(&c.category, "category", "General", "Category of the transaction.")
	f.StringVar(&c.amount, "amount", "", "Amount, always kept positive.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, _, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "":
		for _, tx := range d.Ledger.Transactions() {
			fmt.Printf("%s  %s  %-8s  %s  %s (%s)\n", tx.ID, tx.Date, tx.Type, tx.Amount, tx.Description, tx.Category)
		}

	case "add":
		day, err := parseDay(c.date)
		if err != nil {
			return fail(err)
		}
		typ, err := luminary.ParseTxType(c.typ)
		if err != nil {
			return fail(err)
		}
		tx, ok := d.Ledger.Add(day, strings.Join(f.Args()[1:], " "), luminary.ParseAmount(c.amount), typ, c.category)
		if !ok {
			return usage("a transaction needs a description")
		}
		if err := d.Commit(luminary.KeyTransactions); err != nil {
			return fail(err)
		}
		fmt.Printf("Added transaction %s\n", tx.ID)

	case "edit":
		if f.NArg() < 3 {
			return usage("tx edit needs an id and a description")
		}
		id, description := f.Arg(1), strings.Join(f.Args()[2:], " ")
		var existing *luminary.Transaction
		for _, tx := range d.Ledger.Transactions() {
			if tx.ID == id {
				existing = &tx
				break
			}
		}
		if existing == nil {
			return usage(fmt.Sprintf("no transaction %q", id))
		}
		// Unset flags keep the stored values instead of their defaults.
		given := givenFlags(f)
		day, typ := existing.Date, existing.Type
		amount, category := existing.Amount, existing.Category
		if given["date"] {
			if day, err = parseDay(c.date); err != nil {
				return fail(err)
			}
		}
		if given["type"] {
			if typ, err = luminary.ParseTxType(c.typ); err != nil {
				return fail(err)
			}
		}
		if given["amount"] {
			amount = luminary.ParseAmount(c.amount)
		}
		if given["category"] {
			category = c.category
		}
		if !d.Ledger.Update(id, day, description, amount, typ, category) {
			return usage(fmt.Sprintf("no transaction %q", id))
		}
		if err := d.Commit(luminary.KeyTransactions); err != nil {
			return fail(err)
		}

	case "rm":
		if !d.Ledger.Delete(f.Arg(1)) {
			return usage(fmt.Sprintf("no transaction %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyTransactions); err != nil {
			return fail(err)
		}

	default:
		return usage("expected one of: add, edit, rm")
	}
	return subcommands.ExitSuccess
}
