package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/date"
	"github.com/shopspring/decimal"
)

// run drives a command the way main does: SetFlags, Parse, Execute.
// Flags come before the verb, as on the command line.
func run(t *testing.T, c subcommands.Command, args ...string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	if status := c.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("%s %v: exit status %v", c.Name(), args, status)
	}
}

// tempData points the data folder at a scratch directory for one test.
func tempData(t *testing.T) {
	t.Helper()
	old := *dataDir
	*dataDir = t.TempDir()
	t.Cleanup(func() { *dataDir = old })
}

func reload(t *testing.T) *luminary.Dashboard {
	t.Helper()
	d, _, err := openDashboard()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestEventEdit_keepsTimeWhenFlagUnset(t *testing.T) {
	tempData(t)
	run(t, &eventCmd{}, "-date", "2026-06-03", "add", "09:00 Standup")

	day := date.MustParse("2026-06-03")
	var id string
	for _, ev := range reload(t).Schedule.On(day) {
		if ev.Activity == "Standup" {
			id = ev.ID
		}
	}
	if id == "" {
		t.Fatal("added event not found")
	}

	run(t, &eventCmd{}, "-date", "2026-06-03", "edit", id, "Daily standup")

	for _, ev := range reload(t).Schedule.On(day) {
		if ev.ID != id {
			continue
		}
		if ev.Time != "09:00" {
			t.Errorf("time = %q, want %q", ev.Time, "09:00")
		}
		if ev.Activity != "Daily standup" {
			t.Errorf("activity = %q, want %q", ev.Activity, "Daily standup")
		}
		return
	}
	t.Fatalf("event %s gone after edit", id)
}

func TestEventEdit_timeFlagStillApplies(t *testing.T) {
	tempData(t)
	run(t, &eventCmd{}, "-date", "2026-06-03", "add", "09:00 Standup")

	day := date.MustParse("2026-06-03")
	id := reload(t).Schedule.On(day)[len(reload(t).Schedule.On(day))-1].ID
	run(t, &eventCmd{}, "-date", "2026-06-03", "-time", "10:30", "edit", id, "Standup")

	events := reload(t).Schedule.On(day)
	if got := events[len(events)-1].Time; got != "10:30" {
		t.Errorf("time = %q, want %q", got, "10:30")
	}
}

func TestTxEdit_keepsUnsetFields(t *testing.T) {
	tempData(t)
	run(t, &txCmd{}, "-date", "2026-01-10", "-category", "Food", "-amount", "120", "add", "Groceries")

	txs := reload(t).Ledger.Transactions()
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	id := txs[0].ID

	run(t, &txCmd{}, "edit", id, "Weekly groceries")

	tx := reload(t).Ledger.Transactions()[0]
	if tx.Description != "Weekly groceries" {
		t.Errorf("description = %q, want %q", tx.Description, "Weekly groceries")
	}
	if !tx.Amount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("amount = %s, want 120", tx.Amount)
	}
	if tx.Date != date.MustParse("2026-01-10") {
		t.Errorf("date = %s, want 2026-01-10", tx.Date)
	}
	if tx.Category != "Food" {
		t.Errorf("category = %q, want %q", tx.Category, "Food")
	}
	if tx.Type != luminary.Expense {
		t.Errorf("type = %q, want %q", tx.Type, luminary.Expense)
	}
}

func TestTxEdit_amountFlagStillApplies(t *testing.T) {
	tempData(t)
	run(t, &txCmd{}, "-amount", "120", "add", "Groceries")

	id := reload(t).Ledger.Transactions()[0].ID
	run(t, &txCmd{}, "-amount", "135.50", "edit", id, "Groceries")

	tx := reload(t).Ledger.Transactions()[0]
	if !tx.Amount.Equal(decimal.RequireFromString("135.50")) {
		t.Errorf("amount = %s, want 135.50", tx.Amount)
	}
}

func TestBankEdit_keepsUnsetFields(t *testing.T) {
	tempData(t)
	run(t, &bankCmd{}, "-type", "savings", "-balance", "8200", "-remarks", "emergency fund", "add", "Growth Nest")

	accounts := reload(t).Accounts.List()
	if len(accounts) != 1 {
		t.Fatalf("got %d accounts, want 1", len(accounts))
	}
	id := accounts[0].ID

	run(t, &bankCmd{}, "edit", id, "Growth Nest II")

	acc := reload(t).Accounts.List()[0]
	if acc.Name != "Growth Nest II" {
		t.Errorf("name = %q, want %q", acc.Name, "Growth Nest II")
	}
	if !acc.Balance.Equal(decimal.NewFromInt(8200)) {
		t.Errorf("balance = %s, want 8200", acc.Balance)
	}
	if acc.Type != luminary.Savings {
		t.Errorf("type = %q, want %q", acc.Type, luminary.Savings)
	}
	if acc.Remarks != "emergency fund" {
		t.Errorf("remarks = %q, want %q", acc.Remarks, "emergency fund")
	}
}

func TestWishEdit_keepsCostWhenFlagUnset(t *testing.T) {
	tempData(t)
	run(t, &wishCmd{}, "-cost", "450", "add", "Espresso machine")

	id := reload(t).Wishlist.Items()[0].ID
	run(t, &wishCmd{}, "edit", id, "Espresso rig")

	item := reload(t).Wishlist.Items()[0]
	if item.Title != "Espresso rig" {
		t.Errorf("title = %q, want %q", item.Title, "Espresso rig")
	}
	if item.Cost == nil || !item.Cost.Equal(decimal.NewFromInt(450)) {
		t.Errorf("cost = %v, want 450", item.Cost)
	}

	run(t, &wishCmd{}, "-cost", "500", "edit", id, "Espresso rig")
	item = reload(t).Wishlist.Items()[0]
	if item.Cost == nil || !item.Cost.Equal(decimal.NewFromInt(500)) {
		t.Errorf("cost = %v, want 500", item.Cost)
	}
}

func TestStockEdit_keepsUnsetFields(t *testing.T) {
	tempData(t)
	run(t, &stockCmd{}, "-price", "280.50", "-shares", "10", "add", "vti", "Total Market")

	id := reload(t).Stocks.Stocks()[0].ID
	run(t, &stockCmd{}, "-price", "300", "edit", id)

	s := reload(t).Stocks.Stocks()[0]
	if !s.Price.Equal(decimal.NewFromInt(300)) {
		t.Errorf("price = %s, want 300", s.Price)
	}
	if s.Symbol != "VTI" {
		t.Errorf("symbol = %q, want %q", s.Symbol, "VTI")
	}
	if s.Name != "Total Market" {
		t.Errorf("name = %q, want %q", s.Name, "Total Market")
	}
	if !s.Shares.Equal(decimal.NewFromInt(10)) {
		t.Errorf("shares = %s, want 10", s.Shares)
	}
}
