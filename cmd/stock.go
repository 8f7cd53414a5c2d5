package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/renderer"
)

type stockCmd struct {
	symbol  string
	name    string
	price   string
	change  float64
	shares  string
	remarks string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "manage the stock watchlist" }
func (*stockCmd) Usage() string {
	return `lum stock
lum stock add [-price <n>] [-change <pct>] [-shares <n>] [-remarks <text>] <symbol> "<name>"
lum stock edit [-symbol <s>] [-name <n>] [-price <n>] [-change <pct>] [-shares <n>] [-remarks <text>] <id>
lum stock rm <id>
lum stock refresh

  Lists the watchlist with the portfolio total, edits it, or refreshes every
  quote from the configured endpoint. Symbols are normalized to upper case.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "New ticker symbol for edit.")
	f.StringVar(&c.name, "name", "", "New display name for edit.")
	f.StringVar(&c.price, "price", "0", "Current price per share.")
	f.Float64Var(&c.change, "change", 0, "Daily change percent, signed.")
	f.StringVar(&c.shares, "shares", "0", "Number of shares held.")
	f.StringVar(&c.remarks, "remarks", "", "Free-form remarks.")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, cfg, err := openDashboard()
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "":
		printMarkdown(renderer.RenderStocks(renderer.NewStocksView(d, cfg.Currency)))

	case "add":
		if f.NArg() < 2 {
			return usage("stock add needs a symbol")
		}
		symbol, name := f.Arg(1), strings.Join(f.Args()[2:], " ")
		s, ok := d.Stocks.Add(symbol, name, luminary.ParseAmount(c.price), c.change, luminary.ParseAmount(c.shares), c.remarks)
		if !ok {
			return usage("a stock needs a symbol")
		}
		if err := d.Commit(luminary.KeyStocks); err != nil {
			return fail(err)
		}
		fmt.Printf("Added %s (%s)\n", s.Symbol, s.ID)

	case "edit":
		id := f.Arg(1)
		var existing *luminary.StockItem
		for _, s := range d.Stocks.Stocks() {
			if s.ID == id {
				existing = &s
				break
			}
		}
		if existing == nil {
			return usage(fmt.Sprintf("no stock %q", id))
		}
		// Unset flags keep the stored values instead of their defaults.
		given := givenFlags(f)
		symbol, name, remarks := existing.Symbol, existing.Name, existing.Remarks
		price, change, shares := existing.Price, existing.Change, existing.Shares
		if given["symbol"] {
			symbol = c.symbol
		}
		if given["name"] {
			name = c.name
		}
		if given["price"] {
			price = luminary.ParseAmount(c.price)
		}
		if given["change"] {
			change = c.change
		}
		if given["shares"] {
			shares = luminary.ParseAmount(c.shares)
		}
		if given["remarks"] {
			remarks = c.remarks
		}
		if !d.Stocks.Update(id, symbol, name, price, change, shares, remarks) {
			return usage(fmt.Sprintf("no stock %q", id))
		}
		if err := d.Commit(luminary.KeyStocks); err != nil {
			return fail(err)
		}

	case "rm":
		if !d.Stocks.Delete(f.Arg(1)) {
			return usage(fmt.Sprintf("no stock %q", f.Arg(1)))
		}
		if err := d.Commit(luminary.KeyStocks); err != nil {
			return fail(err)
		}

	case "refresh":
		client := &http.Client{Timeout: 30 * time.Second}
		updated := luminary.RefreshQuotes(client, cfg.QuoteEndpoint, d.Stocks)
		if err := d.Commit(luminary.KeyStocks); err != nil {
			return fail(err)
		}
		fmt.Printf("Refreshed %d quote(s)\n", updated)

	default:
		return usage("expected one of: add, edit, rm, refresh")
	}
	return subcommands.ExitSuccess
}
