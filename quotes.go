package luminary

import (
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// DefaultQuoteEndpoint serves intraday chart metadata per symbol; the last
// price and the previous close are enough to derive the signed day change.
const DefaultQuoteEndpoint = "https://query1.finance.yahoo.com/v8/finance/chart/"

const (
	quotePricePath = "$.chart.result[0].meta.regularMarketPrice"
	quoteClosePath = "$.chart.result[0].meta.chartPreviousClose"
)

// quoteLatest fetches the latest price and day change (percent) for a symbol.
func quoteLatest(client *http.Client, endpoint, symbol string) (price decimal.Decimal, changePct float64, err error) {
	addr := endpoint + url.PathEscape(symbol)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return decimal.Zero, 0, fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	last, err := jfloat(jobj, quotePricePath)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	prev, err := jfloat(jobj, quoteClosePath)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("error parsing %q: %w", symbol, err)
	}
	if prev != 0 {
		changePct = (last - prev) / prev * 100
	}
	return decimal.NewFromFloat(last), changePct, nil
}

// jfloat extracts a float from a parsed json object using a jsonpath expression.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("%q %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%q not a float: %v", path, jval)
	}
	return val, nil
}

// RefreshQuotes updates price and change of every tracked stock from the
// quote endpoint. A failing symbol is logged and skipped; it never corrupts
// the stored item.
func RefreshQuotes(client *http.Client, endpoint string, w *Watchlist) (updated int) {
	if endpoint == "" {
		endpoint = DefaultQuoteEndpoint
	}
	for _, s := range w.Stocks() {
		price, change, err := quoteLatest(client, endpoint, s.Symbol)
		if err != nil {
			log.Printf("skipping %s: %v", s.Symbol, err)
			continue
		}
		if w.SetQuote(s.ID, price, change) {
			updated++
		}
	}
	return updated
}
