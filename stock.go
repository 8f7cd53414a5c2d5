package luminary

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockItem is one tracked position. Value is always computed from price and
// shares, never stored.
type StockItem struct {
	ID      string          `json:"id"`
	Symbol  string          `json:"symbol"` // normalized upper-case
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Change  float64         `json:"change"` // percent, signed
	Shares  decimal.Decimal `json:"shares"`
	Remarks string          `json:"remarks,omitempty"`
}

// Value returns price x shares.
func (s StockItem) Value() decimal.Decimal { return s.Price.Mul(s.Shares) }

// Watchlist is the tracked stock list.
type Watchlist struct {
	stocks []StockItem
}

// NewWatchlist creates an empty watchlist.
func NewWatchlist() *Watchlist { return &Watchlist{} }

// Stocks returns the tracked items in creation order.
func (w *Watchlist) Stocks() []StockItem { return w.stocks }

// Add appends a stock. A blank symbol is a no-op reported by ok=false; the
// symbol is normalized to upper case.
func (w *Watchlist) Add(symbol, name string, price decimal.Decimal, change float64, shares decimal.Decimal, remarks string) (StockItem, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return StockItem{}, false
	}
	item := StockItem{
		ID:      uuid.NewString(),
		Symbol:  symbol,
		Name:    name,
		Price:   price,
		Change:  change,
		Shares:  shares,
		Remarks: remarks,
	}
	w.stocks = append(w.stocks, item)
	return item, true
}

// Update replaces the fields of the matching stock in place.
func (w *Watchlist) Update(id, symbol, name string, price decimal.Decimal, change float64, shares decimal.Decimal, remarks string) bool {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return false
	}
	for i := range w.stocks {
		if w.stocks[i].ID == id {
			w.stocks[i].Symbol = symbol
			w.stocks[i].Name = name
			w.stocks[i].Price = price
			w.stocks[i].Change = change
			w.stocks[i].Shares = shares
			w.stocks[i].Remarks = remarks
			return true
		}
	}
	return false
}

// SetQuote updates price and change of the matching stock, typically from a
// live quote refresh.
func (w *Watchlist) SetQuote(id string, price decimal.Decimal, change float64) bool {
	for i := range w.stocks {
		if w.stocks[i].ID == id {
			w.stocks[i].Price = price
			w.stocks[i].Change = change
			return true
		}
	}
	return false
}

// Delete removes the matching stock.
func (w *Watchlist) Delete(id string) bool {
	for i := range w.stocks {
		if w.stocks[i].ID == id {
			w.stocks = append(w.stocks[:i:i], w.stocks[i+1:]...)
			return true
		}
	}
	return false
}

// TotalValue sums the computed value of every position.
func (w *Watchlist) TotalValue() decimal.Decimal {
	var total decimal.Decimal
	for _, s := range w.stocks {
		total = total.Add(s.Value())
	}
	return total
}

func (w *Watchlist) MarshalJSON() ([]byte, error) { return json.Marshal(w.stocks) }

func (w *Watchlist) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &w.stocks) }
