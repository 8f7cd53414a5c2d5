package luminary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/luminary-app/luminary/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TxType classifies a transaction. The amount is always stored positive; the
// type carries the sign and meaning. A donation counts as an outflow for
// savings but is excluded from the expense category breakdown.
type TxType string

const (
	Income   TxType = "income"
	Expense  TxType = "expense"
	Donation TxType = "donation"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	case Donation:
		return Donation, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want income, expense or donation)", s)
	}
}

// Transaction is one dated entry of the money-flow ledger.
type Transaction struct {
	ID          string          `json:"id"`
	Date        date.Date       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // always non-negative
	Type        TxType          `json:"type"`
	Category    string          `json:"category"`
}

// Ledger is the ordered list of transactions. It is deliberately disconnected
// from bank account balances: nothing reconciles the two.
type Ledger struct {
	txs []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Transactions returns all transactions in creation order.
func (l *Ledger) Transactions() []Transaction { return l.txs }

// Add appends a transaction. A blank description is a no-op reported by
// ok=false; the amount is stored as its magnitude.
func (l *Ledger) Add(on date.Date, description string, amount decimal.Decimal, typ TxType, category string) (Transaction, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Transaction{}, false
	}
	tx := Transaction{
		ID:          uuid.NewString(),
		Date:        on,
		Description: description,
		Amount:      amount.Abs(),
		Type:        typ,
		Category:    strings.TrimSpace(category),
	}
	l.txs = append(l.txs, tx)
	return tx, true
}

// Update replaces the fields of the matching transaction in place.
func (l *Ledger) Update(id string, on date.Date, description string, amount decimal.Decimal, typ TxType, category string) bool {
	description = strings.TrimSpace(description)
	if description == "" {
		return false
	}
	for i := range l.txs {
		if l.txs[i].ID == id {
			l.txs[i].Date = on
			l.txs[i].Description = description
			l.txs[i].Amount = amount.Abs()
			l.txs[i].Type = typ
			l.txs[i].Category = strings.TrimSpace(category)
			return true
		}
	}
	return false
}

// Delete removes the matching transaction.
func (l *Ledger) Delete(id string) bool {
	for i := range l.txs {
		if l.txs[i].ID == id {
			l.txs = append(l.txs[:i:i], l.txs[i+1:]...)
			return true
		}
	}
	return false
}

// Month returns the transactions whose date-key starts with the "YYYY-MM" prefix.
func (l *Ledger) Month(month string) []Transaction {
	var out []Transaction
	for _, tx := range l.txs {
		if strings.HasPrefix(tx.Date.Key(), month) {
			out = append(out, tx)
		}
	}
	return out
}

func (l *Ledger) MarshalJSON() ([]byte, error) { return json.Marshal(l.txs) }

func (l *Ledger) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &l.txs) }
