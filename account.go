package luminary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies a bank account.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Investment AccountType = "investment"
)

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToLower(s)) {
	case Checking:
		return Checking, nil
	case Savings:
		return Savings, nil
	case Investment:
		return Investment, nil
	default:
		return "", fmt.Errorf("unknown account type %q (want checking, savings or investment)", s)
	}
}

// BankAccount is a user-maintained balance. Balances are entered by hand and
// never derived from the transaction ledger; the two are intentionally
// disconnected.
type BankAccount struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"` // may be negative
	Remarks string          `json:"remarks"`
	Type    AccountType     `json:"type"`
}

// Accounts is the list of bank accounts.
type Accounts struct {
	list []BankAccount
}

// NewAccounts creates an empty account list.
func NewAccounts() *Accounts { return &Accounts{} }

// List returns the accounts in creation order.
func (a *Accounts) List() []BankAccount { return a.list }

// Add appends an account. A blank name is a no-op reported by ok=false.
func (a *Accounts) Add(name string, balance decimal.Decimal, remarks string, typ AccountType) (BankAccount, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return BankAccount{}, false
	}
	acc := BankAccount{ID: uuid.NewString(), Name: name, Balance: balance, Remarks: remarks, Type: typ}
	a.list = append(a.list, acc)
	return acc, true
}

// Update replaces the fields of the matching account in place.
func (a *Accounts) Update(id, name string, balance decimal.Decimal, remarks string, typ AccountType) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for i := range a.list {
		if a.list[i].ID == id {
			a.list[i].Name = name
			a.list[i].Balance = balance
			a.list[i].Remarks = remarks
			a.list[i].Type = typ
			return true
		}
	}
	return false
}

// Delete removes the matching account.
func (a *Accounts) Delete(id string) bool {
	for i := range a.list {
		if a.list[i].ID == id {
			a.list = append(a.list[:i:i], a.list[i+1:]...)
			return true
		}
	}
	return false
}

func (a *Accounts) MarshalJSON() ([]byte, error) { return json.Marshal(a.list) }

func (a *Accounts) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &a.list) }
