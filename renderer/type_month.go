package renderer

import (
	"fmt"
	"time"

	"github.com/luminary-app/luminary"
	"github.com/shopspring/decimal"
)

// MonthView is the monthly cash-flow report: the four summary figures, the
// month's content strategy when one is set, and every transaction of the
// month in entry order.
type MonthView struct {
	Title    string `json:"title"` // e.g. "June 2026"
	AsOf     string `json:"asOf"`
	Income   string `json:"income"`
	Expense  string `json:"expense"`
	Donation string `json:"donation"`
	Savings  string `json:"savings"`
	Strategy string `json:"strategy,omitempty"`

	Transactions []TransactionView `json:"transactions"`
}

// TransactionView is one dated ledger line, amount already signed.
type TransactionView struct {
	When        string `json:"when"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
}

// NewMonthView builds the report for a "YYYY-MM" month.
func NewMonthView(d *luminary.Dashboard, month, currency string) *MonthView {
	txs := d.Ledger.Month(month)
	s := luminary.MonthlySummary(d.Ledger.Transactions(), month)

	title := month
	if t, err := time.Parse("2006-01", month); err == nil {
		title = t.Format("January 2006")
	}
	v := &MonthView{
		Title:    title,
		AsOf:     Now().Format("2006-01-02 15:04:05"),
		Income:   luminary.M(s.Income, currency).String(),
		Expense:  luminary.M(s.Expense, currency).String(),
		Donation: luminary.M(s.Donation, currency).String(),
		Savings:  luminary.M(s.Savings, currency).SignedString(),
		Strategy: d.Targets.Strategy(month),
	}
	for _, tx := range txs {
		v.Transactions = append(v.Transactions, TransactionView{
			When:        tx.Date.Key(),
			Description: tx.Description,
			Amount:      signedAmount(tx.Amount, tx.Type, currency),
			Category:    tx.Category,
		})
	}
	return v
}

// signedAmount formats a flow amount with its direction: income positive,
// expense and donation negative.
func signedAmount(amount decimal.Decimal, typ luminary.TxType, currency string) string {
	if typ != luminary.Income {
		amount = amount.Neg()
	}
	return luminary.M(amount, currency).SignedString()
}

// RenderMonth renders the MonthView to a markdown string.
func RenderMonth(v *MonthView) string {
	partials := map[string]string{
		"month_summary":      monthSummaryTemplate,
		"month_transactions": monthTransactionsTemplate,
	}
	return renderTemplate("month", monthTemplate, partials, v)
}

// MonthKey formats a year and month as a ledger month key.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

const (
	monthTemplate = `# {{ .Title }}

*As of {{ .AsOf }}*
{{ template "month_summary" . }}{{ if .Strategy }}
## Strategy

{{ .Strategy }}
{{ end }}{{ template "month_transactions" . }}`

	monthSummaryTemplate = `
| | |
|---:|---:|
| Income | {{ .Income }} |
| Expense | {{ .Expense }} |
| Donation | {{ .Donation }} |
| **Savings** | **{{ .Savings }}** |
`

	monthTransactionsTemplate = `{{ if .Transactions }}
## Transactions

| Date | Description | Amount | Category |
|:---|:---|---:|:---|
{{ range .Transactions }}| {{ .When }} | {{ .Description }} | {{ .Amount }} | {{ .Category }} |
{{ end }}{{ end }}`
)
