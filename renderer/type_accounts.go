package renderer

import (
	"github.com/luminary-app/luminary"
)

// AccountsView is the bank accounts report with the net worth total.
type AccountsView struct {
	AsOf     string        `json:"asOf"`
	Accounts []AccountView `json:"accounts"`
	NetWorth string        `json:"netWorth"`
}

// AccountView is one bank account line.
type AccountView struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
	Remarks string `json:"remarks"`
}

// NewAccountsView builds the accounts report.
func NewAccountsView(d *luminary.Dashboard, currency string) *AccountsView {
	v := &AccountsView{
		AsOf:     Now().Format("2006-01-02 15:04:05"),
		NetWorth: luminary.M(luminary.NetWorth(d.Accounts.List()), currency).String(),
	}
	for _, acc := range d.Accounts.List() {
		v.Accounts = append(v.Accounts, AccountView{
			Name:    acc.Name,
			Type:    string(acc.Type),
			Balance: luminary.M(acc.Balance, currency).SignedString(),
			Remarks: acc.Remarks,
		})
	}
	return v
}

// RenderAccounts renders the AccountsView to a markdown string.
func RenderAccounts(v *AccountsView) string {
	return renderTemplate("accounts", accountsTemplate, nil, v)
}

const accountsTemplate = `# Accounts

*As of {{ .AsOf }}*
{{ if .Accounts }}
| Account | Type | Balance | Remarks |
|:---|:---|---:|:---|
{{ range .Accounts }}| {{ .Name }} | {{ .Type }} | {{ .Balance }} | {{ .Remarks }} |
{{ end }}{{ end }}
**Net Worth: {{ .NetWorth }}**
`
