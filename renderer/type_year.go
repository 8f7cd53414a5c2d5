package renderer

import (
	"github.com/luminary-app/luminary"
	"github.com/shopspring/decimal"
)

// YearView is the yearly report: summary figures, the expense category
// breakdown, and the month-by-month flow trend. The breakdown excludes
// donations while the trend folds them into the expense bars; both mirror
// what the aggregation engine computes.
type YearView struct {
	Year     int    `json:"year"`
	AsOf     string `json:"asOf"`
	Income   string `json:"income"`
	Expense  string `json:"expense"`
	Donation string `json:"donation"`
	Savings  string `json:"savings"`

	Categories []CategoryView `json:"categories"`
	Trend      []TrendView    `json:"trend"`
}

// CategoryView is one slice of the expense breakdown.
type CategoryView struct {
	Name  string `json:"name"`
	Total string `json:"total"`
	Bar   string `json:"bar"`
}

// TrendView is one month of the flow trend.
type TrendView struct {
	Month      string `json:"month"` // "Jan".."Dec"
	Income     string `json:"income"`
	Expense    string `json:"expense"`
	IncomeBar  string `json:"incomeBar"`
	ExpenseBar string `json:"expenseBar"`
}

// NewYearView builds the report for a calendar year.
func NewYearView(d *luminary.Dashboard, year int, currency string) *YearView {
	report := luminary.YearlySummary(d.Ledger.Transactions(), year)
	trend := luminary.YearlyTrend(d.Ledger.Transactions(), year)

	v := &YearView{
		Year:     year,
		AsOf:     Now().Format("2006-01-02 15:04:05"),
		Income:   luminary.M(report.Income, currency).String(),
		Expense:  luminary.M(report.Expense, currency).String(),
		Donation: luminary.M(report.Donation, currency).String(),
		Savings:  luminary.M(report.Savings, currency).SignedString(),
	}

	var maxCategory decimal.Decimal
	for _, c := range report.Categories {
		if c.Total.GreaterThan(maxCategory) {
			maxCategory = c.Total
		}
	}
	for _, c := range report.Categories {
		v.Categories = append(v.Categories, CategoryView{
			Name:  c.Category,
			Total: luminary.M(c.Total, currency).String(),
			Bar:   Bar(c.Total, maxCategory),
		})
	}

	var maxFlow decimal.Decimal
	for _, m := range trend {
		if m.Income.GreaterThan(maxFlow) {
			maxFlow = m.Income
		}
		if m.Expense.GreaterThan(maxFlow) {
			maxFlow = m.Expense
		}
	}
	for _, m := range trend {
		v.Trend = append(v.Trend, TrendView{
			Month:      m.Month.String()[:3],
			Income:     luminary.M(m.Income, currency).String(),
			Expense:    luminary.M(m.Expense, currency).String(),
			IncomeBar:  Bar(m.Income, maxFlow),
			ExpenseBar: Bar(m.Expense, maxFlow),
		})
	}
	return v
}

// RenderYear renders the YearView to a markdown string.
func RenderYear(v *YearView) string {
	partials := map[string]string{
		"year_summary":    yearSummaryTemplate,
		"year_categories": yearCategoriesTemplate,
		"year_trend":      yearTrendTemplate,
	}
	return renderTemplate("year", yearTemplate, partials, v)
}

const (
	yearTemplate = `# Year {{ .Year }}

*As of {{ .AsOf }}*
{{ template "year_summary" . }}{{ template "year_categories" . }}{{ template "year_trend" . }}`

	yearSummaryTemplate = `
| | |
|---:|---:|
| Income | {{ .Income }} |
| Expense | {{ .Expense }} |
| Donation | {{ .Donation }} |
| **Savings** | **{{ .Savings }}** |
`

	yearCategoriesTemplate = `{{ if .Categories }}
## Spending by Category

| Category | Total | |
|:---|---:|:---|
{{ range .Categories }}| {{ .Name }} | {{ .Total }} | {{ .Bar }} |
{{ end }}{{ end }}`

	yearTrendTemplate = `{{ if .Trend }}
## Monthly Trend

| Month | Income | Expense | | |
|:---|---:|---:|:---|:---|
{{ range .Trend }}| {{ .Month }} | {{ .Income }} | {{ .Expense }} | {{ .IncomeBar }} | {{ .ExpenseBar }} |
{{ end }}{{ end }}`
)
