package renderer

import (
	"fmt"
	"strings"

	"github.com/luminary-app/luminary"
)

// StocksView is the watchlist report with the portfolio total and the
// research notebook.
type StocksView struct {
	AsOf       string         `json:"asOf"`
	Stocks     []StockView    `json:"stocks"`
	TotalValue string         `json:"totalValue"`
	Research   []ResearchView `json:"research"`
}

// StockView is one watchlist line.
type StockView struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Change  string `json:"change"` // signed percent
	Shares  string `json:"shares"`
	Value   string `json:"value"`
	Remarks string `json:"remarks"`
}

// ResearchView is one research note.
type ResearchView struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	Preview string `json:"preview"`
	Tags    string `json:"tags"` // comma-joined
}

// NewStocksView builds the watchlist and research report.
func NewStocksView(d *luminary.Dashboard, currency string) *StocksView {
	v := &StocksView{
		AsOf:       Now().Format("2006-01-02 15:04:05"),
		TotalValue: luminary.M(d.Stocks.TotalValue(), currency).String(),
	}
	for _, s := range d.Stocks.Stocks() {
		v.Stocks = append(v.Stocks, StockView{
			Symbol:  s.Symbol,
			Name:    s.Name,
			Price:   luminary.M(s.Price, currency).String(),
			Change:  fmt.Sprintf("%+.2f%%", s.Change),
			Shares:  s.Shares.String(),
			Value:   luminary.M(s.Value(), currency).String(),
			Remarks: s.Remarks,
		})
	}
	for _, n := range d.Research.Notes() {
		v.Research = append(v.Research, ResearchView{
			Date:    n.Date.Key(),
			Title:   n.Title,
			Preview: n.Preview,
			Tags:    strings.Join(n.Tags, ", "),
		})
	}
	return v
}

// RenderStocks renders the StocksView to a markdown string.
func RenderStocks(v *StocksView) string {
	partials := map[string]string{
		"stocks_watchlist": stocksWatchlistTemplate,
		"stocks_research":  stocksResearchTemplate,
	}
	return renderTemplate("stocks", stocksTemplate, partials, v)
}

const (
	stocksTemplate = `# Watchlist

*As of {{ .AsOf }}*
{{ template "stocks_watchlist" . }}{{ template "stocks_research" . }}`

	stocksWatchlistTemplate = `{{ if .Stocks }}
| Symbol | Name | Price | Change | Shares | Value | Remarks |
|:---|:---|---:|---:|---:|---:|:---|
{{ range .Stocks }}| {{ .Symbol }} | {{ .Name }} | {{ .Price }} | {{ .Change }} | {{ .Shares }} | {{ .Value }} | {{ .Remarks }} |
{{ end }}
**Total Value: {{ .TotalValue }}**
{{ end }}`

	stocksResearchTemplate = `{{ if .Research }}
## Research

{{ range .Research }}* {{ .Date }} **{{ .Title }}** {{ .Preview }}{{ if .Tags }} _({{ .Tags }})_{{ end }}
{{ end }}{{ end }}`
)
