// Package renderer turns dashboard data into markdown reports. Each view type
// carries pre-formatted strings only; all computation happens in the domain
// package before the view is built.
package renderer

import (
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

// Now is the current time used in reports.
// it has to be a global variable so that tests can override it.
func Now() time.Time {
	if os.Getenv("LUMINARY_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("LUMINARY_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainContent string, partials map[string]string, data any) string {
	tmpl, err := template.New(templateName).Parse(mainContent)
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", templateName, err)
	}
	for name, content := range partials {
		if _, err := tmpl.New(name).Parse(content); err != nil {
			return fmt.Sprintf("error parsing partial template %q: %v", name, err)
		}
	}
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// barWidth is the widest bar rendered in trend and breakdown charts.
const barWidth = 20

// Bar scales value against max into a fixed-width text bar. A non-zero value
// always gets at least one tick so small amounts stay visible.
func Bar(value, max decimal.Decimal) string {
	if max.IsZero() || value.IsZero() || value.IsNegative() {
		return ""
	}
	n := value.Mul(decimal.NewFromInt(barWidth)).Div(max).IntPart()
	if n < 1 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("#", int(n))
}
