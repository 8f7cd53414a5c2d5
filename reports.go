package luminary

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// This file is the aggregation engine. Every figure is recomputed from the
// full transaction list on each call; nothing derived is ever cached or
// persisted, so the results cannot go stale.

// Summary groups the amounts of a period by transaction type.
// Savings = income - (expense + donation): donations count as outflow.
type Summary struct {
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Donation decimal.Decimal
	Savings  decimal.Decimal
}

func summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Donation:
			s.Donation = s.Donation.Add(tx.Amount)
		default:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	s.Savings = s.Income.Sub(s.Expense.Add(s.Donation))
	return s
}

// MonthlySummary sums the transactions whose date-key starts with the given
// "YYYY-MM" month.
func MonthlySummary(txs []Transaction, month string) Summary {
	var filtered []Transaction
	for _, tx := range txs {
		if strings.HasPrefix(tx.Date.Key(), month) {
			filtered = append(filtered, tx)
		}
	}
	return summarize(filtered)
}

// CategoryTotal is one slice of the expense category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// YearlyReport is the yearly summary plus the expense category breakdown.
type YearlyReport struct {
	Summary
	// Categories holds expense totals per category, sorted descending by
	// total. Donations are excluded from the breakdown.
	Categories []CategoryTotal
}

// YearlySummary sums the transactions of a calendar year and breaks expenses
// down by category. Ties in the breakdown keep the order in which categories
// were first encountered.
func YearlySummary(txs []Transaction, year int) YearlyReport {
	var report YearlyReport
	totals := make(map[string]decimal.Decimal)
	var order []string

	var filtered []Transaction
	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		filtered = append(filtered, tx)
		if tx.Type == Expense {
			if _, seen := totals[tx.Category]; !seen {
				order = append(order, tx.Category)
			}
			totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		}
	}
	report.Summary = summarize(filtered)

	for _, category := range order {
		report.Categories = append(report.Categories, CategoryTotal{Category: category, Total: totals[category]})
	}
	sort.SliceStable(report.Categories, func(i, j int) bool {
		return report.Categories[i].Total.GreaterThan(report.Categories[j].Total)
	})
	return report
}

// MonthFlow is one bucket of the yearly trend.
type MonthFlow struct {
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// YearlyTrend buckets a year of transactions per month, always returning
// twelve zero-filled buckets. For this chart only, donations are folded into
// the expense figure: the trend shows raw outflow, while the summaries keep
// donation separate. The asymmetry is intentional.
func YearlyTrend(txs []Transaction, year int) [12]MonthFlow {
	var buckets [12]MonthFlow
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1)
	}
	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		b := &buckets[tx.Date.Month()-1]
		if tx.Type == Income {
			b.Income = b.Income.Add(tx.Amount)
		} else {
			b.Expense = b.Expense.Add(tx.Amount)
		}
	}
	return buckets
}

// NetWorth sums all account balances. It is entirely independent of the
// transaction ledger.
func NetWorth(accounts []BankAccount) decimal.Decimal {
	var total decimal.Decimal
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total
}
