package luminary

import (
	"github.com/luminary-app/luminary/date"
	"github.com/shopspring/decimal"
)

// Documented defaults used when a collection has never been persisted.
// The figures give a fresh dashboard something to show; the first commit of a
// collection makes the stored data authoritative.

func seedTransactions() *Ledger {
	l := NewLedger()
	seed := []struct {
		day, description string
		amount           int64
		typ              TxType
		category         string
	}{
		{"2026-01-15", "Monthly Salary", 4000, Income, "Work"},
		{"2026-01-20", "Rent & Utilities", 2400, Expense, "Living"},
		{"2026-02-15", "Monthly Salary", 4000, Income, "Work"},
		{"2026-02-10", "Valentine Gift", 200, Expense, "Gifts"},
		{"2026-02-20", "Rent & Utilities", 1198, Expense, "Living"},
		{"2026-03-15", "Monthly Salary", 4000, Income, "Work"},
		{"2026-03-05", "New Laptop", 2500, Expense, "Tech"},
		{"2026-03-20", "Rent & Utilities", 1200, Expense, "Living"},
		{"2026-03-25", "Charity Gala", 500, Donation, "Charity"},
		{"2026-04-15", "Monthly Salary", 4200, Income, "Work"},
		{"2026-04-20", "Rent & Utilities", 1200, Expense, "Living"},
		{"2026-04-22", "Local Shelter", 200, Donation, "Community"},
		{"2026-05-12", "Freelance Project X", 1200, Income, "Work"},
		{"2026-05-14", "Grocery - Whole Foods", 154, Expense, "Food"},
		{"2026-05-15", "Cloud Subscriptions", 45, Expense, "Tech"},
		{"2026-05-18", "Vintage Decor Shop", 89, Expense, "Home"},
		{"2026-05-20", "Community Fund", 100, Donation, "Charity"},
	}
	for _, s := range seed {
		l.Add(date.MustParse(s.day), s.description, decimal.NewFromInt(s.amount), s.typ, s.category)
	}
	return l
}

func seedAccounts() *Accounts {
	a := NewAccounts()
	a.Add("Main Vault", decimal.NewFromInt(12450), "Primary Checking", Checking)
	a.Add("Growth Nest", decimal.NewFromInt(8200), "Emergency Fund", Savings)
	a.Add("Ventures", decimal.NewFromInt(15300), "Investment Portfolio", Investment)
	return a
}

func seedTodos() *TodoList {
	l := NewTodoList()
	l.Add("Review quarterly goals", TodoWork)
	if done, ok := l.Add("Buy hydrangeas", TodoPersonal); ok {
		l.Toggle(done.ID)
	}
	return l
}

func seedWishlist() *Wishlist {
	w := NewWishlist()
	w.AddSmallJoy("Artisan Pottery Class", decimal.NewFromInt(80))
	if cabin, ok := w.AddSmallJoy("Weekend at Eco-Cabin", decimal.NewFromInt(300)); ok {
		w.Toggle(cabin.ID)
	}
	w.AddNorthStar("Start Sustainable Fashion Brand")
	w.AddNorthStar("Visit Kyoto in Autumn")
	return w
}
