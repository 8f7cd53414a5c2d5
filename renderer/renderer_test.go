package renderer

import (
	"testing"

	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/date"
	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
)

func golden(t *testing.T) *goldie.Goldie {
	t.Helper()
	t.Setenv("LUMINARY_TESTING_NOW", "2026-06-03 12:00:00")
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

// fixture builds a dashboard by hand, bypassing the store, so views render
// exactly what the collections hold.
func fixture(t *testing.T) *luminary.Dashboard {
	t.Helper()
	d := &luminary.Dashboard{
		Schedule: luminary.NewSchedule(),
		Todos:    luminary.NewTodoList(),
		Menu:     luminary.NewMenu(),
		Ledger:   luminary.NewLedger(),
		Accounts: luminary.NewAccounts(),
		Stocks:   luminary.NewWatchlist(),
		Research: luminary.NewNotebook(),
		Wishlist: luminary.NewWishlist(),
		Targets:  luminary.NewTargets(),
	}

	mon := date.MustParse("2026-06-01")
	d.Schedule.Add(mon, "09:00 Deep Work")
	d.Schedule.Add(mon, "Standup")
	d.Menu.SetPlan(date.MustParse("2026-06-03"), luminary.MealPlan{Breakfast: "Oats", Dinner: "Salmon"})
	d.Targets.SetDayPlan(date.MustParse("2026-06-02"), "Write newsletter")
	d.Targets.ToggleDayPlan(date.MustParse("2026-06-02"))

	ship, _ := d.Todos.Add("Ship report", luminary.TodoWork)
	d.Todos.Add("Call mom", luminary.TodoPersonal)
	d.Todos.Toggle(ship.ID)

	d.Ledger.Add(date.MustParse("2026-01-05"), "Salary", decimal.NewFromInt(4500), luminary.Income, "Salary")
	d.Ledger.Add(date.MustParse("2026-01-10"), "Groceries", decimal.NewFromInt(600), luminary.Expense, "Food")
	d.Ledger.Add(date.MustParse("2026-02-03"), "Laptop", decimal.NewFromInt(1200), luminary.Expense, "Tech")
	d.Ledger.Add(date.MustParse("2026-02-14"), "Shelter", decimal.NewFromInt(200), luminary.Donation, "Charity")
	d.Targets.SetStrategy("2026-01", "Deep focus month.")

	d.Accounts.Add("Main Vault", decimal.NewFromInt(12450), "daily driver", luminary.Checking)
	d.Accounts.Add("Growth Nest", decimal.NewFromInt(8200), "", luminary.Savings)

	d.Stocks.Add("vti", "Total Market", decimal.NewFromFloat(280.50), 1.25, decimal.NewFromInt(10), "core")
	d.Research.Add(date.MustParse("2026-05-20"), "Index funds", "Low fees compound.", "etf, passive")

	d.Wishlist.AddSmallJoy("Espresso machine", decimal.NewFromInt(450))
	joy, _ := d.Wishlist.AddSmallJoy("New running shoes", decimal.NewFromInt(120))
	d.Wishlist.Toggle(joy.ID)
	d.Wishlist.AddNorthStar("Cabin by the lake")

	return d
}

func TestRenderWeek(t *testing.T) {
	g := golden(t)
	v := NewWeekView(fixture(t), date.MustParse("2026-06-03"))
	g.Assert(t, "week", []byte(RenderWeek(v)))
}

func TestRenderMonth(t *testing.T) {
	g := golden(t)
	v := NewMonthView(fixture(t), "2026-01", "USD")
	g.Assert(t, "month", []byte(RenderMonth(v)))
}

func TestRenderYear(t *testing.T) {
	g := golden(t)
	v := NewYearView(fixture(t), 2026, "USD")
	g.Assert(t, "year", []byte(RenderYear(v)))
}

func TestRenderAccounts(t *testing.T) {
	g := golden(t)
	v := NewAccountsView(fixture(t), "USD")
	g.Assert(t, "accounts", []byte(RenderAccounts(v)))
}

func TestRenderStocks(t *testing.T) {
	g := golden(t)
	v := NewStocksView(fixture(t), "USD")
	g.Assert(t, "stocks", []byte(RenderStocks(v)))
}

func TestRenderWishlist(t *testing.T) {
	g := golden(t)
	v := NewWishlistView(fixture(t), "USD")
	g.Assert(t, "wishlist", []byte(RenderWishlist(v)))
}

func TestRenderBlueprint(t *testing.T) {
	g := golden(t)
	v := NewBlueprintView(luminary.BlueprintData{
		Content:    "My manifesto.",
		LastEdited: 1767225600000, // 2026-01-01 00:00 UTC
		EditCount:  1,
	})
	g.Assert(t, "blueprint", []byte(RenderBlueprint(v)))
}

func TestBar(t *testing.T) {
	max := decimal.NewFromInt(1000)
	testCases := []struct {
		value int64
		want  string
	}{
		{1000, "####################"},
		{500, "##########"},
		{1, "#"}, // small but non-zero stays visible
		{0, ""},
		{-5, ""},
	}
	for _, tc := range testCases {
		if got := Bar(decimal.NewFromInt(tc.value), max); got != tc.want {
			t.Errorf("Bar(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
	if got := Bar(decimal.NewFromInt(5), decimal.Zero); got != "" {
		t.Errorf("Bar with zero max = %q, want empty", got)
	}
}
