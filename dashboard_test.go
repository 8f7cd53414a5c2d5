package luminary

import (
	"testing"

	"github.com/luminary-app/luminary/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T, store Store) *Dashboard {
	t.Helper()
	d, err := Open(store, Options{
		BlueprintPassword: "sesame",
		Today:             date.MustParse("2026-06-03"),
	})
	require.NoError(t, err)
	return d
}

func TestOpen_seedsOnlyOnce(t *testing.T) {
	store := MemStore{}
	d := openTest(t, store)

	// first load populated exactly the current week from the template
	monday := date.MustParse("2026-06-01")
	require.Len(t, d.Schedule.On(monday), 3)
	_, persisted, err := store.Get(KeySchedule)
	require.NoError(t, err)
	assert.True(t, persisted, "seeding must be committed immediately")

	// the user empties Monday...
	for _, ev := range append([]ScheduleEvent(nil), d.Schedule.On(monday)...) {
		_, err := d.RemoveEvent(monday, ev.ID)
		require.NoError(t, err)
	}
	require.Empty(t, d.Schedule.On(monday))

	// ...and a second load must not re-apply the template
	d2 := openTest(t, store)
	assert.Empty(t, d2.Schedule.On(monday), "template re-applied on second load")
	assert.Len(t, d2.Schedule.On(date.MustParse("2026-06-02")), 2, "other days must survive the reload")
}

func TestOpen_defaultsWhenAbsent(t *testing.T) {
	d := openTest(t, MemStore{})

	assert.Len(t, d.Todos.Items(), 2)
	assert.Len(t, d.Accounts.List(), 3)
	assert.Len(t, d.Wishlist.Items(), 4)
	assert.NotEmpty(t, d.Ledger.Transactions())
	assert.Empty(t, d.Stocks.Stocks())
	assert.Empty(t, d.Research.Notes())
}

func TestOpen_malformedFallsBack(t *testing.T) {
	store := MemStore{
		KeyTodos:        "{not json",
		KeyTransactions: "also not json",
	}
	d := openTest(t, store)

	// malformed persisted data falls back to the documented default
	assert.Len(t, d.Todos.Items(), 2)
	assert.NotEmpty(t, d.Ledger.Transactions())
}

func TestCommit_roundTrip(t *testing.T) {
	store := MemStore{}
	d := openTest(t, store)

	item, ok := d.Todos.Add("write tests", TodoWork)
	require.True(t, ok)
	require.NoError(t, d.Commit(KeyTodos))

	tuesday := date.MustParse("2026-06-02")
	d.Menu.SetPlan(tuesday, MealPlan{Breakfast: "Oats", Lunch: "Ramen"})
	require.NoError(t, d.Commit(KeyMenu))

	d2 := openTest(t, store)
	todos := d2.Todos.Items()
	require.Len(t, todos, 3)
	assert.Equal(t, item.ID, todos[2].ID)
	plan, ok := d2.Menu.Plan(tuesday)
	require.True(t, ok)
	assert.Equal(t, "Ramen", plan.Lunch)
}

func TestCommit_unknownKey(t *testing.T) {
	d := openTest(t, MemStore{})
	assert.Error(t, d.Commit("no-such-collection"))
}

func TestRemoveEvent_cancelsBoundTimer(t *testing.T) {
	d := openTest(t, MemStore{})
	day := date.MustParse("2026-06-05")
	ev, ok := d.Schedule.Add(day, "16:00 Weekly Review")
	require.True(t, ok)

	d.Timer.Start(ev.ID, 1500)
	removed, err := d.RemoveEvent(day, ev.ID)
	require.NoError(t, err)
	require.True(t, removed)

	assert.Equal(t, TimerIdle, d.Timer.State(), "deleting the bound event must idle the timer")
	assert.Zero(t, d.Timer.Remaining(), "no visible countdown may remain")

	// removing an unknown id is a no-op
	removed, err = d.RemoveEvent(day, ev.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestTargets_persistAcrossKeys(t *testing.T) {
	store := MemStore{}
	d := openTest(t, store)

	d.Targets.SetStrategy("2026-05", "Launch the sustainable collection")
	d.Targets.SetDayPlan(date.MustParse("2026-05-12"), "Shoot reels")
	require.NoError(t, d.Targets.SetReflection(19, "Good momentum"))
	require.NoError(t, d.Commit(KeyStrategies, KeyDayPlans, KeyReflections))

	d2 := openTest(t, store)
	assert.Equal(t, "Launch the sustainable collection", d2.Targets.Strategy("2026-05"))
	plan, ok := d2.Targets.DayPlan(date.MustParse("2026-05-12"))
	require.True(t, ok)
	assert.Equal(t, "Shoot reels", plan.Text)
	assert.False(t, plan.Completed)
	assert.Equal(t, "Good momentum", d2.Targets.Reflection(19))
}
