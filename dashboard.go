package luminary

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/luminary-app/luminary/date"
)

// Store keys, one per entity collection. Values are the whole collection
// encoded as json, rewritten in full on every commit.
const (
	KeySchedule     = "timetable_schedule"
	KeyTodos        = "timetable_todos"
	KeyMenu         = "timetable_menu"
	KeyTransactions = "moneyflow_transactions"
	KeyAccounts     = "moneyflow_accounts"
	KeyStocks       = "finance_stocks"
	KeyResearch     = "finance_research"
	KeyWishlist     = "wishlist_items"
	KeyBlueprint    = "blueprint"
	KeyStrategies   = "targets_strategies"
	KeyDayPlans     = "targets_dayplans"
	KeyReflections  = "targets_reflections"
)

// Options configures opening a dashboard.
type Options struct {
	// BlueprintPassword is the access-gate password.
	BlueprintPassword string
	// Today anchors first-ever seeding of the schedule week. Zero means the
	// actual current date.
	Today date.Date
}

// Dashboard owns every entity collection of the application, loaded from a
// Store at open and mirrored back to it by Commit after each mutation.
type Dashboard struct {
	store Store

	Schedule  *Schedule
	Todos     *TodoList
	Menu      *Menu
	Ledger    *Ledger
	Accounts  *Accounts
	Stocks    *Watchlist
	Research  *Notebook
	Wishlist  *Wishlist
	Blueprint *Blueprint
	Targets   *Targets

	// Timer is the single focus timer instance. It is transient state, never
	// committed to the store.
	Timer *FocusTimer
}

// Open loads every collection from the store, falling back to its documented
// default when a key is absent or its value no longer parses. On the very
// first open (schedule never persisted) the current week is seeded from the
// starter template and committed immediately, so the template is never
// consulted again.
func Open(store Store, o Options) (*Dashboard, error) {
	today := o.Today
	if today.IsZero() {
		today = date.Today()
	}

	d := &Dashboard{
		store:     store,
		Schedule:  NewSchedule(),
		Todos:     seedTodos(),
		Menu:      NewMenu(),
		Ledger:    seedTransactions(),
		Accounts:  seedAccounts(),
		Stocks:    NewWatchlist(),
		Research:  NewNotebook(),
		Wishlist:  seedWishlist(),
		Blueprint: NewBlueprint(o.BlueprintPassword),
		Targets:   NewTargets(),
		Timer:     NewFocusTimer(),
	}

	seedWeek, err := load(store, KeySchedule, d.Schedule)
	if err != nil {
		return nil, err
	}
	for key, v := range map[string]json.Unmarshaler{
		KeyTodos:     d.Todos,
		KeyMenu:      d.Menu,
		KeyWishlist:  d.Wishlist,
		KeyBlueprint: d.Blueprint,
	} {
		if _, err := load(store, key, v); err != nil {
			return nil, err
		}
	}
	if err := loadJSON(store, KeyTransactions, d.Ledger); err != nil {
		return nil, err
	}
	if err := loadJSON(store, KeyAccounts, d.Accounts); err != nil {
		return nil, err
	}
	if err := loadJSON(store, KeyStocks, d.Stocks); err != nil {
		return nil, err
	}
	if err := loadJSON(store, KeyResearch, d.Research); err != nil {
		return nil, err
	}
	if err := loadJSON(store, KeyStrategies, &d.Targets.Strategies); err != nil {
		return nil, err
	}
	if err := loadJSON(store, KeyDayPlans, &d.Targets.DayPlans); err != nil {
		return nil, err
	}
	if err := loadJSON(store, KeyReflections, &d.Targets.Reflections); err != nil {
		return nil, err
	}

	if seedWeek {
		d.Schedule.Seed(date.Week(today))
		if err := d.Commit(KeySchedule); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// load fills v from the store key. It reports wasAbsent=true when the key has
// never been written. A stored value that no longer parses is logged and
// treated like any other default-fallback, but it does NOT count as absent:
// stored data stays authoritative for seeding purposes.
func load(store Store, key string, v json.Unmarshaler) (wasAbsent bool, err error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return false, fmt.Errorf("could not load %q: %w", key, err)
	}
	if !ok {
		return true, nil
	}
	if err := v.UnmarshalJSON([]byte(raw)); err != nil {
		log.Printf("warning, ignoring malformed %q: %v", key, err)
	}
	return false, nil
}

// loadJSON is load for plain values without a custom unmarshaller.
func loadJSON(store Store, key string, v any) error {
	raw, ok, err := store.Get(key)
	if err != nil {
		return fmt.Errorf("could not load %q: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("warning, ignoring malformed %q: %v", key, err)
	}
	return nil
}

// Commit re-encodes the named collections and writes each whole value back to
// its store key. Mutation handlers call it right after mutating; renders never
// write.
func (d *Dashboard) Commit(keys ...string) error {
	for _, key := range keys {
		var v any
		switch key {
		case KeySchedule:
			v = d.Schedule
		case KeyTodos:
			v = d.Todos
		case KeyMenu:
			v = d.Menu
		case KeyTransactions:
			v = d.Ledger
		case KeyAccounts:
			v = d.Accounts
		case KeyStocks:
			v = d.Stocks
		case KeyResearch:
			v = d.Research
		case KeyWishlist:
			v = d.Wishlist
		case KeyBlueprint:
			v = d.Blueprint
		case KeyStrategies:
			v = d.Targets.Strategies
		case KeyDayPlans:
			v = d.Targets.DayPlans
		case KeyReflections:
			v = d.Targets.Reflections
		default:
			return fmt.Errorf("unknown store key %q", key)
		}
		encoded, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("could not encode %q: %w", key, err)
		}
		if err := d.store.Set(key, string(encoded)); err != nil {
			return fmt.Errorf("could not commit %q: %w", key, err)
		}
	}
	return nil
}

// RemoveEvent deletes a schedule event, cancelling the focus timer if it was
// bound to that event, and commits the schedule.
func (d *Dashboard) RemoveEvent(day date.Date, id string) (bool, error) {
	if !d.Schedule.Delete(day, id) {
		return false, nil
	}
	d.Timer.Unbind(id)
	return true, d.Commit(KeySchedule)
}
