package luminary

import (
	"encoding/json"
	"fmt"

	"github.com/luminary-app/luminary/date"
)

// MealPlan holds the four meals of one day. A day without a plan is absent
// from the Menu altogether; empty strings mean a planned day with empty slots.
type MealPlan struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snack     string `json:"snack"`
}

// Menu maps date-keys to at most one meal plan each.
type Menu struct {
	days map[string]MealPlan
}

// NewMenu creates an empty menu.
func NewMenu() *Menu {
	return &Menu{days: make(map[string]MealPlan)}
}

// Plan returns the day's plan; ok is false when no plan exists for that day.
func (m *Menu) Plan(day date.Date) (MealPlan, bool) {
	p, ok := m.days[day.Key()]
	return p, ok
}

// SetPlan stores the day's plan, replacing any previous one.
func (m *Menu) SetPlan(day date.Date, p MealPlan) {
	m.days[day.Key()] = p
}

// Clear removes the day's plan.
func (m *Menu) Clear(day date.Date) {
	delete(m.days, day.Key())
}

// Merge lands a generated week of plans, keyed by weekday abbreviation, onto
// the week containing weekStart: "Tue" always maps to the Tuesday of that week,
// whichever week was active when generation was requested. The merge is all or
// nothing: an unknown weekday key leaves the menu untouched.
func (m *Menu) Merge(weekStart date.Date, plans map[string]MealPlan) error {
	offsets := make(map[string]int, len(date.Weekdays))
	for i, weekday := range date.Weekdays {
		offsets[weekday] = i
	}
	for weekday := range plans {
		if _, ok := offsets[weekday]; !ok {
			return fmt.Errorf("unknown weekday %q in generated plan", weekday)
		}
	}
	monday := date.StartOfWeek(weekStart)
	for weekday, plan := range plans {
		m.SetPlan(monday.Add(offsets[weekday]), plan)
	}
	return nil
}

func (m *Menu) MarshalJSON() ([]byte, error) { return json.Marshal(m.days) }

func (m *Menu) UnmarshalJSON(b []byte) error {
	days := make(map[string]MealPlan)
	if err := json.Unmarshal(b, &days); err != nil {
		return err
	}
	m.days = days
	return nil
}
