package luminary

import (
	"fmt"
	"strings"

	"github.com/luminary-app/luminary/date"
)

// DayPlan is one content-calendar entry.
type DayPlan struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Targets is the yearly content-strategy planner: free-text strategies per
// month, a plan per calendar day, and a reflection per ISO week. The three
// collections persist under separate store keys.
type Targets struct {
	Strategies  map[string]string  // "YYYY-MM" -> strategy
	DayPlans    map[string]DayPlan // date-key -> plan
	Reflections map[string]string  // ISO week "1".."53" -> reflection
}

// NewTargets creates an empty planner.
func NewTargets() *Targets {
	return &Targets{
		Strategies:  make(map[string]string),
		DayPlans:    make(map[string]DayPlan),
		Reflections: make(map[string]string),
	}
}

// Strategy returns the monthly strategy for a "YYYY-MM" month.
func (t *Targets) Strategy(month string) string { return t.Strategies[month] }

// SetStrategy stores the monthly strategy; blank text removes it.
func (t *Targets) SetStrategy(month, text string) {
	if strings.TrimSpace(text) == "" {
		delete(t.Strategies, month)
		return
	}
	t.Strategies[month] = text
}

// DayPlan returns the plan of a day; ok is false when none exists.
func (t *Targets) DayPlan(day date.Date) (DayPlan, bool) {
	p, ok := t.DayPlans[day.Key()]
	return p, ok
}

// SetDayPlan stores the day's text, keeping its completion flag. Blank text
// removes the plan.
func (t *Targets) SetDayPlan(day date.Date, text string) {
	key := day.Key()
	if strings.TrimSpace(text) == "" {
		delete(t.DayPlans, key)
		return
	}
	existing := t.DayPlans[key]
	existing.Text = text
	t.DayPlans[key] = existing
}

// ToggleDayPlan flips the completion flag of the day's plan. Days without a
// plan have nothing to toggle.
func (t *Targets) ToggleDayPlan(day date.Date) bool {
	key := day.Key()
	existing, ok := t.DayPlans[key]
	if !ok {
		return false
	}
	existing.Completed = !existing.Completed
	t.DayPlans[key] = existing
	return true
}

// Reflection returns the reflection of an ISO week.
func (t *Targets) Reflection(week int) string {
	return t.Reflections[weekKey(week)]
}

// SetReflection stores the reflection of an ISO week (1..53).
func (t *Targets) SetReflection(week int, text string) error {
	if week < 1 || week > 53 {
		return fmt.Errorf("week %d out of range 1..53", week)
	}
	if strings.TrimSpace(text) == "" {
		delete(t.Reflections, weekKey(week))
		return nil
	}
	t.Reflections[weekKey(week)] = text
	return nil
}

func weekKey(week int) string { return fmt.Sprintf("%d", week) }
