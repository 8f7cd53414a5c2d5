package renderer

import (
	"fmt"

	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/date"
)

// WeekView is the weekly planner report: schedule, meals and day plan for
// each of the seven days, plus the global todo list.
type WeekView struct {
	Title string     `json:"title"` // e.g. "June • Week 23"
	Days  []DayView  `json:"days"`
	Todos []TodoView `json:"todos"`
}

// DayView is one day of the planner.
type DayView struct {
	Label  string      `json:"label"` // e.g. "Mon 2026-06-01"
	Events []EventView `json:"events"`
	Meals  []MealView  `json:"meals"`
	Plan   string      `json:"plan"`
	Done   bool        `json:"done"`
}

// EventView is one schedule line.
type EventView struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// MealView is one filled meal slot.
type MealView struct {
	Slot string `json:"slot"`
	Dish string `json:"dish"`
}

// TodoView is one todo line.
type TodoView struct {
	Mark     string `json:"mark"` // "x" when completed, " " otherwise
	Text     string `json:"text"`
	Category string `json:"category"`
}

// NewWeekView builds the planner view for the week containing day.
func NewWeekView(d *luminary.Dashboard, day date.Date) *WeekView {
	week := date.Week(day)
	start := week[0]
	v := &WeekView{
		Title: fmt.Sprintf("%s • Week %d", start.Month(), date.ISOWeekNumber(start)),
	}

	for i, wd := range date.Weekdays {
		dv := DayView{Label: fmt.Sprintf("%s %s", wd, week[i].Key())}
		for _, ev := range d.Schedule.On(week[i]) {
			dv.Events = append(dv.Events, EventView{ID: ev.ID, Time: ev.Time, Activity: ev.Activity})
		}
		if plan, ok := d.Menu.Plan(week[i]); ok {
			dv.Meals = mealSlots(plan)
		}
		if dp, ok := d.Targets.DayPlan(week[i]); ok {
			dv.Plan = dp.Text
			dv.Done = dp.Completed
		}
		v.Days = append(v.Days, dv)
	}

	for _, item := range d.Todos.Items() {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		v.Todos = append(v.Todos, TodoView{Mark: mark, Text: item.Text, Category: string(item.Category)})
	}
	return v
}

func mealSlots(p luminary.MealPlan) []MealView {
	var meals []MealView
	for _, slot := range []struct{ name, dish string }{
		{"breakfast", p.Breakfast},
		{"lunch", p.Lunch},
		{"dinner", p.Dinner},
		{"snack", p.Snack},
	} {
		if slot.dish != "" {
			meals = append(meals, MealView{Slot: slot.name, Dish: slot.dish})
		}
	}
	return meals
}

// RenderWeek renders the WeekView to a markdown string.
func RenderWeek(v *WeekView) string {
	partials := map[string]string{
		"week_day":   weekDayTemplate,
		"week_todos": weekTodosTemplate,
	}
	return renderTemplate("week", weekTemplate, partials, v)
}

const (
	weekTemplate = `# {{ .Title }}
{{ range .Days }}{{ template "week_day" . }}{{ end }}{{ template "week_todos" . }}`

	weekDayTemplate = `
## {{ .Label }}
{{ if .Events }}{{ range .Events }}
* {{ .Time }} {{ .Activity }}{{ end }}
{{ else }}
*no events*
{{ end }}{{ if .Meals }}
| Meal | Dish |
|:---|:---|
{{ range .Meals }}| {{ .Slot }} | {{ .Dish }} |
{{ end }}{{ end }}{{ if .Plan }}
Plan: [{{ if .Done }}x{{ else }} {{ end }}] {{ .Plan }}
{{ end }}`

	weekTodosTemplate = `{{ if .Todos }}
## Todos
{{ range .Todos }}
* [{{ .Mark }}] {{ .Text }} ({{ .Category }}){{ end }}
{{ end }}`
)
