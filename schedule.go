package luminary

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/luminary-app/luminary/date"
)

// TimeUnset is the sentinel rendered for events entered without a time.
const TimeUnset = "--:--"

// ScheduleEvent is one entry of a day's schedule. It is owned by exactly one
// date-key; events are never shared across days.
type ScheduleEvent struct {
	ID       string `json:"id"`
	Time     string `json:"time"` // "HH:MM", or TimeUnset
	Activity string `json:"activity"`
}

// eventPattern accepts "9:00 Standup" as well as "09:00 Standup".
var eventPattern = regexp.MustCompile(`^(\d{1,2}:\d{2})\s+(.*)$`)

// ParseEvent splits raw input of the form "<H:MM or HH:MM> <activity>" into
// its time and activity. Input without a leading time becomes an activity
// with the unset time sentinel. Blank input reports ok=false.
func ParseEvent(raw string) (at, activity string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}
	if m := eventPattern.FindStringSubmatch(raw); m != nil {
		return m[1], m[2], true
	}
	return TimeUnset, raw, true
}

// Schedule maps date-keys to the ordered list of events of that day.
// Insertion order is creation order.
type Schedule struct {
	days map[string][]ScheduleEvent
}

// NewSchedule creates an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{days: make(map[string][]ScheduleEvent)}
}

// On returns the events of a day, in creation order.
func (s *Schedule) On(day date.Date) []ScheduleEvent {
	return s.days[day.Key()]
}

// Add parses raw input and appends the event to the day. Blank input is a
// no-op reported by ok=false.
func (s *Schedule) Add(day date.Date, raw string) (ev ScheduleEvent, ok bool) {
	at, activity, ok := ParseEvent(raw)
	if !ok {
		return ScheduleEvent{}, false
	}
	ev = ScheduleEvent{ID: uuid.NewString(), Time: at, Activity: activity}
	key := day.Key()
	s.days[key] = append(s.days[key], ev)
	return ev, true
}

// Edit replaces the time and activity of the matching event in place.
// It reports false (a no-op) when the id is not on that day.
func (s *Schedule) Edit(day date.Date, id, at, activity string) bool {
	events := s.days[day.Key()]
	for i := range events {
		if events[i].ID == id {
			if at == "" {
				at = TimeUnset
			}
			events[i].Time = at
			events[i].Activity = activity
			return true
		}
	}
	return false
}

// Delete removes the matching event from the day, reporting whether it was found.
func (s *Schedule) Delete(day date.Date, id string) bool {
	key := day.Key()
	events := s.days[key]
	for i := range events {
		if events[i].ID == id {
			s.days[key] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// seedEvent is one starter entry of the weekday template.
type seedEvent struct{ time, activity string }

// scheduleTemplate is the fixed starter schedule keyed by weekday, applied to
// whichever real dates the first-ever week lands on. It is consulted at most
// once: as soon as anything is persisted the stored data is authoritative,
// even for weeks the user has since emptied.
var scheduleTemplate = map[string][]seedEvent{
	"Mon": {
		{"08:00", "Morning Yoga"},
		{"09:00", "Deep Work"},
		{"12:00", "Nutrient Break"},
	},
	"Tue": {
		{"07:30", "Morning Run"},
		{"09:30", "Client Sync"},
	},
	"Wed": {
		{"08:00", "Yoga Flow"},
		{"14:00", "Strategy"},
	},
	"Thu": {},
	"Fri": {
		{"16:00", "Weekly Review"},
	},
	"Sat": {
		{"10:00", "Farmers Market"},
	},
	"Sun": {
		{"11:00", "Family Brunch"},
	},
}

// Seed populates the seven days of the given week from the weekday template.
// Other weeks are left untouched.
func (s *Schedule) Seed(week [7]date.Date) {
	for i, weekday := range date.Weekdays {
		key := week[i].Key()
		for _, t := range scheduleTemplate[weekday] {
			s.days[key] = append(s.days[key], ScheduleEvent{
				ID:       uuid.NewString(),
				Time:     t.time,
				Activity: t.activity,
			})
		}
	}
}

func (s *Schedule) MarshalJSON() ([]byte, error) { return json.Marshal(s.days) }

func (s *Schedule) UnmarshalJSON(b []byte) error {
	days := make(map[string][]ScheduleEvent)
	if err := json.Unmarshal(b, &days); err != nil {
		return err
	}
	s.days = days
	return nil
}
