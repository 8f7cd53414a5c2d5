package luminary

import (
	"testing"

	"github.com/luminary-app/luminary/date"
)

func TestParseEvent(t *testing.T) {
	testCases := []struct {
		name         string
		raw          string
		wantTime     string
		wantActivity string
		wantOK       bool
	}{
		{name: "two-digit hour", raw: "14:00 Meeting", wantTime: "14:00", wantActivity: "Meeting", wantOK: true},
		{name: "one-digit hour", raw: "9:00 Standup", wantTime: "9:00", wantActivity: "Standup", wantOK: true},
		{name: "no time", raw: "Water the plants", wantTime: TimeUnset, wantActivity: "Water the plants", wantOK: true},
		{name: "time without activity stays whole", raw: "14:00", wantTime: TimeUnset, wantActivity: "14:00", wantOK: true},
		{name: "multi word activity", raw: "08:30 Deep work block", wantTime: "08:30", wantActivity: "Deep work block", wantOK: true},
		{name: "blank", raw: "   ", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			at, activity, ok := ParseEvent(tc.raw)
			if ok != tc.wantOK {
				t.Fatalf("ParseEvent(%q) ok = %v, want %v", tc.raw, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if at != tc.wantTime || activity != tc.wantActivity {
				t.Errorf("ParseEvent(%q) = (%q, %q), want (%q, %q)", tc.raw, at, activity, tc.wantTime, tc.wantActivity)
			}
		})
	}
}

func TestSchedule_AddEditDelete(t *testing.T) {
	s := NewSchedule()
	day := date.MustParse("2026-06-03")

	if _, ok := s.Add(day, ""); ok {
		t.Fatal("adding blank input should be a no-op")
	}

	first, ok := s.Add(day, "09:00 Standup")
	if !ok {
		t.Fatal("add failed")
	}
	second, _ := s.Add(day, "Lunch walk")

	events := s.On(day)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// insertion order is creation order
	if events[0].ID != first.ID || events[1].ID != second.ID {
		t.Error("events not in creation order")
	}
	if events[1].Time != TimeUnset {
		t.Errorf("untimed event Time = %q, want %q", events[1].Time, TimeUnset)
	}

	if !s.Edit(day, first.ID, "10:00", "Standup (moved)") {
		t.Fatal("edit failed")
	}
	if got := s.On(day)[0]; got.Time != "10:00" || got.Activity != "Standup (moved)" {
		t.Errorf("after edit got %+v", got)
	}
	if s.Edit(day, "no-such-id", "10:00", "x") {
		t.Error("editing an unknown id should be a no-op")
	}

	// events are owned by one date-key: other days are untouched
	if events := s.On(day.Add(1)); len(events) != 0 {
		t.Errorf("next day has %d events, want 0", len(events))
	}

	if !s.Delete(day, second.ID) {
		t.Fatal("delete failed")
	}
	if got := s.On(day); len(got) != 1 || got[0].ID != first.ID {
		t.Errorf("after delete got %+v", got)
	}
	if s.Delete(day, second.ID) {
		t.Error("deleting twice should report false")
	}
}

func TestSchedule_Seed(t *testing.T) {
	s := NewSchedule()
	week := date.Week(date.MustParse("2026-06-03"))
	s.Seed(week)

	// the template lands on the real dates of the given week
	monday := s.On(date.MustParse("2026-06-01"))
	if len(monday) != 3 {
		t.Fatalf("monday has %d events, want 3", len(monday))
	}
	if monday[0].Time != "08:00" || monday[0].Activity != "Morning Yoga" {
		t.Errorf("monday[0] = %+v", monday[0])
	}
	if thursday := s.On(date.MustParse("2026-06-04")); len(thursday) != 0 {
		t.Errorf("thursday has %d events, want 0", len(thursday))
	}
	if sunday := s.On(date.MustParse("2026-06-07")); len(sunday) != 1 || sunday[0].Activity != "Family Brunch" {
		t.Errorf("sunday = %+v", sunday)
	}

	// neighbouring weeks start empty
	if got := s.On(date.MustParse("2026-05-25")); len(got) != 0 {
		t.Errorf("previous week has %d events, want 0", len(got))
	}
}
