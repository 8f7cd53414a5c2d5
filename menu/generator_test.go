package menu

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/luminary-app/luminary"
	"github.com/luminary-app/luminary/date"
)

const goodReply = `{
  "Mon": {"breakfast": "Oats", "lunch": "Salad", "dinner": "Salmon", "snack": "Nuts"},
  "Tue": {"breakfast": "Eggs", "lunch": "Ramen", "dinner": "Stir fry", "snack": "Fruit"},
  "Wed": {"breakfast": "Yogurt", "lunch": "Wrap", "dinner": "Curry", "snack": "Chocolate"},
  "Thu": {"breakfast": "Toast", "lunch": "Soup", "dinner": "Pasta", "snack": "Hummus"},
  "Fri": {"breakfast": "Smoothie", "lunch": "Bowl", "dinner": "Pizza", "snack": "Popcorn"},
  "Sat": {"breakfast": "Pancakes", "lunch": "Sandwich", "dinner": "Tacos", "snack": "Cheese"},
  "Sun": {"breakfast": "Waffles", "lunch": "Roast", "dinner": "Leftovers", "snack": "Tea cake"}
}`

type fakeGenerator struct {
	reply string
	err   error
}

func (f fakeGenerator) Generate(context.Context, string) (string, error) {
	return f.reply, f.err
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		reply   string
		wantErr bool
	}{
		{name: "plain json", reply: goodReply},
		{name: "fenced json", reply: "```json\n" + goodReply + "\n```"},
		{name: "bare fences", reply: "```\n" + goodReply + "\n```"},
		{name: "not json", reply: "Sorry, I couldn't generate a suggestion right now.", wantErr: true},
		{name: "not configured reply", reply: NotConfigured, wantErr: true},
		{name: "missing day", reply: `{"Mon": {"breakfast": "Oats"}}`, wantErr: true},
		{name: "wrong keys", reply: `{"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {}, "Friday": {}, "Saturday": {}, "Sunday": {}}`, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plans, err := Parse(tc.reply)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			for _, weekday := range date.Weekdays {
				if _, ok := plans[weekday]; !ok {
					t.Errorf("missing %q in parsed plans", weekday)
				}
			}
			if plans["Wed"].Dinner != "Curry" {
				t.Errorf("Wed dinner = %q", plans["Wed"].Dinner)
			}
		})
	}
}

func TestGenerateWeek(t *testing.T) {
	ctx := context.Background()

	plans, err := GenerateWeek(ctx, fakeGenerator{reply: goodReply}, "eggs, kale", "Mediterranean")
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 7 {
		t.Fatalf("got %d plans, want 7", len(plans))
	}

	// a failing generator propagates its error
	boom := errors.New("boom")
	if _, err := GenerateWeek(ctx, fakeGenerator{err: boom}, "", ""); !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}

	// an unparseable reply is discarded whole
	if _, err := GenerateWeek(ctx, fakeGenerator{reply: "no json here"}, "", ""); err == nil {
		t.Error("expected a parse error")
	}
}

func TestGenerateWeek_mergeLandsOnActiveWeek(t *testing.T) {
	// the generated "Wed" plan lands on the Wednesday of the requested week
	plans, err := GenerateWeek(context.Background(), fakeGenerator{reply: goodReply}, "", "")
	if err != nil {
		t.Fatal(err)
	}
	m := luminary.NewMenu()
	if err := m.Merge(date.MustParse("2026-06-01"), plans); err != nil {
		t.Fatal(err)
	}
	got, ok := m.Plan(date.MustParse("2026-06-03"))
	if !ok || got.Dinner != "Curry" {
		t.Errorf("Wed plan = %+v (ok=%v), want the generated Curry dinner", got, ok)
	}
}

func TestPrompt(t *testing.T) {
	p := Prompt("eggs, kale", "Asian")
	for _, want := range []string{`"eggs, kale"`, "Asian cuisine style", `"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"`} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if p := Prompt("", ""); !strings.Contains(p, "balanced, nutrient-dense diet.") {
		t.Errorf("empty-ingredient prompt = %q", p)
	}
}
