package cardwise

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/cardwise/date"
)

func eventByID(events []Event, id string) (Event, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

func TestEventsMonthlyPerk(t *testing.T) {
	w := NewWallet()
	if err := w.Add("amex-gold"); err != nil {
		t.Fatal(err)
	}
	now := date.New(2026, time.March, 10)
	events := w.Events(now)

	day, ok := eventByID(events, "ag-uber-day")
	if !ok {
		t.Fatal("last-day event missing for ag-uber")
	}
	if want := date.New(2026, time.March, 31); day.Day != want {
		t.Errorf("last day = %s, want %s", day.Day, want)
	}
	if !strings.HasPrefix(day.Title, "🚨 LAST DAY: Use American Express Gold Card") {
		t.Errorf("title = %q", day.Title)
	}
	if !strings.Contains(day.Description, "worth $120") {
		t.Errorf("description = %q", day.Description)
	}

	week, ok := eventByID(events, "ag-uber-week")
	if !ok {
		t.Fatal("week-before event missing for ag-uber")
	}
	if want := date.New(2026, time.March, 24); week.Day != want {
		t.Errorf("week before = %s, want %s", week.Day, want)
	}
	if !strings.Contains(week.Title, "expires Mar 31, 2026") {
		t.Errorf("title = %q", week.Title)
	}
}

func TestEventsSkipsWeekBeforeNearDeadline(t *testing.T) {
	w := NewWallet()
	if err := w.Add("amex-gold"); err != nil {
		t.Fatal(err)
	}
	// Five days before month end: the week-before slot is already past, only
	// the last-day event remains.
	events := w.Events(date.New(2026, time.March, 26))
	if _, ok := eventByID(events, "ag-uber-week"); ok {
		t.Error("week-before event should be dropped when under a week away")
	}
	if _, ok := eventByID(events, "ag-uber-day"); !ok {
		t.Error("last-day event missing")
	}
}

func TestExpirationQuarterly(t *testing.T) {
	// No catalog card carries a valued quarterly perk today (the rotating
	// category perks have no dollar value), so test the deadline directly.
	w := NewWallet()
	exp, ok := w.expiration(Perk{Frequency: Quarterly}, "freedom-flex", date.New(2026, time.February, 1))
	if !ok {
		t.Fatal("quarterly expiration not computable")
	}
	if want := date.New(2026, time.March, 31); exp != want {
		t.Errorf("quarter end = %s, want %s", exp, want)
	}
}

func TestEventsAnnualDefault(t *testing.T) {
	w := NewWallet()
	if err := w.Add("venture-x"); err != nil {
		t.Fatal(err)
	}
	// No anniversary configured: annual perks expire December 31.
	events := w.Events(date.New(2026, time.June, 1))
	day, ok := eventByID(events, "vx-travel-credit-day")
	if !ok {
		t.Fatal("annual last-day event missing")
	}
	if want := date.New(2026, time.December, 31); day.Day != want {
		t.Errorf("default annual deadline = %s, want %s", day.Day, want)
	}
	if !strings.Contains(day.Description, "worth $300") {
		t.Errorf("description = %q", day.Description)
	}

	// On December 31 itself the deadline is not yet past: the last-day event
	// still fires, with no week-before companion.
	events = w.Events(date.New(2026, time.December, 31))
	if _, ok := eventByID(events, "vx-travel-credit-day"); !ok {
		t.Error("last-day event missing on the deadline itself")
	}
	if _, ok := eventByID(events, "vx-travel-credit-week"); ok {
		t.Error("week-before event should not fire on the deadline")
	}
}

func TestExpirationAnnualAnniversary(t *testing.T) {
	tests := []struct {
		name  string
		anniv string
		now   date.Date
		want  date.Date
	}{
		{
			// Deadline is the day before the anniversary.
			"upcoming this year",
			"06-15", date.New(2026, time.March, 1),
			date.New(2026, time.June, 14),
		},
		{
			// Already renewed: deadline moves to next year.
			"already passed",
			"06-15", date.New(2026, time.August, 1),
			date.New(2027, time.June, 14),
		},
		{
			// The day before a January 1 anniversary normalizes to December 31
			// of the previous year, which is always in the past, so the year
			// is then set forward. The deadline lands on December 31 of next
			// year, skipping the current year entirely.
			"january first",
			"01-01", date.New(2026, time.March, 1),
			date.New(2027, time.December, 31),
		},
		{
			"deadline is today",
			"06-15", date.New(2026, time.June, 14),
			date.New(2026, time.June, 14),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWallet()
			if err := w.Add("venture-x"); err != nil {
				t.Fatal(err)
			}
			w.SetAnniversary("venture-x", date.MustParseMonthDay(tc.anniv))
			got, ok := w.expiration(Perk{Frequency: Annual}, "venture-x", tc.now)
			if !ok {
				t.Fatal("annual expiration not computable")
			}
			if got != tc.want {
				t.Errorf("expiration = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestEventsSortedAndFiltered(t *testing.T) {
	w := NewWallet()
	for _, id := range []string{"venture-x", "amex-gold"} {
		if err := w.Add(id); err != nil {
			t.Fatal(err)
		}
	}
	now := date.New(2026, time.March, 1)
	events := w.Events(now)
	if len(events) == 0 {
		t.Fatal("no events generated")
	}
	for i := 1; i < len(events); i++ {
		if events[i].Day.Before(events[i-1].Day) {
			t.Errorf("events out of order at %d: %s after %s", i, events[i-1].Day, events[i].Day)
		}
	}
	for _, e := range events {
		if e.Day.Before(now) {
			t.Errorf("event %s scheduled in the past (%s)", e.ID, e.Day)
		}
		if !e.Alarm {
			t.Errorf("event %s has no alarm", e.ID)
		}
	}
	// Ongoing and one-time perks never produce events.
	if _, ok := eventByID(events, "vx-lounge-day"); ok {
		t.Error("ongoing perk produced an event")
	}
	if _, ok := eventByID(events, "vx-global-entry-day"); ok {
		t.Error("quadrennial perk produced an event")
	}
}
