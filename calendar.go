package cardwise

import (
	"fmt"
	"sort"
	"time"

	"github.com/etnz/cardwise/date"
)

// Event is one perk reminder. Events are derived, recomputed on every call,
// never persisted.
type Event struct {
	ID          string
	Title       string
	Description string
	Day         date.Date
	Alarm       bool
}

// Events computes the upcoming perk reminders for the wallet, sorted by date
// ascending (ties keep generation order).
//
// For every perk with a dollar value and a periodic claim cycle, the
// expiration date is the end of the current month (monthly), the end of the
// current quarter (quarterly), or, for annual perks, the day before the
// card's anniversary (December 31 when no anniversary is configured).
// A perk whose expiration is already past produces no event at
// all; otherwise a week-before reminder is emitted when still in the future,
// and a last-day reminder always.
func (w *Wallet) Events(now date.Date) []Event {
	var events []Event
	for _, card := range w.Cards() {
		for _, perk := range card.Perks {
			if perk.Frequency == Ongoing || perk.Frequency == OneTime || !perk.Value.IsPositive() {
				continue
			}
			exp, ok := w.expiration(perk, card.ID, now)
			if !ok || exp.Before(now) {
				continue
			}

			title := fmt.Sprintf("Use %s %s", card.DisplayName(), perk.Name)
			desc := fmt.Sprintf("%s worth %s. %s", perk.Name, perk.Value.Compact(), perk.Description)

			if weekBefore := exp.Add(-7); weekBefore.After(now) {
				events = append(events, Event{
					ID:          perk.ID + "-week",
					Title:       fmt.Sprintf("🔔 %s (expires %s)", title, exp.Display()),
					Description: desc,
					Day:         weekBefore,
					Alarm:       true,
				})
			}
			events = append(events, Event{
				ID:          perk.ID + "-day",
				Title:       "🚨 LAST DAY: " + title,
				Description: desc,
				Day:         exp,
				Alarm:       true,
			})
		}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Day.Before(events[j].Day) })
	return events
}

// expiration computes when a perk's current claim period ends. ok is false
// for frequencies without a computable deadline (quadrennial, semiannual).
func (w *Wallet) expiration(perk Perk, cardID string, now date.Date) (date.Date, bool) {
	switch perk.Frequency {
	case Monthly:
		return now.EndOf(date.Monthly), true
	case Quarterly:
		return now.EndOf(date.Quarterly), true
	case Annual:
		if anniv, ok := w.Anniversary(cardID); ok {
			// Perks expire the day before the card renews.
			exp := anniv.On(now.Year()).Add(-1)
			if exp.Before(now) {
				// Already renewed this year: the deadline moves to next
				// year. The year field is set, not added, so a January 1
				// anniversary (whose deadline normalizes to December 31 of
				// the previous year) lands on December 31 of next year.
				exp = date.New(now.Year()+1, exp.Month(), exp.Day())
			}
			return exp, true
		}
		// No anniversary: December 31 of the current year. This date is
		// never rolled into the next year; once past, the perk simply stops
		// producing events until the year changes.
		return date.New(now.Year(), time.December, 31), true
	default:
		return date.Date{}, false
	}
}
