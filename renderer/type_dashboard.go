package renderer

import (
	"github.com/etnz/cardwise"
	"github.com/etnz/cardwise/date"
)

// Dashboard is a struct to represent the wallet summary in json.
// Numbers are handled using the exact Money type so that they already
// contain their renderers (String, Compact, SignedString).
type Dashboard struct {
	// Cards is the number of cards in the wallet.
	Cards int `json:"cards"`
	// AnnualFees is the sum of annual fees across the wallet.
	AnnualFees cardwise.Money `json:"annualFees"`
	// PerkValue is the total annual value of credits and perks.
	PerkValue cardwise.Money `json:"perkValue"`
	// UsedValue is the value already claimed this cycle.
	UsedValue cardwise.Money `json:"usedValue"`
	// UnusedValue is the value still on the table.
	UnusedValue cardwise.Money `json:"unusedValue"`
	// Net is the perk value minus annual fees.
	Net cardwise.Money `json:"net"`
	// ClaimedPercent is the share of perk value claimed, 0 to 100.
	ClaimedPercent int `json:"claimedPercent"`
	// Wallet is one row per wallet card.
	Wallet []DashboardCard `json:"wallet"`
}

// DashboardCard represents a single wallet card row.
type DashboardCard struct {
	Card      string         `json:"card"`
	Network   string         `json:"network"`
	AnnualFee cardwise.Money `json:"annualFee"`
	// Anniversary is the configured renewal month-day, empty when not set.
	Anniversary string `json:"anniversary,omitempty"`
	// PerkValue is the card's own total perk value.
	PerkValue cardwise.Money `json:"perkValue"`
}

// NewDashboard creates a new Dashboard struct from a wallet snapshot.
func NewDashboard(w *cardwise.Wallet) *Dashboard {
	s := w.Stats()
	d := &Dashboard{
		Cards:          s.Cards,
		AnnualFees:     s.AnnualFees,
		PerkValue:      s.PerkValue,
		UsedValue:      s.UsedValue,
		UnusedValue:    s.UnusedValue,
		Net:            s.Net,
		ClaimedPercent: s.ClaimedPercent(),
		Wallet:         make([]DashboardCard, 0),
	}
	for _, c := range w.Cards() {
		row := DashboardCard{
			Card:      c.DisplayName(),
			Network:   c.Network,
			AnnualFee: c.AnnualFee,
		}
		if md, ok := w.Anniversary(c.ID); ok {
			row.Anniversary = md.Display()
		}
		for _, p := range c.Perks {
			if p.Value.IsPositive() {
				row.PerkValue = row.PerkValue.Add(p.Value)
			}
		}
		d.Wallet = append(d.Wallet, row)
	}
	return d
}

// Calendar is the upcoming reminder list for a wallet.
type Calendar struct {
	// Today anchors the report.
	Today date.Date `json:"today"`
	// Events are the upcoming reminders, soonest first.
	Events []CalendarEvent `json:"events"`
}

// CalendarEvent represents a single reminder row.
type CalendarEvent struct {
	Day         string `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewCalendar creates a new Calendar struct from the wallet's events.
func NewCalendar(now date.Date, events []cardwise.Event) *Calendar {
	c := &Calendar{Today: now, Events: make([]CalendarEvent, 0, len(events))}
	for _, e := range events {
		c.Events = append(c.Events, CalendarEvent{
			Day:         e.Day.Display(),
			Title:       e.Title,
			Description: e.Description,
		})
	}
	return c
}
