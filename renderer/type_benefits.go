package renderer

import (
	"github.com/etnz/cardwise"
)

// Benefits is the per-card perk tracker view.
type Benefits struct {
	// TotalValue is the annual value of all perks across the wallet.
	TotalValue cardwise.Money `json:"totalValue"`
	// UsedValue is the value already claimed.
	UsedValue cardwise.Money `json:"usedValue"`
	// Cards is one section per wallet card.
	Cards []BenefitsCard `json:"cards"`
}

// BenefitsCard is one card's perk section.
type BenefitsCard struct {
	Card string `json:"card"`
	// Expanded reports whether the user keeps this section open.
	Expanded bool           `json:"expanded"`
	Perks    []BenefitsPerk `json:"perks"`
}

// BenefitsPerk is one perk row with its claim state.
type BenefitsPerk struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Value is the annual dollar value, empty for perks without one.
	Value string `json:"value,omitempty"`
	// Frequency is the human form of the claim cycle, like "Monthly".
	Frequency string `json:"frequency"`
	// Periods is the claim checklist, empty for non-trackable perks.
	Periods []PerkPeriod `json:"periods,omitempty"`
	// Used and Total count the claimed periods for trackable perks.
	Used  int `json:"used,omitempty"`
	Total int `json:"total,omitempty"`
}

// PerkPeriod is a single claim slot, like January or Q3.
type PerkPeriod struct {
	Label string `json:"label"`
	Used  bool   `json:"used"`
}

// NewBenefits creates a new Benefits struct from a wallet snapshot.
func NewBenefits(w *cardwise.Wallet) *Benefits {
	b := &Benefits{Cards: make([]BenefitsCard, 0)}
	for _, c := range w.Cards() {
		section := BenefitsCard{
			Card:     c.DisplayName(),
			Expanded: w.Expanded(c.ID),
		}
		for _, p := range c.Perks {
			row := BenefitsPerk{
				Name:        p.Name,
				Description: p.Description,
				Frequency:   p.Frequency.Display(),
			}
			if p.Value.IsPositive() {
				row.Value = p.Value.Compact()
				b.TotalValue = b.TotalValue.Add(p.Value)
				b.UsedValue = b.UsedValue.Add(w.UsedValue(p))
			}
			if p.Trackable() {
				row.Total = p.Frequency.Periods()
				row.Used = w.UsedPeriods(p)
				for i, label := range p.Frequency.PeriodLabels() {
					row.Periods = append(row.Periods, PerkPeriod{
						Label: label,
						Used:  w.IsPeriodUsed(p.ID, i),
					})
				}
			}
			section.Perks = append(section.Perks, row)
		}
		b.Cards = append(b.Cards, section)
	}
	return b
}
