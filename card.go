package cardwise

import (
	"fmt"
	"strings"
)

// Frequency is the reset cadence of a perk's claimability.
type Frequency int

const (
	Ongoing Frequency = iota
	OneTime
	Monthly
	Quarterly
	SemiAnnual
	Annual
	// Quadrennial perks (Global Entry credits) carry a value but have no
	// sub-annual claim cycle, so they are not period-trackable.
	Quadrennial
)

func (f Frequency) String() string {
	switch f {
	case Ongoing:
		return "ongoing"
	case OneTime:
		return "one-time"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case SemiAnnual:
		return "semiannual"
	case Annual:
		return "annual"
	case Quadrennial:
		return "quadrennial"
	default:
		panic(fmt.Sprintf("unknown frequency %d", int(f)))
	}
}

// Display returns the human form of the frequency, like "Semi-annual".
func (f Frequency) Display() string {
	switch f {
	case SemiAnnual:
		return "Semi-annual"
	case OneTime:
		return "One-time"
	default:
		s := f.String()
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// Periods returns the number of claim periods in a year: 12 for monthly, 4
// for quarterly, 2 for semiannual, 1 for annual, 0 for everything that has no
// sub-annual claim cycle.
func (f Frequency) Periods() int {
	switch f {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	case SemiAnnual:
		return 2
	case Annual:
		return 1
	default:
		return 0
	}
}

// PeriodLabels returns the display label of each claim period.
func (f Frequency) PeriodLabels() []string {
	switch f {
	case Monthly:
		return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	case Quarterly:
		return []string{"Q1", "Q2", "Q3", "Q4"}
	case SemiAnnual:
		return []string{"H1", "H2"}
	case Annual:
		return []string{"Year"}
	default:
		return nil
	}
}

// Perk is a discrete cardholder benefit with a claim cycle and, optionally, a
// dollar value. A perk belongs to exactly one card; its ID is unique across
// the whole catalog.
type Perk struct {
	ID          string
	Name        string
	Description string
	Value       Money // 0 when the perk has no trackable dollar value
	Frequency   Frequency
	// MonthlyValue is the per-month slice of a monthly credit, when the
	// issuer advertises it that way.
	MonthlyValue Money
}

// Trackable reports whether the perk's claims can be tracked per period.
func (p Perk) Trackable() bool { return p.Value.IsPositive() && p.Frequency.Periods() > 0 }

// CategoryRate is a card's earning rate for one spending category.
type CategoryRate struct {
	Rate Rate
	// Portal is true when the rate only applies to purchases through the
	// issuer's travel portal; PortalNote names the portal.
	Portal     bool
	PortalNote string
	// Note carries a restriction worth surfacing, like "US supermarkets, up to $6k/yr".
	Note string
}

// Card is the static reference data for one credit card.
type Card struct {
	ID        string
	Issuer    string
	Name      string
	Network   string
	AnnualFee Money

	// Visual attributes used by view layers.
	Color       string
	Gradient    string
	AccentColor string

	// DefaultSelected marks cards that seed the starter wallet.
	DefaultSelected bool

	// RotatingCategories marks cards with quarterly rotating 5% categories.
	RotatingCategories bool
	RotatingNote       string

	Rates map[string]CategoryRate // keyed by category id
	Perks []Perk
}

// DisplayName returns "Issuer Name", like "Chase Sapphire Preferred".
func (c Card) DisplayName() string { return c.Issuer + " " + c.Name }

// Perk returns the card's perk with the given id.
func (c Card) Perk(id string) (Perk, bool) {
	for _, p := range c.Perks {
		if p.ID == id {
			return p, true
		}
	}
	return Perk{}, false
}

// RateFor returns the card's effective rate for a category: the explicit
// entry when present, the card's own general rate otherwise, and a zero rate
// when the card has neither.
func (c Card) RateFor(categoryID string) CategoryRate {
	if cr, ok := c.Rates[categoryID]; ok {
		return cr
	}
	if cr, ok := c.Rates[CategoryGeneral]; ok {
		return cr
	}
	return CategoryRate{}
}
