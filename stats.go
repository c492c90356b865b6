package cardwise

import "github.com/shopspring/decimal"

// Stats aggregates the wallet dashboard numbers. All values are recomputed
// from the catalog and the wallet snapshot; nothing here is persisted.
type Stats struct {
	Cards       int
	AnnualFees  Money // sum of annual fees of wallet cards
	PerkValue   Money // total annual value of perks with a dollar value
	UsedValue   Money // fractional value already claimed
	UnusedValue Money // PerkValue minus UsedValue
	Net         Money // PerkValue minus AnnualFees
}

// Stats computes the wallet dashboard aggregates.
func (w *Wallet) Stats() Stats {
	s := Stats{}
	for _, c := range w.Cards() {
		s.Cards++
		s.AnnualFees = s.AnnualFees.Add(c.AnnualFee)
		for _, p := range c.Perks {
			if p.Value.IsPositive() {
				s.PerkValue = s.PerkValue.Add(p.Value)
				s.UsedValue = s.UsedValue.Add(w.UsedValue(p))
			}
		}
	}
	s.UnusedValue = s.PerkValue.Sub(s.UsedValue)
	s.Net = s.PerkValue.Sub(s.AnnualFees)
	return s
}

// ClaimedPercent returns the share of total perk value already claimed, as a
// whole percentage. Zero when the wallet has no perk value at all.
func (s Stats) ClaimedPercent() int {
	if !s.PerkValue.IsPositive() {
		return 0
	}
	ratio := s.UsedValue.value.Mul(decimal.NewFromInt(100)).Div(s.PerkValue.value)
	return int(ratio.Round(0).IntPart())
}
