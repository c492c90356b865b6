package cardwise

import (
	"fmt"
	"slices"

	"github.com/etnz/cardwise/date"
)

// Wallet is the user-owned mutable state: the cards the user tracks, which
// perks they claimed, which sections of the benefits view are expanded, and
// card anniversary dates. It is an explicit state object passed into queries
// and mutators; persistence lives at the boundary in Store.
type Wallet struct {
	cardIDs       []string // ordered, no duplicates
	perksUsed     map[string]Usage
	expanded      map[string]bool
	anniversaries map[string]date.MonthDay
}

// NewWallet returns an empty wallet.
func NewWallet() *Wallet {
	return &Wallet{
		perksUsed:     make(map[string]Usage),
		expanded:      make(map[string]bool),
		anniversaries: make(map[string]date.MonthDay),
	}
}

// DefaultWallet returns the starter wallet seeded with the catalog's
// default-selected cards.
func DefaultWallet() *Wallet {
	w := NewWallet()
	for _, c := range cards {
		if c.DefaultSelected {
			w.cardIDs = append(w.cardIDs, c.ID)
		}
	}
	return w
}

// CardIDs returns the wallet's card ids in order.
func (w *Wallet) CardIDs() []string { return slices.Clone(w.cardIDs) }

// Cards resolves the wallet against the catalog, skipping unknown ids.
func (w *Wallet) Cards() []Card {
	out := make([]Card, 0, len(w.cardIDs))
	for _, id := range w.cardIDs {
		if c, ok := CardByID(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether the card is in the wallet.
func (w *Wallet) Has(cardID string) bool { return slices.Contains(w.cardIDs, cardID) }

// Add appends a catalog card to the wallet. Adding a card already present is
// a no-op.
func (w *Wallet) Add(cardID string) error {
	if _, ok := CardByID(cardID); !ok {
		return fmt.Errorf("unknown card %q", cardID)
	}
	if w.Has(cardID) {
		return nil
	}
	w.cardIDs = append(w.cardIDs, cardID)
	return nil
}

// Remove drops a card from the wallet and purges the claim state of its
// perks. Removing a card not in the wallet is a no-op.
func (w *Wallet) Remove(cardID string) {
	w.cardIDs = slices.DeleteFunc(w.cardIDs, func(id string) bool { return id == cardID })
	if c, ok := CardByID(cardID); ok {
		for _, p := range c.Perks {
			delete(w.perksUsed, p.ID)
		}
	}
	// expanded and anniversary entries survive removal on purpose: they are
	// harmless when stale and useful again if the card comes back.
}

// Expanded reports whether the card's benefits section is expanded.
func (w *Wallet) Expanded(cardID string) bool { return w.expanded[cardID] }

// ToggleExpand flips the card's benefits section.
func (w *Wallet) ToggleExpand(cardID string) { w.expanded[cardID] = !w.expanded[cardID] }

// SetExpanded sets the card's benefits section state explicitly.
func (w *Wallet) SetExpanded(cardID string, expanded bool) { w.expanded[cardID] = expanded }

// Anniversary returns the card's configured anniversary.
func (w *Wallet) Anniversary(cardID string) (date.MonthDay, bool) {
	md, ok := w.anniversaries[cardID]
	return md, ok
}

// SetAnniversary records the date the card renews each year, used to compute
// when its annual perks expire.
func (w *Wallet) SetAnniversary(cardID string, md date.MonthDay) {
	w.anniversaries[cardID] = md
}

// ClearAnniversary removes the card's anniversary.
func (w *Wallet) ClearAnniversary(cardID string) { delete(w.anniversaries, cardID) }

// IsPeriodUsed reports whether a perk's claim period has been used.
func (w *Wallet) IsPeriodUsed(perkID string, period int) bool {
	return w.perksUsed[perkID].IsPeriodUsed(period)
}

// TogglePeriod flips one claim period of a perk. Legacy blanket state is
// migrated to the per-period form first (one way, the blanket flag is
// discarded).
func (w *Wallet) TogglePeriod(perkID string, period int) {
	w.perksUsed[perkID] = w.perksUsed[perkID].toggle(period)
}

// UsedPeriods returns how many of the perk's claim periods are used.
func (w *Wallet) UsedPeriods(p Perk) int {
	return w.perksUsed[p.ID].Count(p.Frequency.Periods())
}

// UsedValue returns the claimed slice of a perk's annual value:
// value × used/total for trackable perks, zero otherwise. Partially claimed
// multi-period perks contribute proportionally, not all-or-nothing.
func (w *Wallet) UsedValue(p Perk) Money {
	total := p.Frequency.Periods()
	if total == 0 || !p.Value.IsPositive() {
		return Money{}
	}
	used := w.perksUsed[p.ID].Count(total)
	return p.Value.MulInt(used).DivInt(total)
}

// ResetPerks clears the claim state of every perk.
func (w *Wallet) ResetPerks() { w.perksUsed = make(map[string]Usage) }
