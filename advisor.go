package cardwise

import (
	"errors"
	"sort"
)

// ErrEmptyWallet is returned when a recommendation is requested for a wallet
// holding no cards. Callers must branch on it to render a call-to-action
// instead of an undefined winner.
var ErrEmptyWallet = errors.New("no cards in wallet")

// Ranked is one entry of a card ranking for a category.
type Ranked struct {
	Card Card
	// Rate is the card's effective rate for the category (its general rate
	// when it has no explicit entry).
	Rate CategoryRate
}

// Rank orders the given cards for a spending category by normalized rate,
// best first. The sort is stable: cards earning the same keep their wallet
// order. An unknown category id is not an error; every card then falls back
// to its general rate.
func Rank(categoryID string, cards []Card) ([]Ranked, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyWallet
	}
	ranked := make([]Ranked, 0, len(cards))
	for _, c := range cards {
		ranked = append(ranked, Ranked{Card: c, Rate: c.RateFor(categoryID)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rate.Rate.Cmp(ranked[j].Rate.Rate) > 0
	})
	return ranked, nil
}

// Advice is a full recommendation for one category.
type Advice struct {
	Category SpendingCategory
	Ranked   []Ranked
}

// Advise ranks the wallet cards for a category and wraps the result.
func Advise(categoryID string, cards []Card) (*Advice, error) {
	ranked, err := Rank(categoryID, cards)
	if err != nil {
		return nil, err
	}
	cat, ok := CategoryByID(categoryID)
	if !ok {
		cat, _ = CategoryByID(CategoryGeneral)
	}
	return &Advice{Category: cat, Ranked: ranked}, nil
}

// Winner returns the best card for the category.
func (a *Advice) Winner() Ranked { return a.Ranked[0] }

// RunnerUp returns the second best card. A zero-rate second place is not
// worth surfacing, so ok is false for it, and when there is no second card
// at all.
func (a *Advice) RunnerUp() (Ranked, bool) {
	if len(a.Ranked) > 1 && !a.Ranked[1].Rate.Rate.IsZero() {
		return a.Ranked[1], true
	}
	return Ranked{}, false
}

// CategoryRanking is the best-card ranking for one category, used by the
// whole-wallet optimization view.
type CategoryRanking struct {
	Category SpendingCategory
	Ranked   []Ranked
}

// Optimize ranks the wallet cards for every category at once.
func Optimize(cards []Card) ([]CategoryRanking, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyWallet
	}
	out := make([]CategoryRanking, 0, len(categories))
	for _, cat := range categories {
		ranked, err := Rank(cat.ID, cards)
		if err != nil {
			return nil, err
		}
		out = append(out, CategoryRanking{Category: cat, Ranked: ranked})
	}
	return out, nil
}
