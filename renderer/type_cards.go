package renderer

import (
	"github.com/etnz/cardwise"
)

// CardList is the catalog browse view.
type CardList struct {
	// Filter is the browse filter that produced the list, empty for "all".
	Filter string `json:"filter,omitempty"`
	// Search is the free-text query, when any.
	Search string `json:"search,omitempty"`
	Cards  []CatalogCard `json:"cards"`
}

// CatalogCard represents one catalog row.
type CatalogCard struct {
	ID        string         `json:"id"`
	Card      string         `json:"card"`
	Network   string         `json:"network"`
	AnnualFee cardwise.Money `json:"annualFee"`
	// InWallet flags cards the user already tracks.
	InWallet bool `json:"inWallet"`
	// BestRate is the card's strongest category and rate, like "4x pts dining".
	BestFor  string `json:"bestFor,omitempty"`
	BestRate string `json:"bestRate,omitempty"`
	// Rotating flags cards with activatable rotating categories.
	Rotating bool `json:"rotating"`
}

// NewCardList creates a new CardList struct from a filtered catalog slice.
func NewCardList(filter, search string, cards []cardwise.Card, w *cardwise.Wallet) *CardList {
	if filter == "all" {
		filter = ""
	}
	l := &CardList{Filter: filter, Search: search, Cards: make([]CatalogCard, 0, len(cards))}
	for _, c := range cards {
		row := CatalogCard{
			ID:        c.ID,
			Card:      c.DisplayName(),
			Network:   c.Network,
			AnnualFee: c.AnnualFee,
			InWallet:  w != nil && w.Has(c.ID),
			Rotating:  c.RotatingCategories,
		}
		row.BestFor, row.BestRate = bestCategory(c)
		l.Cards = append(l.Cards, row)
	}
	return l
}

// bestCategory finds the card's strongest earning category, preferring the
// first in catalog order on ties. The general rate is skipped unless it is
// all the card has.
func bestCategory(c cardwise.Card) (category, rate string) {
	var best cardwise.Rate
	for _, cat := range cardwise.Categories() {
		if cat.ID == cardwise.CategoryGeneral {
			continue
		}
		r := c.RateFor(cat.ID)
		if r.Rate.Cmp(best) > 0 {
			best = r.Rate
			category, rate = cat.Name, r.Rate.Label()
		}
	}
	general := c.RateFor(cardwise.CategoryGeneral)
	if general.Rate.Cmp(best) >= 0 {
		return "Everything", general.Rate.Label()
	}
	return category, rate
}
