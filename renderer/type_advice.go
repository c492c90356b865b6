package renderer

import (
	"github.com/etnz/cardwise"
)

// Advice is a struct to represent a category recommendation in json.
// Rates are pre-formatted so the templates only deal with strings.
type Advice struct {
	// Category is the display name of the matched spending category.
	Category string `json:"category"`
	// Icon is the category's emoji.
	Icon string `json:"icon,omitempty"`
	// Query is the free-text the user asked about, when different from the
	// category name.
	Query string `json:"query,omitempty"`
	// Winner is the best card for the category.
	Winner RankedCard `json:"winner"`
	// RunnerUp is the second best card, nil when not worth surfacing.
	RunnerUp *RankedCard `json:"runnerUp,omitempty"`
	// Ranking is the full wallet ranking, best first.
	Ranking []RankedCard `json:"ranking"`
}

// RankedCard represents one card in a ranking.
type RankedCard struct {
	Card string `json:"card"`
	Rate string `json:"rate"`
	// Portal flags a rate that requires booking through the issuer's portal.
	Portal     bool   `json:"portal,omitempty"`
	PortalNote string `json:"portalNote,omitempty"`
	Note       string `json:"note,omitempty"`
}

// NewAdvice creates a new Advice struct from a domain recommendation.
func NewAdvice(a *cardwise.Advice, query string) *Advice {
	v := &Advice{
		Category: a.Category.Name,
		Icon:     a.Category.Icon,
		Winner:   newRankedCard(a.Winner()),
	}
	if query != "" && query != a.Category.Name {
		v.Query = query
	}
	if r, ok := a.RunnerUp(); ok {
		ranked := newRankedCard(r)
		v.RunnerUp = &ranked
	}
	for _, r := range a.Ranked {
		v.Ranking = append(v.Ranking, newRankedCard(r))
	}
	return v
}

func newRankedCard(r cardwise.Ranked) RankedCard {
	return RankedCard{
		Card:       r.Card.DisplayName(),
		Rate:       r.Rate.Rate.Label(),
		Portal:     r.Rate.Portal,
		PortalNote: r.Rate.PortalNote,
		Note:       r.Rate.Note,
	}
}

// Optimizer is the best-card-per-category view of a wallet.
type Optimizer struct {
	// Cards is the number of cards considered.
	Cards int `json:"cards"`
	// Rows holds one winner per spending category, in catalog order.
	Rows []OptimizerRow `json:"rows"`
}

// OptimizerRow is the winning card for one category.
type OptimizerRow struct {
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
	Card     string `json:"card"`
	Rate     string `json:"rate"`
	Portal   bool   `json:"portal,omitempty"`
}

// NewOptimizer creates a new Optimizer struct from the per-category rankings.
func NewOptimizer(rankings []cardwise.CategoryRanking) *Optimizer {
	o := &Optimizer{}
	for _, cr := range rankings {
		if len(cr.Ranked) > o.Cards {
			o.Cards = len(cr.Ranked)
		}
		best := cr.Ranked[0]
		o.Rows = append(o.Rows, OptimizerRow{
			Category: cr.Category.Name,
			Icon:     cr.Category.Icon,
			Card:     best.Card.DisplayName(),
			Rate:     best.Rate.Rate.Label(),
			Portal:   best.Rate.Portal,
		})
	}
	return o
}
