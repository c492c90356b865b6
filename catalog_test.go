package cardwise

import (
	"slices"
	"testing"
)

func TestCatalogIntegrity(t *testing.T) {
	if len(Cards()) == 0 {
		t.Fatal("catalog is empty")
	}
	seenCards := make(map[string]bool)
	seenPerks := make(map[string]bool)
	for _, c := range Cards() {
		if c.ID == "" || c.Name == "" || c.Issuer == "" {
			t.Errorf("card %+v missing identity fields", c)
		}
		if seenCards[c.ID] {
			t.Errorf("duplicate card id %q", c.ID)
		}
		seenCards[c.ID] = true

		// every card must have a general rate so ranking never misses
		if _, ok := c.Rates[CategoryGeneral]; !ok {
			t.Errorf("card %q has no general rate", c.ID)
		}
		for catID := range c.Rates {
			if _, ok := CategoryByID(catID); !ok {
				t.Errorf("card %q rates unknown category %q", c.ID, catID)
			}
		}
		for _, p := range c.Perks {
			if p.ID == "" || p.Name == "" {
				t.Errorf("card %q has a perk missing identity fields", c.ID)
			}
			if seenPerks[p.ID] {
				t.Errorf("duplicate perk id %q", p.ID)
			}
			seenPerks[p.ID] = true
			if p.MonthlyValue.IsPositive() && p.Frequency != Monthly {
				t.Errorf("perk %q has a monthly value but is %s", p.ID, p.Frequency)
			}
		}
	}
}

func TestRateForFallsBackToGeneral(t *testing.T) {
	c := mustCard(t, "amex-platinum")
	// explicit category entry wins
	if got := c.RateFor("travel_flights").Rate.Label(); got != "5x pts" {
		t.Errorf("flights rate = %q, want 5x pts", got)
	}
	// unknown category falls back to the card's general rate
	if got := c.RateFor("not-a-category").Rate.Label(); got != "1x pts" {
		t.Errorf("fallback rate = %q, want 1x pts", got)
	}
}

func TestPerkByID(t *testing.T) {
	p, c, ok := PerkByID("vx-travel-credit")
	if !ok {
		t.Fatal("perk vx-travel-credit missing")
	}
	if c.ID != "venture-x" {
		t.Errorf("owning card = %q, want venture-x", c.ID)
	}
	if !p.Value.Equal(USD(300)) || p.Frequency != Annual {
		t.Errorf("perk = %+v", p)
	}
	if _, _, ok := PerkByID("no-such-perk"); ok {
		t.Error("unknown perk id reported found")
	}
}

func TestPerkTrackable(t *testing.T) {
	tests := []struct {
		perk Perk
		want bool
	}{
		{Perk{Value: USD(120), Frequency: Monthly}, true},
		{Perk{Value: USD(300), Frequency: Annual}, true},
		{Perk{Frequency: Monthly}, false},             // no dollar value
		{Perk{Value: USD(120), Frequency: Ongoing}, false},
		{Perk{Value: USD(120), Frequency: Quadrennial}, false},
	}
	for _, tc := range tests {
		if got := tc.perk.Trackable(); got != tc.want {
			t.Errorf("Trackable(%s, %s) = %v, want %v", tc.perk.Value, tc.perk.Frequency, got, tc.want)
		}
	}
}

func TestIssuers(t *testing.T) {
	issuers := Issuers()
	for _, want := range []string{"Chase", "American Express", "Capital One"} {
		if !slices.Contains(issuers, want) {
			t.Errorf("issuers missing %q", want)
		}
	}
	seen := make(map[string]bool)
	for _, i := range issuers {
		if seen[i] {
			t.Errorf("duplicate issuer %q", i)
		}
		seen[i] = true
	}
}

func TestFilterCards(t *testing.T) {
	if got, want := len(FilterCards("all", "")), len(Cards()); got != want {
		t.Errorf(`FilterCards("all", "") = %d cards, want %d`, got, want)
	}
	for _, c := range FilterCards(FilterNoFee, "") {
		if !c.AnnualFee.IsZero() {
			t.Errorf("no-fee filter returned %q with fee %s", c.ID, c.AnnualFee)
		}
	}
	for _, c := range FilterCards("Chase", "") {
		if c.Issuer != "Chase" {
			t.Errorf("issuer filter returned %q from %q", c.ID, c.Issuer)
		}
	}
	// search matches name and issuer, case-insensitive
	got := FilterCards("all", "sapphire")
	if len(got) != 1 || got[0].ID != "sapphire-preferred" {
		t.Errorf(`search "sapphire" = %v`, got)
	}
	if len(FilterCards("all", "WELLS")) == 0 {
		t.Error(`search "WELLS" found nothing`)
	}
	if len(FilterCards("Chase", "venture")) != 0 {
		t.Error("filter and search must both apply")
	}
}
