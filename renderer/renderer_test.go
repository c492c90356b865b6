package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/cardwise"
	"github.com/etnz/cardwise/date"
)

func testWallet(t *testing.T, ids ...string) *cardwise.Wallet {
	t.Helper()
	w := cardwise.NewWallet()
	for _, id := range ids {
		if err := w.Add(id); err != nil {
			t.Fatal(err)
		}
	}
	return w
}

func TestTemplatesParse(t *testing.T) {
	// Every embedded template must at least be readable; a missing file
	// surfaces as an error string at render time, so ReadDir is the cheap
	// integrity check.
	entries, err := templates.ReadDir("templates")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no templates embedded")
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".md") {
			t.Errorf("unexpected embedded file %q", e.Name())
		}
	}
}

func TestRenderAdvice(t *testing.T) {
	w := testWallet(t, "discover-it", "freedom-unlimited")
	advice, err := cardwise.Advise("dining", w.Cards())
	if err != nil {
		t.Fatal(err)
	}
	got := RenderAdvice(NewAdvice(advice, "dinner with friends"))

	for _, want := range []string{
		"Best card for Dining",
		`Matched from "dinner with friends".`,
		"**Chase Freedom Unlimited** earning **3%**",
		"Runner-up: Discover it Cash Back at 1%.",
		"| Chase Freedom Unlimited | 3% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("advice missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("render error:\n%s", got)
	}
}

func TestRenderAdviceWithoutQuery(t *testing.T) {
	w := testWallet(t, "freedom-unlimited")
	advice, err := cardwise.Advise("gas", w.Cards())
	if err != nil {
		t.Fatal(err)
	}
	got := RenderAdvice(NewAdvice(advice, "gas"))
	if strings.Contains(got, "Matched from") {
		t.Errorf("query line should be omitted when it matches the category:\n%s", got)
	}
	if strings.Contains(got, "Runner-up") {
		t.Errorf("runner-up line should be omitted for a single card:\n%s", got)
	}
}

func TestRenderOptimizer(t *testing.T) {
	w := testWallet(t, "amex-gold", "venture-x")
	rankings, err := cardwise.Optimize(w.Cards())
	if err != nil {
		t.Fatal(err)
	}
	got := RenderOptimizer(NewOptimizer(rankings))

	if !strings.Contains(got, "across 2 cards") {
		t.Errorf("optimizer missing card count:\n%s", got)
	}
	for _, want := range []string{
		"| American Express Gold Card | 4x pts |",
		"| Capital One Venture X | 10x mi (portal) |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("optimizer missing %q:\n%s", want, got)
		}
	}
}

func TestRenderDashboard(t *testing.T) {
	w := testWallet(t, "amex-gold", "citi-double-cash")
	w.SetAnniversary("amex-gold", date.MustParseMonthDay("06-15"))
	got := RenderDashboard(NewDashboard(w))

	for _, want := range []string{
		"2 cards, $250 in annual fees.",
		"| Perk value | $324 |",
		"| Net vs fees | +$74 |",
		"| American Express Gold Card | Amex | $250 | $324 | Jun 15 |",
		"| Citi Double Cash | Mastercard | $0 | $0 |  |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard missing %q:\n%s", want, got)
		}
	}
}

func TestRenderBenefits(t *testing.T) {
	w := testWallet(t, "amex-gold")
	w.TogglePeriod("ag-uber", 0)

	// Collapsed by default: the section renders as a header only.
	got := RenderBenefits(NewBenefits(w), BenefitsRenderOptions{})
	if !strings.Contains(got, "## American Express Gold Card (3 perks, collapsed)") {
		t.Errorf("collapsed section missing:\n%s", got)
	}
	if strings.Contains(got, "Uber Cash") {
		t.Errorf("collapsed section should hide perk rows:\n%s", got)
	}

	// ShowAll renders the checklist regardless of the expanded flag.
	got = RenderBenefits(NewBenefits(w), BenefitsRenderOptions{ShowAll: true})
	for _, want := range []string{
		"$120 Uber Cash** ($120, Monthly)",
		"[x] Jan",
		"[ ] Feb",
		"(1/12)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("benefits missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCalendar(t *testing.T) {
	now := date.New(2026, time.March, 10)
	w := testWallet(t, "amex-gold")
	got := RenderCalendar(NewCalendar(now, w.Events(now)))

	for _, want := range []string{
		"As of Mar 10, 2026.",
		"**Mar 24, 2026** 🔔 Use American Express Gold Card",
		"**Mar 31, 2026** 🚨 LAST DAY:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("calendar missing %q:\n%s", want, got)
		}
	}

	got = RenderCalendar(NewCalendar(now, nil))
	if !strings.Contains(got, "Nothing expiring soon.") {
		t.Errorf("empty calendar missing placeholder:\n%s", got)
	}
}

func TestRenderCards(t *testing.T) {
	w := testWallet(t, "citi-double-cash")
	list := cardwise.FilterCards(cardwise.FilterNoFee, "")
	got := RenderCards(NewCardList(cardwise.FilterNoFee, "", list, w))

	if !strings.Contains(got, "filter: no-fee") {
		t.Errorf("cards missing filter line:\n%s", got)
	}
	if !strings.Contains(got, "✓ | Citi Double Cash (`citi-double-cash`)") {
		t.Errorf("cards missing wallet marker:\n%s", got)
	}
	if !strings.Contains(got, "2% Everything") {
		t.Errorf("cards missing flat-rate summary:\n%s", got)
	}
}
