// Package renderer turns wallet views into markdown reports. Each view is a
// plain struct built from the domain types, rendered through a main template
// assembled from partials.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderAdvice renders a category recommendation to a markdown string.
func RenderAdvice(a *Advice) string {
	partials := map[string]string{
		"advice_title":   "advice_title.md",
		"advice_ranking": "advice_ranking.md",
	}
	return renderTemplate("advice", "advice.md", partials, a)
}

// RenderOptimizer renders the whole-wallet best-card-per-category table.
func RenderOptimizer(o *Optimizer) string {
	partials := map[string]string{
		"optimizer_title": "optimizer_title.md",
		"optimizer_table": "optimizer_table.md",
	}
	return renderTemplate("optimizer", "optimizer.md", partials, o)
}

// RenderDashboard renders the wallet summary with its value statistics.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"dashboard_title": "dashboard_title.md",
		"dashboard_stats": "dashboard_stats.md",
		"dashboard_cards": "dashboard_cards.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, d)
}

// BenefitsRenderOptions holds configuration for rendering the benefits report.
type BenefitsRenderOptions struct {
	ShowAll bool // Render every card's perks, not only the expanded ones.
}

// RenderBenefits renders the per-card perk tracker.
func RenderBenefits(b *Benefits, opts BenefitsRenderOptions) string {
	partials := map[string]string{
		"benefits_title": "benefits_title.md",
	}
	// Collapsed cards render as a one-line header unless the caller asked for
	// everything.
	if opts.ShowAll {
		partials["benefits_card"] = "benefits_card_full.md"
	} else {
		partials["benefits_card"] = "benefits_card.md"
	}
	return renderTemplate("benefits", "benefits.md", partials, b)
}

// RenderCalendar renders the upcoming reminder list.
func RenderCalendar(c *Calendar) string {
	partials := map[string]string{
		"calendar_title":  "calendar_title.md",
		"calendar_events": "calendar_events.md",
	}
	return renderTemplate("calendar", "calendar.md", partials, c)
}

// RenderCards renders the card catalog browse table.
func RenderCards(c *CardList) string {
	partials := map[string]string{
		"cards_title": "cards_title.md",
		"cards_table": "cards_table.md",
	}
	return renderTemplate("cards", "cards.md", partials, c)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := templates.ReadFile("templates/" + mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := templates.ReadFile("templates/" + file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
