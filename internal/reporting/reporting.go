// Package reporting renders solved plans and suggestions as plain text and
// exports assignments as CSV. It formats only; all numbers come from the
// engine untouched.
package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spboyer/dineplan/internal/models"
)

var titleCaser = cases.Title(language.English)

// FormatPlan renders the per-day, per-restaurant assignment tables with each
// diner's raw rating label, followed by the unassigned diners per day.
func FormatPlan(plan *models.Plan, days []string) string {
	var b strings.Builder

	b.WriteString("=== Restaurant Assignments ===\n")
	fmt.Fprintf(&b, "Total satisfaction score: %.2f\n", plan.TotalSatisfaction)
	fmt.Fprintf(&b, "Objective value: %.2f\n", plan.ObjectiveValue)
	fmt.Fprintf(&b, "Repeated pairings: %d\n\n", plan.RepeatedPairings)

	byDay := plan.ByDay()
	for _, day := range days {
		tables := byDay[day]
		fmt.Fprintf(&b, "--- %s ---\n", titleCaser.String(day))
		if len(tables) == 0 {
			b.WriteString("  (no tables)\n")
		}

		restaurants := make([]string, 0, len(tables))
		for r := range tables {
			restaurants = append(restaurants, r)
		}
		sort.Strings(restaurants)

		for _, restaurant := range restaurants {
			seated := tables[restaurant]
			fmt.Fprintf(&b, "  %s (%d diners):\n", restaurant, len(seated))
			for _, a := range seated {
				name := models.Diner{Email: a.DinerEmail}.Name()
				fmt.Fprintf(&b, "    - %s (%s)\n", name, a.Rating.Label())
			}
		}

		if unseated := plan.Unassigned[day]; len(unseated) > 0 {
			names := make([]string, 0, len(unseated))
			for _, email := range unseated {
				names = append(names, models.Diner{Email: email}.Name())
			}
			fmt.Fprintf(&b, "  Unassigned: %s\n", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatPreferenceSummary renders a grid of how many restaurants each diner
// rated per category, and how many of those the plan assigned.
func FormatPreferenceSummary(plan *models.Plan, diners []models.Diner) string {
	categories := []models.Rating{
		models.RatingCantEat,
		models.RatingDontWant,
		models.RatingNeutral,
		models.RatingWant,
		models.RatingHaveTo,
	}
	headers := []string{"Diner", "Can't", "Don't want", "Neutral", "Want", "Have to"}

	assignedBy := map[string]map[string]bool{}
	for _, a := range plan.Assignments {
		if assignedBy[a.DinerEmail] == nil {
			assignedBy[a.DinerEmail] = map[string]bool{}
		}
		assignedBy[a.DinerEmail][a.Restaurant] = true
	}

	sorted := append([]models.Diner(nil), diners...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })

	type row struct {
		name  string
		cells []string
	}
	rows := make([]row, 0, len(sorted))
	for _, diner := range sorted {
		cells := make([]string, 0, len(categories))
		for _, cat := range categories {
			total := 0
			assigned := 0
			for restaurant, rating := range diner.Preferences {
				if rating != cat {
					continue
				}
				total++
				if assignedBy[diner.Email][restaurant] {
					assigned++
				}
			}
			cells = append(cells, fmt.Sprintf("%d/%d", assigned, total))
		}
		rows = append(rows, row{name: diner.Name(), cells: cells})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		if w := runewidth.StringWidth(r.name); w > widths[0] {
			widths[0] = w
		}
		for i, cell := range r.cells {
			if w := runewidth.StringWidth(cell); w > widths[i+1] {
				widths[i+1] = w
			}
		}
	}

	var b strings.Builder
	b.WriteString("=== Preference Summary (assigned/rated) ===\n")
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(runewidth.FillRight(h, widths[i]))
	}
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(runewidth.FillRight(r.name, widths[0]))
		for i, cell := range r.cells {
			b.WriteString("  ")
			b.WriteString(runewidth.FillRight(cell, widths[i+1]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSuggestions renders the ranked reservation suggestions.
func FormatSuggestions(suggestions []models.Suggestion) string {
	var b strings.Builder
	if len(suggestions) == 0 {
		b.WriteString("=== All reservations complete ===\n")
		b.WriteString("No additional reservations needed.\n")
		return b.String()
	}

	b.WriteString("=== Next Reservation Suggestions ===\n")
	for i, s := range suggestions {
		fmt.Fprintf(&b, "%d. %s on %s (party of %d, score %.2f)\n",
			i+1, s.Restaurant, titleCaser.String(s.Day), s.Capacity, s.Score)
	}
	return b.String()
}

// WriteAssignmentsCSV exports the plan's assignments, one row per seat.
func WriteAssignmentsCSV(w io.Writer, plan *models.Plan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"day", "restaurant", "diner", "rating", "score"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, a := range plan.Assignments {
		record := []string{
			a.Day,
			a.Restaurant,
			a.DinerEmail,
			a.Rating.Label(),
			fmt.Sprintf("%.4f", a.Score),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}
