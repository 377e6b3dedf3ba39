// Package dataset loads the preferences survey export: one CSV row per
// diner, one column per restaurant, cells holding the rating labels.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spboyer/dineplan/internal/models"
)

// metadataColumns are survey columns that are not restaurant ratings.
var metadataColumns = map[string]bool{
	"Timestamp":                             true,
	"Email Address":                         true,
	"Dining Out Days":                       true,
	"Do you have any dietary restrictions?": true,
}

// LoadPreferences reads the survey CSV and returns the diners in row order
// plus the restaurant names in column order.
//
// Blank or unrecognized rating cells fall back to Neutral; rows without an
// email address are skipped. Unnamed filler columns ("Column 5") from the
// survey tool are ignored.
func LoadPreferences(path string) ([]models.Diner, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("prefs: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("prefs: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("prefs: %s is empty (no header row)", path)
	}

	headers := records[0]
	var restaurants []string
	for _, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" || metadataColumns[h] || strings.HasPrefix(h, "Column ") {
			continue
		}
		restaurants = append(restaurants, h)
	}

	colIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		colIdx[strings.TrimSpace(h)] = i
	}
	emailCol, ok := colIdx["Email Address"]
	if !ok {
		return nil, nil, fmt.Errorf("prefs: %s has no %q column", path, "Email Address")
	}

	var diners []models.Diner
	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, nil, fmt.Errorf("prefs: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}

		email := strings.TrimSpace(record[emailCol])
		if email == "" {
			continue
		}

		prefs := make(map[string]models.Rating, len(restaurants))
		for _, restaurant := range restaurants {
			cell := strings.TrimSpace(record[colIdx[restaurant]])
			rating, known := models.ParseRating(cell)
			if !known {
				rating = models.RatingNeutral
			}
			prefs[restaurant] = rating
		}
		diners = append(diners, models.Diner{Email: email, Preferences: prefs})
	}

	return diners, restaurants, nil
}
