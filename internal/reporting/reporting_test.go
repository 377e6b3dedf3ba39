package reporting

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/dineplan/internal/models"
)

func samplePlan() *models.Plan {
	return &models.Plan{
		Assignments: []models.Assignment{
			{DinerEmail: "alice@corp.test", Restaurant: "Nopa", Day: "tuesday", Rating: models.RatingHaveTo, Score: 0.71},
			{DinerEmail: "bob@corp.test", Restaurant: "Nopa", Day: "tuesday", Rating: models.RatingWant, Score: 0.35},
		},
		Unassigned: map[string][]string{
			"tuesday":   {"carol@corp.test"},
			"wednesday": {"alice@corp.test", "bob@corp.test", "carol@corp.test"},
		},
		TotalSatisfaction: 1.06,
		ObjectiveValue:    1.06,
		RepeatedPairings:  0,
	}
}

func TestFormatPlan(t *testing.T) {
	out := FormatPlan(samplePlan(), []string{"tuesday", "wednesday"})

	assert.Contains(t, out, "=== Restaurant Assignments ===")
	assert.Contains(t, out, "Total satisfaction score: 1.06")
	assert.Contains(t, out, "Repeated pairings: 0")
	assert.Contains(t, out, "--- Tuesday ---")
	assert.Contains(t, out, "Nopa (2 diners):")
	assert.Contains(t, out, "- alice (Have to eat here)")
	assert.Contains(t, out, "- bob (Want to eat here)")
	assert.Contains(t, out, "Unassigned: carol")
	assert.Contains(t, out, "--- Wednesday ---")
	assert.Contains(t, out, "(no tables)")
}

func TestFormatPreferenceSummary(t *testing.T) {
	diners := []models.Diner{
		{Email: "alice@corp.test", Preferences: map[string]models.Rating{
			"Nopa": models.RatingHaveTo,
			"Zuni": models.RatingCantEat,
		}},
		{Email: "bob@corp.test", Preferences: map[string]models.Rating{
			"Nopa": models.RatingWant,
		}},
	}

	out := FormatPreferenceSummary(samplePlan(), diners)

	assert.Contains(t, out, "Diner")
	assert.Contains(t, out, "Have to")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header line plus title plus one row per diner")
	assert.True(t, strings.HasPrefix(lines[2], "alice"), "diners sorted by name: %q", lines[2])
	assert.Contains(t, lines[2], "1/1", "alice's have-to venue was assigned")
}

func TestFormatSuggestions(t *testing.T) {
	out := FormatSuggestions([]models.Suggestion{
		{Restaurant: "Zuni", Day: "wednesday", Capacity: 6, Score: 3.5},
		{Restaurant: "Nopa", Day: "tuesday", Capacity: 4, Score: 1.2},
	})

	assert.Contains(t, out, "=== Next Reservation Suggestions ===")
	assert.Contains(t, out, "1. Zuni on Wednesday (party of 6, score 3.50)")
	assert.Contains(t, out, "2. Nopa on Tuesday (party of 4, score 1.20)")
}

func TestFormatSuggestions_Empty(t *testing.T) {
	out := FormatSuggestions(nil)
	assert.Contains(t, out, "All reservations complete")
}

func TestWriteAssignmentsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAssignmentsCSV(&buf, samplePlan()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per assignment")
	assert.Equal(t, []string{"day", "restaurant", "diner", "rating", "score"}, records[0])
	assert.Equal(t, "tuesday", records[1][0])
	assert.Equal(t, "Nopa", records[1][1])
	assert.Equal(t, "alice@corp.test", records[1][2])
	assert.Equal(t, "Have to eat here", records[1][3])
}
