package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/dineplan/internal/models"
	"github.com/spboyer/dineplan/internal/scoring"
)

func rankerInput() Input {
	diners := []models.Diner{
		{Email: "a@corp.test", Preferences: map[string]models.Rating{"R1": models.RatingWant, "R2": models.RatingWant, "R3": models.RatingDontWant}},
		{Email: "b@corp.test", Preferences: map[string]models.Rating{"R1": models.RatingWant, "R2": models.RatingWant, "R3": models.RatingDontWant}},
		{Email: "c@corp.test", Preferences: map[string]models.Rating{"R1": models.RatingWant, "R2": models.RatingWant, "R3": models.RatingDontWant}},
		{Email: "d@corp.test", Preferences: map[string]models.Rating{"R1": models.RatingWant, "R2": models.RatingWant, "R3": models.RatingDontWant}},
	}
	return Input{
		Diners:       diners,
		Restaurants:  []string{"R1", "R2", "R3"},
		Days:         []string{"tuesday", "wednesday"},
		Scores:       scoring.Normalize(diners, []string{"R1", "R2", "R3"}),
		MinGroupSize: 2,
		MaxGroupSize: 8,
	}
}

func TestRank_OnlyDaysWithUnmetDemand(t *testing.T) {
	in := rankerInput()
	in.Reservations = []models.Reservation{
		{Restaurant: "R1", Day: "tuesday", Capacity: 4, Status: models.StatusConfirmed},
		{Restaurant: "R1", Day: "wednesday", Capacity: 2, Status: models.StatusConfirmed},
	}
	in.Plan = &models.Plan{
		Unassigned: map[string][]string{
			"wednesday": {"c@corp.test", "d@corp.test"},
		},
	}

	got := Rank(in)
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.Equal(t, "wednesday", s.Day, "fully seated days must produce no suggestions")
		assert.NotEqual(t, "R1", s.Restaurant, "already-confirmed venues are not candidates")
	}
}

func TestRank_PreferenceOrdersCandidates(t *testing.T) {
	in := rankerInput()
	in.Reservations = []models.Reservation{
		{Restaurant: "R1", Day: "wednesday", Capacity: 2, Status: models.StatusConfirmed},
	}
	in.Plan = &models.Plan{
		Unassigned: map[string][]string{
			"wednesday": {"c@corp.test", "d@corp.test"},
		},
	}

	got := Rank(in)
	require.Len(t, got, 2)
	// R2 (Want) outranks R3 (DontWant) for the unassigned diners.
	assert.Equal(t, "R2", got[0].Restaurant)
	assert.Equal(t, "R3", got[1].Restaurant)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestRank_SkipsUnavailable(t *testing.T) {
	in := rankerInput()
	in.Reservations = []models.Reservation{
		{Restaurant: "R1", Day: "wednesday", Capacity: 2, Status: models.StatusConfirmed},
		{Restaurant: "R2", Day: "wednesday", Status: models.StatusUnavailable},
	}
	in.Plan = &models.Plan{
		Unassigned: map[string][]string{
			"wednesday": {"c@corp.test", "d@corp.test"},
		},
	}

	got := Rank(in)
	require.Len(t, got, 1)
	assert.Equal(t, "R3", got[0].Restaurant)
}

func TestRank_SkipsVenuesTooFewCanEat(t *testing.T) {
	in := rankerInput()
	// Three of four diners cannot eat at R2.
	for _, email := range []string{"a@corp.test", "b@corp.test", "c@corp.test"} {
		for i := range in.Diners {
			if in.Diners[i].Email == email {
				in.Diners[i].Preferences["R2"] = models.RatingCantEat
			}
		}
	}
	in.Scores = scoring.Normalize(in.Diners, in.Restaurants)
	in.Reservations = []models.Reservation{
		{Restaurant: "R1", Day: "wednesday", Capacity: 2, Status: models.StatusConfirmed},
	}
	in.Plan = &models.Plan{
		Unassigned: map[string][]string{"wednesday": {"c@corp.test", "d@corp.test"}},
	}

	got := Rank(in)
	for _, s := range got {
		assert.NotEqual(t, "R2", s.Restaurant, "venue below the can-eat threshold must be skipped")
	}
}

func TestRank_NilPlanTreatsEveryoneUnassigned(t *testing.T) {
	in := rankerInput()

	got := Rank(in)
	require.NotEmpty(t, got)

	days := map[string]bool{}
	for _, s := range got {
		days[s.Day] = true
		assert.Equal(t, len(in.Diners), s.Shortfall)
	}
	assert.Len(t, days, 2, "with no plan every requested day has unmet demand")
}

func TestRank_FullySeatedPlanYieldsNothing(t *testing.T) {
	in := rankerInput()
	in.Plan = &models.Plan{Unassigned: map[string][]string{}}

	assert.Empty(t, Rank(in))
}

func TestRank_CapacityClampedToNeed(t *testing.T) {
	in := rankerInput()
	in.MaxGroupSize = 10
	in.Plan = nil // everyone unassigned, shortfall = 4

	got := Rank(in)
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.Equal(t, 4, s.Capacity, "party size should not exceed the shortfall")
	}
}

func TestRank_DeterministicTieBreak(t *testing.T) {
	diners := []models.Diner{
		{Email: "a@corp.test", Preferences: map[string]models.Rating{"A": models.RatingNeutral, "B": models.RatingNeutral}},
		{Email: "b@corp.test", Preferences: map[string]models.Rating{"A": models.RatingNeutral, "B": models.RatingNeutral}},
	}
	in := Input{
		Diners:       diners,
		Restaurants:  []string{"B", "A"},
		Days:         []string{"tuesday"},
		Scores:       scoring.Normalize(diners, []string{"B", "A"}),
		MinGroupSize: 1,
		MaxGroupSize: 8,
	}

	got := Rank(in)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Restaurant, "equal scores fall back to name order")
	assert.Equal(t, "B", got[1].Restaurant)
}
