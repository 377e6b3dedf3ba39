package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	cases := map[string]Rating{
		"Can't eat here":         RatingCantEat,
		"Don't want to eat here": RatingDontWant,
		"Neutral":                RatingNeutral,
		"Want to eat here":       RatingWant,
		"Have to eat here":       RatingHaveTo,
	}
	for label, want := range cases {
		got, ok := ParseRating(label)
		assert.True(t, ok, "label %q", label)
		assert.Equal(t, want, got)
	}

	_, ok := ParseRating("Sounds great")
	assert.False(t, ok)
}

func TestRatingLabelRoundTrip(t *testing.T) {
	for r := RatingCantEat; r <= RatingHaveTo; r++ {
		got, ok := ParseRating(r.Label())
		require.True(t, ok)
		assert.Equal(t, r, got)
	}
}

func TestDinerName(t *testing.T) {
	assert.Equal(t, "alice", Diner{Email: "alice@corp.test"}.Name())
	assert.Equal(t, "bare", Diner{Email: "bare"}.Name())
}

func TestReservationStatusValid(t *testing.T) {
	assert.True(t, StatusConfirmed.Valid())
	assert.True(t, StatusUnavailable.Valid())
	assert.True(t, StatusPending.Valid())
	assert.False(t, ReservationStatus("maybe").Valid())
}

func TestPlanByDay(t *testing.T) {
	plan := &Plan{
		Assignments: []Assignment{
			{DinerEmail: "b@corp.test", Restaurant: "Nopa", Day: "tuesday"},
			{DinerEmail: "a@corp.test", Restaurant: "Nopa", Day: "tuesday"},
			{DinerEmail: "a@corp.test", Restaurant: "Zuni", Day: "wednesday"},
		},
	}

	byDay := plan.ByDay()
	require.Len(t, byDay, 2)
	seated := byDay["tuesday"]["Nopa"]
	require.Len(t, seated, 2)
	assert.Equal(t, "a@corp.test", seated[0].DinerEmail, "diners sorted within a table")
	assert.Equal(t, "b@corp.test", seated[1].DinerEmail)
}

func TestPlanSeated(t *testing.T) {
	plan := &Plan{
		Assignments: []Assignment{
			{DinerEmail: "a@corp.test", Restaurant: "Nopa", Day: "tuesday"},
		},
	}
	assert.True(t, plan.Seated("a@corp.test", "tuesday"))
	assert.False(t, plan.Seated("a@corp.test", "wednesday"))
	assert.False(t, plan.Seated("b@corp.test", "tuesday"))
}
