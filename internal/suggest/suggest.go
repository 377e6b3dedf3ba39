// Package suggest ranks candidate reservations to pursue next when the
// solved plan could not seat everyone. It is a pure heuristic over the
// normalized scores; it never re-runs the solver.
package suggest

import (
	"math"
	"sort"

	"github.com/spboyer/dineplan/internal/models"
	"github.com/spboyer/dineplan/internal/scoring"
)

// Input carries everything the ranker needs from one run.
type Input struct {
	Diners       []models.Diner
	Restaurants  []string
	Days         []string
	Reservations []models.Reservation
	Scores       scoring.Scores

	// Plan is the solved plan; nil means no solve happened (for example no
	// reservations existed yet) and every diner counts as unassigned.
	Plan *models.Plan

	MinGroupSize int
	MaxGroupSize int
}

// Rank scores candidate (restaurant, day) reservations for days with unmet
// demand, highest first. Candidates already confirmed for a day, or marked
// unavailable, are skipped, as are restaurants too few diners can eat at.
//
// A candidate's score is the unassigned diners' summed preference for it
// plus the day's capacity shortfall, so the neediest days rank first. Ties
// break by larger shortfall, then restaurant name.
func Rank(in Input) []models.Suggestion {
	confirmed := map[[2]string]int{}
	unavailable := map[[2]string]bool{}
	for _, res := range in.Reservations {
		key := [2]string{res.Restaurant, res.Day}
		switch res.Status {
		case models.StatusConfirmed:
			confirmed[key] = res.Capacity
		case models.StatusUnavailable:
			unavailable[key] = true
		}
	}

	canEat := map[string]int{}
	for _, r := range in.Restaurants {
		canEat[r] = scoring.CanEatCount(in.Diners, r)
	}

	var out []models.Suggestion
	for _, day := range in.Days {
		unassigned := unassignedOn(in, day)
		if len(unassigned) == 0 {
			continue
		}

		shortfall := len(in.Diners)
		for key, capacity := range confirmed {
			if key[1] == day {
				shortfall -= capacity
			}
		}
		if shortfall < 0 {
			shortfall = 0
		}

		for _, restaurant := range in.Restaurants {
			key := [2]string{restaurant, day}
			if _, booked := confirmed[key]; booked || unavailable[key] {
				continue
			}
			if canEat[restaurant] < in.MinGroupSize {
				continue
			}

			capacity := suggestedCapacity(in, shortfall, canEat[restaurant])
			if capacity < in.MinGroupSize {
				continue
			}

			prefSum := 0.0
			for _, email := range unassigned {
				if s := in.Scores[email][restaurant]; !math.IsInf(s, -1) {
					prefSum += s
				}
			}

			out = append(out, models.Suggestion{
				Restaurant: restaurant,
				Day:        day,
				Capacity:   capacity,
				Score:      prefSum + float64(shortfall),
				Shortfall:  shortfall,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Shortfall != out[j].Shortfall {
			return out[i].Shortfall > out[j].Shortfall
		}
		return out[i].Restaurant < out[j].Restaurant
	})
	return out
}

func unassignedOn(in Input, day string) []string {
	if in.Plan == nil {
		emails := make([]string, 0, len(in.Diners))
		for _, d := range in.Diners {
			emails = append(emails, d.Email)
		}
		return emails
	}
	return in.Plan.Unassigned[day]
}

func suggestedCapacity(in Input, shortfall, canEat int) int {
	capacity := in.MaxGroupSize
	if shortfall < capacity {
		capacity = shortfall
	}
	if canEat < capacity {
		capacity = canEat
	}
	return capacity
}
