// Package models defines the domain types shared across dineplan packages:
// diners, ratings, reservations, and the solved plan.
package models

import (
	"sort"
	"strings"
)

// Rating is one of the five ordered preference levels a diner can give a
// restaurant. RatingCantEat is a hard constraint, not a preference signal.
type Rating int

const (
	RatingCantEat Rating = iota
	RatingDontWant
	RatingNeutral
	RatingWant
	RatingHaveTo
)

// ratingLabels are the survey answer strings, in Rating order.
var ratingLabels = []string{
	"Can't eat here",
	"Don't want to eat here",
	"Neutral",
	"Want to eat here",
	"Have to eat here",
}

// Label returns the survey answer string for the rating.
func (r Rating) Label() string {
	if r < RatingCantEat || r > RatingHaveTo {
		return "Neutral"
	}
	return ratingLabels[r]
}

// Ordinal returns the numeric scale value used for normalization.
// RatingCantEat has no ordinal value; callers must treat it as an exclusion.
func (r Rating) Ordinal() float64 {
	return float64(r)
}

// ParseRating maps a survey answer string to a Rating. Unknown or empty
// answers report ok=false; callers typically fall back to RatingNeutral.
func ParseRating(label string) (Rating, bool) {
	for i, l := range ratingLabels {
		if l == label {
			return Rating(i), true
		}
	}
	return RatingNeutral, false
}

// Diner is a person with restaurant preferences. Restaurants missing from
// Preferences are unrated and score as neutral.
type Diner struct {
	Email       string
	Preferences map[string]Rating
}

// Name returns the local part of the diner's email address.
func (d Diner) Name() string {
	if i := strings.IndexByte(d.Email, '@'); i >= 0 {
		return d.Email[:i]
	}
	return d.Email
}

// ReservationStatus tracks where a reservation stands with the restaurant.
type ReservationStatus string

const (
	StatusConfirmed   ReservationStatus = "confirmed"
	StatusUnavailable ReservationStatus = "unavailable"
	StatusPending     ReservationStatus = "pending"
)

// Valid reports whether s is one of the known statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusConfirmed, StatusUnavailable, StatusPending:
		return true
	}
	return false
}

// Reservation is a restaurant booking (or attempted booking) for one day.
type Reservation struct {
	Restaurant string            `yaml:"restaurant"`
	Day        string            `yaml:"day"`
	Capacity   int               `yaml:"capacity"`
	Status     ReservationStatus `yaml:"status"`
}

// Assignment seats one diner at one restaurant on one day.
type Assignment struct {
	DinerEmail string
	Restaurant string
	Day        string
	Rating     Rating
	Score      float64
}

// Plan is the solved outcome of one optimization run.
type Plan struct {
	Assignments []Assignment

	// Unassigned maps day -> emails of diners the plan could not seat,
	// sorted for deterministic output.
	Unassigned map[string][]string

	// TotalSatisfaction is the sum of normalized preference scores over
	// all assignments; ObjectiveValue subtracts the diversity penalty.
	TotalSatisfaction float64
	ObjectiveValue    float64

	// RepeatedPairings counts diner pairs sharing a table on two or more
	// days, recomputed from the actual assignments.
	RepeatedPairings int

	// DiversityWeight is the penalty weight the run used (possibly
	// auto-computed).
	DiversityWeight float64
}

// ByDay groups assignments per day, then per restaurant, with diners sorted
// by email within each table.
func (p *Plan) ByDay() map[string]map[string][]Assignment {
	out := map[string]map[string][]Assignment{}
	for _, a := range p.Assignments {
		if out[a.Day] == nil {
			out[a.Day] = map[string][]Assignment{}
		}
		out[a.Day][a.Restaurant] = append(out[a.Day][a.Restaurant], a)
	}
	for _, tables := range out {
		for _, seated := range tables {
			sort.Slice(seated, func(i, j int) bool {
				return seated[i].DinerEmail < seated[j].DinerEmail
			})
		}
	}
	return out
}

// Seated reports whether the diner is assigned anywhere on the given day.
func (p *Plan) Seated(email, day string) bool {
	for _, a := range p.Assignments {
		if a.DinerEmail == email && a.Day == day {
			return true
		}
	}
	return false
}

// Suggestion recommends an additional reservation to pursue when confirmed
// capacity could not seat everyone.
type Suggestion struct {
	Restaurant string
	Day        string
	Capacity   int
	Score      float64
	Shortfall  int
}
