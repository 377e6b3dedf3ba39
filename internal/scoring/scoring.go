// Package scoring converts raw preference ratings into per-diner normalized
// scores that are comparable across diners with different rating habits.
package scoring

import (
	"math"

	"github.com/spboyer/dineplan/internal/models"
)

// Excluded marks a (diner, restaurant) pair that must never be assigned.
// It is a sentinel, not a numeric score: the assignment model enforces it as
// a hard bound, never as a weighted penalty.
var Excluded = math.Inf(-1)

// Scores maps diner email -> restaurant -> normalized score.
type Scores map[string]map[string]float64

// Normalize z-scores each diner's ratings over the given restaurants.
//
// Per diner, the mean and sample standard deviation are computed over rated,
// non-excluded restaurants only. A diner with fewer than two rated values, or
// with identical values throughout, gets an all-zero vector (the divisor
// falls back to 1 rather than dividing by zero). Unrated restaurants score a
// neutral 0 and do not contribute to the statistics. RatingCantEat maps to
// Excluded. A diner whose every rating is RatingCantEat gets Excluded for all
// rated restaurants and can never be seated at them.
func Normalize(diners []models.Diner, restaurants []string) Scores {
	scores := make(Scores, len(diners))

	for _, diner := range diners {
		var rated []float64
		for _, rating := range diner.Preferences {
			if rating != models.RatingCantEat {
				rated = append(rated, rating.Ordinal())
			}
		}

		mean, stdev := meanStdev(rated)
		if stdev == 0 {
			stdev = 1.0
		}

		perVenue := make(map[string]float64, len(restaurants))
		for _, restaurant := range restaurants {
			rating, ok := diner.Preferences[restaurant]
			switch {
			case !ok:
				perVenue[restaurant] = 0.0
			case rating == models.RatingCantEat:
				perVenue[restaurant] = Excluded
			default:
				perVenue[restaurant] = (rating.Ordinal() - mean) / stdev
			}
		}
		scores[diner.Email] = perVenue
	}

	return scores
}

// Aggregate sums finite normalized scores per restaurant across all diners.
func Aggregate(scores Scores, restaurants []string) map[string]float64 {
	totals := make(map[string]float64, len(restaurants))
	for _, r := range restaurants {
		totals[r] = 0.0
	}
	for _, perVenue := range scores {
		for r, s := range perVenue {
			if !math.IsInf(s, -1) {
				totals[r] += s
			}
		}
	}
	return totals
}

// MeanAbs returns the mean absolute value over all finite score entries.
// Returns 1.0 when no finite entries exist, so callers deriving weights from
// it never multiply by zero for degenerate inputs.
func MeanAbs(scores Scores) float64 {
	sum := 0.0
	count := 0
	for _, perVenue := range scores {
		for _, s := range perVenue {
			if !math.IsInf(s, -1) {
				sum += math.Abs(s)
				count++
			}
		}
	}
	if count == 0 {
		return 1.0
	}
	return sum / float64(count)
}

// CanEatCount returns how many diners do not hard-exclude the restaurant.
// Unrated counts as able to eat.
func CanEatCount(diners []models.Diner, restaurant string) int {
	count := 0
	for _, d := range diners {
		rating, ok := d.Preferences[restaurant]
		if !ok || rating != models.RatingCantEat {
			count++
		}
	}
	return count
}

// meanStdev returns the mean and sample standard deviation of values.
// Stdev is 0 for fewer than two values.
func meanStdev(values []float64) (float64, float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	if n < 2 {
		return mean, 0
	}
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(n-1))
}
