// Package assign builds and solves the restaurant assignment model: one
// binary decision per (diner, restaurant, day), linear constraints for
// exclusions, per-day uniqueness and capacity, and a linearized diversity
// penalty that discourages repeated table pairings across days.
package assign

import (
	"math"

	"github.com/spboyer/dineplan/internal/milp"
	"github.com/spboyer/dineplan/internal/models"
	"github.com/spboyer/dineplan/internal/scoring"
)

// DefaultDiversityFraction is the auto-computed diversity weight as a
// fraction of the mean absolute normalized score. It keeps the penalty a
// tie-breaker: repetition never outweighs a preference gain larger than this
// share of a typical score. Tunable, not a law.
const DefaultDiversityFraction = 0.1

// Input is one immutable optimization snapshot.
type Input struct {
	Diners       []models.Diner
	Restaurants  []string
	Days         []string
	Reservations []models.Reservation

	MinGroupSize int
	MaxGroupSize int

	// OneShot makes every (restaurant, day) slot a candidate regardless of
	// reservation status, with an activation variable deciding whether the
	// slot is used at all.
	OneShot bool

	// DiversityWeight overrides the penalty weight. Nil means auto-compute
	// (DefaultDiversityFraction of the mean absolute score); a pointer to 0
	// disables the diversity mechanism entirely.
	DiversityWeight *float64

	// MaxNodes bounds the branch-and-bound search. Zero uses the solver
	// default.
	MaxNodes int
}

// slot is one eligible (restaurant, day) table with its group-size bounds.
type slot struct {
	restaurant string
	day        string
	dayIdx     int
	minSize    int
	maxSize    int
	confirmed  bool
}

// model holds the assembled variables and constraint rows for one run.
type model struct {
	in     Input
	scores scoring.Scores

	slots      []slot
	slotsByDay [][]int

	numVars int
	// yIdx maps slot index -> activation variable (one-shot slots without a
	// confirmed reservation). Absent entries have fixed capacity bounds.
	yIdx map[int]int

	pairs         [][2]int
	bothOffset    int
	overlapOffset int
	lambda        float64

	prob milp.Problem
}

func xIdx(e, s, nSlots int) int {
	return e*nSlots + s
}

// buildModel validates the input and assembles objective, bounds, and
// constraint rows. It performs no search.
func buildModel(in Input) (*model, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	m := &model{
		in:     in,
		scores: scoring.Normalize(in.Diners, in.Restaurants),
		yIdx:   map[int]int{},
	}

	if err := m.buildSlots(); err != nil {
		return nil, err
	}
	m.layoutVariables()
	m.buildObjectiveAndBounds()
	m.buildUniquenessRows()
	m.buildCapacityRows()
	m.buildDiversityRows()

	return m, nil
}

func validate(in Input) error {
	if len(in.Diners) == 0 {
		return modelErrorf("no diners")
	}
	if len(in.Days) == 0 {
		return modelErrorf("no days requested")
	}
	if len(in.Restaurants) == 0 {
		return modelErrorf("no restaurants")
	}
	if in.MinGroupSize < 0 {
		return modelErrorf("minimum group size %d is negative", in.MinGroupSize)
	}
	if in.MinGroupSize > in.MaxGroupSize {
		return modelErrorf("minimum group size %d exceeds maximum %d", in.MinGroupSize, in.MaxGroupSize)
	}
	if in.DiversityWeight != nil && *in.DiversityWeight < 0 {
		return modelErrorf("diversity weight %g is negative", *in.DiversityWeight)
	}
	for _, d := range in.Diners {
		if len(d.Preferences) == 0 {
			return modelErrorf("diner %s has no ratings", d.Email)
		}
	}
	known := map[string]bool{}
	for _, r := range in.Restaurants {
		known[r] = true
	}
	for _, res := range in.Reservations {
		if !known[res.Restaurant] {
			return modelErrorf("reservation references unknown restaurant %q", res.Restaurant)
		}
	}
	return nil
}

// buildSlots derives the eligible (restaurant, day) slots. Outside one-shot
// mode only confirmed reservations on requested days qualify; in one-shot
// mode every combination does, with confirmed reservations keeping their
// booked capacity.
func (m *model) buildSlots() error {
	in := m.in

	confirmed := map[[2]string]models.Reservation{}
	for _, res := range in.Reservations {
		if res.Status == models.StatusConfirmed {
			confirmed[[2]string{res.Restaurant, res.Day}] = res
		}
	}

	m.slotsByDay = make([][]int, len(in.Days))
	for dIdx, day := range in.Days {
		for _, restaurant := range in.Restaurants {
			res, isConfirmed := confirmed[[2]string{restaurant, day}]
			switch {
			case isConfirmed:
				if res.Capacity < in.MinGroupSize {
					return modelErrorf("reservation %s/%s capacity %d is below minimum group size %d",
						restaurant, day, res.Capacity, in.MinGroupSize)
				}
				m.addSlot(slot{
					restaurant: restaurant,
					day:        day,
					dayIdx:     dIdx,
					minSize:    in.MinGroupSize,
					maxSize:    res.Capacity,
					confirmed:  true,
				}, dIdx)
			case in.OneShot:
				m.addSlot(slot{
					restaurant: restaurant,
					day:        day,
					dayIdx:     dIdx,
					minSize:    in.MinGroupSize,
					maxSize:    in.MaxGroupSize,
				}, dIdx)
			}
		}
		if len(m.slotsByDay[dIdx]) == 0 {
			return modelErrorf("no eligible reservations for day %q", day)
		}
	}
	return nil
}

func (m *model) addSlot(s slot, dIdx int) {
	m.slots = append(m.slots, s)
	m.slotsByDay[dIdx] = append(m.slotsByDay[dIdx], len(m.slots)-1)
}

// layoutVariables assigns the flat variable index blocks: assignment vars,
// activation vars, then the diversity "both" and "overlap" vars.
func (m *model) layoutVariables() {
	nSlots := len(m.slots)
	m.numVars = len(m.in.Diners) * nSlots

	for sIdx, s := range m.slots {
		if !s.confirmed {
			m.yIdx[sIdx] = m.numVars
			m.numVars++
		}
	}

	m.lambda = m.diversityWeight()
	if m.diversityEnabled() {
		for e1 := range m.in.Diners {
			for e2 := e1 + 1; e2 < len(m.in.Diners); e2++ {
				m.pairs = append(m.pairs, [2]int{e1, e2})
			}
		}
		m.bothOffset = m.numVars
		m.numVars += len(m.pairs) * nSlots
		m.overlapOffset = m.numVars
		m.numVars += len(m.pairs)
	}
}

func (m *model) diversityWeight() float64 {
	if m.in.DiversityWeight != nil {
		return *m.in.DiversityWeight
	}
	return DefaultDiversityFraction * scoring.MeanAbs(m.scores)
}

// diversityEnabled reports whether diversity variables are worth building.
// A zero weight contributes nothing to the objective, so the variables are
// skipped rather than carried with zero coefficients.
func (m *model) diversityEnabled() bool {
	return m.lambda > 0 && len(m.in.Days) >= 2 && len(m.in.Diners) >= 2
}

func (m *model) bothIdx(pairIdx, sIdx int) int {
	return m.bothOffset + pairIdx*len(m.slots) + sIdx
}

func (m *model) buildObjectiveAndBounds() {
	c := make([]float64, m.numVars)
	upper := make([]float64, m.numVars)
	for i := range upper {
		upper[i] = 1
	}

	nSlots := len(m.slots)
	for e, diner := range m.in.Diners {
		perVenue := m.scores[diner.Email]
		for sIdx, s := range m.slots {
			v := xIdx(e, sIdx, nSlots)
			score := perVenue[s.restaurant]
			if math.IsInf(score, -1) {
				// Hard exclusion: force the variable to zero. The
				// objective coefficient stays 0 so the bound alone
				// carries the constraint.
				upper[v] = 0
				continue
			}
			c[v] = -score // minimization form
		}
	}

	for pairIdx := range m.pairs {
		c[m.overlapOffset+pairIdx] = m.lambda
	}

	m.prob.C = c
	m.prob.Upper = upper
}

func (m *model) addUbRow(row []float64, b float64) {
	m.prob.AUb = append(m.prob.AUb, row)
	m.prob.BUb = append(m.prob.BUb, b)
}

// buildUniquenessRows adds, per (diner, day), sum of that diner's slot
// variables <= 1. The sum is not forced to 1: a diner may stay unseated when
// capacity runs out, instead of making the whole model infeasible.
func (m *model) buildUniquenessRows() {
	nSlots := len(m.slots)
	for e := range m.in.Diners {
		for _, daySlots := range m.slotsByDay {
			row := make([]float64, m.numVars)
			for _, sIdx := range daySlots {
				row[xIdx(e, sIdx, nSlots)] = 1
			}
			m.addUbRow(row, 1)
		}
	}
}

// buildCapacityRows bounds each slot's headcount. Confirmed slots use fixed
// [min, max] bounds. Unconfirmed one-shot slots use the disjunctive form with
// an activation variable y: sum - max*y <= 0 and -sum + min*y <= 0, so the
// solver freely picks which slots to open.
func (m *model) buildCapacityRows() {
	nSlots := len(m.slots)
	for sIdx, s := range m.slots {
		sum := make([]float64, m.numVars)
		for e := range m.in.Diners {
			sum[xIdx(e, sIdx, nSlots)] = 1
		}

		if y, open := m.yIdx[sIdx]; open {
			rowUpper := append([]float64(nil), sum...)
			rowUpper[y] = -float64(s.maxSize)
			m.addUbRow(rowUpper, 0)

			rowLower := negate(sum)
			rowLower[y] = float64(s.minSize)
			m.addUbRow(rowLower, 0)
			continue
		}

		m.addUbRow(append([]float64(nil), sum...), float64(s.maxSize))
		if s.minSize > 0 {
			m.addUbRow(negate(sum), -float64(s.minSize))
		}
	}
}

func negate(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = -v
	}
	return out
}
