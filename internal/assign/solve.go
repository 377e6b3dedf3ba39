package assign

import (
	"log/slog"
	"sort"

	"github.com/spboyer/dineplan/internal/milp"
	"github.com/spboyer/dineplan/internal/models"
)

// Solve builds the assignment model for one input snapshot, runs the solver,
// and extracts the plan. The whole run is a pure function of the input: no
// caller-visible state is touched, so a failed run has nothing to unwind.
//
// Errors: *ModelError for malformed input, ErrInfeasible when the solver
// proves no assignment exists, *SolverError for unproven termination.
func Solve(in Input) (*models.Plan, error) {
	m, err := buildModel(in)
	if err != nil {
		return nil, err
	}

	slog.Debug("model assembled",
		"diners", len(in.Diners),
		"slots", len(m.slots),
		"variables", m.numVars,
		"rows", len(m.prob.AUb),
		"diversityWeight", m.lambda)

	res := milp.Solve(m.prob, milp.Options{MaxNodes: in.MaxNodes})
	slog.Debug("solver finished", "status", res.Status.String(), "nodes", res.Nodes)

	switch res.Status {
	case milp.StatusOptimal:
		return m.extractPlan(res), nil
	case milp.StatusInfeasible:
		return nil, ErrInfeasible
	default:
		return nil, &SolverError{Status: res.Status, Nodes: res.Nodes}
	}
}

// extractPlan reads the binary solution back into domain terms.
func (m *model) extractPlan(res milp.Result) *models.Plan {
	plan := &models.Plan{
		Unassigned:      map[string][]string{},
		DiversityWeight: m.lambda,
	}

	nSlots := len(m.slots)
	seated := map[[2]string]bool{} // (email, day)
	for e, diner := range m.in.Diners {
		for sIdx, s := range m.slots {
			if res.X[xIdx(e, sIdx, nSlots)] < 0.5 {
				continue
			}
			rating, ok := diner.Preferences[s.restaurant]
			if !ok {
				rating = models.RatingNeutral
			}
			score := m.scores[diner.Email][s.restaurant]
			plan.Assignments = append(plan.Assignments, models.Assignment{
				DinerEmail: diner.Email,
				Restaurant: s.restaurant,
				Day:        s.day,
				Rating:     rating,
				Score:      score,
			})
			plan.TotalSatisfaction += score
			seated[[2]string{diner.Email, s.day}] = true
		}
	}

	// The solver minimized -satisfaction + lambda*overlaps.
	plan.ObjectiveValue = -res.Objective

	for _, day := range m.in.Days {
		for _, diner := range m.in.Diners {
			if !seated[[2]string{diner.Email, day}] {
				plan.Unassigned[day] = append(plan.Unassigned[day], diner.Email)
			}
		}
		sort.Strings(plan.Unassigned[day])
	}

	plan.RepeatedPairings = countRepeatedPairings(plan, m.in.Days)
	return plan
}

// countRepeatedPairings recounts pairs from the actual assignments rather
// than trusting the overlap variables, which only lower-bound the count when
// lambda is zero.
func countRepeatedPairings(plan *models.Plan, days []string) int {
	daysTogether := map[[2]string]int{}
	byDay := plan.ByDay()
	for _, day := range days {
		for _, seated := range byDay[day] {
			for i := range seated {
				for j := i + 1; j < len(seated); j++ {
					pair := [2]string{seated[i].DinerEmail, seated[j].DinerEmail}
					daysTogether[pair]++
				}
			}
		}
	}

	repeated := 0
	for _, n := range daysTogether {
		if n >= 2 {
			repeated++
		}
	}
	return repeated
}
