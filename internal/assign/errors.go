package assign

import (
	"errors"
	"fmt"

	"github.com/spboyer/dineplan/internal/milp"
)

// ModelError reports malformed input detected before the solver runs:
// inconsistent group-size bounds, a day with no eligible reservations, a
// diner with no ratings. It is fatal to the run and never retried.
type ModelError struct {
	Reason string
}

func (e *ModelError) Error() string {
	return "model: " + e.Reason
}

func modelErrorf(format string, args ...any) *ModelError {
	return &ModelError{Reason: fmt.Sprintf(format, args...)}
}

// ErrInfeasible means the solver proved that no assignment satisfies the
// hard constraints. It is an expected outcome, distinct from solver failure;
// callers decide whether to relax constraints and build a new model.
var ErrInfeasible = errors.New("no feasible assignment satisfies the hard constraints")

// SolverError reports non-optimal termination that is not proven
// infeasibility, such as an exhausted node budget. Callers must not mistake
// "unproven" for "impossible".
type SolverError struct {
	Status milp.Status
	Nodes  int
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver: terminated without proven optimum (%s after %d nodes)", e.Status, e.Nodes)
}
