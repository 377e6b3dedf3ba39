// Package milp solves small pure-binary integer linear programs.
//
// The solver runs depth-first branch and bound with best-bound pruning; each
// node's LP relaxation is handed to github.com/willauld/lpsimplex, a Go port
// of the classic simplex linprog routine. All variables are binary; per-node
// variable fixings are expressed as extra inequality rows because lpsimplex
// defaults every variable to [0, +inf).
package milp

import (
	"math"

	"github.com/willauld/lpsimplex"
)

// Status describes how a solve terminated.
type Status int

const (
	// StatusOptimal means an integral solution was found and proven optimal.
	StatusOptimal Status = iota
	// StatusInfeasible means no assignment of the variables satisfies the
	// constraints.
	StatusInfeasible
	// StatusNodeLimit means the node budget ran out before optimality was
	// proven. Any incumbent is withheld rather than passed off as optimal.
	StatusNodeLimit
	// StatusFailed means the underlying simplex did not converge.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusNodeLimit:
		return "node-limit"
	default:
		return "failed"
	}
}

// Problem is a minimization over binary variables x:
//
//	min  C·x
//	s.t. AUb·x <= BUb
//	     AEq·x == BEq
//	     0 <= x[i] <= Upper[i], x integral
//
// Upper entries must be 0 or 1; an Upper of 0 fixes the variable.
type Problem struct {
	C     []float64
	AUb   [][]float64
	BUb   []float64
	AEq   [][]float64
	BEq   []float64
	Upper []float64
}

// Options tune the search.
type Options struct {
	// MaxNodes bounds the number of branch-and-bound nodes explored.
	// Zero means DefaultMaxNodes.
	MaxNodes int
	// Tol is the integrality/pruning tolerance. Zero means DefaultTol.
	Tol float64
}

const (
	DefaultMaxNodes = 20000
	DefaultTol      = 1e-6

	simplexMaxIter = 4000
	simplexTol     = 1.0e-12
)

// Result is the outcome of a solve. X and Objective are only meaningful when
// Status is StatusOptimal.
type Result struct {
	X         []float64
	Objective float64
	Status    Status
	Nodes     int
}

type node struct {
	lower []float64
	upper []float64
}

// Solve runs branch and bound on the problem.
func Solve(p Problem, opts Options) Result {
	n := len(p.C)
	if n == 0 || len(p.Upper) != n {
		return Result{Status: StatusFailed}
	}

	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	tol := opts.Tol
	if tol <= 0 {
		tol = DefaultTol
	}

	root := node{
		lower: make([]float64, n),
		upper: append([]float64(nil), p.Upper...),
	}

	best := Result{Status: StatusInfeasible, Objective: math.Inf(1)}
	stack := []node{root}
	nodes := 0

	for len(stack) > 0 {
		if nodes >= maxNodes {
			return Result{Status: StatusNodeLimit, Nodes: nodes}
		}
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		x, obj, state := solveRelaxation(p, nd)
		switch state {
		case relaxInfeasible:
			continue
		case relaxFailed:
			return Result{Status: StatusFailed, Nodes: nodes}
		}

		// Bound: the relaxation objective can only get worse deeper down.
		if obj >= best.Objective-tol {
			continue
		}

		branch := mostFractional(x, tol)
		if branch < 0 {
			best = Result{
				X:         roundBinary(x),
				Objective: obj,
				Status:    StatusOptimal,
			}
			continue
		}

		// Push the x=0 child first so the x=1 child is explored next;
		// seating a diner usually improves the objective.
		zero := node{
			lower: append([]float64(nil), nd.lower...),
			upper: append([]float64(nil), nd.upper...),
		}
		zero.upper[branch] = 0
		one := node{
			lower: append([]float64(nil), nd.lower...),
			upper: append([]float64(nil), nd.upper...),
		}
		one.lower[branch] = 1
		stack = append(stack, zero, one)
	}

	best.Nodes = nodes
	return best
}

type relaxState int

const (
	relaxOK relaxState = iota
	relaxInfeasible
	relaxFailed
)

// solveRelaxation solves the node's LP relaxation. Variable bounds become
// inequality rows: x[i] <= upper[i] always, and -x[i] <= -lower[i] for fixed
// ones.
func solveRelaxation(p Problem, nd node) ([]float64, float64, relaxState) {
	n := len(p.C)
	rows := len(p.AUb)
	aub := make([][]float64, 0, rows+2*n)
	bub := make([]float64, 0, rows+2*n)
	for i, row := range p.AUb {
		aub = append(aub, row)
		bub = append(bub, p.BUb[i])
	}
	for i := 0; i < n; i++ {
		row := make([]float64, n)
		row[i] = 1
		aub = append(aub, row)
		bub = append(bub, nd.upper[i])
		if nd.lower[i] > 0 {
			neg := make([]float64, n)
			neg[i] = -1
			aub = append(aub, neg)
			bub = append(bub, -nd.lower[i])
		}
	}

	res := lpsimplex.LPSimplex(p.C, aub, bub, p.AEq, p.BEq, nil,
		lpsimplex.Callbackfunc(nil), false, simplexMaxIter, simplexTol, false)

	switch {
	case res.Success && res.Status == 0:
		return res.X, res.Fun, relaxOK
	case res.Status == 2:
		return nil, 0, relaxInfeasible
	default:
		return nil, 0, relaxFailed
	}
}

// mostFractional returns the index of the variable farthest from an integer
// value, or -1 when the solution is integral within tol.
func mostFractional(x []float64, tol float64) int {
	best := -1
	bestDist := tol
	for i, v := range x {
		dist := math.Abs(v - math.Round(v))
		if dist > bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

func roundBinary(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		if v > 0.5 {
			out[i] = 1
		}
	}
	return out
}
