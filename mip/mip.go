package mip

import (
	"math/big"
	"sort"

	"github.com/polylat/polylat/coefficient"
)

// Op is a constraint relation.
type Op int

const (
	LessOrEqual Op = iota
	GreaterOrEqual
	Equal
)

// Status is the outcome of solving a Problem.
type Status int

const (
	Unfeasible Status = iota
	Satisfiable
)

// maxNodes bounds branch-and-bound recursion so Solve always terminates.
// Problems built by contains_integer_point are small (one variable per
// space dimension, a handful of constraints); this budget is generous
// relative to that scale.
const maxNodes = 20000

const maxSimplexIterations = 10000

// constraintRow is one row of a Problem: sum(coeffs[i]*x_i) op rhs.
type constraintRow struct {
	coeffs []coefficient.Coefficient
	op     Op
	rhs    coefficient.Coefficient
}

// Problem is a linear system over numVars free (unrestricted sign)
// rational variables, a subset of which are declared integer-constrained
// (spec.md §4.6's MIP_Problem). Solve reports whether an assignment
// exists satisfying every constraint, with integer variables taking
// integer values.
type Problem struct {
	numVars int
	rows    []constraintRow
	intVars map[int]bool
}

// NewProblem returns an empty problem over numVars variables.
func NewProblem(numVars int) *Problem {
	return &Problem{numVars: numVars, intVars: make(map[int]bool)}
}

// AddConstraint appends sum(coeffs[i]*x_i) op rhs. coeffs must have length
// numVars.
func (p *Problem) AddConstraint(coeffs []coefficient.Coefficient, op Op, rhs coefficient.Coefficient) error {
	if len(coeffs) != p.numVars {
		return ErrDimensionMismatch
	}
	cp := make([]coefficient.Coefficient, len(coeffs))
	copy(cp, coeffs)
	p.rows = append(p.rows, constraintRow{coeffs: cp, op: op, rhs: rhs})
	return nil
}

// SetIntegerVariable declares variable i integer-constrained.
func (p *Problem) SetIntegerVariable(i int) { p.intVars[i] = true }

// Clone returns an independent deep copy of p.
func (p *Problem) Clone() *Problem {
	cp := &Problem{numVars: p.numVars, intVars: make(map[int]bool, len(p.intVars))}
	for i := range p.intVars {
		cp.intVars[i] = true
	}
	cp.rows = make([]constraintRow, len(p.rows))
	for i, r := range p.rows {
		coeffs := make([]coefficient.Coefficient, len(r.coeffs))
		copy(coeffs, r.coeffs)
		cp.rows[i] = constraintRow{coeffs: coeffs, op: r.op, rhs: r.rhs}
	}
	return cp
}

// addBound appends the single-variable constraint x_idx op val.
func (p *Problem) addBound(idx int, op Op, val *big.Rat) {
	coeffs := make([]coefficient.Coefficient, p.numVars)
	coeffs[idx] = coefficient.One()
	// val is always an integer at call sites (a floor or floor+1), so its
	// denominator is 1 and Num() is the exact value.
	p.rows = append(p.rows, constraintRow{coeffs: coeffs, op: op, rhs: coefficient.FromBigInt(val.Num())})
}

// Solve reports whether p has a feasible assignment, branching on
// fractional integer-declared variables until one is found or the search
// space is exhausted.
func (p *Problem) Solve() (Status, error) {
	nodes := maxNodes
	return p.solve(&nodes)
}

func (p *Problem) solve(nodes *int) (Status, error) {
	if *nodes <= 0 {
		return Unfeasible, ErrNodeLimitExceeded
	}
	*nodes--

	feasible, solution, err := p.relax()
	if err != nil {
		return Unfeasible, err
	}
	if !feasible {
		return Unfeasible, nil
	}

	idx, floorVal, ok := firstFractional(p, solution)
	if !ok {
		return Satisfiable, nil
	}

	left := p.Clone()
	left.addBound(idx, LessOrEqual, floorVal)
	if st, err := left.solve(nodes); err != nil {
		return Unfeasible, err
	} else if st == Satisfiable {
		return Satisfiable, nil
	}

	ceilVal := new(big.Rat).Add(floorVal, big.NewRat(1, 1))
	right := p.Clone()
	right.addBound(idx, GreaterOrEqual, ceilVal)
	return right.solve(nodes)
}

// firstFractional returns the lowest-indexed integer-declared variable
// whose solution value is non-integral, and its floor, in sorted index
// order for determinism.
func firstFractional(p *Problem, solution []*big.Rat) (int, *big.Rat, bool) {
	idxs := make([]int, 0, len(p.intVars))
	for i := range p.intVars {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	for _, i := range idxs {
		if solution[i].IsInt() {
			continue
		}
		return i, ratFloor(solution[i]), true
	}
	return 0, nil, false
}

func ratFloor(r *big.Rat) *big.Rat {
	num := r.Num()
	den := r.Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m)
	return new(big.Rat).SetInt(q)
}

// relax runs the phase-1 simplex over p's constraints, ignoring
// integrality, and reports feasibility plus a witness assignment (x_i for
// i in [0,numVars)) when feasible.
func (p *Problem) relax() (bool, []*big.Rat, error) {
	n := p.numVars
	m := len(p.rows)
	if m == 0 {
		sol := make([]*big.Rat, n)
		for i := range sol {
			sol[i] = big.NewRat(0, 1)
		}
		return true, sol, nil
	}

	splitCols := 2 * n
	totalCols := splitCols + m + m // + slack + artificial

	tableau := make([][]*big.Rat, m+1)
	for i := range tableau {
		tableau[i] = make([]*big.Rat, totalCols+1)
		for j := range tableau[i] {
			tableau[i][j] = big.NewRat(0, 1)
		}
	}
	basis := make([]int, m)

	for i, r := range p.rows {
		op := r.op
		rhs := new(big.Rat).SetInt(r.rhs.BigInt())
		sign := 1
		if rhs.Sign() < 0 {
			sign = -1
			rhs.Neg(rhs)
			switch op {
			case LessOrEqual:
				op = GreaterOrEqual
			case GreaterOrEqual:
				op = LessOrEqual
			}
		}
		for j := 0; j < n; j++ {
			c := new(big.Rat).SetInt(r.coeffs[j].BigInt())
			if sign < 0 {
				c.Neg(c)
			}
			tableau[i][j] = new(big.Rat).Set(c)
			tableau[i][n+j] = new(big.Rat).Neg(c)
		}
		slackCol := splitCols + i
		switch op {
		case LessOrEqual:
			tableau[i][slackCol] = big.NewRat(1, 1)
		case GreaterOrEqual:
			tableau[i][slackCol] = big.NewRat(-1, 1)
		case Equal:
			tableau[i][slackCol] = big.NewRat(0, 1)
		}
		artCol := splitCols + m + i
		tableau[i][artCol] = big.NewRat(1, 1)
		tableau[i][totalCols] = rhs
		basis[i] = artCol
	}

	// Phase-1 cost row: minimize sum of artificials. Every row's basic
	// variable starts as its artificial (cost 1), so the reduced cost of
	// column j is 0 (or 1, for an artificial column) minus the column sum.
	for j := 0; j <= totalCols; j++ {
		sum := big.NewRat(0, 1)
		for i := 0; i < m; i++ {
			sum.Add(sum, tableau[i][j])
		}
		cj := big.NewRat(0, 1)
		if j >= splitCols+m && j < totalCols {
			cj = big.NewRat(1, 1)
		}
		tableau[m][j] = new(big.Rat).Sub(cj, sum)
	}

	for iter := 0; iter < maxSimplexIterations; iter++ {
		entering := -1
		for j := 0; j < totalCols; j++ {
			if tableau[m][j].Sign() < 0 {
				entering = j
				break
			}
		}
		if entering == -1 {
			break
		}
		leaving := -1
		var bestRatio *big.Rat
		for i := 0; i < m; i++ {
			a := tableau[i][entering]
			if a.Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(tableau[i][totalCols], a)
			if leaving == -1 || ratio.Cmp(bestRatio) < 0 || (ratio.Cmp(bestRatio) == 0 && basis[i] < basis[leaving]) {
				leaving = i
				bestRatio = ratio
			}
		}
		if leaving == -1 {
			return false, nil, errUnboundedPhase1
		}
		pivot(tableau, leaving, entering, m, totalCols)
		basis[leaving] = entering
	}

	objective := new(big.Rat).Neg(tableau[m][totalCols])
	if objective.Sign() != 0 {
		return false, nil, nil
	}

	values := make([]*big.Rat, totalCols)
	for j := range values {
		values[j] = big.NewRat(0, 1)
	}
	for i := 0; i < m; i++ {
		values[basis[i]] = new(big.Rat).Set(tableau[i][totalCols])
	}
	solution := make([]*big.Rat, n)
	for j := 0; j < n; j++ {
		solution[j] = new(big.Rat).Sub(values[j], values[n+j])
	}
	return true, solution, nil
}

// pivot performs a Gauss-Jordan elimination step around (pr,pc).
func pivot(t [][]*big.Rat, pr, pc, m, totalCols int) {
	piv := t[pr][pc]
	for j := 0; j <= totalCols; j++ {
		t[pr][j] = new(big.Rat).Quo(t[pr][j], piv)
	}
	for i := 0; i <= m; i++ {
		if i == pr {
			continue
		}
		factor := t[i][pc]
		if factor.Sign() == 0 {
			continue
		}
		for j := 0; j <= totalCols; j++ {
			t[i][j] = new(big.Rat).Sub(t[i][j], new(big.Rat).Mul(factor, t[pr][j]))
		}
	}
}
