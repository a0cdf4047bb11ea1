package polyhedron

import "github.com/polylat/polylat/variable"

// FoldSpaceDimensions computes ⋃_{w ∈ S ∪ {v}} P[v/w], where P[v/w] renames
// w to v and projects away every other variable of S (spec.md §4.4.5). v
// must not be a member of s, and max(s ∪ {v}) must be below p's space
// dimension.
func (p *Polyhedron) FoldSpaceDimensions(s []variable.Variable, v variable.Variable) error {
	for _, w := range s {
		if w == v {
			return ErrInvalidArg
		}
		if err := checkDim(p, w.SpaceDimension()); err != nil {
			return err
		}
	}
	if err := checkDim(p, v.SpaceDimension()); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if p.IsEmpty() {
		return p.RemoveSpaceDimensions(s)
	}

	result, err := p.foldedCopy(s, v)
	if err != nil {
		return err
	}
	for _, w := range s {
		piece, err := p.renamedCopy(w, v, s)
		if err != nil {
			return err
		}
		if err := result.PolyHullAssign(piece); err != nil {
			return err
		}
	}
	*p = *result
	return nil
}

// foldedCopy is the w==v term of the fold union: p with s projected away,
// v left untouched.
func (p *Polyhedron) foldedCopy(s []variable.Variable, v variable.Variable) (*Polyhedron, error) {
	_ = v
	cp := p.Clone()
	if err := cp.RemoveSpaceDimensions(s); err != nil {
		return nil, err
	}
	return cp, nil
}

// renamedCopy is the w!=v term: swap columns w and v (renaming w into v's
// slot and v's old data into w's, which is about to be discarded), then
// project away every dimension of s -- w included, since w now carries
// v's stale data and is no longer needed, exactly like the rest of s.
func (p *Polyhedron) renamedCopy(w, v variable.Variable, s []variable.Variable) (*Polyhedron, error) {
	cp := p.Clone()
	cp.Minimize()
	cp.conSys.Linsys().SwapColumns(w.ID()+1, v.ID()+1)
	cp.genSys.Linsys().SwapColumns(w.ID()+1, v.ID()+1)
	if err := cp.RemoveSpaceDimensions(s); err != nil {
		return nil, err
	}
	return cp, nil
}
