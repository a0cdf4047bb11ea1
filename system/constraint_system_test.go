package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

func TestConstraintSystemInsertAndRead(t *testing.T) {
	r := require.New(t)

	cs := system.NewConstraintSystem(row.NecessarilyClosed, 2)
	a := variable.Variable(0)
	r.NoError(cs.Insert(constraint.NonStrict(linexpr.FromVariable(a))))

	r.Equal(1, cs.NumRows())
	r.False(cs.IsInconsistent())
	got := cs.Constraints()
	r.Len(got, 1)
	r.Equal(constraint.NonStrictInequality, got[0].Type())
}

func TestConstraintSystemRejectsStrictOnClosed(t *testing.T) {
	r := require.New(t)

	cs := system.NewConstraintSystem(row.NecessarilyClosed, 1)
	a := variable.Variable(0)
	err := cs.Insert(constraint.Strict(linexpr.FromVariable(a)))
	r.ErrorIs(err, system.ErrStrictOnClosed)
}

func TestConstraintSystemAcceptsTriviallyFalseStrict(t *testing.T) {
	r := require.New(t)

	cs := system.NewConstraintSystem(row.NecessarilyClosed, 0)
	trivial := constraint.Strict(linexpr.Constant(coefficient.FromInt64(-1)))
	r.NoError(cs.Insert(trivial))
	r.True(cs.IsInconsistent())
}
