package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/congruence"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

func TestCongruenceSystemInsertAndSort(t *testing.T) {
	r := require.New(t)

	cs := system.NewCongruenceSystem(1)
	a := variable.Variable(0)

	proper, err := congruence.New(linexpr.FromVariable(a), coefficient.FromInt64(5))
	r.NoError(err)
	eq := congruence.EqualityOf(linexpr.FromVariable(a))

	cs.Insert(proper)
	cs.Insert(eq)
	r.Equal(2, cs.NumRows())
	r.False(cs.OnlyEqualities())

	cs.SortRows()
	rows := cs.Congruences()
	r.True(rows[0].IsEquality())
	r.False(rows[1].IsEquality())
}

func TestCongruenceSystemPendingRows(t *testing.T) {
	r := require.New(t)

	cs := system.NewCongruenceSystem(1)
	a := variable.Variable(0)
	cs.Insert(congruence.EqualityOf(linexpr.FromVariable(a)))
	cs.InsertPending(congruence.EqualityOf(linexpr.FromVariable(a)))

	r.Equal(1, cs.NumPendingRows())
	cs.UnsetPendingRows()
	r.Equal(0, cs.NumPendingRows())
}

func TestCongruenceSystemIsTriviallyFalse(t *testing.T) {
	r := require.New(t)

	cs := system.NewCongruenceSystem(0)
	bad, err := congruence.New(linexpr.Constant(coefficient.FromInt64(1)), coefficient.FromInt64(2))
	r.NoError(err)
	cs.Insert(bad)
	r.True(cs.IsTriviallyFalse())
}
