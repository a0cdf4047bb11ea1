package congruence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/congruence"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/variable"
)

func TestEqualityAndProper(t *testing.T) {
	r := require.New(t)

	e := linexpr.FromVariable(variable.Variable(0))
	eq := congruence.EqualityOf(e)
	r.True(eq.IsEquality())

	proper, err := congruence.New(e, coefficient.FromInt64(4))
	r.NoError(err)
	r.False(proper.IsEquality())
	r.Equal("4", proper.Modulus().String())
}

func TestTriviallyFalse(t *testing.T) {
	r := require.New(t)

	c, _ := congruence.New(linexpr.Constant(coefficient.FromInt64(2)), coefficient.FromInt64(4))
	r.True(c.IsTriviallyFalse())

	ok, _ := congruence.New(linexpr.Constant(coefficient.FromInt64(8)), coefficient.FromInt64(4))
	r.False(ok.IsTriviallyFalse())
}

func TestNegativeModulusRejected(t *testing.T) {
	r := require.New(t)
	_, err := congruence.New(linexpr.FromVariable(variable.Variable(0)), coefficient.FromInt64(-1))
	r.ErrorIs(err, congruence.ErrNegativeModulus)
}
