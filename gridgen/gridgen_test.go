package gridgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/variable"
)

func TestLineParameterAndPointKinds(t *testing.T) {
	r := require.New(t)

	e := linexpr.FromVariable(variable.Variable(0))
	r.Equal(gridgen.Line, gridgen.NewLine(e).Kind())
	r.Equal(gridgen.Parameter, gridgen.NewParameter(e).Kind())

	p, err := gridgen.NewPoint(e, coefficient.FromInt64(3))
	r.NoError(err)
	r.Equal(gridgen.Point, p.Kind())
	r.Equal("3", p.Divisor().String())
}

func TestNonPositiveDivisorRejected(t *testing.T) {
	r := require.New(t)

	e := linexpr.FromVariable(variable.Variable(0))
	_, err := gridgen.NewPoint(e, coefficient.Zero())
	r.ErrorIs(err, gridgen.ErrNonPositiveDivisor)

	_, err = gridgen.NewPoint(e, coefficient.FromInt64(-1))
	r.ErrorIs(err, gridgen.ErrNonPositiveDivisor)
}

func TestCoefficientAccess(t *testing.T) {
	r := require.New(t)

	a, b := variable.Variable(0), variable.Variable(1)
	e := linexpr.FromVariable(a).Add(linexpr.FromVariable(b).Times(coefficient.FromInt64(2)))
	param := gridgen.NewParameter(e)

	r.Equal("1", param.Coefficient(a).String())
	r.Equal("2", param.Coefficient(b).String())
	r.Equal(2, param.SpaceDimension())
}
