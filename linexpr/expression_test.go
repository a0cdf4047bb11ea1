package linexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/variable"
)

func TestExpressionBuilders(t *testing.T) {
	r := require.New(t)

	a := variable.Variable(0)
	b := variable.Variable(1)

	e := linexpr.FromVariable(a).Add(linexpr.FromVariable(b).Times(coefficient.FromInt64(2))).
		WithInhomogeneousTerm(coefficient.FromInt64(3))

	r.Equal(2, e.SpaceDimension())
	r.Equal("1", e.Coefficient(a).String())
	r.Equal("2", e.Coefficient(b).String())
	r.Equal("3", e.InhomogeneousTerm().String())
}

func TestExpressionAddGrowsDimension(t *testing.T) {
	r := require.New(t)

	e1 := linexpr.FromVariable(variable.Variable(0))
	e2 := linexpr.FromVariable(variable.Variable(2))

	sum := e1.Add(e2)
	r.Equal(3, sum.SpaceDimension())
	r.Equal("1", sum.Coefficient(variable.Variable(0)).String())
	r.Equal("1", sum.Coefficient(variable.Variable(2)).String())
}
