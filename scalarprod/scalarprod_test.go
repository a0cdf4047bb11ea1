package scalarprod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/generator"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/scalarprod"
	"github.com/polylat/polylat/variable"
)

func TestTopologyAdjustedSignNonStrict(t *testing.T) {
	r := require.New(t)

	a := variable.Variable(0)
	// constraint: A >= 0
	c := constraint.NonStrict(linexpr.FromVariable(a))
	tas := scalarprod.ForConstraint(c)

	// point (0) satisfies with equality.
	p0, _ := generator.NewPoint(linexpr.NewExpression(1), coefficient.FromInt64(1), row.NecessarilyClosed)
	r.Equal(0, tas.Sign(p0))

	// point (1) satisfies strictly.
	p1, _ := generator.NewPoint(linexpr.FromVariable(a), coefficient.FromInt64(1), row.NecessarilyClosed)
	r.Equal(1, tas.Sign(p1))
}

func TestTopologyAdjustedSignStrictRejectsBoundaryPoint(t *testing.T) {
	r := require.New(t)

	a := variable.Variable(0)
	c := constraint.Strict(linexpr.FromVariable(a))
	tas := scalarprod.ForConstraint(c)

	p0, _ := generator.NewPoint(linexpr.NewExpression(1), coefficient.FromInt64(1), row.NotNecessarilyClosed)
	r.Equal(-1, tas.Sign(p0))

	p1, _ := generator.NewPoint(linexpr.FromVariable(a), coefficient.FromInt64(1), row.NotNecessarilyClosed)
	r.Equal(1, tas.Sign(p1))
}
