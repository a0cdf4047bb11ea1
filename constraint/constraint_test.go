package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/variable"
)

func TestBuildersAndType(t *testing.T) {
	r := require.New(t)

	a := linexpr.FromVariable(variable.Variable(0))
	b := linexpr.FromVariable(variable.Variable(1))

	eq := constraint.EqualExpr(a, b)
	r.Equal(constraint.Equality, eq.Type())
	r.True(eq.IsEquality())

	le := constraint.LessOrEqual(a, b)
	r.Equal(constraint.NonStrictInequality, le.Type())

	lt := constraint.Less(a, b)
	r.Equal(constraint.StrictInequality, lt.Type())
	r.True(lt.IsStrict())
}

func TestTriviallyFalseAndTrue(t *testing.T) {
	r := require.New(t)

	neg := constraint.NonStrict(linexpr.Constant(coefficient.FromInt64(-1)))
	r.True(neg.IsTriviallyFalse())

	ok := constraint.NonStrict(linexpr.Constant(coefficient.FromInt64(1)))
	r.True(ok.IsTriviallyTrue())
}
