package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

func TestGridGeneratorSystemRequiresPointFirst(t *testing.T) {
	r := require.New(t)

	gs := system.NewGridGeneratorSystem(1)
	a := variable.Variable(0)
	err := gs.Insert(gridgen.NewParameter(linexpr.FromVariable(a)))
	r.ErrorIs(err, system.ErrInvalidGenerator)

	p, perr := gridgen.NewPoint(linexpr.FromVariable(a), coefficient.FromInt64(1))
	r.NoError(perr)
	r.NoError(gs.Insert(p))
	r.True(gs.HasPoint())

	r.NoError(gs.Insert(gridgen.NewParameter(linexpr.FromVariable(a))))
	r.Equal(2, gs.NumRows())
}
