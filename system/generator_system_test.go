package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/generator"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

func TestGeneratorSystemRequiresPointFirst(t *testing.T) {
	r := require.New(t)

	gs := system.NewGeneratorSystem(row.NecessarilyClosed, 1)
	a := variable.Variable(0)
	err := gs.Insert(generator.NewRay(linexpr.FromVariable(a), row.NecessarilyClosed))
	r.ErrorIs(err, system.ErrInvalidGenerator)

	p, _ := generator.NewPoint(linexpr.FromVariable(a), coefficient.FromInt64(1), row.NecessarilyClosed)
	r.NoError(gs.Insert(p))
	r.NoError(gs.Insert(generator.NewRay(linexpr.FromVariable(a), row.NecessarilyClosed)))
	r.NoError(gs.Validate())
}

func TestGeneratorSystemNNCRequiresMatchingClosurePoint(t *testing.T) {
	r := require.New(t)

	gs := system.NewGeneratorSystem(row.NotNecessarilyClosed, 1)
	a := variable.Variable(0)
	p, _ := generator.NewPoint(linexpr.FromVariable(a), coefficient.FromInt64(1), row.NotNecessarilyClosed)
	r.NoError(gs.Insert(p))

	r.Error(gs.Validate())

	cp, _ := p.ToClosurePoint()
	r.NoError(gs.Insert(cp))
	r.NoError(gs.Validate())
}

func TestGeneratorSystemEmptyValidates(t *testing.T) {
	r := require.New(t)

	gs := system.NewGeneratorSystem(row.NecessarilyClosed, 2)
	r.NoError(gs.Validate())
}
