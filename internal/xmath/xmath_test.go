package xmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/internal/xmath"
)

func TestMinMaxAbsClamp(t *testing.T) {
	r := require.New(t)

	r.Equal(2, xmath.Min(2, 5))
	r.Equal(5, xmath.Max(2, 5))
	r.Equal(3, xmath.Abs(-3))
	r.Equal(5, xmath.Clamp(10, 0, 5))
	r.Equal(0, xmath.Clamp(-10, 0, 5))
	r.Equal(3, xmath.Clamp(3, 0, 5))
}
