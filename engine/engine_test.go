package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/engine"
)

func TestAcquireReleaseExclusivity(t *testing.T) {
	r := require.New(t)

	e := engine.New()
	r.NoError(e.Acquire())
	r.ErrorIs(e.Acquire(), engine.ErrInUse)
	e.Release()
	r.NoError(e.Acquire())
}

func TestCheckDeadline(t *testing.T) {
	r := require.New(t)

	e := engine.New()
	r.NoError(e.CheckDeadline())

	expired := engine.New(engine.WithDeadline(time.Now().Add(-time.Second)))
	r.ErrorIs(expired.CheckDeadline(), engine.ErrTimeout)

	fresh := engine.New(engine.WithTimeout(time.Hour))
	r.NoError(fresh.CheckDeadline())
}

func TestSaturatorCountsReusesBuffer(t *testing.T) {
	r := require.New(t)

	e := engine.New()
	buf := e.SaturatorCounts(4)
	r.Len(buf, 4)
	buf[0] = 7

	buf2 := e.SaturatorCounts(2)
	r.Len(buf2, 2)
	r.Equal(0, buf2[0])

	e.Close()
}
