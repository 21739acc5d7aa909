package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStepper(t *testing.T) {
	c := NewStepper(50)
	require.Equal(t, 20*time.Millisecond, c.Interval())
	require.Equal(t, time.Duration(0), c.Now())

	for i := 0; i < 50; i++ {
		c.Step()
	}
	require.Equal(t, 50, c.Ticks())
	require.Equal(t, time.Second, c.Now())
}

func TestStepperDefaultRate(t *testing.T) {
	c := NewStepper(0)
	require.Equal(t, time.Second/60, c.Interval())
	require.Equal(t, 60, c.Rate())
}

func TestFrameTimer(t *testing.T) {
	var f FrameTimer

	require.Equal(t, time.Duration(0), f.Delta(5*time.Second), "first frame has no delta")
	require.Equal(t, 16*time.Millisecond, f.Delta(5*time.Second+16*time.Millisecond))
	require.Equal(t, time.Duration(0), f.Delta(time.Second), "stale timestamp yields zero")
	require.Equal(t, 5*time.Second+16*time.Millisecond, f.Last())
	require.Equal(t, 4*time.Millisecond, f.Delta(5*time.Second+20*time.Millisecond))
}

func TestFrameTimerReset(t *testing.T) {
	var f FrameTimer
	f.Delta(time.Second)
	f.Delta(2 * time.Second)

	f.Reset()
	require.Equal(t, time.Duration(0), f.Delta(3*time.Second), "first frame after reset has no delta")
	require.Equal(t, time.Second, f.Delta(4*time.Second))
}
