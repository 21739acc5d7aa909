package clock

import "time"

// FrameTimer derives per-frame deltas from successive timestamps.
// The first frame has a zero delta.
type FrameTimer struct {
	last    time.Duration
	started bool
}

// Delta records now as the latest frame time and returns the time elapsed
// since the previous frame. A timestamp older than the previous one yields 0.
func (f *FrameTimer) Delta(now time.Duration) time.Duration {
	if !f.started {
		f.started = true
		f.last = now
		return 0
	}
	d := now - f.last
	if d < 0 {
		return 0
	}
	f.last = now
	return d
}

// Last returns the timestamp of the latest frame.
func (f *FrameTimer) Last() time.Duration {
	return f.last
}

// Reset forgets the previous frame, so the next delta is zero again.
func (f *FrameTimer) Reset() {
	*f = FrameTimer{}
}
