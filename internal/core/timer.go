package core

import "time"

// FrameLimiter throttles a per-frame callback to a maximum frame rate. Frames
// arriving sooner than the interval after the last accepted frame are
// rejected; nothing ever sleeps.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time
}

// NewFrameLimiter constructs a limiter capped at maxFPS.
func NewFrameLimiter(maxFPS int) *FrameLimiter {
	f := &FrameLimiter{}
	f.SetMaxFPS(maxFPS)
	return f
}

// SetMaxFPS changes the cap. Non-positive values default to 60.
func (f *FrameLimiter) SetMaxFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.interval = time.Second / time.Duration(fps)
}

// Interval returns the minimum spacing between accepted frames.
func (f *FrameLimiter) Interval() time.Duration { return f.interval }

// Last returns the time of the last accepted frame.
func (f *FrameLimiter) Last() time.Time { return f.last }

// Reset records now as the last accepted frame.
func (f *FrameLimiter) Reset(now time.Time) { f.last = now }

// Accept reports whether a frame at now should run and, if so, the elapsed
// time since the previous accepted frame. Accepted frames become the new
// reference point.
func (f *FrameLimiter) Accept(now time.Time) (time.Duration, bool) {
	if f.last.IsZero() {
		f.last = now
	}
	dt := now.Sub(f.last)
	if dt < f.interval {
		return 0, false
	}
	f.last = now
	return dt, true
}
