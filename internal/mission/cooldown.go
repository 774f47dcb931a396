package mission

// timerEpsilon absorbs float drift from summing many small frame deltas, so a
// timer started at 1.0 and ticked ten times by 0.1 reads as expired.
const timerEpsilon = 1e-9

// CooldownTimer is a countdown that is ready once it reaches zero.
// The zero value is ready.
type CooldownTimer struct {
	remaining float64
}

// Start arms the timer for duration seconds. Non-positive durations are ignored.
func (c *CooldownTimer) Start(duration float64) {
	if duration <= 0 {
		return
	}
	c.remaining = duration
}

// Tick counts the timer down by dt seconds, clamping at zero.
func (c *CooldownTimer) Tick(dt float64) {
	if dt <= 0 || c.remaining <= 0 {
		return
	}
	c.remaining -= dt
	if c.remaining < timerEpsilon {
		c.remaining = 0
	}
}

// Ready reports whether the countdown has elapsed.
func (c *CooldownTimer) Ready() bool {
	return c.remaining <= 0
}

// Remaining returns the seconds left before the timer is ready.
func (c *CooldownTimer) Remaining() float64 {
	return c.remaining
}

// Reset makes the timer ready immediately.
func (c *CooldownTimer) Reset() {
	c.remaining = 0
}
