package mission

import (
	"fmt"
	"math"
)

// Guard walks a fixed patrol route on a loop. Its position along the route is
// a pure function of elapsed time, so a restarted patrol behaves identically.
type Guard struct {
	ID      int
	period  float64
	elapsed float64
	alerted bool
}

// NewGuard creates a guard with the given patrol period in seconds.
func NewGuard(id int, period float64) *Guard {
	return &Guard{ID: id, period: period}
}

// Label returns the short display label, e.g. "G2".
func (g *Guard) Label() string {
	return fmt.Sprintf("G%d", g.ID)
}

// Tick advances the patrol by dt seconds, wrapping at the period.
func (g *Guard) Tick(dt float64) {
	if dt <= 0 || g.period <= 0 {
		return
	}
	g.elapsed = math.Mod(g.elapsed+dt, g.period)
}

// Position returns how far along the route the guard is, in [0,1).
func (g *Guard) Position() float64 {
	if g.period <= 0 {
		return 0
	}
	return g.elapsed / g.period
}

// Period returns the patrol period in seconds.
func (g *Guard) Period() float64 {
	return g.period
}

// Alerted reports whether the guard has noticed something.
func (g *Guard) Alerted() bool {
	return g.alerted
}

// reset clears the alert and places the guard at a random point on its route.
func (g *Guard) reset(rng Rand) {
	g.alerted = false
	g.elapsed = 0
	if rng != nil {
		g.elapsed = math.Mod(rng.Float64()*g.period, g.period)
	}
}
