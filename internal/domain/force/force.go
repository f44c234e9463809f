// Package force provides the 2D directional accumulators used to compose
// entity motion (player command, jump impulse, patrol motion).
//
// A Force holds the per-tick delta currently applied (Direction) and the
// commanded delta it converges to (Destination). Velocity is a convergence
// rate, not a speed: higher values reach the destination in fewer ticks.
package force

import "math"

// Force is a directional accumulator with a per-axis cap.
type Force struct {
	fh, fv       float64 // current direction
	destH, destV float64 // commanded direction
	velocity     float64
	sensibility  float64
	maxH, maxV   float64
	capped       bool
}

// New creates a force with no cap on either axis.
func New() *Force {
	return &Force{
		maxH: math.Inf(1),
		maxV: math.Inf(1),
	}
}

// NewCapped creates a force capped to the given absolute per-axis values.
func NewCapped(maxH, maxV float64) *Force {
	f := New()
	f.SetMax(maxH, maxV)
	return f
}

// SetDestination sets the commanded direction for the next updates.
func (f *Force) SetDestination(dh, dv float64) {
	f.destH = dh
	f.destV = dv
}

// SetDestinationHorizontal sets only the horizontal commanded direction.
func (f *Force) SetDestinationHorizontal(dh float64) { f.destH = dh }

// SetDestinationVertical sets only the vertical commanded direction.
func (f *Force) SetDestinationVertical(dv float64) { f.destV = dv }

// SetDirection forces the current direction, bypassing convergence.
func (f *Force) SetDirection(dh, dv float64) {
	f.fh = dh
	f.fv = dv
	f.clamp()
}

// SetVelocity sets the convergence rate toward the destination.
func (f *Force) SetVelocity(v float64) { f.velocity = math.Abs(v) }

// Velocity returns the convergence rate.
func (f *Force) Velocity() float64 { return f.velocity }

// SetSensibility sets the snap distance: once the direction is closer than
// this to the destination it becomes the destination.
func (f *Force) SetSensibility(s float64) { f.sensibility = math.Abs(s) }

// Sensibility returns the snap distance.
func (f *Force) Sensibility() float64 { return f.sensibility }

// SetMax sets the absolute cap per axis and enables it.
func (f *Force) SetMax(maxH, maxV float64) {
	f.maxH = math.Abs(maxH)
	f.maxV = math.Abs(maxV)
	f.capped = true
	f.clamp()
}

// SetMaxEnabled toggles the cap. Attack states disable it to overshoot the
// configured maximum for their duration.
func (f *Force) SetMaxEnabled(enabled bool) {
	f.capped = enabled
	f.clamp()
}

// IsMaxEnabled reports whether the cap is active.
func (f *Force) IsMaxEnabled() bool { return f.capped }

// Zero stops the force immediately on both axes.
func (f *Force) Zero() {
	f.fh, f.fv = 0, 0
	f.destH, f.destV = 0, 0
}

// ZeroHorizontal stops the horizontal axis.
func (f *Force) ZeroHorizontal() {
	f.fh = 0
	f.destH = 0
}

// ZeroVertical stops the vertical axis.
func (f *Force) ZeroVertical() {
	f.fv = 0
	f.destV = 0
}

// Update advances the direction toward the destination.
func (f *Force) Update(extrp float64) {
	step := f.velocity * extrp
	f.fh = approach(f.fh, f.destH, step, f.sensibility)
	f.fv = approach(f.fv, f.destV, step, f.sensibility)
	f.clamp()
}

// DirectionHorizontal returns the horizontal per-tick delta.
func (f *Force) DirectionHorizontal() float64 { return f.fh }

// DirectionVertical returns the vertical per-tick delta.
func (f *Force) DirectionVertical() float64 { return f.fv }

// DestinationHorizontal returns the commanded horizontal direction.
func (f *Force) DestinationHorizontal() float64 { return f.destH }

// DestinationVertical returns the commanded vertical direction.
func (f *Force) DestinationVertical() float64 { return f.destV }

// IsDecreasingHorizontal reports whether the horizontal direction is moving
// back toward zero (the entity is braking).
func (f *Force) IsDecreasingHorizontal() bool {
	return Compare(f.destH, 0) == 0 && Compare(f.fh, 0) != 0 ||
		Compare(f.fh, 0)*Compare(f.destH, 0) < 0
}

// IsZero reports whether both axes are exactly stopped.
func (f *Force) IsZero() bool {
	return Compare(f.fh, 0) == 0 && Compare(f.fv, 0) == 0
}

// Copy returns an independent snapshot of the force.
func (f *Force) Copy() *Force {
	c := *f
	return &c
}

// Restore overwrites the force with a snapshot taken by Copy.
func (f *Force) Restore(snapshot *Force) {
	*f = *snapshot
}

func (f *Force) clamp() {
	if !f.capped {
		return
	}
	f.fh = clampAbs(f.fh, f.maxH)
	f.fv = clampAbs(f.fv, f.maxV)
}

// Sum returns the additive displacement of several forces.
func Sum(forces ...*Force) (dh, dv float64) {
	for _, f := range forces {
		if f == nil {
			continue
		}
		dh += f.fh
		dv += f.fv
	}
	return dh, dv
}

// Compare returns -1, 0 or 1 depending on the sign of a-b. Zero is exact.
func Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func approach(current, dest, step, sensibility float64) float64 {
	switch Compare(current, dest) {
	case -1:
		current += step
		if Compare(current, dest) > 0 {
			current = dest
		}
	case 1:
		current -= step
		if Compare(current, dest) < 0 {
			current = dest
		}
	}
	if math.Abs(dest-current) < sensibility {
		current = dest
	}
	return current
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
