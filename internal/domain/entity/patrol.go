package entity

import "math"

// Patrol describes the scripted motion of a non-player entity, as authored
// on its spawn record. Amplitude and Offset are in tiles, Delay in
// milliseconds.
type Patrol struct {
	SpeedH    float64
	SpeedV    float64
	Amplitude int
	Offset    int
	Mirror    bool // start facing left
	Coll      bool // turn on wall collision
	Proximity int  // attack distance, pixels
	Sight     int  // detection distance, pixels
	Delay     int  // pause at bounds / between attacks
	Curve     bool // ease the speed near the bounds
}

// Patroller tracks the patrol bounds of one entity.
type Patroller struct {
	Patrol
	PositionMin float64
	PositionMax float64
	enabled     bool
}

// NewPatroller computes the patrol bounds around the spawn coordinate on the
// patrol axis (X for horizontal patrols, Y otherwise).
func NewPatroller(p Patrol, start float64, tileSize int) *Patroller {
	center := start + float64(p.Offset*tileSize)
	half := float64(p.Amplitude * tileSize)
	return &Patroller{
		Patrol:      p,
		PositionMin: center - half,
		PositionMax: center + half,
		enabled:     p.Amplitude > 0,
	}
}

// HasPatrol reports whether the entity patrols between bounds.
func (p *Patroller) HasPatrol() bool {
	return p != nil && p.enabled
}

// IsHorizontal reports a horizontal patrol.
func (p *Patroller) IsHorizontal() bool {
	return p.SpeedH != 0 || p.SpeedV == 0
}

// AtBound reports whether a position moving in direction dir reached the
// bound it is heading to.
func (p *Patroller) AtBound(pos, dir float64) bool {
	if dir > 0 {
		return pos >= p.PositionMax
	}
	if dir < 0 {
		return pos <= p.PositionMin
	}
	return false
}

// Speed returns the patrol speed at pos, eased near the bounds when the
// patrol is curved.
func (p *Patroller) Speed(pos float64) float64 {
	speed := p.SpeedH
	if !p.IsHorizontal() {
		speed = p.SpeedV
	}
	if !p.Curve || p.PositionMax <= p.PositionMin {
		return speed
	}
	half := (p.PositionMax - p.PositionMin) / 2
	center := p.PositionMin + half
	ratio := 1 - math.Abs(pos-center)/half
	return speed * math.Max(0.25, math.Sqrt(math.Max(0, ratio)))
}
