package player

import (
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// hanging is shared by the liana states: the hands stay glued to the liana
// line, which cancels gravity every tick.
type hanging struct{ playerState }

func (s *hanging) OnCollideHand(r tile.Result) {
	s.Base.OnCollideHand(r)
	hold(s.m, r)
}

// LianaIdle hangs without moving.
type LianaIdle struct{ hanging }

func (s *LianaIdle) Enter() {
	s.hanging.Enter()
	s.m.Movement.Zero()
}

func (s *LianaIdle) Update(extrp float64) { s.brake() }

// LianaWalk moves hand over hand along a horizontal liana.
type LianaWalk struct{ hanging }

func (s *LianaWalk) Update(extrp float64) { s.steer(s.m.Tuning.LianaSpeed) }

// LianaSoar climbs or descends a diagonal liana following the input.
type LianaSoar struct{ hanging }

func (s *LianaSoar) Update(extrp float64) { s.steer(s.m.Tuning.LianaSpeed) }

// LianaSlide slides down a diagonal liana when nothing is pressed.
type LianaSlide struct {
	hanging
	downhill float64
	velocity float64
	capped   bool
}

func (s *LianaSlide) Enter() {
	s.hanging.Enter()
	m := s.m
	s.velocity = m.Movement.Velocity()
	s.capped = m.Movement.IsMaxEnabled()
	m.Movement.SetVelocity(m.Tuning.SlideVelocity)
	m.Movement.SetMaxEnabled(false)

	s.downhill = 0
	if m.Map != nil {
		if t, ok := m.Map.TileAt(m.Transform.X, m.Transform.Y+m.Transform.Height); ok {
			s.downhill = t.Group.Downhill()
		}
	}
}

func (s *LianaSlide) Update(extrp float64) {
	s.m.Movement.SetDestinationHorizontal(s.downhill * s.m.Tuning.SlideSpeed)
	s.m.Face(s.downhill)
}

func (s *LianaSlide) Exit() {
	s.m.Movement.SetVelocity(s.velocity)
	s.m.Movement.SetMaxEnabled(s.capped)
}

func (s *LianaSlide) OnCollideHand(r tile.Result) {
	s.hanging.OnCollideHand(r)
	if d := r.Tile.Group.Downhill(); d != 0 {
		s.downhill = d
	}
}
