package player

import (
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// Idle stands still.
type Idle struct{ playerState }

func (s *Idle) Update(extrp float64) { s.brake() }

// OnCollideLeg also detects a ledge in front of the feet.
func (s *Idle) OnCollideLeg(r tile.Result) {
	s.Base.OnCollideLeg(r)
	checkBorder(s.m, r)
}

// Walk follows the horizontal input.
type Walk struct{ playerState }

func (s *Walk) Update(extrp float64) { s.steer(s.m.Tuning.WalkSpeed) }

// Turn brakes while the sprite turns around.
type Turn struct{ playerState }

func (s *Turn) Enter() {
	s.playerState.Enter()
	s.m.Face(s.m.Input.HorizontalDirection())
}

func (s *Turn) Update(extrp float64) { s.brake() }

// Crouch ducks in place.
type Crouch struct{ playerState }

func (s *Crouch) Enter() {
	s.playerState.Enter()
	s.m.Movement.ZeroHorizontal()
}

func (s *Crouch) Update(extrp float64) { s.brake() }

// Border balances on a ledge.
type Border struct{ playerState }

func (s *Border) Update(extrp float64) { s.brake() }

func (s *Border) OnCollideLeg(r tile.Result) {
	s.Base.OnCollideLeg(r)
	checkBorder(s.m, r)
}

// checkBorder flags a standing entity whose front edge is over the void.
func checkBorder(m *entity.Model, r tile.Result) {
	if m.Map == nil || !m.Flags.CollideY || !r.Tile.Group.IsGround() || r.Tile.Group.Downhill() != 0 {
		return
	}
	front := m.Transform.X + m.Direction()*m.Transform.Width/2
	t, ok := m.Map.TileAt(front, m.Transform.Y-1)
	if !ok || !t.Group.IsGround() {
		m.Flags.Border = true
	}
}

// Slide goes down a slide ramp or a steep it cannot stand on. It overrides
// the movement velocity and cap for its duration.
type Slide struct {
	playerState
	downhill float64
	velocity float64
	capped   bool
}

func (s *Slide) Enter() {
	s.playerState.Enter()
	m := s.m
	s.velocity = m.Movement.Velocity()
	s.capped = m.Movement.IsMaxEnabled()
	m.Movement.SetVelocity(m.Tuning.SlideVelocity)
	m.Movement.SetMaxEnabled(false)

	s.downhill = 0
	if m.Map != nil {
		if t, ok := m.Map.TileAt(m.Transform.X, m.Transform.Y-0.5); ok {
			s.downhill = t.Group.Downhill()
		}
	}
	if s.downhill == 0 {
		s.downhill = -m.Direction()
	}
	m.Face(s.downhill)
}

func (s *Slide) Update(extrp float64) {
	s.m.Movement.SetDestinationHorizontal(s.downhill * s.m.Tuning.SlideSpeed)
}

func (s *Slide) Exit() {
	s.m.Movement.SetVelocity(s.velocity)
	s.m.Movement.SetMaxEnabled(s.capped)
}

// OnCollideLeg follows the ramp direction under the feet.
func (s *Slide) OnCollideLeg(r tile.Result) {
	s.Base.OnCollideLeg(r)
	if d := r.Tile.Group.Downhill(); d != 0 {
		s.downhill = d
	}
}
