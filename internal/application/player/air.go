package player

import (
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// grabGrace is the number of ticks a released liana cannot be grabbed again.
const grabGrace = 8

// airborne is shared by the states steering in the air. They catch a liana
// crossed by the hands.
type airborne struct {
	playerState
	grace entity.Tick
}

func newAirborne(id state.ID, m *entity.Model) airborne {
	return airborne{playerState: newState(id, m)}
}

func (s *airborne) Enter() {
	s.playerState.Enter()
	// still holding a liana on entry means it was just released
	if s.m.Flags.Liana || s.m.Flags.Grip {
		s.grace.Restart()
	} else {
		s.grace.Stop()
	}
}

func (s *airborne) Update(extrp float64) {
	s.grace.Update(extrp)
	s.steer(s.m.Tuning.JumpSpeed)
}

func (s *airborne) canGrab() bool {
	return !s.grace.IsStarted() || s.grace.ElapsedTicks(grabGrace)
}

// OnCollideHand hangs on the liana.
func (s *airborne) OnCollideHand(r tile.Result) {
	if !s.canGrab() {
		return
	}
	s.Base.OnCollideHand(r)
	hold(s.m, r)
}

// hold attaches the hands to the liana line and cancels every vertical force.
func hold(m *entity.Model, r tile.Result) {
	state.SnapY(m, r)
	m.Body.ResetGravity()
	m.Jump.Zero()
}

// Jump rises with the jump impulse.
type Jump struct{ airborne }

func (s *Jump) Enter() {
	s.airborne.Enter()
	s.m.Body.ResetGravity()
	s.m.Jump.SetDirection(0, s.m.Tuning.JumpForce)
	s.m.Sfx.Play(SfxJump)
}

// Fall descends under gravity.
type Fall struct{ airborne }

// AttackJump swings the sword in the air with a horizontal boost that may
// overshoot the movement cap. Velocity and cap are restored on exit.
type AttackJump struct {
	airborne
	velocity float64
	capped   bool
}

func (s *AttackJump) Enter() {
	s.airborne.Enter()
	m := s.m
	s.velocity = m.Movement.Velocity()
	s.capped = m.Movement.IsMaxEnabled()
	m.Movement.SetMaxEnabled(false)

	speed := m.Direction() * (m.Tuning.JumpSpeed + m.Tuning.AttackJumpBoost)
	m.Movement.SetDirection(speed, 0)
	m.Movement.SetDestinationHorizontal(speed)
	m.Sfx.Play(SfxSword)
}

// Update keeps the boost: the input does not steer an attack jump.
func (s *AttackJump) Update(extrp float64) {
	s.grace.Update(extrp)
}

func (s *AttackJump) Exit() {
	s.m.Movement.SetVelocity(s.velocity)
	s.m.Movement.SetMaxEnabled(s.capped)
	s.m.Movement.SetDestinationHorizontal(0)
}

// AttackFall plunges the sword downward. A full liana under the feet breaks.
type AttackFall struct{ playerState }

func (s *AttackFall) Enter() {
	s.playerState.Enter()
	s.m.Movement.ZeroHorizontal()
	s.m.Jump.Zero()
	s.m.Sfx.Play(SfxSword)
}

func (s *AttackFall) Update(extrp float64) { s.brake() }

func (s *AttackFall) OnCollideLeg(r tile.Result) {
	if r.Tile.Group == tile.GroupLianaFull {
		breakLiana(s.m, r.Tile)
		return
	}
	s.Base.OnCollideLeg(r)
}

// breakLiana removes a liana tile: the tile switches to its broken number
// and loses its collision group, an explosion is spawned on it.
func breakLiana(m *entity.Model, t *tile.Tile) {
	x, y := t.Center()
	m.Map.SetTile(t.TX, t.TY, t.Number+tile.LianaBrokenOffset, tile.GroupNone)
	m.Spawner.Spawn(Explosion, x, y)
	m.Sfx.Play(SfxHurt)
}
