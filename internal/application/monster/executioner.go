package monster

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// Attack holds the executioner attack timings, in milliseconds, and its
// charge speed.
type Attack struct {
	PrepareDelay int
	DefenseDelay int
	Speed        float64
}

// Patrol walks between the bounds until the target comes close.
type Patrol struct {
	monsterState
	c *course
}

func (s *Patrol) Update(extrp float64) { s.c.move() }

// Prepare faces the target and raises the axe.
type Prepare struct{ monsterState }

func (s *Prepare) Enter() {
	s.monsterState.Enter()
	s.m.Movement.ZeroHorizontal()
	if dx, ok := target(s.m); ok {
		s.m.Face(dx)
	}
	s.m.Tick.Restart()
}

func (s *Prepare) Update(extrp float64) { s.brake() }

func (s *Prepare) Exit() { s.m.Tick.Stop() }

// Attack1 charges toward the target.
type Attack1 struct {
	monsterState
	attack   Attack
	velocity float64
	capped   bool
}

func (s *Attack1) Enter() {
	s.monsterState.Enter()
	m := s.m
	s.velocity = m.Movement.Velocity()
	s.capped = m.Movement.IsMaxEnabled()
	m.Movement.SetMaxEnabled(false)
	m.Movement.SetVelocity(s.attack.Speed)
	m.Movement.SetDestinationHorizontal(m.Direction() * s.attack.Speed)
	m.Sfx.Play(SfxSword)
}

func (s *Attack1) Exit() {
	m := s.m
	m.Movement.SetVelocity(s.velocity)
	m.Movement.SetMaxEnabled(s.capped)
	m.Movement.ZeroHorizontal()
}

// Attack2 is the follow-up swing, in place.
type Attack2 struct{ monsterState }

func (s *Attack2) Enter() {
	s.monsterState.Enter()
	s.m.Movement.ZeroHorizontal()
	s.m.Sfx.Play(SfxSword)
}

func (s *Attack2) Update(extrp float64) { s.brake() }

// Defense recovers behind the shield. Hits taken meanwhile are blocked.
type Defense struct{ monsterState }

func (s *Defense) Enter() {
	s.monsterState.Enter()
	s.m.Movement.ZeroHorizontal()
	s.m.Tick.Restart()
}

func (s *Defense) Update(extrp float64) {
	s.brake()
	s.m.ClearHurt()
}

func (s *Defense) Exit() {
	s.m.Tick.Stop()
	s.m.ClearHurt()
}

// Face turns toward the target or away from a reached bound.
type Face struct {
	monsterState
	c *course
}

func (s *Face) Enter() {
	s.monsterState.Enter()
	s.c.stop()
	if dx, ok := target(s.m); ok && dx*s.m.Direction() < 0 {
		s.m.Face(dx)
	} else if s.c.atBound() || s.c.blocked() {
		s.c.reverse()
	}
	s.m.Tick.Restart()
}

func (s *Face) Update(extrp float64) { s.brake() }

func (s *Face) Exit() { s.m.Tick.Stop() }

// BuildExecutioner creates the machine of the executioner: it patrols,
// prepares when the target is in reach, attacks twice when it stays there
// and recovers in defense.
func BuildExecutioner(m *entity.Model, attack Attack, effect string, logger *log.Logger) (*state.Handler, error) {
	c := newCourse(m)
	g := guards{m: m, c: c}
	prepared := func() bool { return m.Tick.ElapsedTime(m.Rate, attack.PrepareDelay) }
	defended := func() bool { return m.Tick.ElapsedTime(m.Rate, attack.DefenseDelay) }

	patrol := &Patrol{monsterState: newState(state.Patrol, m), c: c}
	prepare := &Prepare{newState(state.Prepare, m)}
	attack1 := &Attack1{monsterState: newState(state.Attack1, m), attack: attack}
	attack2 := &Attack2{newState(state.Attack2, m)}
	defense := &Defense{newState(state.Defense, m)}
	turn := &Face{monsterState: newState(state.Turn, m), c: c}
	fall := &Fall{newState(state.Fall, m)}
	hurt := &Hurt{newState(state.Hurt, m)}
	dead := &Dead{monsterState: newState(state.Dead, m), effect: effect}

	patrol.AddTransition(state.Hurt, g.hurt)
	patrol.AddTransition(state.Fall, g.airborne)
	patrol.AddTransition(state.Prepare, g.near)
	patrol.AddTransition(state.Turn, g.behind)
	patrol.AddTransition(state.Turn, g.turn)

	prepare.AddTransition(state.Hurt, g.hurt)
	prepare.AddTransition(state.Attack1, g.and(prepared, g.near))
	prepare.AddTransition(state.Patrol, prepared)

	attack1.AddTransition(state.Hurt, g.hurt)
	attack1.AddTransition(state.Attack2, g.and(g.finished, g.near))
	attack1.AddTransition(state.Defense, g.finished)

	attack2.AddTransition(state.Hurt, g.hurt)
	attack2.AddTransition(state.Defense, g.finished)

	defense.AddTransition(state.Patrol, defended)

	turn.AddTransition(state.Hurt, g.hurt)
	turn.AddTransition(state.Patrol, g.paused)

	fall.AddTransition(state.Hurt, g.hurt)
	fall.AddTransition(state.Patrol, g.landed)

	hurt.AddTransition(state.Dead, g.dead)
	hurt.AddTransition(state.Defense, g.finished)

	h, err := state.NewHandler(m.Kind, logger,
		patrol, prepare, attack1, attack2, defense, turn, fall, hurt, dead,
	)
	if err != nil {
		return nil, err
	}
	if err := h.Start(state.Patrol); err != nil {
		return nil, err
	}
	return h, nil
}

// IsAttacking reports a state whose swing hurts on contact.
func IsAttacking(h *state.Handler) bool {
	return h.IsState(state.Attack1) || h.IsState(state.Attack2)
}
