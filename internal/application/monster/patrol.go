package monster

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
)

// Idle stands still. Monsters without a patrol stay here.
type Idle struct{ monsterState }

func (s *Idle) Update(extrp float64) { s.brake() }

// Walk moves along the patrol axis.
type Walk struct {
	monsterState
	c *course
}

func (s *Walk) Update(extrp float64) { s.c.move() }

// Turn pauses at a bound and reverses the patrol direction. Resuming it
// after a hit does not reverse twice.
type Turn struct {
	monsterState
	c *course
}

func (s *Turn) Enter() {
	s.monsterState.Enter()
	s.c.stop()
	if s.c.atBound() || s.c.blocked() {
		s.c.reverse()
	}
	s.m.Tick.Restart()
}

func (s *Turn) Update(extrp float64) { s.brake() }

func (s *Turn) Exit() { s.m.Tick.Stop() }

// Fall drops until the leg lands.
type Fall struct{ monsterState }

func (s *Fall) Update(extrp float64) { s.brake() }

// Hurt applies the pending damage and resumes the interrupted state.
type Hurt struct{ monsterState }

func (s *Hurt) Enter() {
	s.monsterState.Enter()
	m := s.m
	m.ConsumeHurt()
	m.Movement.SetDirection(-m.Direction()*m.Tuning.HurtForce, 0)
	m.Sfx.Play(SfxHurt)
}

func (s *Hurt) Update(extrp float64) { s.brake() }

func (s *Hurt) Exit() { s.m.ClearHurt() }

// Dead plays the death animation, leaves an explosion and removes the
// entity.
type Dead struct {
	monsterState
	effect string
}

func (s *Dead) Enter() {
	s.monsterState.Enter()
	m := s.m
	m.Movement.Zero()
	m.Jump.Zero()
	m.Sfx.Play(SfxDie)
	if s.effect != "" {
		m.Spawner.Spawn(s.effect, m.Transform.X, m.Transform.Y)
	}
}

func (s *Dead) Update(extrp float64) {
	if s.m.IsAnimFinished() {
		s.m.Destroy()
	}
}

// BuildPatrol creates the machine of a patrolling monster. It starts in
// Walk when the monster patrols, in Idle otherwise. effect names the
// feature spawned on death; empty spawns nothing.
func BuildPatrol(m *entity.Model, effect string, logger *log.Logger) (*state.Handler, error) {
	c := newCourse(m)
	g := guards{m: m, c: c}

	idle := &Idle{newState(state.Idle, m)}
	walk := &Walk{monsterState: newState(state.Walk, m), c: c}
	turn := &Turn{monsterState: newState(state.Turn, m), c: c}
	fall := &Fall{newState(state.Fall, m)}
	hurt := &Hurt{newState(state.Hurt, m)}
	dead := &Dead{monsterState: newState(state.Dead, m), effect: effect}

	idle.AddTransition(state.Hurt, g.hurt)
	idle.AddTransition(state.Fall, g.airborne)
	idle.AddTransition(state.Walk, g.patrol)

	walk.AddTransition(state.Hurt, g.hurt)
	walk.AddTransition(state.Fall, g.airborne)
	walk.AddTransition(state.Turn, g.turn)

	turn.AddTransition(state.Hurt, g.hurt)
	turn.AddTransition(state.Walk, g.paused)

	fall.AddTransition(state.Hurt, g.hurt)
	fall.AddTransition(state.Walk, g.and(g.landed, g.patrol))
	fall.AddTransition(state.Idle, g.landed)

	hurt.AddTransition(state.Dead, g.dead)
	hurt.AddTransition(state.Previous, g.finished)

	h, err := state.NewHandler(m.Kind, logger, idle, walk, turn, fall, hurt, dead)
	if err != nil {
		return nil, err
	}
	start := state.Idle
	if m.HasPatrol() {
		start = state.Walk
	}
	if err := h.Start(start); err != nil {
		return nil, err
	}
	return h, nil
}
