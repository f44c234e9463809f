// Package monster holds the state machines of non-player entities: patrol
// walkers, the executioner and one-shot effects.
package monster

import (
	"math"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// Sound events played by monster states.
const (
	SfxHurt  = "hurt"
	SfxDie   = "die"
	SfxSword = "sword"
)

var defaultAnimations = map[state.ID]entity.Animation{
	state.Idle:    {Name: "idle", First: 0, Last: 1, Speed: 0.1, Repeat: true},
	state.Walk:    {Name: "walk", First: 2, Last: 7, Speed: 0.15, Repeat: true},
	state.Turn:    {Name: "turn", First: 8, Last: 9, Speed: 0.2},
	state.Fall:    {Name: "fall", First: 10, Last: 10, Speed: 0.1, Repeat: true},
	state.Hurt:    {Name: "hurt", First: 11, Last: 12, Speed: 0.15},
	state.Dead:    {Name: "dead", First: 13, Last: 16, Speed: 0.15},
	state.Patrol:  {Name: "patrol", First: 2, Last: 7, Speed: 0.12, Repeat: true},
	state.Prepare: {Name: "prepare", First: 17, Last: 19, Speed: 0.15},
	state.Attack1: {Name: "attack1", First: 20, Last: 24, Speed: 0.25},
	state.Attack2: {Name: "attack2", First: 25, Last: 29, Speed: 0.25},
	state.Defense: {Name: "defense", First: 30, Last: 30, Speed: 0.1, Repeat: true},
	state.Explode: {Name: "explode", First: 0, Last: 5, Speed: 0.3},
}

func animation(m *entity.Model, id state.ID) entity.Animation {
	def := defaultAnimations[id]
	if a, ok := m.Animation(def.Name); ok {
		return a
	}
	return def
}

// Categories returns the collision probes of a walking monster.
func Categories(width, height float64) []tile.Category {
	knee := height / 3
	return []tile.Category{
		{Name: "leg", Kind: tile.KindLeg, Axis: tile.AxisY, Glue: true, Groups: legGroups},
		{Name: "knee_front", Kind: tile.KindKnee, Axis: tile.AxisX, OffsetX: width / 2, OffsetY: knee, Groups: kneeGroups},
		{Name: "knee_back", Kind: tile.KindKnee, Axis: tile.AxisX, OffsetX: -width / 2, OffsetY: knee, Groups: kneeGroups},
	}
}

var legGroups = []tile.Group{
	tile.GroupGround, tile.GroupGroundTop, tile.GroupBlock, tile.GroupSpike,
	tile.GroupSlopeRight1, tile.GroupSlopeRight2, tile.GroupSlopeRight3,
	tile.GroupSlopeLeft1, tile.GroupSlopeLeft2, tile.GroupSlopeLeft3,
	tile.GroupSteepRight1, tile.GroupSteepRight2, tile.GroupSteepLeft1, tile.GroupSteepLeft2,
	tile.GroupSlideRight, tile.GroupSlideLeft,
}

var kneeGroups = []tile.Group{
	tile.GroupBlock, tile.GroupPillar,
	tile.GroupSteepRight1, tile.GroupSteepRight2, tile.GroupSteepLeft1, tile.GroupSteepLeft2,
}

// monsterState is embedded by every monster state.
type monsterState struct {
	state.Base
	m *entity.Model
}

func newState(id state.ID, m *entity.Model) monsterState {
	return monsterState{Base: state.NewBase(id, m, animation(m, id)), m: m}
}

// OnCollideLeg treats spikes as plain ground: monsters walk on them unharmed.
func (s *monsterState) OnCollideLeg(r tile.Result) {
	if r.Tile.Group != tile.GroupSpike {
		s.Base.OnCollideLeg(r)
		return
	}
	state.SnapY(s.m, r)
	s.m.Body.ResetGravity()
	s.m.Jump.ZeroVertical()
	s.m.Flags.CollideY = true
}

func (s *monsterState) brake() {
	s.m.Movement.SetDestinationHorizontal(0)
}

// course is the patrol direction shared by the states of one monster.
// Horizontal patrols follow the facing; vertical ones keep their own sign.
type course struct {
	m    *entity.Model
	vdir float64
}

func newCourse(m *entity.Model) *course {
	c := &course{m: m, vdir: 1}
	if m.Patrol != nil && m.Patrol.Mirror {
		m.Mirrorable.Set(entity.MirrorHorizontal)
		c.vdir = -1
	}
	return c
}

// position returns the coordinate on the patrol axis.
func (c *course) position() float64 {
	if c.horizontal() {
		return c.m.Transform.X
	}
	return c.m.Transform.Y
}

func (c *course) horizontal() bool {
	return c.m.Patrol == nil || c.m.Patrol.IsHorizontal()
}

func (c *course) direction() float64 {
	if c.horizontal() {
		return c.m.Direction()
	}
	return c.vdir
}

// move sets the patrol motion for this tick.
func (c *course) move() {
	m := c.m
	speed := m.Tuning.WalkSpeed
	if m.Patrol != nil {
		speed = m.Patrol.Speed(c.position())
	}
	if c.horizontal() {
		m.Movement.SetDestinationHorizontal(c.direction() * speed)
		return
	}
	m.Body.ResetGravity()
	m.Movement.SetDestinationVertical(c.direction() * speed)
}

// reverse flips the patrol direction.
func (c *course) reverse() {
	if c.horizontal() {
		c.m.Face(-c.m.Direction())
		return
	}
	c.vdir = -c.vdir
}

func (c *course) stop() {
	c.m.Movement.ZeroHorizontal()
	if !c.horizontal() {
		c.m.Movement.ZeroVertical()
	}
}

// atBound reports the patrol bound reached; entities without a patrol have
// no bound.
func (c *course) atBound() bool {
	return c.m.HasPatrol() && c.m.Patrol.AtBound(c.position(), c.direction())
}

func (c *course) blocked() bool {
	return c.m.Patrol != nil && c.m.Patrol.Coll && c.m.Flags.CollideX
}

// delay returns the patrol pause in milliseconds.
func (c *course) delay() int {
	if c.m.Patrol == nil {
		return 0
	}
	return c.m.Patrol.Delay
}

// target returns the horizontal offset to the tracked target.
func target(m *entity.Model) (float64, bool) {
	if m.Target == nil {
		return 0, false
	}
	tx, _ := m.Target.Position()
	return tx - m.Transform.X, true
}

// guards are the transition predicates shared by monster states.
type guards struct {
	m *entity.Model
	c *course
}

func (g guards) hurt() bool     { return g.m.IsHurt() }
func (g guards) dead() bool     { return g.m.IsDead() }
func (g guards) finished() bool { return g.m.IsAnimFinished() }
func (g guards) patrol() bool   { return g.m.HasPatrol() }
func (g guards) landed() bool   { return g.m.Flags.Grounded() }
func (g guards) turn() bool     { return g.c.atBound() || g.c.blocked() }

func (g guards) airborne() bool {
	return g.c.horizontal() && !g.m.Flags.Grounded()
}

func (g guards) paused() bool {
	return g.m.Tick.ElapsedTime(g.m.Rate, g.c.delay())
}

func (g guards) and(a, b state.Guard) state.Guard {
	return func() bool { return a() && b() }
}

func (g guards) not(a state.Guard) state.Guard {
	return func() bool { return !a() }
}

// near reports the target within attack distance.
func (g guards) near() bool {
	dx, ok := target(g.m)
	if !ok || g.m.Patrol == nil {
		return false
	}
	return math.Abs(dx) <= float64(g.m.Patrol.Proximity)
}

// behind reports a visible target on the side the entity does not face.
func (g guards) behind() bool {
	dx, ok := target(g.m)
	if !ok || g.m.Patrol == nil {
		return false
	}
	return dx*g.m.Direction() < 0 && math.Abs(dx) <= float64(g.m.Patrol.Sight)
}
