package entity

import (
	"github.com/younwookim/lionheart/internal/domain/force"
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// Tuning holds the movement parameters of an entity kind, in pixels per
// tick at the simulation rate.
type Tuning struct {
	WalkSpeed       float64
	WalkVelocity    float64
	WalkSensibility float64
	CrouchSpeed     float64
	JumpForce       float64 // initial upward force
	JumpDecay       float64 // convergence rate of the jump force back to zero
	JumpSpeed       float64 // horizontal speed while airborne
	AttackJumpBoost float64 // horizontal overshoot of the attack jump
	LianaSpeed      float64
	SlideSpeed      float64
	SlideVelocity   float64
	HurtForce       float64
	Gravity         float64
	GravityMax      float64
	Life            int
}

// Deps are the collaborators an entity is wired to at spawn time.
type Deps struct {
	Input   Input
	Map     *tile.Map
	Spawner Spawner
	Sfx     Sfx
	Target  Trackable
	Rate    int
}

// Model is the per-entity aggregate shared by all states of one entity.
// It is touched only during that entity's update pass.
type Model struct {
	ID         EntityID
	Kind       string
	Transform  Transform
	Movement   *force.Force
	Jump       *force.Force
	Body       Body
	Mirrorable Mirrorable
	Animator   Animator
	Flags      Flags
	Tick       Tick
	Life       Life
	Tuning     Tuning
	Patrol     *Patroller

	Input   Input
	Map     *tile.Map
	Spawner Spawner
	Sfx     Sfx
	Target  Trackable
	Rate    int

	Animations map[string]Animation

	hurt    int
	win     bool
	removed bool
}

// NewModel creates an entity at rest at (x, y).
func NewModel(kind string, x, y, width, height float64, tuning Tuning, deps Deps) *Model {
	m := &Model{
		Kind:       kind,
		Transform:  NewTransform(x, y, width, height),
		Movement:   force.NewCapped(tuning.WalkSpeed, tuning.WalkSpeed),
		Jump:       force.New(),
		Body:       NewBody(tuning.Gravity, tuning.GravityMax),
		Life:       NewLife(tuning.Life),
		Tuning:     tuning,
		Input:      deps.Input,
		Map:        deps.Map,
		Spawner:    deps.Spawner,
		Sfx:        deps.Sfx,
		Target:     deps.Target,
		Rate:       deps.Rate,
		Animations: make(map[string]Animation),
	}
	if m.Input == nil {
		m.Input = NoInput{}
	}
	if m.Spawner == nil {
		m.Spawner = noSpawner{}
	}
	if m.Sfx == nil {
		m.Sfx = noSfx{}
	}
	m.Movement.SetVelocity(tuning.WalkVelocity)
	m.Movement.SetSensibility(tuning.WalkSensibility)
	m.Jump.SetVelocity(tuning.JumpDecay)
	return m
}

// Animation returns a configured animation by name.
func (m *Model) Animation(name string) (Animation, bool) {
	a, ok := m.Animations[name]
	return a, ok
}

// Position returns the entity position, making any model Trackable.
func (m *Model) Position() (float64, float64) {
	return m.Transform.Position()
}

// IsFire reports the attack button held.
func (m *Model) IsFire() bool { return m.Input.IsFire() }

// IsFireOnce reports the attack button just pressed.
func (m *Model) IsFireOnce() bool { return m.Input.IsFireOnce() }

// IsGoLeft reports a held left direction.
func (m *Model) IsGoLeft() bool { return m.Input.HorizontalDirection() < 0 }

// IsGoRight reports a held right direction.
func (m *Model) IsGoRight() bool { return m.Input.HorizontalDirection() > 0 }

// IsGoHorizontal reports any held horizontal direction.
func (m *Model) IsGoHorizontal() bool { return m.Input.HorizontalDirection() != 0 }

// IsGoNone reports no held horizontal direction.
func (m *Model) IsGoNone() bool { return m.Input.HorizontalDirection() == 0 }

// IsGoUp reports a held up direction.
func (m *Model) IsGoUp() bool { return m.Input.VerticalDirection() > 0 }

// IsGoDown reports a held down direction.
func (m *Model) IsGoDown() bool { return m.Input.VerticalDirection() < 0 }

// IsGoLeftOnce reports left just pressed.
func (m *Model) IsGoLeftOnce() bool { return m.Input.IsLeftOnce() }

// IsGoRightOnce reports right just pressed.
func (m *Model) IsGoRightOnce() bool { return m.Input.IsRightOnce() }

// IsGoUpOnce reports up just pressed.
func (m *Model) IsGoUpOnce() bool { return m.Input.IsUpOnce() }

// IsGoDownOnce reports down just pressed.
func (m *Model) IsGoDownOnce() bool { return m.Input.IsDownOnce() }

// Is reports the current facing.
func (m *Model) Is(mirror Mirror) bool { return m.Mirrorable.Is(mirror) }

// IsMirrored reports a left facing entity.
func (m *Model) IsMirrored() bool { return m.Mirrorable.Is(MirrorHorizontal) }

// IsAnimFinished reports the current animation reached its end.
func (m *Model) IsAnimFinished() bool { return m.Animator.IsFinished() }

// HasPatrol reports whether the entity patrols between bounds.
func (m *Model) HasPatrol() bool { return m.Patrol.HasPatrol() }

// HasWin reports the stage end reached.
func (m *Model) HasWin() bool { return m.win }

// SetWin marks the stage end reached.
func (m *Model) SetWin() { m.win = true }

// Hurt registers damage taken this tick. The hurt state consumes it.
func (m *Model) Hurt(damage int) {
	if damage > m.hurt {
		m.hurt = damage
	}
}

// IsHurt reports pending damage.
func (m *Model) IsHurt() bool { return m.hurt > 0 }

// ConsumeHurt applies pending damage to the life pool and reports death.
func (m *Model) ConsumeHurt() bool {
	damage := m.hurt
	m.hurt = 0
	return m.Life.Decrease(damage)
}

// ClearHurt discards pending damage.
func (m *Model) ClearHurt() { m.hurt = 0 }

// IsDead reports an empty life pool.
func (m *Model) IsDead() bool { return m.Life.IsEmpty() }

// Destroy flags the entity for removal at the end of the tick.
func (m *Model) Destroy() { m.removed = true }

// IsDestroyed reports an entity flagged for removal.
func (m *Model) IsDestroyed() bool { return m.removed }

// Face turns the entity toward a horizontal direction.
func (m *Model) Face(dir float64) {
	if dir < 0 {
		m.Mirrorable.Mirror(MirrorHorizontal)
	} else if dir > 0 {
		m.Mirrorable.Mirror(MirrorNone)
	}
}

// Direction returns -1 when facing left, 1 otherwise.
func (m *Model) Direction() float64 {
	if m.IsMirrored() {
		return -1
	}
	return 1
}
