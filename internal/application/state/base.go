package state

import (
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// SpikeDamage is the damage dealt by a spike tile contact.
const SpikeDamage = 1

// LegCollider receives leg probe hits.
type LegCollider interface {
	OnCollideLeg(r tile.Result)
}

// HandCollider receives hand probe hits.
type HandCollider interface {
	OnCollideHand(r tile.Result)
}

// KneeCollider receives knee probe hits.
type KneeCollider interface {
	OnCollideKnee(r tile.Result)
}

// HeadCollider receives head probe hits.
type HeadCollider interface {
	OnCollideHead(r tile.Result)
}

// BodyCollider receives body probe hits.
type BodyCollider interface {
	OnCollideBody(r tile.Result)
}

// Base carries what every state shares: the entity model, the animation it
// plays, its transitions and the default collision responses. Concrete
// states embed it and override what they need, calling the Base method to
// keep the default behaviour.
type Base struct {
	id          ID
	model       *entity.Model
	animation   entity.Animation
	transitions []Transition
}

// NewBase creates the shared part of a state.
func NewBase(id ID, model *entity.Model, animation entity.Animation) Base {
	return Base{id: id, model: model, animation: animation}
}

// ID returns the state id.
func (b *Base) ID() ID { return b.id }

// Model returns the entity model the state drives.
func (b *Base) Model() *entity.Model { return b.model }

// Animation returns the animation played on enter.
func (b *Base) Animation() entity.Animation { return b.animation }

// AddTransition registers a guarded edge. Registration order is priority
// order: the first satisfied guard wins.
func (b *Base) AddTransition(target ID, guard Guard) {
	b.transitions = append(b.transitions, Transition{Target: target, Guard: guard})
}

// Transitions returns the guarded edges in registration order.
func (b *Base) Transitions() []Transition { return b.transitions }

// Enter plays the state animation.
func (b *Base) Enter() {
	b.model.Animator.Play(b.animation)
}

// Update does nothing by default.
func (b *Base) Update(extrp float64) {}

// Exit does nothing by default.
func (b *Base) Exit() {}

// OnCollideLeg snaps the entity on the surface and marks it supported.
// Lianas only hold hands.
func (b *Base) OnCollideLeg(r tile.Result) {
	g := r.Tile.Group
	if g.IsLiana() {
		return
	}
	m := b.model
	SnapY(m, r)
	m.Body.ResetGravity()
	m.Jump.ZeroVertical()
	m.Flags.CollideY = true
	switch {
	case g.IsSteep():
		m.Flags.Steep = true
	case g.IsSlide():
		m.Flags.Slide = true
	case g == tile.GroupSpike:
		m.Flags.Spike = true
		m.Hurt(SpikeDamage)
	}
}

// OnCollideHand marks a liana in reach. Liana states override it to hang.
func (b *Base) OnCollideHand(r tile.Result) {
	g := r.Tile.Group
	switch {
	case g.IsLianaSteep():
		b.model.Flags.Grip = true
	case g.IsLiana():
		b.model.Flags.Liana = true
	}
}

// OnCollideKnee pushes the entity out of the wall and stops it.
func (b *Base) OnCollideKnee(r tile.Result) {
	m := b.model
	SnapX(m, r)
	m.Movement.ZeroHorizontal()
	m.Flags.CollideX = true
	if r.Tile.Group.IsSteep() {
		m.Flags.Steep = true
	}
}

// OnCollideHead stops the ascent under a ceiling.
func (b *Base) OnCollideHead(r tile.Result) {
	m := b.model
	SnapY(m, r)
	m.Jump.ZeroVertical()
	m.Flags.Ceiling = true
}

// OnCollideBody handles spikes and triggers met by the body.
func (b *Base) OnCollideBody(r tile.Result) {
	m := b.model
	switch r.Tile.Group {
	case tile.GroupSpike:
		m.Flags.Spike = true
		m.Hurt(SpikeDamage)
	case tile.GroupTrigger:
		m.Flags.Trigger = true
	}
}

// SnapX places the entity so that the probe abscissa equals the result.
func SnapX(m *entity.Model, r tile.Result) {
	if m.IsMirrored() {
		m.Transform.TeleportX(r.Value + r.Category.OffsetX)
		return
	}
	m.Transform.TeleportX(r.Value - r.Category.OffsetX)
}

// SnapY places the entity so that the probe ordinate equals the result.
func SnapY(m *entity.Model, r tile.Result) {
	m.Transform.TeleportY(r.Value - r.Category.OffsetY)
}
