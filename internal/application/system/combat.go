package system

import (
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/ecs"
)

// Default combat tuning.
const (
	DefaultSwordReach    = 14.0
	DefaultSwordDamage   = 1
	DefaultContactDamage = 1
	DefaultAttackDamage  = 2
)

// swordStates are the player states whose sword hurts.
var swordStates = []state.ID{
	state.AttackHorizontal, state.AttackUp, state.AttackCrouch, state.AttackJump, state.AttackFall,
}

// axeStates are the monster states whose weapon hurts more than contact.
var axeStates = []state.ID{state.Attack1, state.Attack2}

// guardedStates are the player states that cannot be hurt.
var guardedStates = []state.ID{state.Hurt, state.Dead, state.Win}

// CombatSystem handles the sword of the player against monsters and the
// monsters against the player.
type CombatSystem struct {
	Reach         float64
	SwordDamage   int
	ContactDamage int
	AttackDamage  int

	// Event callbacks
	OnHit func(target ecs.EntityID)

	struck map[ecs.EntityID]struct{} // monsters hit by the current swing
}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{
		Reach:         DefaultSwordReach,
		SwordDamage:   DefaultSwordDamage,
		ContactDamage: DefaultContactDamage,
		AttackDamage:  DefaultAttackDamage,
		struck:        make(map[ecs.EntityID]struct{}),
	}
}

// Update resolves the hits of this tick. Damage is pending until the
// target's next transition pass.
func (s *CombatSystem) Update(w *ecs.World) {
	player, ok := w.Player()
	if !ok {
		return
	}

	swinging := isAny(player.States, swordStates)
	if !swinging {
		clear(s.struck)
	}

	guarded := isAny(player.States, guardedStates)
	w.Each(func(monster ecs.Actor) {
		if monster.Tag != ecs.TagMonster || monster.States.IsState(state.Dead) {
			return
		}

		if swinging {
			s.checkSword(player, monster)
		}
		if !guarded && monster.Overlaps(player) {
			damage := s.ContactDamage
			if isAny(monster.States, axeStates) {
				damage = s.AttackDamage
			}
			s.damage(player, damage)
		}
	})
}

func (s *CombatSystem) checkSword(player, monster ecs.Actor) {
	if _, hit := s.struck[monster.ID]; hit {
		return
	}
	x, y, w, h := s.swordRect(player)
	if !monster.OverlapsRect(x, y, w, h) {
		return
	}
	s.struck[monster.ID] = struct{}{}
	s.damage(monster, s.SwordDamage)
}

// swordRect returns the area swept by the sword: above the head for the
// upward swing, under the feet for the downward one, in front otherwise.
func (s *CombatSystem) swordRect(player ecs.Actor) (x, y, w, h float64) {
	m := player.Model
	t := m.Transform
	switch {
	case player.States.IsState(state.AttackUp):
		return t.X - t.Width/2, t.Y + t.Height, t.Width, s.Reach
	case player.States.IsState(state.AttackFall):
		return t.X - t.Width/2, t.Y - s.Reach, t.Width, s.Reach
	case player.States.IsState(state.AttackCrouch):
		h = t.Height / 2
	default:
		h = t.Height
	}
	w = t.Width/2 + s.Reach
	if m.Direction() < 0 {
		return t.X - w, t.Y, w, h
	}
	return t.X, t.Y, w, h
}

func (s *CombatSystem) damage(target ecs.Actor, amount int) {
	target.Model.Hurt(amount)
	if s.OnHit != nil {
		s.OnHit(target.ID)
	}
}

func isAny(h *state.Handler, ids []state.ID) bool {
	for _, id := range ids {
		if h.IsState(id) {
			return true
		}
	}
	return false
}
