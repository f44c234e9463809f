package system

import (
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/force"
)

// PhysicsSystem integrates the entity forces into its transform
type PhysicsSystem struct{}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update advances the movement, jump and gravity forces one tick and moves
// the entity by their sum. The transform must have been backed up first.
func (s *PhysicsSystem) Update(m *entity.Model, extrp float64) {
	m.Movement.Update(extrp)
	m.Jump.Update(extrp)
	m.Body.Update(extrp)

	dx, dy := force.Sum(m.Movement, m.Jump)
	dy += m.Body.Force()
	m.Transform.Move(dx*extrp, dy*extrp)
}
