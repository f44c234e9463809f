package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform_MoveKeepsOldPosition(t *testing.T) {
	tr := NewTransform(10, 20, 16, 32)

	tr.Backup()
	tr.Move(2, -3)

	assert.Equal(t, 12.0, tr.X)
	assert.Equal(t, 17.0, tr.Y)
	assert.Equal(t, 10.0, tr.OldX)
	assert.Equal(t, 20.0, tr.OldY)
	assert.True(t, tr.IsFalling())
	assert.True(t, tr.IsMovingRight())
	assert.False(t, tr.IsMovingLeft())
}

func TestTransform_TeleportAxis(t *testing.T) {
	tr := NewTransform(0, 50, 16, 32)
	tr.Backup()
	tr.Move(0, -10)

	tr.TeleportY(45)

	assert.Equal(t, 45.0, tr.Y)
	assert.Equal(t, 50.0, tr.OldY, "old position still reflects the motion")

	tr.Teleport(3, 4)
	assert.Equal(t, 3.0, tr.OldX)
	assert.Equal(t, 4.0, tr.OldY)
}

func TestBody_GravityAccumulatesAndCaps(t *testing.T) {
	b := NewBody(0.5, 1.2)

	b.Update(1)
	assert.Equal(t, -0.5, b.Force())

	b.Update(1)
	b.Update(1)
	assert.Equal(t, -1.2, b.Force())
}

func TestBody_ResetGravityIsIdempotent(t *testing.T) {
	once := NewBody(0.5, 5)
	once.Update(2)
	once.ResetGravity()

	twice := NewBody(0.5, 5)
	twice.Update(2)
	twice.ResetGravity()
	twice.ResetGravity()

	assert.Equal(t, once, twice)
	assert.Equal(t, 0.0, twice.Force())
}
