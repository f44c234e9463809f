package force

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForce_UpdateConvergesToDestination(t *testing.T) {
	f := New()
	f.SetVelocity(0.5)
	f.SetDestination(2, -1)

	f.Update(1)
	assert.InDelta(t, 0.5, f.DirectionHorizontal(), 1e-9)
	assert.InDelta(t, -0.5, f.DirectionVertical(), 1e-9)

	for i := 0; i < 10; i++ {
		f.Update(1)
	}
	assert.Equal(t, 2.0, f.DirectionHorizontal())
	assert.Equal(t, -1.0, f.DirectionVertical())
}

func TestForce_UpdateScalesWithExtrp(t *testing.T) {
	f := New()
	f.SetVelocity(0.5)
	f.SetDestination(4, 0)

	f.Update(2)

	assert.InDelta(t, 1.0, f.DirectionHorizontal(), 1e-9)
}

func TestForce_SensibilitySnaps(t *testing.T) {
	f := New()
	f.SetVelocity(0.3)
	f.SetSensibility(0.5)
	f.SetDestination(1, 0)

	f.Update(1) // 0.3, distance 0.7
	assert.InDelta(t, 0.3, f.DirectionHorizontal(), 1e-9)

	f.Update(1) // 0.6, distance 0.4 < 0.5 snaps
	assert.Equal(t, 1.0, f.DirectionHorizontal())
}

func TestForce_MaxCap(t *testing.T) {
	f := NewCapped(2, 3)
	f.SetDirection(5, -5)

	assert.Equal(t, 2.0, f.DirectionHorizontal())
	assert.Equal(t, -3.0, f.DirectionVertical())

	f.SetMaxEnabled(false)
	f.SetDirection(5, -5)
	assert.Equal(t, 5.0, f.DirectionHorizontal())

	f.SetMaxEnabled(true)
	assert.Equal(t, 2.0, f.DirectionHorizontal())
}

func TestForce_Zero(t *testing.T) {
	f := New()
	f.SetVelocity(1)
	f.SetDestination(3, 3)
	f.Update(1)

	f.Zero()
	f.Update(1)

	assert.True(t, f.IsZero())
}

func TestForce_CopyRestore(t *testing.T) {
	f := New()
	f.SetVelocity(0.25)
	snapshot := f.Copy()

	f.SetVelocity(4)
	assert.Equal(t, 4.0, f.Velocity())

	f.Restore(snapshot)
	assert.Equal(t, 0.25, f.Velocity())
}

func TestForce_IsDecreasingHorizontal(t *testing.T) {
	f := New()
	f.SetDirection(2, 0)
	f.SetDestination(0, 0)
	assert.True(t, f.IsDecreasingHorizontal())

	f.SetDestination(3, 0)
	assert.False(t, f.IsDecreasingHorizontal())

	f.SetDestination(-1, 0)
	assert.True(t, f.IsDecreasingHorizontal())
}

func TestSum(t *testing.T) {
	a := New()
	a.SetDirection(1, 2)
	b := New()
	b.SetDirection(-0.5, 3)

	dh, dv := Sum(a, b, nil)

	assert.Equal(t, 0.5, dh)
	assert.Equal(t, 5.0, dv)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(0, 0))
	assert.Equal(t, -1, Compare(-0.0001, 0))
	assert.Equal(t, 1, Compare(0.0001, 0))
}
