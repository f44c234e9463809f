package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMirrorable_RequestAppliedOnUpdate(t *testing.T) {
	var m Mirrorable

	m.Mirror(MirrorHorizontal)
	assert.True(t, m.Is(MirrorNone))

	m.Update()
	assert.True(t, m.Is(MirrorHorizontal))
	assert.Equal(t, "horizontal", m.Current().String())

	m.Set(MirrorNone)
	assert.True(t, m.Is(MirrorNone))
}

func TestFlags_Reset(t *testing.T) {
	f := Flags{CollideY: true, Liana: true, Steep: true}
	assert.True(t, f.Grounded())

	f.Reset()

	assert.Equal(t, Flags{}, f)
	assert.False(t, f.Grounded())
}

func TestLife(t *testing.T) {
	l := NewLife(3)

	assert.False(t, l.Decrease(2))
	assert.Equal(t, 1, l.Current)
	assert.True(t, l.Decrease(5))
	assert.Equal(t, 0, l.Current)
	assert.True(t, l.IsEmpty())

	l.Fill()
	assert.Equal(t, 3, l.Current)
}

func TestAnimator(t *testing.T) {
	t.Run("plays once then finishes", func(t *testing.T) {
		var a Animator
		a.Play(Animation{Name: "attack", First: 1, Last: 3, Speed: 1})

		a.Update(1)
		a.Update(1)
		assert.Equal(t, 3, a.Frame())
		assert.False(t, a.IsFinished())

		a.Update(1)
		assert.True(t, a.IsFinished())
		assert.Equal(t, 3, a.Frame())
	})

	t.Run("repeats", func(t *testing.T) {
		var a Animator
		a.Play(Animation{First: 0, Last: 1, Speed: 1, Repeat: true})

		a.Update(1)
		a.Update(1)
		assert.Equal(t, 0, a.Frame())
		assert.False(t, a.IsFinished())
	})

	t.Run("reverses then finishes", func(t *testing.T) {
		var a Animator
		a.Play(Animation{First: 0, Last: 1, Speed: 1, Reverse: true})

		a.Update(1)
		a.Update(1)
		require.Equal(t, AnimReversing, a.State())
		a.Update(1)
		a.Update(1)
		assert.True(t, a.IsFinished())
		assert.Equal(t, 0, a.Frame())
	})
}

func TestTick_ElapsedTime(t *testing.T) {
	var tick Tick
	assert.False(t, tick.ElapsedTime(60, 0), "stopped tick never elapses")

	tick.Restart()
	for i := 0; i < 29; i++ {
		tick.Update(1)
	}
	assert.False(t, tick.ElapsedTime(60, 500))

	tick.Update(1)
	assert.True(t, tick.ElapsedTime(60, 500))
	assert.Equal(t, 30.0, tick.Elapsed())
}

func TestPatroller(t *testing.T) {
	p := NewPatroller(Patrol{SpeedH: 1, Amplitude: 2, Offset: 1}, 100, 16)

	assert.True(t, p.HasPatrol())
	assert.True(t, p.IsHorizontal())
	assert.Equal(t, 84.0, p.PositionMin)
	assert.Equal(t, 148.0, p.PositionMax)
	assert.True(t, p.AtBound(148, 1))
	assert.False(t, p.AtBound(148, -1))
	assert.Equal(t, 1.0, p.Speed(120))

	none := NewPatroller(Patrol{SpeedH: 1}, 100, 16)
	assert.False(t, none.HasPatrol())

	var missing *Patroller
	assert.False(t, missing.HasPatrol())
}

func TestPatroller_CurveEasesNearBounds(t *testing.T) {
	p := NewPatroller(Patrol{SpeedH: 2, Amplitude: 2, Curve: true}, 0, 16)

	assert.Equal(t, 2.0, p.Speed(0))
	assert.Less(t, p.Speed(30), p.Speed(0))
	assert.Equal(t, 0.5, p.Speed(32))
}

func TestModel_Guards(t *testing.T) {
	m := NewModel("valdyn", 0, 0, 16, 32, Tuning{WalkSpeed: 2, Life: 3}, Deps{})

	assert.False(t, m.IsFire())
	assert.True(t, m.IsGoNone())
	assert.False(t, m.HasWin())
	m.SetWin()
	assert.True(t, m.HasWin())

	m.Hurt(1)
	m.Hurt(2)
	assert.True(t, m.IsHurt())
	assert.False(t, m.ConsumeHurt())
	assert.Equal(t, 1, m.Life.Current)
	assert.False(t, m.IsHurt())

	m.Face(-1)
	m.Mirrorable.Update()
	assert.True(t, m.IsMirrored())
	assert.Equal(t, -1.0, m.Direction())
}
