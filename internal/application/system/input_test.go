package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/lionheart/internal/domain/entity"
)

var _ entity.Input = (*Device)(nil)

func TestNewDevice(t *testing.T) {
	d := NewDevice()

	assert.Zero(t, d.HorizontalDirection())
	assert.Zero(t, d.VerticalDirection())
	assert.False(t, d.IsFire())
	assert.False(t, d.IsFireOnce())
}

func TestDevice_Directions(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		h, v float64
	}{
		{"left", InputState{Left: true}, -1, 0},
		{"right", InputState{Right: true}, 1, 0},
		{"opposite cancel", InputState{Left: true, Right: true}, 0, 0},
		{"up", InputState{Up: true}, 0, 1},
		{"down", InputState{Down: true}, 0, -1},
		{"diagonal", InputState{Down: true, Right: true}, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDevice()
			d.Feed(tt.in)

			assert.Equal(t, tt.h, d.HorizontalDirection())
			assert.Equal(t, tt.v, d.VerticalDirection())
		})
	}
}

func TestDevice_OnceFiresOnPressEdge(t *testing.T) {
	d := NewDevice()

	d.Feed(InputState{Fire: true, Up: true})
	assert.True(t, d.IsFire())
	assert.True(t, d.IsFireOnce())
	assert.True(t, d.IsUpOnce())

	t.Run("held", func(t *testing.T) {
		d.Feed(InputState{Fire: true, Up: true})
		assert.True(t, d.IsFire())
		assert.False(t, d.IsFireOnce())
		assert.False(t, d.IsUpOnce())
	})

	t.Run("released and pressed again", func(t *testing.T) {
		d.Feed(InputState{})
		assert.False(t, d.IsFire())

		d.Feed(InputState{Fire: true, Left: true, Down: true})
		assert.True(t, d.IsFireOnce())
		assert.True(t, d.IsLeftOnce())
		assert.True(t, d.IsDownOnce())
		assert.False(t, d.IsRightOnce())
	})
}

func TestDevice_State(t *testing.T) {
	d := NewDevice()
	in := InputState{Right: true, Fire: true}
	d.Feed(in)

	assert.Equal(t, in, d.State())
}
