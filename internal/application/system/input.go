package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem samples the keyboard and the first gamepad
type InputSystem struct {
	gamepads []ebiten.GamepadID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the buttons held during one tick
type InputState struct {
	Left  bool `json:"l,omitempty"`
	Right bool `json:"r,omitempty"`
	Up    bool `json:"u,omitempty"`
	Down  bool `json:"d,omitempty"`
	Fire  bool `json:"f,omitempty"`
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	in := InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ),
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Up = in.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		in.Down = in.Down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		in.Fire = in.Fire || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		break
	}
	return in
}

// Device is the polled controller of the player. It keeps the state of the
// previous tick so that Once queries fire on the press edge only.
type Device struct {
	current  InputState
	previous InputState
}

// NewDevice creates a device with nothing held.
func NewDevice() *Device {
	return &Device{}
}

// Feed installs the state of a new tick.
func (d *Device) Feed(in InputState) {
	d.previous = d.current
	d.current = in
}

// State returns the state of the current tick.
func (d *Device) State() InputState { return d.current }

// HorizontalDirection returns -1, 0 or 1. Opposite buttons cancel out.
func (d *Device) HorizontalDirection() float64 {
	return axis(d.current.Left, d.current.Right)
}

// VerticalDirection returns -1 for down, 1 for up.
func (d *Device) VerticalDirection() float64 {
	return axis(d.current.Down, d.current.Up)
}

func (d *Device) IsLeftOnce() bool  { return d.current.Left && !d.previous.Left }
func (d *Device) IsRightOnce() bool { return d.current.Right && !d.previous.Right }
func (d *Device) IsUpOnce() bool    { return d.current.Up && !d.previous.Up }
func (d *Device) IsDownOnce() bool  { return d.current.Down && !d.previous.Down }
func (d *Device) IsFire() bool      { return d.current.Fire }
func (d *Device) IsFireOnce() bool  { return d.current.Fire && !d.previous.Fire }

func axis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	default:
		return 0
	}
}
