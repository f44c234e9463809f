package replay

import "github.com/younwookim/lionheart/internal/application/system"

// Version is the replay format written by the recorder.
const Version = "1.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F int  `json:"f"`           // Tick number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	U bool `json:"u,omitempty"` // Up
	D bool `json:"d,omitempty"` // Down
	A bool `json:"a,omitempty"` // Fire
}

// NewFrameInput records the buttons held at a tick.
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		A: in.Fire,
	}
}

// Input returns the recorded buttons.
func (f FrameInput) Input() system.InputState {
	return system.InputState{
		Left:  f.L,
		Right: f.R,
		Up:    f.U,
		Down:  f.D,
		Fire:  f.A,
	}
}

// ReplayData contains all data needed to replay a stage. The simulation
// has no randomness: the stage, the rate and the inputs are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Rate      int          `json:"rate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
