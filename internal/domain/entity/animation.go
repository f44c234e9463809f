package entity

// Animation describes a frame range played by a state.
type Animation struct {
	Name    string
	First   int
	Last    int
	Speed   float64 // frames per tick
	Reverse bool    // play back once the last frame is reached
	Repeat  bool
}

// AnimState is the play state of an Animator.
type AnimState int

const (
	AnimStopped AnimState = iota
	AnimPlaying
	AnimReversing
	AnimFinished
)

// Animator advances the current animation every tick.
type Animator struct {
	anim  Animation
	frame float64
	state AnimState
}

// Play starts an animation from its first frame.
func (a *Animator) Play(anim Animation) {
	a.anim = anim
	a.frame = float64(anim.First)
	a.state = AnimPlaying
}

// Update advances the animation.
func (a *Animator) Update(extrp float64) {
	switch a.state {
	case AnimPlaying:
		a.frame += a.anim.Speed * extrp
		if a.frame >= float64(a.anim.Last+1) {
			switch {
			case a.anim.Reverse:
				a.frame = float64(a.anim.Last)
				a.state = AnimReversing
			case a.anim.Repeat:
				a.frame = float64(a.anim.First)
			default:
				a.frame = float64(a.anim.Last)
				a.state = AnimFinished
			}
		}
	case AnimReversing:
		a.frame -= a.anim.Speed * extrp
		if a.frame < float64(a.anim.First) {
			a.frame = float64(a.anim.First)
			if a.anim.Repeat {
				a.state = AnimPlaying
			} else {
				a.state = AnimFinished
			}
		}
	}
}

// Frame returns the current frame index.
func (a *Animator) Frame() int { return int(a.frame) }

// SetFrame jumps to a frame of the current animation.
func (a *Animator) SetFrame(frame int) { a.frame = float64(frame) }

// Stop freezes the animation.
func (a *Animator) Stop() { a.state = AnimStopped }

// State returns the play state.
func (a *Animator) State() AnimState { return a.state }

// Current returns the animation being played.
func (a *Animator) Current() Animation { return a.anim }

// IsFinished reports a non repeating animation that reached its end.
func (a *Animator) IsFinished() bool { return a.state == AnimFinished }
