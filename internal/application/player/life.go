package player

// Hurt applies the pending damage and knocks the player back. Damage taken
// while recovering is discarded.
type Hurt struct{ playerState }

func (s *Hurt) Enter() {
	s.playerState.Enter()
	m := s.m
	m.ConsumeHurt()
	m.Body.ResetGravity()
	m.Movement.SetDirection(-m.Direction()*m.Tuning.HurtForce, 0)
	m.Jump.SetDirection(0, m.Tuning.HurtForce)
	m.Sfx.Play(SfxHurt)
}

func (s *Hurt) Update(extrp float64) { s.brake() }

func (s *Hurt) Exit() { s.m.ClearHurt() }

// Dead is terminal.
type Dead struct{ playerState }

func (s *Dead) Enter() {
	s.playerState.Enter()
	s.m.Movement.Zero()
	s.m.Jump.Zero()
	s.m.Sfx.Play(SfxDie)
}

func (s *Dead) Update(extrp float64) { s.brake() }

// Win is terminal: the stage end was reached.
type Win struct{ playerState }

func (s *Win) Enter() {
	s.playerState.Enter()
	s.m.Movement.Zero()
	s.m.Jump.Zero()
}

func (s *Win) Update(extrp float64) { s.brake() }
