package player

// PrepareAttack raises the sword while the fire button is held.
type PrepareAttack struct{ playerState }

func (s *PrepareAttack) Enter() {
	s.playerState.Enter()
	s.m.Movement.ZeroHorizontal()
}

func (s *PrepareAttack) Update(extrp float64) { s.brake() }

// PreparedAttack holds the raised sword until a direction picks the swing.
type PreparedAttack struct{ playerState }

func (s *PreparedAttack) Update(extrp float64) { s.brake() }

// attacking is shared by the grounded swings.
type attacking struct{ playerState }

func (s *attacking) Enter() {
	s.playerState.Enter()
	s.m.Movement.ZeroHorizontal()
	s.m.Sfx.Play(SfxSword)
}

func (s *attacking) Update(extrp float64) { s.brake() }

// AttackHorizontal swings in front, toward the pressed side.
type AttackHorizontal struct{ attacking }

func (s *AttackHorizontal) Enter() {
	s.m.Face(s.m.Input.HorizontalDirection())
	s.attacking.Enter()
}

// AttackUp swings above the head.
type AttackUp struct{ attacking }

// AttackCrouch swings low while crouched.
type AttackCrouch struct{ attacking }
