package entity

// Transform holds an entity position (bottom-centre, Y up) and the position
// it had before the current tick.
type Transform struct {
	X, Y       float64
	OldX, OldY float64
	Width      float64
	Height     float64
}

// NewTransform creates a transform at rest at the given world position.
func NewTransform(x, y, width, height float64) Transform {
	return Transform{
		X: x, Y: y,
		OldX: x, OldY: y,
		Width: width, Height: height,
	}
}

// Backup records the current position as the pre-update position.
func (t *Transform) Backup() {
	t.OldX = t.X
	t.OldY = t.Y
}

// Move displaces the transform. The caller is responsible for Backup.
func (t *Transform) Move(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// Teleport places the transform and its old position at the same spot.
func (t *Transform) Teleport(x, y float64) {
	t.X, t.Y = x, y
	t.OldX, t.OldY = x, y
}

// TeleportX corrects the current X only; the old X keeps the motion.
func (t *Transform) TeleportX(x float64) { t.X = x }

// TeleportY corrects the current Y only; the old Y keeps the motion.
func (t *Transform) TeleportY(y float64) { t.Y = y }

// Position returns the current position.
func (t *Transform) Position() (float64, float64) { return t.X, t.Y }

// IsFalling reports a downward motion during the last tick.
func (t *Transform) IsFalling() bool { return t.Y < t.OldY }

// IsRising reports an upward motion during the last tick.
func (t *Transform) IsRising() bool { return t.Y > t.OldY }

// IsMovingLeft reports a leftward motion during the last tick.
func (t *Transform) IsMovingLeft() bool { return t.X < t.OldX }

// IsMovingRight reports a rightward motion during the last tick.
func (t *Transform) IsMovingRight() bool { return t.X > t.OldX }

// Body accumulates gravity into a vertical force.
// Force is negative while falling.
type Body struct {
	Gravity    float64 // acceleration per tick
	GravityMax float64 // absolute terminal fall speed
	force      float64
}

// NewBody creates a body at rest.
func NewBody(gravity, gravityMax float64) Body {
	return Body{Gravity: gravity, GravityMax: gravityMax}
}

// Update accumulates gravity for one tick.
func (b *Body) Update(extrp float64) {
	b.force -= b.Gravity * extrp
	if b.force < -b.GravityMax {
		b.force = -b.GravityMax
	}
}

// ResetGravity cancels the accumulated fall. Calling it again changes nothing.
func (b *Body) ResetGravity() {
	b.force = 0
}

// Force returns the accumulated vertical force.
func (b *Body) Force() float64 { return b.force }

// SetForce overrides the accumulated vertical force.
func (b *Body) SetForce(f float64) { b.force = f }
