package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Mirror is the facing of an entity sprite and of its mirrored probes.
type Mirror int

const (
	MirrorNone Mirror = iota
	MirrorHorizontal
)

func (m Mirror) String() string {
	if m == MirrorHorizontal {
		return "horizontal"
	}
	return "none"
}

// Mirrorable holds the current facing and the one requested for the next
// tick; sprites flip when the request is applied.
type Mirrorable struct {
	current Mirror
	next    Mirror
}

// Mirror requests a facing, applied by Update.
func (m *Mirrorable) Mirror(next Mirror) { m.next = next }

// Update applies the requested facing.
func (m *Mirrorable) Update() { m.current = m.next }

// Set applies a facing immediately.
func (m *Mirrorable) Set(mirror Mirror) {
	m.current = mirror
	m.next = mirror
}

// Is reports the current facing.
func (m *Mirrorable) Is(mirror Mirror) bool { return m.current == mirror }

// Current returns the current facing.
func (m *Mirrorable) Current() Mirror { return m.current }

// Flags are the sticky collision flags set by the collision pass and read
// by transition guards during the same tick. They are cleared before the
// next collision pass.
type Flags struct {
	CollideX bool // knee or body met a wall
	CollideY bool // leg stands on a surface
	Ceiling  bool // head met a ceiling
	Steep    bool // leg stands on a steep
	Slide    bool // leg stands on a slide ramp
	Liana    bool // hand holds a horizontal liana
	Grip     bool // hand holds a diagonal liana
	Spike    bool // leg or body touched spikes
	Border   bool // standing at a ledge with one leg in the void
	Trigger  bool // body crossed a trigger tile
}

// Reset clears every flag.
func (f *Flags) Reset() {
	*f = Flags{}
}

// Grounded reports a supported entity.
func (f *Flags) Grounded() bool {
	return f.CollideY || f.Steep || f.Slide
}

// Life is an entity health pool.
type Life struct {
	Current int
	Max     int
}

// NewLife creates a full pool.
func NewLife(max int) Life {
	return Life{Current: max, Max: max}
}

// Decrease removes points and reports death.
func (l *Life) Decrease(amount int) bool {
	l.Current -= amount
	if l.Current < 0 {
		l.Current = 0
	}
	return l.Current == 0
}

// IsEmpty reports a dead entity.
func (l *Life) IsEmpty() bool {
	return l.Current <= 0
}

// Fill restores the whole pool.
func (l *Life) Fill() {
	l.Current = l.Max
}
