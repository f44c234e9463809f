package entity

// Input is the polled device state read by transition guards. Once queries
// are edge triggered; the others are level triggered.
type Input interface {
	HorizontalDirection() float64
	VerticalDirection() float64
	IsLeftOnce() bool
	IsRightOnce() bool
	IsUpOnce() bool
	IsDownOnce() bool
	IsFire() bool
	IsFireOnce() bool
}

// Spawner instantiates a feature (effect, monster) at a world position.
type Spawner interface {
	Spawn(kind string, x, y float64)
}

// Sfx plays a named sound event.
type Sfx interface {
	Play(name string)
}

// Trackable is anything with a world position, typically the player tracked
// by monsters.
type Trackable interface {
	Position() (float64, float64)
}

// NoInput is the device of entities without a controller.
type NoInput struct{}

func (NoInput) HorizontalDirection() float64 { return 0 }
func (NoInput) VerticalDirection() float64   { return 0 }
func (NoInput) IsLeftOnce() bool             { return false }
func (NoInput) IsRightOnce() bool            { return false }
func (NoInput) IsUpOnce() bool               { return false }
func (NoInput) IsDownOnce() bool             { return false }
func (NoInput) IsFire() bool                 { return false }
func (NoInput) IsFireOnce() bool             { return false }

type noSpawner struct{}

func (noSpawner) Spawn(string, float64, float64) {}

type noSfx struct{}

func (noSfx) Play(string) {}
