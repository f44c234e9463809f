package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display"`
	Physics PhysicsSettings `json:"physics"`
	Debug   DebugConfig     `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Rate         int `json:"rate"` // simulation ticks per second
}

type PhysicsSettings struct {
	TileSize   int     `json:"tileSize"`
	Gravity    float64 `json:"gravity"`    // pixels per tick per tick
	GravityMax float64 `json:"gravityMax"` // pixels per tick
}

type DebugConfig struct {
	Probes      bool `json:"probes"`
	Transitions bool `json:"transitions"`
}

// Settings is the runtime configuration threaded through construction.
type Settings struct {
	Rate         int
	TileSize     int
	Gravity      float64
	GravityMax   float64
	ScreenWidth  int
	ScreenHeight int
	Scale        int
	Debug        bool
	DrawProbes   bool
}

// DefaultRate is the simulation rate used when none is configured.
const DefaultRate = 60

// Settings derives the runtime settings from the physics config.
func (c *PhysicsConfig) Settings() Settings {
	rate := c.Display.Rate
	if rate <= 0 {
		rate = DefaultRate
	}
	scale := c.Display.Scale
	if scale <= 0 {
		scale = 1
	}
	return Settings{
		Rate:         rate,
		TileSize:     c.Physics.TileSize,
		Gravity:      c.Physics.Gravity,
		GravityMax:   c.Physics.GravityMax,
		ScreenWidth:  c.Display.ScreenWidth,
		ScreenHeight: c.Display.ScreenHeight,
		Scale:        scale,
		Debug:        c.Debug.Transitions,
		DrawProbes:   c.Debug.Probes,
	}
}

// Extrp returns the frame-time normalisation factor of a frame lasting
// the given number of seconds.
func (s Settings) Extrp(seconds float64) float64 {
	if s.Rate <= 0 {
		return 1
	}
	return seconds * float64(s.Rate)
}
