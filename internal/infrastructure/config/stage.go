package config

// StageConfig is the root config for stage files. Collision rows are listed
// top row first.
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	Next        *string                      `json:"next,omitempty" yaml:"next,omitempty"`
	TileSize    int                          `json:"tileSize" yaml:"tileSize"`
	Layers      LayersConfig                 `json:"layers" yaml:"layers"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping" yaml:"tileMapping"`
	Checkpoints []CheckpointConfig           `json:"checkpoints" yaml:"checkpoints"`
	Entities    []EntitySpawnConfig          `json:"entities,omitempty" yaml:"entities,omitempty"`
}

type LayersConfig struct {
	Collision []string `json:"collision" yaml:"collision"`
}

// TileMappingConfig binds a collision layer character to a tile.
type TileMappingConfig struct {
	Group   string `json:"group" yaml:"group"`
	Number  int    `json:"number" yaml:"number"`
	Pattern int    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

type PositionConfig struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// CheckpointConfig is a tile the player restarts from. Next optionally
// links the stage loaded when it is reached, Spawn optionally overrides the
// restart position (tile coordinates).
type CheckpointConfig struct {
	TX    int             `json:"tx" yaml:"tx"`
	TY    int             `json:"ty" yaml:"ty"`
	Next  *string         `json:"next,omitempty" yaml:"next,omitempty"`
	Spawn *PositionConfig `json:"spawn,omitempty" yaml:"spawn,omitempty"`
}

// EntitySpawnConfig places a feature on a tile.
type EntitySpawnConfig struct {
	Kind   string        `json:"kind" yaml:"kind"`
	TX     int           `json:"tx" yaml:"tx"`
	TY     int           `json:"ty" yaml:"ty"`
	Patrol *PatrolConfig `json:"patrol,omitempty" yaml:"patrol,omitempty"`
}

// PatrolConfig is the scripted motion of a monster. Amplitude and Offset
// are in tiles, Delay in milliseconds.
type PatrolConfig struct {
	SpeedH    float64 `json:"speedH" yaml:"speedH"`
	SpeedV    float64 `json:"speedV,omitempty" yaml:"speedV,omitempty"`
	Amplitude int     `json:"amplitude" yaml:"amplitude"`
	Offset    int     `json:"offset,omitempty" yaml:"offset,omitempty"`
	Mirror    bool    `json:"mirror,omitempty" yaml:"mirror,omitempty"`
	Coll      bool    `json:"coll,omitempty" yaml:"coll,omitempty"`
	Proximity int     `json:"proximity,omitempty" yaml:"proximity,omitempty"`
	Sight     int     `json:"sight,omitempty" yaml:"sight,omitempty"`
	Delay     int     `json:"delay,omitempty" yaml:"delay,omitempty"`
	Curve     bool    `json:"curve,omitempty" yaml:"curve,omitempty"`
}

// Start returns the first checkpoint: the stage start.
func (s *StageConfig) Start() (CheckpointConfig, bool) {
	if len(s.Checkpoints) == 0 {
		return CheckpointConfig{}, false
	}
	return s.Checkpoints[0], true
}

// SpawnTile returns where the player restarts from this checkpoint.
func (c CheckpointConfig) SpawnTile() (int, int) {
	if c.Spawn != nil {
		return c.Spawn.X, c.Spawn.Y
	}
	return c.TX, c.TY
}
