package system

import (
	"fmt"

	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
	"github.com/younwookim/lionheart/internal/ecs"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// Stage is a loaded stage: its collision map, checkpoints and placements in
// world coordinates.
type Stage struct {
	ID          string
	Name        string
	Next        *string
	Map         *tile.Map
	Checkpoints []Checkpoint
	Entities    []ecs.Placement
}

// Checkpoint is a tile the player restarts from once reached.
type Checkpoint struct {
	TX, TY int
	X, Y   float64 // restart position
	Next   *string
}

// SpawnPosition returns the world position of an entity standing on a
// tile: bottom-centre of the tile.
func SpawnPosition(tx, ty, tileSize int) (float64, float64) {
	size := float64(tileSize)
	return float64(tx)*size + size/2, float64(ty) * size
}

// LoadStage converts a StageConfig into a Stage. Collision rows are
// listed top first and stored bottom first.
func LoadStage(cfg *config.StageConfig) (*Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	width, height := cfg.Bounds()
	m := tile.NewMap(width, height, cfg.TileSize)

	groups := make(map[rune]tile.Group, len(cfg.TileMapping))
	for key, mapping := range cfg.TileMapping {
		g, err := tile.ParseGroup(mapping.Group)
		if err != nil {
			return nil, fmt.Errorf("failed to map tile %q: %w", key, err)
		}
		groups[[]rune(key)[0]] = g
	}

	for row, line := range cfg.Layers.Collision {
		ty := height - 1 - row
		for tx, char := range []rune(line) {
			g, ok := groups[char]
			if !ok {
				continue
			}
			mapping := cfg.TileMapping[string(char)]
			m.Set(tile.Tile{
				TX:      tx,
				TY:      ty,
				Number:  mapping.Number,
				Pattern: mapping.Pattern,
				Group:   g,
			})
		}
	}

	stage := &Stage{
		ID:   cfg.ID,
		Name: cfg.Name,
		Next: cfg.Next,
		Map:  m,
	}
	for _, cp := range cfg.Checkpoints {
		sx, sy := cp.SpawnTile()
		x, y := SpawnPosition(sx, sy, cfg.TileSize)
		stage.Checkpoints = append(stage.Checkpoints, Checkpoint{
			TX: cp.TX, TY: cp.TY,
			X: x, Y: y,
			Next: cp.Next,
		})
	}
	for _, e := range cfg.Entities {
		x, y := SpawnPosition(e.TX, e.TY, cfg.TileSize)
		stage.Entities = append(stage.Entities, ecs.Placement{
			Kind:   e.Kind,
			X:      x,
			Y:      y,
			Patrol: PatrolFromConfig(e.Patrol),
		})
	}
	return stage, nil
}

// Start returns the stage start checkpoint.
func (s *Stage) Start() Checkpoint {
	return s.Checkpoints[0]
}

// CheckpointAt returns the checkpoint on a tile.
func (s *Stage) CheckpointAt(tx, ty int) (Checkpoint, bool) {
	for _, cp := range s.Checkpoints {
		if cp.TX == tx && cp.TY == ty {
			return cp, true
		}
	}
	return Checkpoint{}, false
}

// PatrolFromConfig converts an authored patrol. Nil stays nil.
func PatrolFromConfig(c *config.PatrolConfig) *entity.Patrol {
	if c == nil {
		return nil
	}
	return &entity.Patrol{
		SpeedH:    c.SpeedH,
		SpeedV:    c.SpeedV,
		Amplitude: c.Amplitude,
		Offset:    c.Offset,
		Mirror:    c.Mirror,
		Coll:      c.Coll,
		Proximity: c.Proximity,
		Sight:     c.Sight,
		Delay:     c.Delay,
		Curve:     c.Curve,
	}
}
