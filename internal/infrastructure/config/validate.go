package config

import (
	"fmt"
	"unicode/utf8"
)

// ConfigError reports a missing or invalid attribute. It is an authoring
// error: the content must be fixed, nothing is retried.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Field, e.Value)
}

// Validate checks the physics settings.
func (c *PhysicsConfig) Validate() error {
	if c.Physics.TileSize <= 0 {
		return &ConfigError{Field: "physics.tileSize", Value: c.Physics.TileSize}
	}
	if c.Physics.Gravity < 0 {
		return &ConfigError{Field: "physics.gravity", Value: c.Physics.Gravity}
	}
	if c.Physics.GravityMax <= 0 {
		return &ConfigError{Field: "physics.gravityMax", Value: c.Physics.GravityMax}
	}
	if c.Display.Rate < 0 {
		return &ConfigError{Field: "display.rate", Value: c.Display.Rate}
	}
	return nil
}

// ExplosionEffect is the effect every stage may spawn.
const ExplosionEffect = "explosion"

// Validate checks the player and monster definitions and the effects the
// game spawns on its own.
func (c *EntitiesConfig) Validate() error {
	if err := c.Player.validate("player"); err != nil {
		return err
	}
	// breaking a liana spawns it mid-game
	if _, ok := c.Effects[ExplosionEffect]; !ok {
		return &ConfigError{Field: "effects." + ExplosionEffect, Value: "missing"}
	}
	for name, m := range c.Monsters {
		field := "monsters." + name
		if err := m.validate(field); err != nil {
			return err
		}
		switch m.Behavior {
		case BehaviorPatrol, BehaviorExecutioner:
		default:
			return &ConfigError{Field: field + ".behavior", Value: m.Behavior}
		}
	}
	return nil
}

func (c *EntityConfig) validate(field string) error {
	if c.Size.Width <= 0 || c.Size.Height <= 0 {
		return &ConfigError{Field: field + ".size", Value: c.Size}
	}
	if c.Life <= 0 {
		return &ConfigError{Field: field + ".life", Value: c.Life}
	}
	for name, a := range c.Animations {
		if a.Last < a.First || a.Speed <= 0 {
			return &ConfigError{Field: field + ".animations." + name, Value: a}
		}
	}
	return nil
}

// Validate checks the stage layout. Collision group names are resolved by
// the stage loader.
func (s *StageConfig) Validate() error {
	if s.ID == "" {
		return &ConfigError{Field: "id", Value: s.ID}
	}
	if s.TileSize <= 0 {
		return &ConfigError{Field: "tileSize", Value: s.TileSize}
	}
	if len(s.Layers.Collision) == 0 {
		return &ConfigError{Field: "layers.collision", Value: "empty"}
	}
	for key, mapping := range s.TileMapping {
		if utf8.RuneCountInString(key) != 1 {
			return &ConfigError{Field: "tileMapping", Value: key}
		}
		if mapping.Group == "" {
			return &ConfigError{Field: "tileMapping." + key + ".group", Value: mapping.Group}
		}
	}
	if len(s.Checkpoints) == 0 {
		return &ConfigError{Field: "checkpoints", Value: "empty"}
	}

	width, height := s.Bounds()
	for i, c := range s.Checkpoints {
		if c.TX < 0 || c.TX >= width || c.TY < 0 || c.TY >= height {
			return &ConfigError{Field: fmt.Sprintf("checkpoints[%d]", i), Value: fmt.Sprintf("%d,%d", c.TX, c.TY)}
		}
		if c.Next != nil && *c.Next == "" {
			return &ConfigError{Field: fmt.Sprintf("checkpoints[%d].next", i), Value: `""`}
		}
	}
	for i, e := range s.Entities {
		if e.Kind == "" {
			return &ConfigError{Field: fmt.Sprintf("entities[%d].kind", i), Value: e.Kind}
		}
		if e.TX < 0 || e.TX >= width || e.TY < 0 || e.TY >= height {
			return &ConfigError{Field: fmt.Sprintf("entities[%d]", i), Value: fmt.Sprintf("%d,%d", e.TX, e.TY)}
		}
	}
	return nil
}

// Bounds returns the stage size in tiles: the longest collision row and
// the row count.
func (s *StageConfig) Bounds() (width, height int) {
	for _, row := range s.Layers.Collision {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}
	return width, len(s.Layers.Collision)
}
