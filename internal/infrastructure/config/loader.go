package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration from files using fs.FS interface.
// Physics and entities are JSON; stages are YAML with a JSON fallback.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from.
func (l *Loader) BasePath() string { return l.basePath }

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics.json: %w", err)
	}

	return &cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	data, err := fs.ReadFile(l.fsys, "entities.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read entities.json: %w", err)
	}

	var cfg EntitiesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entities.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("entities.json: %w", err)
	}

	return &cfg, nil
}

// LoadStage loads stages/<name>.yaml, or stages/<name>.json when no YAML
// file exists.
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig

	data, err := fs.ReadFile(l.fsys, "stages/"+name+".yaml")
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		data, err = fs.ReadFile(l.fsys, "stages/"+name+".json")
		if err != nil {
			return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return &cfg, nil
}

// ListStages returns the names of the stages available to the loader.
func (l *Loader) ListStages() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, "stages")
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if ext != ".yaml" && ext != ".json" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

// SaveStage writes a stage as YAML to a file path.
func SaveStage(filename string, cfg *StageConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("stage %s: %w", cfg.ID, err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode stage %s: %w", cfg.ID, err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create stage directory: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write stage %s: %w", cfg.ID, err)
	}
	return nil
}

// StagePath returns where SaveStage writes a stage of the loader's directory.
func (l *Loader) StagePath(name string) string {
	return filepath.Join(l.basePath, "stages", name+".yaml")
}
