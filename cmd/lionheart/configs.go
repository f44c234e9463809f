package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loader reads the config directory given on the command line, or the
// configs built into the binary.
func (o *options) loader() (*config.Loader, error) {
	if o.configDir != "" {
		return config.NewLoader(o.configDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// load reads the base configs and applies the flag overrides.
func (o *options) load() (*config.Loader, *config.GameConfig, error) {
	loader, err := o.loader()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.rate > 0 {
		cfg.Physics.Display.Rate = o.rate
	}
	return loader, cfg, nil
}
