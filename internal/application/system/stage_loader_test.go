package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lionheart/internal/domain/tile"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

func strPtr(s string) *string { return &s }

func createTestStageConfig() *config.StageConfig {
	return &config.StageConfig{
		ID:       "test",
		TileSize: 16,
		Layers: config.LayersConfig{
			Collision: []string{
				"....T",
				"..123",
				"#####",
			},
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Group: "ground", Number: 1},
			"1": {Group: "slope_right_1", Number: 10},
			"2": {Group: "slope_right_2", Number: 11},
			"3": {Group: "slope_right_3", Number: 12},
			"T": {Group: "liana_top", Number: 20, Pattern: 2},
		},
		Checkpoints: []config.CheckpointConfig{
			{TX: 0, TY: 1},
			{TX: 3, TY: 2, Next: strPtr("next"), Spawn: &config.PositionConfig{X: 2, Y: 2}},
		},
		Entities: []config.EntitySpawnConfig{
			{Kind: "goblin", TX: 1, TY: 1, Patrol: &config.PatrolConfig{SpeedH: 0.5, Amplitude: 2}},
			{Kind: "goblin", TX: 2, TY: 1},
		},
	}
}

func TestLoadStage(t *testing.T) {
	t.Run("flips rows bottom first", func(t *testing.T) {
		stage, err := LoadStage(createTestStageConfig())
		require.NoError(t, err)

		m := stage.Map
		assert.Equal(t, 5, m.Width)
		assert.Equal(t, 3, m.Height)
		assert.Equal(t, 16, m.TileSize)
		for tx := 0; tx < 5; tx++ {
			assert.Equal(t, tile.GroupGround, m.Group(tx, 0))
		}
		assert.Equal(t, tile.GroupSlopeRight1, m.Group(2, 1))
		assert.Equal(t, tile.GroupSlopeRight3, m.Group(4, 1))
		assert.Equal(t, tile.GroupNone, m.Group(0, 1))

		liana, ok := m.Tile(4, 2)
		require.True(t, ok)
		assert.Equal(t, tile.GroupLianaTop, liana.Group)
		assert.Equal(t, 20, liana.Number)
		assert.Equal(t, 2, liana.Pattern)
	})

	t.Run("places checkpoints and spawns", func(t *testing.T) {
		stage, err := LoadStage(createTestStageConfig())
		require.NoError(t, err)

		start := stage.Start()
		assert.Equal(t, 8.0, start.X)
		assert.Equal(t, 16.0, start.Y)
		assert.Nil(t, start.Next)

		cp, ok := stage.CheckpointAt(3, 2)
		require.True(t, ok)
		assert.Equal(t, 40.0, cp.X, "spawn override")
		assert.Equal(t, 32.0, cp.Y)
		require.NotNil(t, cp.Next)
		assert.Equal(t, "next", *cp.Next)

		_, ok = stage.CheckpointAt(4, 0)
		assert.False(t, ok)

		require.Len(t, stage.Entities, 2)
		assert.Equal(t, "goblin", stage.Entities[0].Kind)
		assert.Equal(t, 24.0, stage.Entities[0].X)
		assert.Equal(t, 16.0, stage.Entities[0].Y)
		require.NotNil(t, stage.Entities[0].Patrol)
		assert.Equal(t, 2, stage.Entities[0].Patrol.Amplitude)
		assert.Nil(t, stage.Entities[1].Patrol)
	})

	t.Run("unknown group", func(t *testing.T) {
		cfg := createTestStageConfig()
		cfg.TileMapping["#"] = config.TileMappingConfig{Group: "lava"}

		_, err := LoadStage(cfg)
		var unknown *tile.UnknownGroupError
		require.ErrorAs(t, err, &unknown)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := createTestStageConfig()
		cfg.Checkpoints = nil

		_, err := LoadStage(cfg)
		var cfgErr *config.ConfigError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestLoadStage_Demo(t *testing.T) {
	loader := config.NewLoader("../../../cmd/lionheart/configs")
	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	stage, err := LoadStage(cfg)
	require.NoError(t, err)

	assert.Equal(t, tile.GroupGround, stage.Map.Group(0, 0))
	assert.Equal(t, tile.GroupSpike, stage.Map.Group(7, 1))
	assert.Equal(t, tile.GroupTrigger, stage.Map.Group(19, 3))
	assert.Equal(t, tile.GroupLianaFull, stage.Map.Group(8, 4))
}

func TestSpawnPosition(t *testing.T) {
	x, y := SpawnPosition(3, 2, 16)
	assert.Equal(t, 56.0, x)
	assert.Equal(t, 32.0, y)
}
