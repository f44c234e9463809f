package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lionheart/internal/application/feature"
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/ecs"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

const configDir = "../../../cmd/lionheart/configs"

func createDemoSimulation(t testing.TB) *system.Simulation {
	t.Helper()
	loader := config.NewLoader(configDir)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)
	stage, err := system.LoadStage(stageCfg)
	require.NoError(t, err)

	settings := cfg.Physics.Settings()
	device := system.NewDevice()
	world := ecs.NewWorld(nil, nil)
	require.NoError(t, feature.Register(world, feature.Env{
		Settings: settings,
		Entities: cfg.Entities,
		Map:      stage.Map,
		Input:    device,
	}))

	sim := system.NewSimulation(world, stage, device, settings, nil)
	require.NoError(t, sim.Populate())
	return sim
}

func player(t *testing.T, sim *system.Simulation) ecs.Actor {
	t.Helper()
	p, ok := sim.World.Player()
	require.True(t, ok)
	return p
}

func TestSimulation_Populate(t *testing.T) {
	sim := createDemoSimulation(t)

	assert.Equal(t, 3, sim.World.Count())
	assert.Equal(t, 2, sim.World.CountMonsters())

	x, y := player(t, sim).Model.Position()
	assert.Equal(t, 24.0, x)
	assert.Equal(t, 32.0, y)
	assert.Equal(t, system.Running, sim.Outcome())
}

func TestSimulation_IdleStageIsStable(t *testing.T) {
	sim := createDemoSimulation(t)

	for i := 0; i < 300; i++ {
		require.NoError(t, sim.Step(system.InputState{}, 1))
	}

	p := player(t, sim)
	assert.True(t, p.States.IsState(state.Idle))
	assert.Equal(t, 32.0, p.Model.Transform.Y)
	assert.Equal(t, 4, p.Model.Life.Current)
	assert.Equal(t, 3, sim.World.Count())
	assert.Equal(t, 300, sim.Ticks())
	assert.Equal(t, system.Running, sim.Outcome())

	sim.World.Each(func(a ecs.Actor) {
		if a.Tag == ecs.TagMonster {
			assert.False(t, a.States.IsState(state.Fall), a.Model.Kind)
		}
	})
}

func TestSimulation_GoblinHurtsPlayer(t *testing.T) {
	sim := createDemoSimulation(t)
	var hits []ecs.EntityID
	sim.Combat().OnHit = func(target ecs.EntityID) { hits = append(hits, target) }
	p := player(t, sim)

	for i := 0; i < 150 && p.Model.Life.Current == 4; i++ {
		require.NoError(t, sim.Step(system.InputState{Right: true}, 1))
	}

	assert.Equal(t, 3, p.Model.Life.Current)
	require.NotEmpty(t, hits)
	assert.Equal(t, p.ID, hits[0])
}

func TestSimulation_ReachCheckpoint(t *testing.T) {
	sim := createDemoSimulation(t)
	start := sim.Checkpoint()
	assert.Equal(t, 1, start.TX)

	player(t, sim).Model.Transform.Teleport(248, 48)
	require.NoError(t, sim.Step(system.InputState{}, 1))

	cp := sim.Checkpoint()
	assert.Equal(t, 15, cp.TX)
	assert.Equal(t, 3, cp.TY)
	assert.Equal(t, 232.0, cp.X)
	assert.Equal(t, 48.0, cp.Y)

	old := sim.World.PlayerID
	require.NoError(t, sim.Respawn())
	assert.NotEqual(t, old, sim.World.PlayerID)
	assert.False(t, sim.World.Exists(old))

	x, y := player(t, sim).Model.Position()
	assert.Equal(t, 232.0, x)
	assert.Equal(t, 48.0, y)
}

func TestSimulation_RecordsProbeHits(t *testing.T) {
	sim := createDemoSimulation(t)
	require.True(t, sim.Settings().DrawProbes)

	require.NoError(t, sim.Step(system.InputState{}, 1))

	var legs int
	for _, h := range sim.Hits() {
		if h.Result.Category.Name == "leg" {
			legs++
		}
	}
	assert.Equal(t, 3, legs)
}

func TestSimulation_LostWithoutPlayer(t *testing.T) {
	sim := createDemoSimulation(t)

	sim.World.DestroyEntity(sim.World.PlayerID)

	assert.Equal(t, system.Lost, sim.Outcome())
	assert.Equal(t, "lost", sim.Outcome().String())
}

func BenchmarkSimulation_Step(b *testing.B) {
	sim := createDemoSimulation(b)
	in := system.InputState{Right: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if sim.Outcome() != system.Running {
			if err := sim.Respawn(); err != nil {
				b.Fatal(err)
			}
		}
		if err := sim.Step(in, 1); err != nil {
			b.Fatal(err)
		}
	}
}
