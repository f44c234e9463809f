package monster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
	"github.com/younwookim/lionheart/internal/ecs"
)

const testTileSize = 16

var testTuning = entity.Tuning{
	WalkSpeed:       1,
	WalkVelocity:    0.5,
	WalkSensibility: 0.05,
	HurtForce:       1,
	Gravity:         0.35,
	GravityMax:      6,
	Life:            3,
}

type sounds struct{ played []string }

func (s *sounds) Play(name string) { s.played = append(s.played, name) }

type spawn struct {
	kind string
	x, y float64
}

type spawner struct{ spawns []spawn }

func (s *spawner) Spawn(kind string, x, y float64) {
	s.spawns = append(s.spawns, spawn{kind, x, y})
}

// follower is a target that keeps a fixed offset from a model.
type follower struct {
	m      *entity.Model
	offset float64
}

func (f *follower) Position() (float64, float64) {
	return f.m.Transform.X + f.offset, f.m.Transform.Y
}

type point struct{ x, y float64 }

func (p point) Position() (float64, float64) { return p.x, p.y }

func createFloor() *tile.Map {
	m := tile.NewMap(30, 6, testTileSize)
	for tx := 0; tx < 30; tx++ {
		m.SetTile(tx, 0, 1, tile.GroupGround)
	}
	return m
}

type rig struct {
	actor   ecs.Actor
	sfx     *sounds
	spawner *spawner

	physics   *system.PhysicsSystem
	collision *system.CollisionSystem
}

func newModel(x, y float64, tuning entity.Tuning, m *tile.Map) (*entity.Model, *sounds, *spawner) {
	sfx, sp := &sounds{}, &spawner{}
	model := entity.NewModel("goblin", x, y, 12, 24, tuning, entity.Deps{
		Map: m, Spawner: sp, Sfx: sfx, Rate: 60,
	})
	return model, sfx, sp
}

func newRig(m *entity.Model, h *state.Handler, sfx *sounds, sp *spawner) *rig {
	return &rig{
		actor:     ecs.Actor{ID: 1, Tag: ecs.TagMonster, Model: m, States: h, Categories: Categories(12, 24)},
		sfx:       sfx,
		spawner:   sp,
		physics:   system.NewPhysicsSystem(),
		collision: system.NewCollisionSystem(false),
	}
}

// step runs one tick of the simulation pipeline on the monster.
func (r *rig) step() {
	m := r.actor.Model
	m.Transform.Backup()
	r.actor.States.Update(1)
	r.physics.Update(m, 1)
	r.collision.Update(r.actor)
	m.Mirrorable.Update()
	m.Animator.Update(1)
	m.Tick.Update(1)
	r.actor.States.PostUpdate()
}

func (r *rig) stepUntil(t *testing.T, id state.ID, max int) {
	t.Helper()
	for i := 0; i < max && !r.actor.States.IsState(id); i++ {
		r.step()
	}
	require.True(t, r.actor.States.IsState(id), "still in %s", r.actor.States.Current().ID())
}

func newPatrolRig(t *testing.T, x float64, patrol *entity.Patrol) *rig {
	t.Helper()
	m, sfx, sp := newModel(x, 16, testTuning, createFloor())
	if patrol != nil {
		m.Patrol = entity.NewPatroller(*patrol, x, testTileSize)
	}
	h, err := BuildPatrol(m, "explosion", nil)
	require.NoError(t, err)
	return newRig(m, h, sfx, sp)
}

func TestPatrol_StartState(t *testing.T) {
	r := newPatrolRig(t, 100, &entity.Patrol{SpeedH: 1, Amplitude: 2})
	assert.True(t, r.actor.States.IsState(state.Walk))

	r = newPatrolRig(t, 100, nil)
	assert.True(t, r.actor.States.IsState(state.Idle))
}

func TestPatrol_TurnsAtBounds(t *testing.T) {
	r := newPatrolRig(t, 100, &entity.Patrol{SpeedH: 1, Amplitude: 2})
	m := r.actor.Model
	require.Equal(t, 68.0, m.Patrol.PositionMin)
	require.Equal(t, 132.0, m.Patrol.PositionMax)

	r.stepUntil(t, state.Turn, 200)
	assert.GreaterOrEqual(t, m.Transform.X, 132.0)

	r.stepUntil(t, state.Walk, 10)
	assert.True(t, m.IsMirrored())

	minX, maxX := m.Transform.X, m.Transform.X
	for i := 0; i < 400; i++ {
		r.step()
		minX = min(minX, m.Transform.X)
		maxX = max(maxX, m.Transform.X)
		require.Equal(t, 16.0, m.Transform.Y)
	}
	assert.InDelta(t, 68, minX, 1.5)
	assert.InDelta(t, 132, maxX, 1.5)
}

func TestPatrol_TurnsOnlyWithPatrol(t *testing.T) {
	// amplitude 0 means no bounds: a walking monster never turns
	r := newPatrolRig(t, 100, &entity.Patrol{SpeedH: 1})
	require.True(t, r.actor.States.IsState(state.Idle))
	r.actor.States.Change(state.Walk)

	for i := 0; i < 20; i++ {
		r.step()
		require.True(t, r.actor.States.IsState(state.Walk))
	}
	assert.Greater(t, r.actor.Model.Transform.X, 100.0)
}

func TestPatrol_TurnsOnWall(t *testing.T) {
	r := newPatrolRig(t, 100, &entity.Patrol{SpeedH: 1, Amplitude: 8, Coll: true})
	r.actor.Model.Map.SetTile(8, 1, 2, tile.GroupBlock)

	r.stepUntil(t, state.Turn, 100)

	assert.Equal(t, 122.0, r.actor.Model.Transform.X)
	r.step()
	assert.True(t, r.actor.Model.IsMirrored())
}

func TestPatrol_Vertical(t *testing.T) {
	tuning := testTuning
	tuning.Gravity = 0
	m, sfx, sp := newModel(40, 50, tuning, nil)
	m.Patrol = entity.NewPatroller(entity.Patrol{SpeedV: 1, Amplitude: 1}, 50, testTileSize)
	h, err := BuildPatrol(m, "", nil)
	require.NoError(t, err)
	r := newRig(m, h, sfx, sp)

	minY, maxY := m.Transform.Y, m.Transform.Y
	for i := 0; i < 300; i++ {
		r.step()
		minY = min(minY, m.Transform.Y)
		maxY = max(maxY, m.Transform.Y)
		require.Equal(t, 40.0, m.Transform.X)
	}
	assert.InDelta(t, 34, minY, 1.5)
	assert.InDelta(t, 66, maxY, 1.5)
	assert.False(t, h.IsState(state.Fall))
}

func TestPatrol_HurtResumes(t *testing.T) {
	r := newPatrolRig(t, 100, &entity.Patrol{SpeedH: 1, Amplitude: 2})
	m := r.actor.Model

	m.Hurt(1)
	r.step()
	require.True(t, r.actor.States.IsState(state.Hurt))
	assert.Equal(t, 2, m.Life.Current)
	assert.Equal(t, []string{SfxHurt}, r.sfx.played)

	r.stepUntil(t, state.Walk, 40)
	assert.False(t, m.IsHurt())
}

func TestPatrol_DiesAndExplodes(t *testing.T) {
	r := newPatrolRig(t, 100, nil)
	m := r.actor.Model
	m.Life.Current = 1

	m.Hurt(1)
	r.step()
	require.True(t, r.actor.States.IsState(state.Hurt))
	r.step()
	require.True(t, r.actor.States.IsState(state.Dead))

	assert.Equal(t, []string{SfxHurt, SfxDie}, r.sfx.played)
	require.Len(t, r.spawner.spawns, 1)
	assert.Equal(t, "explosion", r.spawner.spawns[0].kind)

	for i := 0; i < 60 && !m.IsDestroyed(); i++ {
		r.step()
	}
	assert.True(t, m.IsDestroyed())
}

func TestPatrol_SpikeIsGround(t *testing.T) {
	r := newPatrolRig(t, 40, nil)
	r.actor.Model.Map.SetTile(2, 0, 3, tile.GroupSpike)

	for i := 0; i < 10; i++ {
		r.step()
	}

	assert.True(t, r.actor.States.IsState(state.Idle))
	assert.Equal(t, 16.0, r.actor.Model.Transform.Y)
	assert.Equal(t, 3, r.actor.Model.Life.Current)
}

func TestPatrol_FallsThenWalks(t *testing.T) {
	m, sfx, sp := newModel(100, 60, testTuning, createFloor())
	m.Patrol = entity.NewPatroller(entity.Patrol{SpeedH: 1, Amplitude: 2}, 100, testTileSize)
	h, err := BuildPatrol(m, "", nil)
	require.NoError(t, err)
	r := newRig(m, h, sfx, sp)

	r.step()
	require.True(t, h.IsState(state.Fall))
	r.stepUntil(t, state.Walk, 60)
	assert.Equal(t, 16.0, m.Transform.Y)
}

var testAttack = Attack{PrepareDelay: 100, DefenseDelay: 100, Speed: 2}

func newExecutionerRig(t *testing.T, x float64, target entity.Trackable) *rig {
	t.Helper()
	m, sfx, sp := newModel(x, 16, testTuning, createFloor())
	m.Kind = "executioner"
	m.Target = target
	m.Patrol = entity.NewPatroller(entity.Patrol{
		SpeedH: 0.5, Amplitude: 4, Proximity: 24, Sight: 64,
	}, x, testTileSize)
	h, err := BuildExecutioner(m, testAttack, "explosion", nil)
	require.NoError(t, err)
	return newRig(m, h, sfx, sp)
}

func TestExecutioner_AttackSequence(t *testing.T) {
	target := &follower{offset: 20}
	r := newExecutionerRig(t, 200, target)
	target.m = r.actor.Model
	require.True(t, r.actor.States.IsState(state.Patrol))

	var visited []state.ID
	r.actor.States.OnChange(func(from, to state.ID) {
		visited = append(visited, to)
	})
	for i := 0; i < 200 && len(visited) < 5; i++ {
		r.step()
	}

	assert.Equal(t, []state.ID{state.Prepare, state.Attack1, state.Attack2, state.Defense, state.Patrol}, visited)
	assert.Equal(t, []string{SfxSword, SfxSword}, r.sfx.played)
	assert.True(t, r.actor.Model.Movement.IsMaxEnabled())
}

func TestExecutioner_RetreatsWithoutTarget(t *testing.T) {
	target := &follower{offset: 20}
	r := newExecutionerRig(t, 200, target)
	target.m = r.actor.Model

	r.step()
	require.True(t, r.actor.States.IsState(state.Prepare))
	target.offset = 200
	r.stepUntil(t, state.Patrol, 20)
}

func TestExecutioner_IsAttacking(t *testing.T) {
	target := &follower{offset: 20}
	r := newExecutionerRig(t, 200, target)
	target.m = r.actor.Model

	assert.False(t, IsAttacking(r.actor.States))
	r.stepUntil(t, state.Attack1, 20)
	assert.True(t, IsAttacking(r.actor.States))
}

func TestExecutioner_FacesTargetBehind(t *testing.T) {
	r := newExecutionerRig(t, 200, point{x: 160, y: 16})

	r.step()
	require.True(t, r.actor.States.IsState(state.Turn))
	r.step()

	assert.True(t, r.actor.Model.IsMirrored())
}

func TestExecutioner_DefenseBlocks(t *testing.T) {
	target := &follower{offset: 20}
	r := newExecutionerRig(t, 200, target)
	target.m = r.actor.Model
	m := r.actor.Model

	r.stepUntil(t, state.Defense, 100)
	m.Hurt(2)
	r.step()

	assert.True(t, r.actor.States.IsState(state.Defense))
	assert.False(t, m.IsHurt())
	assert.Equal(t, 3, m.Life.Current)
}

func TestExecutioner_HurtDefends(t *testing.T) {
	r := newExecutionerRig(t, 200, point{x: 1000, y: 16})
	m := r.actor.Model

	m.Hurt(1)
	r.step()
	require.True(t, r.actor.States.IsState(state.Hurt))
	r.stepUntil(t, state.Defense, 40)
	assert.Equal(t, 2, m.Life.Current)
}

func TestEffect_DestroyedWhenFinished(t *testing.T) {
	m := entity.NewModel("explosion", 40, 40, 0, 0, entity.Tuning{Life: 1}, entity.Deps{})
	h, err := BuildEffect(m, nil)
	require.NoError(t, err)
	r := newRig(m, h, nil, nil)
	r.actor.Categories = nil

	require.True(t, h.IsState(state.Explode))
	steps := 0
	for ; steps < 60 && !m.IsDestroyed(); steps++ {
		r.step()
	}

	assert.True(t, m.IsDestroyed())
	assert.InDelta(t, 21, steps, 2)
	assert.Equal(t, 40.0, m.Transform.Y)
}
