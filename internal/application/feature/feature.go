// Package feature registers the factories of every entity kind a stage can
// place or spawn: the player, the configured monsters and effects.
package feature

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/younwookim/lionheart/internal/application/monster"
	"github.com/younwookim/lionheart/internal/application/player"
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/application/system"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
	"github.com/younwookim/lionheart/internal/ecs"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// Env is what created entities are wired to. The world itself is their
// spawner and the player tracker.
type Env struct {
	Settings config.Settings
	Entities *config.EntitiesConfig
	Map      *tile.Map
	Input    entity.Input
	Sfx      entity.Sfx
	Logger   *log.Logger
}

// Register binds the player, every configured monster and effect into the
// world registry.
func Register(w *ecs.World, env Env) error {
	if env.Logger == nil {
		env.Logger = log.Default()
	}
	r := w.Registry()
	f := &factory{world: w, env: env}

	if err := r.Register(player.Kind, f.player); err != nil {
		return err
	}
	for name, cfg := range env.Entities.Monsters {
		if err := r.Register(name, func(p ecs.Placement) (ecs.Actor, error) {
			return f.monster(p, cfg)
		}); err != nil {
			return err
		}
	}
	for name, cfg := range env.Entities.Effects {
		if err := r.Register(name, func(p ecs.Placement) (ecs.Actor, error) {
			return f.effect(p, cfg)
		}); err != nil {
			return err
		}
	}
	env.Logger.Debug("features registered", "kinds", r.Kinds())
	return nil
}

type factory struct {
	world *ecs.World
	env   Env
}

func (f *factory) deps(input entity.Input) entity.Deps {
	return entity.Deps{
		Input:   input,
		Map:     f.env.Map,
		Spawner: f.world,
		Sfx:     f.env.Sfx,
		Target:  f.world,
		Rate:    f.env.Settings.Rate,
	}
}

func (f *factory) tuning(cfg config.EntityConfig) entity.Tuning {
	mv := cfg.Movement
	return entity.Tuning{
		WalkSpeed:       mv.WalkSpeed,
		WalkVelocity:    mv.WalkVelocity,
		WalkSensibility: mv.WalkSensibility,
		CrouchSpeed:     mv.CrouchSpeed,
		JumpForce:       mv.JumpForce,
		JumpDecay:       mv.JumpDecay,
		JumpSpeed:       mv.JumpSpeed,
		AttackJumpBoost: mv.AttackJumpBoost,
		LianaSpeed:      mv.LianaSpeed,
		SlideSpeed:      mv.SlideSpeed,
		SlideVelocity:   mv.SlideVelocity,
		HurtForce:       mv.HurtForce,
		Gravity:         f.env.Settings.Gravity,
		GravityMax:      f.env.Settings.GravityMax,
		Life:            cfg.Life,
	}
}

func (f *factory) player(p ecs.Placement) (ecs.Actor, error) {
	cfg := f.env.Entities.Player
	w, h := float64(cfg.Size.Width), float64(cfg.Size.Height)
	m := entity.NewModel(player.Kind, p.X, p.Y, w, h, f.tuning(cfg), f.deps(f.env.Input))
	setAnimations(m, cfg.Animations)

	states, err := player.Build(m, f.env.Logger)
	if err != nil {
		return ecs.Actor{}, fmt.Errorf("failed to build player: %w", err)
	}
	return ecs.Actor{
		Tag:        ecs.TagPlayer,
		Model:      m,
		States:     states,
		Categories: player.Categories(w, h),
	}, nil
}

func (f *factory) monster(p ecs.Placement, cfg config.EntityConfig) (ecs.Actor, error) {
	patrol := p.Patrol
	if patrol == nil {
		patrol = system.PatrolFromConfig(cfg.Patrol)
	}

	tuning := f.tuning(cfg)
	if patrol != nil {
		// the movement cap must admit the patrol speed
		tuning.WalkSpeed = math.Max(tuning.WalkSpeed, math.Max(patrol.SpeedH, patrol.SpeedV))
		if patrol.SpeedH == 0 && patrol.SpeedV != 0 {
			tuning.Gravity = 0
		}
	}

	w, h := float64(cfg.Size.Width), float64(cfg.Size.Height)
	m := entity.NewModel(p.Kind, p.X, p.Y, w, h, tuning, f.deps(nil))
	setAnimations(m, cfg.Animations)
	if patrol != nil {
		start := p.X
		if patrol.SpeedH == 0 && patrol.SpeedV != 0 {
			start = p.Y
		}
		m.Patrol = entity.NewPatroller(*patrol, start, f.tileSize())
	}

	effect := ""
	if _, ok := f.env.Entities.Effects[player.Explosion]; ok {
		effect = player.Explosion
	}

	var (
		states *state.Handler
		err    error
	)
	switch cfg.Behavior {
	case config.BehaviorExecutioner:
		states, err = monster.BuildExecutioner(m, monster.Attack{
			PrepareDelay: cfg.Attack.PrepareDelay,
			DefenseDelay: cfg.Attack.DefenseDelay,
			Speed:        cfg.Attack.Speed,
		}, effect, f.env.Logger)
	default:
		states, err = monster.BuildPatrol(m, effect, f.env.Logger)
	}
	if err != nil {
		return ecs.Actor{}, fmt.Errorf("failed to build %s: %w", p.Kind, err)
	}
	return ecs.Actor{
		Tag:        ecs.TagMonster,
		Model:      m,
		States:     states,
		Categories: monster.Categories(w, h),
	}, nil
}

func (f *factory) effect(p ecs.Placement, cfg config.EffectConfig) (ecs.Actor, error) {
	m := entity.NewModel(p.Kind, p.X, p.Y, 0, 0, entity.Tuning{Life: 1}, f.deps(nil))
	m.Map = nil
	setAnimations(m, map[string]config.AnimationConfig{"explode": cfg.Animation})

	states, err := monster.BuildEffect(m, f.env.Logger)
	if err != nil {
		return ecs.Actor{}, fmt.Errorf("failed to build %s: %w", p.Kind, err)
	}
	return ecs.Actor{Tag: ecs.TagEffect, Model: m, States: states}, nil
}

func setAnimations(m *entity.Model, animations map[string]config.AnimationConfig) {
	for name, a := range animations {
		m.Animations[name] = entity.Animation{
			Name:    name,
			First:   a.First,
			Last:    a.Last,
			Speed:   a.Speed,
			Reverse: a.Reverse,
			Repeat:  a.Repeat,
		}
	}
}

// tileSize is the unit of patrol amplitudes: the stage map's tiles.
func (f *factory) tileSize() int {
	if f.env.Map != nil {
		return f.env.Map.TileSize
	}
	return f.env.Settings.TileSize
}

// Setup builds the simulation of a stage: the stage map, a world knowing
// every configured feature and the populated entities.
func Setup(cfg *config.GameConfig, stageCfg *config.StageConfig, device *system.Device, sfx entity.Sfx, logger *log.Logger) (*system.Simulation, error) {
	if logger == nil {
		logger = log.Default()
	}
	stage, err := system.LoadStage(stageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", stageCfg.ID, err)
	}
	if device == nil {
		device = system.NewDevice()
	}

	settings := cfg.Physics.Settings()
	world := ecs.NewWorld(nil, logger)
	if err := Register(world, Env{
		Settings: settings,
		Entities: cfg.Entities,
		Map:      stage.Map,
		Input:    device,
		Sfx:      sfx,
		Logger:   logger,
	}); err != nil {
		return nil, err
	}

	sim := system.NewSimulation(world, stage, device, settings, logger)
	if err := sim.Populate(); err != nil {
		return nil, err
	}
	return sim, nil
}
