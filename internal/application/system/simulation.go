package system

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/ecs"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// PlayerKind is the feature tag of the player.
const PlayerKind = "player"

// Outcome is the progress of the player on the stage.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "running"
}

// Simulation runs the fixed tick pipeline over every entity of a stage.
type Simulation struct {
	World  *ecs.World
	Stage  *Stage
	Device *Device

	settings   config.Settings
	physics    *PhysicsSystem
	collision  *CollisionSystem
	combat     *CombatSystem
	checkpoint Checkpoint
	ticks      int
	logger     *log.Logger
}

// NewSimulation creates a simulation over a world whose registry already
// knows the player and every feature the stage places.
func NewSimulation(world *ecs.World, stage *Stage, device *Device, settings config.Settings, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.Default()
	}
	if device == nil {
		device = NewDevice()
	}
	return &Simulation{
		World:      world,
		Stage:      stage,
		Device:     device,
		settings:   settings,
		physics:    NewPhysicsSystem(),
		collision:  NewCollisionSystem(settings.DrawProbes),
		combat:     NewCombatSystem(),
		checkpoint: stage.Start(),
		logger:     logger,
	}
}

// Populate creates the player on the start checkpoint and the stage
// placements.
func (s *Simulation) Populate() error {
	if _, err := s.spawnPlayer(); err != nil {
		return err
	}
	for _, p := range s.Stage.Entities {
		if _, err := s.World.Create(p); err != nil {
			return fmt.Errorf("failed to place %s: %w", p.Kind, err)
		}
	}
	s.logger.Info("stage populated", "stage", s.Stage.ID, "entities", s.World.Count())
	return nil
}

func (s *Simulation) spawnPlayer() (ecs.EntityID, error) {
	id, err := s.World.Create(ecs.Placement{Kind: PlayerKind, X: s.checkpoint.X, Y: s.checkpoint.Y})
	if err != nil {
		return 0, fmt.Errorf("failed to spawn player: %w", err)
	}
	return id, nil
}

// Step feeds the input of this tick and advances every entity once, in
// insertion order: state update, physics, collision, animation and
// transitions. Spawned features appear and destroyed ones disappear at the
// end of the step.
func (s *Simulation) Step(in InputState, extrp float64) error {
	s.Device.Feed(in)
	s.collision.Begin()
	s.World.Each(func(a ecs.Actor) {
		s.update(a, extrp)
	})
	s.combat.Update(s.World)

	if err := s.World.Flush(); err != nil {
		return err
	}
	s.World.Sweep()
	s.reachCheckpoint()
	s.ticks++
	return nil
}

func (s *Simulation) update(a ecs.Actor, extrp float64) {
	m := a.Model
	m.Transform.Backup()
	a.States.Update(extrp)
	s.physics.Update(m, extrp)
	s.collision.Update(a)
	m.Mirrorable.Update()
	m.Animator.Update(extrp)
	m.Tick.Update(extrp)
	a.States.PostUpdate()
}

func (s *Simulation) reachCheckpoint() {
	player, ok := s.World.Player()
	if !ok {
		return
	}
	m := player.Model
	tx, ty := s.Stage.Map.InTileX(m.Transform.X), s.Stage.Map.InTileY(m.Transform.Y)
	cp, ok := s.Stage.CheckpointAt(tx, ty)
	if !ok || (cp.TX == s.checkpoint.TX && cp.TY == s.checkpoint.TY) {
		return
	}
	s.checkpoint = cp
	s.logger.Info("checkpoint reached", "tx", cp.TX, "ty", cp.TY)
}

// Respawn replaces the player by a fresh one on the last checkpoint.
func (s *Simulation) Respawn() error {
	if s.World.PlayerID != 0 {
		s.World.DestroyEntity(s.World.PlayerID)
	}
	_, err := s.spawnPlayer()
	return err
}

// Outcome reports whether the player won or died.
func (s *Simulation) Outcome() Outcome {
	player, ok := s.World.Player()
	if !ok {
		return Lost
	}
	switch {
	case player.States.IsState(state.Win):
		return Won
	case player.States.IsState(state.Dead):
		return Lost
	}
	return Running
}

// Checkpoint returns the checkpoint the player restarts from.
func (s *Simulation) Checkpoint() Checkpoint { return s.checkpoint }

// Ticks returns the number of steps run.
func (s *Simulation) Ticks() int { return s.ticks }

// Hits returns the probe hits of the last step when probes are recorded.
func (s *Simulation) Hits() []Hit { return s.collision.Hits() }

// Combat returns the combat system, to tune it or listen to hits.
func (s *Simulation) Combat() *CombatSystem { return s.combat }

// Settings returns the runtime settings.
func (s *Simulation) Settings() config.Settings { return s.settings }
