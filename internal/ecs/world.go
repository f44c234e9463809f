package ecs

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// World holds all component maps and the next entity ID.
// Entities are updated in insertion order.
type World struct {
	nextID EntityID
	order  []EntityID

	// Components
	Model      map[EntityID]*entity.Model
	States     map[EntityID]*state.Handler
	Categories map[EntityID][]tile.Category
	Tags       map[EntityID]Tag

	// Tags
	IsPlayer  map[EntityID]struct{}
	IsMonster map[EntityID]struct{}
	IsEffect  map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID

	registry *Registry
	pending  []Placement
	logger   *log.Logger
}

// NewWorld creates a new empty world spawning features from the registry.
func NewWorld(registry *Registry, logger *log.Logger) *World {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &World{
		nextID:     1, // 0 is "nil"
		Model:      make(map[EntityID]*entity.Model),
		States:     make(map[EntityID]*state.Handler),
		Categories: make(map[EntityID][]tile.Category),
		Tags:       make(map[EntityID]Tag),
		IsPlayer:   make(map[EntityID]struct{}),
		IsMonster:  make(map[EntityID]struct{}),
		IsEffect:   make(map[EntityID]struct{}),
		registry:   registry,
		logger:     logger,
	}
}

// Registry returns the feature registry the world spawns from.
func (w *World) Registry() *Registry { return w.registry }

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Add stores an actor's components under a new ID.
func (w *World) Add(a Actor) EntityID {
	id := w.NewEntity()
	a.Model.ID = id

	w.Model[id] = a.Model
	w.States[id] = a.States
	w.Categories[id] = a.Categories
	w.Tags[id] = a.Tag
	switch a.Tag {
	case TagPlayer:
		w.IsPlayer[id] = struct{}{}
		w.PlayerID = id
	case TagMonster:
		w.IsMonster[id] = struct{}{}
	case TagEffect:
		w.IsEffect[id] = struct{}{}
	}
	w.order = append(w.order, id)

	x, y := a.Model.Position()
	w.logger.Debug("entity added", "id", id, "kind", a.Model.Kind, "x", x, "y", y)
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	if !w.Exists(id) {
		return
	}
	w.logger.Debug("entity removed", "id", id, "kind", w.Model[id].Kind)

	delete(w.Model, id)
	delete(w.States, id)
	delete(w.Categories, id)
	delete(w.Tags, id)
	delete(w.IsPlayer, id)
	delete(w.IsMonster, id)
	delete(w.IsEffect, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Exists checks if an entity has a Model component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Model[id]
	return ok
}

// Get returns the components of an entity.
func (w *World) Get(id EntityID) (Actor, bool) {
	m, ok := w.Model[id]
	if !ok {
		return Actor{}, false
	}
	return Actor{
		ID:         id,
		Tag:        w.Tags[id],
		Model:      m,
		States:     w.States[id],
		Categories: w.Categories[id],
	}, true
}

// Each calls fn for every entity in insertion order. Entities added or
// removed by fn are not visited.
func (w *World) Each(fn func(a Actor)) {
	ids := append([]EntityID(nil), w.order...)
	for _, id := range ids {
		if a, ok := w.Get(id); ok {
			fn(a)
		}
	}
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.order)
}

// CountMonsters returns the number of live monsters.
func (w *World) CountMonsters() int {
	return len(w.IsMonster)
}

// Player returns the player actor.
func (w *World) Player() (Actor, bool) {
	if w.PlayerID == 0 {
		return Actor{}, false
	}
	return w.Get(w.PlayerID)
}

// Position returns the player's position, making the world the Trackable
// target of monsters even before the player is spawned.
func (w *World) Position() (float64, float64) {
	if m, ok := w.Model[w.PlayerID]; ok {
		return m.Position()
	}
	return 0, 0
}

// Spawn queues a feature; queued features are created by Flush. An unknown
// kind is an authoring error and panics with an *UnknownFeatureError.
func (w *World) Spawn(kind string, x, y float64) {
	if !w.registry.Has(kind) {
		panic(&UnknownFeatureError{Kind: kind})
	}
	w.pending = append(w.pending, Placement{Kind: kind, X: x, Y: y})
}

// Create builds a feature from the registry and adds it immediately.
func (w *World) Create(p Placement) (EntityID, error) {
	a, err := w.registry.Create(p)
	if err != nil {
		return 0, err
	}
	return w.Add(a), nil
}

// Flush creates the features queued by Spawn.
func (w *World) Flush() error {
	pending := w.pending
	w.pending = nil
	for _, p := range pending {
		if _, err := w.Create(p); err != nil {
			return fmt.Errorf("failed to spawn %s: %w", p.Kind, err)
		}
	}
	return nil
}

// Sweep removes the entities flagged as destroyed.
func (w *World) Sweep() int {
	var removed []EntityID
	for _, id := range w.order {
		if w.Model[id].IsDestroyed() {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		w.DestroyEntity(id)
	}
	return len(removed)
}
