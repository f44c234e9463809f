package system

import (
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
	"github.com/younwookim/lionheart/internal/ecs"
)

// Hit is a probe hit of the last collision pass, kept for debug drawing.
type Hit struct {
	Entity ecs.EntityID
	Result tile.Result
}

// CollisionSystem resolves entity probes against the tile map and hands
// each hit to the active state.
type CollisionSystem struct {
	record bool
	hits   []Hit
}

// NewCollisionSystem creates a collision system. When record is set, the
// hits of the last pass are kept for debug drawing.
func NewCollisionSystem(record bool) *CollisionSystem {
	return &CollisionSystem{record: record}
}

// Begin starts a new pass over all entities.
func (s *CollisionSystem) Begin() {
	s.hits = s.hits[:0]
}

// Hits returns the hits recorded since Begin.
func (s *CollisionSystem) Hits() []Hit {
	return s.hits
}

// Update clears the sticky flags of the actor and runs its categories in
// declared order. Each category sees the position corrected by the ones
// before it.
func (s *CollisionSystem) Update(a ecs.Actor) {
	m := a.Model
	if m.Map == nil || a.States == nil {
		return
	}
	previous := m.Flags
	m.Flags.Reset()

	for _, c := range a.Categories {
		r, ok := m.Map.Probe(c, motion(m, c, previous))
		if !ok {
			continue
		}
		if s.record {
			s.hits = append(s.hits, Hit{Entity: a.ID, Result: r})
		}
		dispatch(a.States.Current(), r)
	}
}

// motion returns the probe displacement of the last tick. Glue applies
// only to a probe that was holding on during the previous tick.
func motion(m *entity.Model, c tile.Category, previous entity.Flags) tile.Motion {
	mirrored := m.IsMirrored()
	ox, oy := c.Point(m.Transform.OldX, m.Transform.OldY, mirrored)
	x, y := c.Point(m.Transform.X, m.Transform.Y, mirrored)

	glue := false
	if c.Glue {
		switch c.Kind {
		case tile.KindHand:
			glue = previous.Liana || previous.Grip
		default:
			glue = previous.CollideY || previous.Steep || previous.Slide
		}
	}
	return tile.Motion{OldX: ox, OldY: oy, X: x, Y: y, Glue: glue}
}

func dispatch(current state.State, r tile.Result) {
	switch r.Category.Kind {
	case tile.KindLeg:
		if c, ok := current.(state.LegCollider); ok {
			c.OnCollideLeg(r)
		}
	case tile.KindHand:
		if c, ok := current.(state.HandCollider); ok {
			c.OnCollideHand(r)
		}
	case tile.KindKnee:
		if c, ok := current.(state.KneeCollider); ok {
			c.OnCollideKnee(r)
		}
	case tile.KindHead:
		if c, ok := current.(state.HeadCollider); ok {
			c.OnCollideHead(r)
		}
	case tile.KindBody:
		if c, ok := current.(state.BodyCollider); ok {
			c.OnCollideBody(r)
		}
	}
}
