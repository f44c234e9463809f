package ecs

import (
	"github.com/younwookim/lionheart/internal/application/state"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/domain/tile"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// Tag classifies an actor for the systems that only handle some of them.
type Tag int

const (
	TagPlayer Tag = iota
	TagMonster
	TagEffect
)

func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagMonster:
		return "monster"
	case TagEffect:
		return "effect"
	}
	return "unknown"
}

// Actor is the full set of components of one entity: its model, its state
// machine and its collision probes in evaluation order.
type Actor struct {
	ID         EntityID
	Tag        Tag
	Model      *entity.Model
	States     *state.Handler
	Categories []tile.Category
}

// Rect returns the actor's bounding box: left, bottom, width, height.
func (a Actor) Rect() (x, y, w, h float64) {
	t := a.Model.Transform
	return t.X - t.Width/2, t.Y, t.Width, t.Height
}

// Overlaps reports whether two actors' bounding boxes intersect.
func (a Actor) Overlaps(b Actor) bool {
	x1, y1, w1, h1 := a.Rect()
	x2, y2, w2, h2 := b.Rect()
	return rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2)
}

// OverlapsRect reports whether the actor's bounding box intersects a box
// given by its left, bottom, width and height.
func (a Actor) OverlapsRect(x, y, w, h float64) bool {
	ax, ay, aw, ah := a.Rect()
	return rectsOverlap(ax, ay, aw, ah, x, y, w, h)
}

func rectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
