package tile

import "math"

// Axis is the coordinate a probe resolves.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Kind names the hotspot family of a probe.
type Kind int

const (
	KindLeg Kind = iota
	KindHand
	KindKnee
	KindHead
	KindBody
)

var kindNames = [...]string{"leg", "hand", "knee", "head", "body"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a persisted probe kind name.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindLeg, false
}

// Category is a named probe: a point offset from the entity position that
// is tested against the tile groups it accepts.
type Category struct {
	Name    string
	Kind    Kind
	Axis    Axis
	OffsetX float64
	OffsetY float64
	// Glue keeps a leg or hand attached to a surface that moved away by
	// less than the horizontal step (walking down a slope, along a liana).
	Glue   bool
	Groups []Group
}

// Accepts reports whether the probe collides with the group.
func (c Category) Accepts(g Group) bool {
	for _, accepted := range c.Groups {
		if accepted == g {
			return true
		}
	}
	return false
}

// Point returns the probe's world position for an entity at (x, y).
// Mirrored entities flip the horizontal offset.
func (c Category) Point(x, y float64, mirrored bool) (float64, float64) {
	if mirrored {
		return x - c.OffsetX, y + c.OffsetY
	}
	return x + c.OffsetX, y + c.OffsetY
}

// Result is the transient outcome of a probe hit: the tile, the resolved
// probe coordinate on the category axis, and the probe that produced it.
type Result struct {
	Tile     *Tile
	Axis     Axis
	Value    float64
	Category Category
}

// Motion is a probe displacement over one tick.
type Motion struct {
	OldX, OldY float64
	X, Y       float64
	Glue       bool
}

// contactMargin keeps a resting leg in contact with the surface it stands on.
const contactMargin = 1.0

// Probe tests the category against the tiles crossed by the motion and
// returns the first accepted hit.
func (m *Map) Probe(c Category, mv Motion) (Result, bool) {
	var (
		v  float64
		t  *Tile
		ok bool
	)
	switch {
	case c.Axis == AxisX:
		t, v, ok = m.probeX(c, mv)
	case c.Kind == KindHead:
		t, v, ok = m.probeCeiling(c, mv)
	case c.Kind == KindHand:
		t, v, ok = m.probeHand(c, mv)
	case c.Kind == KindBody:
		t, v, ok = m.probeOverlap(c, mv)
	default:
		t, v, ok = m.probeLeg(c, mv)
	}
	if !ok {
		return Result{}, false
	}
	return Result{Tile: t, Axis: c.Axis, Value: v, Category: c}, true
}

// probeLeg finds the highest accepted surface the leg crossed downward,
// allowing a climb of one horizontal step for slopes.
func (m *Map) probeLeg(c Category, mv Motion) (*Tile, float64, bool) {
	if mv.Y > mv.OldY {
		return nil, 0, false
	}
	step := math.Abs(mv.X - mv.OldX)
	top := mv.OldY + step
	bottom := mv.Y - contactMargin
	if mv.Glue {
		bottom -= step
	}

	tx := m.InTileX(mv.X)
	for ty := m.InTileY(top); ty >= m.InTileY(bottom); ty-- {
		t, found := m.Tile(tx, ty)
		if !found || !c.Accepts(t.Group) {
			continue
		}
		v, hit := t.CollisionY(mv.X)
		if !hit || v > top || v < bottom {
			continue
		}
		if t.Group == GroupGroundTop && v > mv.OldY {
			continue
		}
		return t, v, true
	}
	return nil, 0, false
}

// probeHand finds a liana line crossed in either direction.
func (m *Map) probeHand(c Category, mv Motion) (*Tile, float64, bool) {
	lo, hi := math.Min(mv.OldY, mv.Y), math.Max(mv.OldY, mv.Y)
	if mv.Glue {
		step := math.Abs(mv.X-mv.OldX) + contactMargin
		lo -= step
		hi += step
	}

	tx := m.InTileX(mv.X)
	for ty := m.InTileY(hi); ty >= m.InTileY(lo); ty-- {
		t, found := m.Tile(tx, ty)
		if !found || !c.Accepts(t.Group) {
			continue
		}
		v, hit := t.CollisionY(mv.X)
		if hit && v >= lo && v <= hi {
			return t, v, true
		}
	}
	return nil, 0, false
}

// probeOverlap returns the accepted tile containing the probe point.
func (m *Map) probeOverlap(c Category, mv Motion) (*Tile, float64, bool) {
	t, found := m.TileAt(mv.X, mv.Y)
	if !found || !c.Accepts(t.Group) {
		return nil, 0, false
	}
	return t, mv.Y, true
}

// probeCeiling finds the first ceiling crossed upward.
func (m *Map) probeCeiling(c Category, mv Motion) (*Tile, float64, bool) {
	if mv.Y <= mv.OldY {
		return nil, 0, false
	}
	tx := m.InTileX(mv.X)
	for ty := m.InTileY(mv.OldY); ty <= m.InTileY(mv.Y); ty++ {
		t, found := m.Tile(tx, ty)
		if !found || !c.Accepts(t.Group) {
			continue
		}
		v, hit := t.CeilingY()
		if hit && v >= mv.OldY && v <= mv.Y {
			return t, v, true
		}
	}
	return nil, 0, false
}

// probeX finds the first wall crossed horizontally, in motion order.
func (m *Map) probeX(c Category, mv Motion) (*Tile, float64, bool) {
	if mv.X == mv.OldX {
		return nil, 0, false
	}
	right := mv.X > mv.OldX
	from, to := m.InTileX(mv.OldX), m.InTileX(mv.X)
	dir := 1
	if !right {
		dir = -1
	}
	ty := m.InTileY(mv.Y)
	for tx := from; ; tx += dir {
		if t, found := m.Tile(tx, ty); found && c.Accepts(t.Group) {
			if v, hit := t.CollisionX(mv.Y, right); hit {
				if right && v >= mv.OldX && v <= mv.X {
					return t, v, true
				}
				if !right && v <= mv.OldX && v >= mv.X {
					return t, v, true
				}
			}
		}
		if tx == to {
			break
		}
	}
	return nil, 0, false
}
