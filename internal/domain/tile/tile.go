package tile

// LianaBrokenOffset is added to a full liana tile number when an attack
// breaks it.
const LianaBrokenOffset = 206

// gradients is the fixed offset table: a slope spans three tiles on one
// row (sub-segments 1..3), a steep spans two, lianas and slides span one.
// Sub-segment k starts (k-1) tile widths up the ramp.
var gradients = map[Group]float64{
	GroupSlopeRight1: 1.0 / 3,
	GroupSlopeRight2: 1.0 / 3,
	GroupSlopeRight3: 1.0 / 3,
	GroupSlopeLeft1:  1.0 / 3,
	GroupSlopeLeft2:  1.0 / 3,
	GroupSlopeLeft3:  1.0 / 3,
	GroupSteepRight1: 0.5,
	GroupSteepRight2: 0.5,
	GroupSteepLeft1:  0.5,
	GroupSteepLeft2:  0.5,
	GroupLianaLeft:   1,
	GroupLianaRight:  1,
	GroupSlideRight:  1,
	GroupSlideLeft:   1,
}

// Tile is one cell of the collision map.
type Tile struct {
	TX, TY  int
	Size    int
	Number  int
	Pattern int
	Group   Group
}

// Left returns the world X of the tile's left edge.
func (t *Tile) Left() float64 { return float64(t.TX * t.Size) }

// Right returns the world X of the tile's right edge.
func (t *Tile) Right() float64 { return float64((t.TX + 1) * t.Size) }

// Bottom returns the world Y of the tile's bottom edge.
func (t *Tile) Bottom() float64 { return float64(t.TY * t.Size) }

// Top returns the world Y of the tile's top edge.
func (t *Tile) Top() float64 { return float64((t.TY + 1) * t.Size) }

// Center returns the world centre of the tile.
func (t *Tile) Center() (x, y float64) {
	half := float64(t.Size) / 2
	return t.Left() + half, t.Bottom() + half
}

// CollisionY returns the surface height at world x. The second result is
// false when the tile has no vertical surface there.
func (t *Tile) CollisionY(x float64) (float64, bool) {
	size := float64(t.Size)
	lx := x - t.Left()
	if lx < 0 || lx >= size {
		return 0, false
	}

	switch t.Group {
	case GroupGround, GroupGroundTop, GroupBlock, GroupSpike,
		GroupLianaTop, GroupLianaFull:
		return t.Top(), true
	}

	gradient, ok := gradients[t.Group]
	if !ok {
		return 0, false
	}
	if !t.Group.rightward() {
		lx = size - lx
	}
	h := (float64(t.Group.segment())*size + lx) * gradient
	if h > size {
		h = size
	}
	return t.Bottom() + h, true
}

// CeilingY returns the underside of a tile that blocks upward motion.
func (t *Tile) CeilingY() (float64, bool) {
	if t.Group == GroupBlock {
		return t.Bottom(), true
	}
	return 0, false
}

// CollisionX returns the wall abscissa met at world y by an entity moving
// right (movingRight) or left. Steep faces only push back an entity moving
// into the rising side.
func (t *Tile) CollisionX(y float64, movingRight bool) (float64, bool) {
	size := float64(t.Size)
	ly := y - t.Bottom()
	if ly < 0 || ly >= size {
		return 0, false
	}

	switch t.Group {
	case GroupBlock, GroupPillar:
		if movingRight {
			return t.Left(), true
		}
		return t.Right(), true
	}

	if !t.Group.IsSteep() {
		return 0, false
	}
	gradient := gradients[t.Group]
	seg := float64(t.Group.segment()) * size
	// invert h = (seg + lx) * gradient
	lx := ly/gradient - seg
	if lx < 0 || lx > size {
		return 0, false
	}
	if t.Group.rightward() {
		if !movingRight {
			return 0, false
		}
		return t.Left() + lx, true
	}
	if movingRight {
		return 0, false
	}
	return t.Right() - lx, true
}
