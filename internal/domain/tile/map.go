package tile

import "math"

// Map represents the current stage's collision tiles.
// Row 0 is the bottom row; Y grows upward.
type Map struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
}

// NewMap creates an empty map with every tile set to GroupNone.
func NewMap(width, height, tileSize int) *Map {
	tiles := make([][]Tile, height)
	for ty := 0; ty < height; ty++ {
		tiles[ty] = make([]Tile, width)
		for tx := 0; tx < width; tx++ {
			tiles[ty][tx] = Tile{TX: tx, TY: ty, Size: tileSize}
		}
	}
	return &Map{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
	}
}

// Tile returns the tile at the given tile coordinates.
// Outside the map there is no tile.
func (m *Map) Tile(tx, ty int) (*Tile, bool) {
	if tx < 0 || tx >= m.Width || ty < 0 || ty >= m.Height {
		return nil, false
	}
	return &m.Tiles[ty][tx], true
}

// TileAt returns the tile containing the given world coordinates.
func (m *Map) TileAt(x, y float64) (*Tile, bool) {
	return m.Tile(m.InTileX(x), m.InTileY(y))
}

// InTileX converts a world X into a tile column.
func (m *Map) InTileX(x float64) int {
	return int(math.Floor(x / float64(m.TileSize)))
}

// InTileY converts a world Y into a tile row.
func (m *Map) InTileY(y float64) int {
	return int(math.Floor(y / float64(m.TileSize)))
}

// Group returns the collision group at the given tile coordinates.
func (m *Map) Group(tx, ty int) Group {
	t, ok := m.Tile(tx, ty)
	if !ok {
		return GroupNone
	}
	return t.Group
}

// SetTile rewrites a tile in place. The change is visible to every
// following probe.
func (m *Map) SetTile(tx, ty, number int, group Group) bool {
	t, ok := m.Tile(tx, ty)
	if !ok {
		return false
	}
	t.Number = number
	t.Group = group
	return true
}

// Set places a tile built elsewhere (stage loading).
func (m *Map) Set(t Tile) bool {
	if t.TX < 0 || t.TX >= m.Width || t.TY < 0 || t.TY >= m.Height {
		return false
	}
	t.Size = m.TileSize
	m.Tiles[t.TY][t.TX] = t
	return true
}

// PixelWidth returns the map width in world units.
func (m *Map) PixelWidth() int { return m.Width * m.TileSize }

// PixelHeight returns the map height in world units.
func (m *Map) PixelHeight() int { return m.Height * m.TileSize }
