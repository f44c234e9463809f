package tile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSize = 16

func surface(t *testing.T, tiles []Tile, from, to, step float64) []float64 {
	t.Helper()
	var heights []float64
	for x := from; x < to; x += step {
		tx := int(math.Floor(x / testSize))
		tl := tiles[tx-tiles[0].TX]
		v, ok := tl.CollisionY(x)
		require.True(t, ok, "no surface at x=%v", x)
		heights = append(heights, v)
	}
	return heights
}

func TestTile_SlopeRightIsContinuousAndMonotonic(t *testing.T) {
	tiles := []Tile{
		{TX: 0, TY: 2, Size: testSize, Group: GroupSlopeRight1},
		{TX: 1, TY: 2, Size: testSize, Group: GroupSlopeRight2},
		{TX: 2, TY: 2, Size: testSize, Group: GroupSlopeRight3},
	}

	heights := surface(t, tiles, 0, 3*testSize, 0.5)

	for i := 1; i < len(heights); i++ {
		assert.GreaterOrEqual(t, heights[i], heights[i-1], "index %d", i)
		assert.LessOrEqual(t, heights[i]-heights[i-1], 1.0, "index %d", i)
	}
	assert.Equal(t, 32.0, heights[0])
	assert.InDelta(t, 48.0, heights[len(heights)-1], 0.5)
}

func TestTile_SlopeLeftIsContinuousAndMonotonic(t *testing.T) {
	tiles := []Tile{
		{TX: 4, TY: 0, Size: testSize, Group: GroupSlopeLeft3},
		{TX: 5, TY: 0, Size: testSize, Group: GroupSlopeLeft2},
		{TX: 6, TY: 0, Size: testSize, Group: GroupSlopeLeft1},
	}

	heights := surface(t, tiles, 4*testSize, 7*testSize, 1)

	for i := 1; i < len(heights); i++ {
		assert.LessOrEqual(t, heights[i], heights[i-1], "index %d", i)
		assert.LessOrEqual(t, heights[i-1]-heights[i], 1.0, "index %d", i)
	}
	assert.Equal(t, 16.0, heights[0])
}

func TestTile_SteepSegments(t *testing.T) {
	tiles := []Tile{
		{TX: 0, TY: 0, Size: testSize, Group: GroupSteepRight1},
		{TX: 1, TY: 0, Size: testSize, Group: GroupSteepRight2},
	}

	heights := surface(t, tiles, 0, 2*testSize, 1)

	for i := 1; i < len(heights); i++ {
		assert.InDelta(t, 0.5, heights[i]-heights[i-1], 1e-9)
	}
}

func TestTile_FlatAndMissing(t *testing.T) {
	ground := Tile{TX: 2, TY: 3, Size: testSize, Group: GroupGround}
	v, ok := ground.CollisionY(40)
	require.True(t, ok)
	assert.Equal(t, 64.0, v)

	_, ok = ground.CollisionY(20)
	assert.False(t, ok, "outside the tile")

	empty := Tile{TX: 0, TY: 0, Size: testSize}
	_, ok = empty.CollisionY(4)
	assert.False(t, ok)

	pillar := Tile{TX: 0, TY: 0, Size: testSize, Group: GroupPillar}
	_, ok = pillar.CollisionY(4)
	assert.False(t, ok)
}

func TestTile_CollisionX(t *testing.T) {
	block := Tile{TX: 3, TY: 1, Size: testSize, Group: GroupBlock}

	v, ok := block.CollisionX(20, true)
	require.True(t, ok)
	assert.Equal(t, 48.0, v)

	v, ok = block.CollisionX(20, false)
	require.True(t, ok)
	assert.Equal(t, 64.0, v)

	steep := Tile{TX: 0, TY: 0, Size: testSize, Group: GroupSteepRight1}
	v, ok = steep.CollisionX(4, true)
	require.True(t, ok)
	assert.Equal(t, 8.0, v)

	_, ok = steep.CollisionX(4, false)
	assert.False(t, ok, "steep only pushes back an entity climbing it")

	ground := Tile{TX: 0, TY: 0, Size: testSize, Group: GroupGround}
	_, ok = ground.CollisionX(4, true)
	assert.False(t, ok)
}

func TestParseGroup(t *testing.T) {
	for g, name := range groupNames {
		parsed, err := ParseGroup(name)
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}

	g, err := ParseGroup("")
	require.NoError(t, err)
	assert.Equal(t, GroupNone, g)

	_, err = ParseGroup("lava")
	var unknown *UnknownGroupError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "lava", unknown.Name)
}

func TestGroup_Predicates(t *testing.T) {
	assert.True(t, GroupSlopeLeft2.IsSlope())
	assert.False(t, GroupSteepLeft2.IsSlope())
	assert.True(t, GroupSteepLeft2.IsSteep())
	assert.True(t, GroupLianaFull.IsLiana())
	assert.True(t, GroupLianaRight.IsLianaSteep())
	assert.False(t, GroupLianaTop.IsLianaSteep())
	assert.True(t, GroupSlideLeft.IsSlide())
	assert.True(t, GroupSpike.IsGround())
	assert.False(t, GroupLianaTop.IsGround())
}

func TestGroup_Downhill(t *testing.T) {
	assert.Equal(t, -1.0, GroupSlopeRight2.Downhill())
	assert.Equal(t, 1.0, GroupSteepLeft1.Downhill())
	assert.Equal(t, -1.0, GroupSlideRight.Downhill())
	assert.Equal(t, 1.0, GroupLianaLeft.Downhill())
	assert.Zero(t, GroupGround.Downhill())
}
