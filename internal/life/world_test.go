package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelab/internal/grid"
)

// requireAlive checks every cell of the world against a set of expected
// live coordinates.
func requireAlive(t *testing.T, w *World, expects map[[2]int]bool) {
	t.Helper()
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			got, err := w.State().Get(x, y)
			if err != nil {
				t.Fatalf("reading cell (%d,%d): %v", x, y, err)
			}
			alive := got == grid.Alive
			if _, shouldBeAlive := expects[[2]int{x, y}]; shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	w := New(5, 5)
	set := func(x, y int) {
		if err := w.State().Set(x, y, grid.Alive); err != nil {
			t.Fatalf("seeding cell (%d,%d): %v", x, y, err)
		}
	}
	set(2, 1)
	set(2, 2)
	set(2, 3)

	w.Step(false)
	requireAlive(t, w, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	w.Step(false)
	requireAlive(t, w, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestLonelyCellDies(t *testing.T) {
	w := New(4, 4)
	require.NoError(t, w.State().Set(1, 1, grid.Alive))

	w.Step(false)
	assert.Equal(t, 0, w.AliveCells())
}

func TestBlockIsStill(t *testing.T) {
	w := New(4, 4)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		require.NoError(t, w.State().Set(c[0], c[1], grid.Alive))
	}
	before := w.State().Clone()

	w.Advance(5, false)
	assert.True(t, w.State().Equal(before), "block must be a still life")
}

func TestGliderTranslatesOnTorus(t *testing.T) {
	w := New(5, 5)
	set := func(x, y int) {
		if err := w.State().Set(x, y, grid.Alive); err != nil {
			t.Fatalf("seeding cell (%d,%d): %v", x, y, err)
		}
	}
	// Glider aimed down-right; one full period moves it by (+1,+1).
	set(1, 0)
	set(2, 1)
	set(0, 2)
	set(1, 2)
	set(2, 2)

	w.Advance(4, true)
	requireAlive(t, w, map[[2]int]bool{
		{2, 1}: true,
		{3, 2}: true,
		{1, 3}: true,
		{2, 3}: true,
		{3, 3}: true,
	})
}

func TestNeighbourCountPolicies(t *testing.T) {
	// The eight wrapped neighbour positions of (0,0) on a 4x3 torus.
	w := New(4, 3)
	neighbours := [][2]int{
		{3, 2}, {0, 2}, {1, 2},
		{3, 0}, {1, 0},
		{3, 1}, {0, 1}, {1, 1},
	}
	for _, c := range neighbours {
		require.NoError(t, w.State().Set(c[0], c[1], grid.Alive))
	}

	assert.Equal(t, 8, w.countNeighbours(0, 0, true), "toroidal corner sees all eight")
	assert.Equal(t, 3, w.countNeighbours(0, 0, false), "bounded corner sees only in-range cells")
}

func TestTinyGridNeighbours(t *testing.T) {
	w := New(1, 1)
	require.NoError(t, w.State().Set(0, 0, grid.Alive))

	// Bounded: every neighbour coordinate is out of range.
	assert.Equal(t, 0, w.countNeighbours(0, 0, false))
	// Toroidal: all eight slots wrap back onto the only cell.
	assert.Equal(t, 8, w.countNeighbours(0, 0, true))

	// Overcrowding by its own images kills the cell.
	w.Step(true)
	assert.Equal(t, 0, w.AliveCells())
}

func TestEmptyWorldSteps(t *testing.T) {
	w := New(0, 0)
	w.Step(true)
	w.Step(false)
	assert.Equal(t, 0, w.AliveCells())
	assert.Equal(t, 0, w.countNeighbours(0, 0, true))
}

func TestFromGridCopies(t *testing.T) {
	seed := grid.New(3, 3)
	require.NoError(t, seed.Set(1, 1, grid.Alive))

	w := FromGrid(seed)
	require.Equal(t, 1, w.AliveCells())

	// Mutating the seed afterwards must not leak into the world.
	require.NoError(t, seed.Set(0, 0, grid.Alive))
	assert.Equal(t, 1, w.AliveCells())

	// Stepping the world must not touch the seed.
	w.Step(false)
	got, err := seed.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Alive, got)
}

func TestResizePreservesCurrent(t *testing.T) {
	w := New(3, 3)
	require.NoError(t, w.State().Set(0, 0, grid.Alive))
	require.NoError(t, w.State().Set(2, 2, grid.Alive))

	w.Resize(5, 4)
	require.Equal(t, 5, w.Width())
	require.Equal(t, 4, w.Height())
	requireAlive(t, w, map[[2]int]bool{
		{0, 0}: true,
		{2, 2}: true,
	})

	// Both buffers must agree on the new size or the next step corrupts.
	w.Step(false)
	assert.Equal(t, 0, w.AliveCells())
}

func TestAdvance(t *testing.T) {
	w := New(5, 5)
	for _, c := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		require.NoError(t, w.State().Set(c[0], c[1], grid.Alive))
	}
	before := w.State().Clone()

	w.Advance(0, false)
	assert.True(t, w.State().Equal(before), "zero steps is a no-op")
	w.Advance(-2, false)
	assert.True(t, w.State().Equal(before), "negative steps is a no-op")

	// A blinker has period two.
	w.Advance(2, false)
	assert.True(t, w.State().Equal(before))
}

func TestRandomize(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Randomize(42, 0.5)
	b.Randomize(42, 0.5)
	assert.True(t, a.State().Equal(b.State()), "same seed must reproduce the soup")

	b.Randomize(43, 0.5)
	assert.False(t, a.State().Equal(b.State()), "different seeds should differ")

	a.Randomize(7, 0)
	assert.Equal(t, 0, a.AliveCells())
	a.Randomize(7, 1)
	assert.Equal(t, 256, a.AliveCells())

	// Densities outside [0,1] clamp.
	a.Randomize(7, -3)
	assert.Equal(t, 0, a.AliveCells())
	a.Randomize(7, 2.5)
	assert.Equal(t, 256, a.AliveCells())
}
