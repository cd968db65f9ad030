package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelab/internal/grid"
	"lifelab/internal/life"
)

func TestGlider(t *testing.T) {
	g := Glider()
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.AliveCells())

	want := "+---+\n" +
		"| # |\n" +
		"|  #|\n" +
		"|###|\n" +
		"+---+\n"
	assert.Equal(t, want, g.String())
}

func TestRPentomino(t *testing.T) {
	g := RPentomino()
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 5, g.AliveCells())

	want := "+---+\n" +
		"| ##|\n" +
		"|## |\n" +
		"| # |\n" +
		"+---+\n"
	assert.Equal(t, want, g.String())
}

func TestLightweightSpaceship(t *testing.T) {
	g := LightweightSpaceship()
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 9, g.AliveCells())

	want := "+-----+\n" +
		"| #  #|\n" +
		"|#    |\n" +
		"|#   #|\n" +
		"|#### |\n" +
		"+-----+\n"
	assert.Equal(t, want, g.String())
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		g, err := ByName(name)
		require.NoError(t, err, name)
		assert.Greater(t, g.AliveCells(), 0, name)
	}

	_, err := ByName("toad")
	assert.Error(t, err)
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"glider", "lwss", "r-pentomino"}, Names())
}

func TestGliderFlies(t *testing.T) {
	// Embedded mid-grid with room to travel, the glider must keep its
	// population while moving.
	seed := Glider()
	host := grid.New(9, 9)
	require.NoError(t, host.Merge(seed, 3, 3, false))

	w := life.FromGrid(host)
	w.Advance(8, false)
	assert.Equal(t, 5, w.AliveCells(), "glider keeps exactly five cells in open space")
	assert.False(t, w.State().Equal(host), "glider must have moved")
}
