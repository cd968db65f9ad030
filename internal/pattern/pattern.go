// Package pattern provides well-known Game of Life seeds, each on a grid
// sized to the pattern's bounding box.
package pattern

import (
	"fmt"
	"slices"

	"lifelab/internal/grid"
)

// Factory constructs one pattern instance.
type Factory func() *grid.Grid

var patterns = map[string]Factory{
	"glider":      Glider,
	"r-pentomino": RPentomino,
	"lwss":        LightweightSpaceship,
}

// Glider returns the 3x3 glider, which travels diagonally one cell every
// four generations.
func Glider() *grid.Grid {
	return fromCells(3, 3, [][2]int{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	})
}

// RPentomino returns the 3x3 r-pentomino, a methuselah that keeps growing
// for over a thousand generations.
func RPentomino() *grid.Grid {
	return fromCells(3, 3, [][2]int{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	})
}

// LightweightSpaceship returns the 5x4 spaceship that travels horizontally
// one cell every two generations.
func LightweightSpaceship() *grid.Grid {
	return fromCells(5, 4, [][2]int{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	})
}

// ByName constructs the named pattern, or fails listing the known names.
func ByName(name string) (*grid.Grid, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("pattern: unknown name %q (known: %v)", name, Names())
	}
	return f(), nil
}

// Names lists the available pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func fromCells(w, h int, cells [][2]int) *grid.Grid {
	g := grid.New(w, h)
	for _, c := range cells {
		g.Cells()[g.Index(c[0], c[1])] = grid.Alive
	}
	return g
}
