// Package grid provides a dense 2D cell buffer with bounds-checked access
// and the window operations (resize, crop, merge, rotate) the rest of the
// toolkit builds on.
package grid

import (
	"fmt"
	"strings"
)

// Cell is the state of a single grid cell.
type Cell uint8

// The two valid cell states. Any other byte is rejected at the codec
// boundary.
const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid stores a 2D field of cells in row-major order. The zero value is an
// empty 0x0 grid. Grids never share backing storage: every operation that
// returns a Grid allocates fresh cells.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New allocates a width x height grid with every cell Dead. Negative
// dimensions are treated as zero.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

// NewSquare allocates a size x size grid with every cell Dead.
func NewSquare(size int) *Grid {
	return New(size, size)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TotalCells returns width*height.
func (g *Grid) TotalCells() int { return g.width * g.height }

// AliveCells counts the cells currently Alive.
func (g *Grid) AliveCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// DeadCells counts the cells currently not Alive.
func (g *Grid) DeadCells() int {
	return g.TotalCells() - g.AliveCells()
}

// Index returns the linear slice index for coordinates (x, y). It performs
// no bounds checking.
func (g *Grid) Index(x, y int) int { return y*g.width + x }

// Cells exposes the backing slice so hot loops can read and write cells
// directly. The slice is invalidated by Resize.
func (g *Grid) Cells() []Cell { return g.cells }

// At returns a pointer to the cell at (x, y). Every checked read and write
// funnels through this accessor. Fails with ErrOutOfBounds when the
// coordinate lies outside [0,width) x [0,height).
func (g *Grid) At(x, y int) (*Cell, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return &g.cells[g.Index(x, y)], nil
}

// Get returns the value of the cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	p, err := g.At(x, y)
	if err != nil {
		return Dead, err
	}
	return *p, nil
}

// Set overwrites the cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	p, err := g.At(x, y)
	if err != nil {
		return err
	}
	*p = c
	return nil
}

// Resize reallocates the grid to newWidth x newHeight. Cells inside the
// overlapping region keep their coordinates; everything else starts Dead.
// The resize is never done in place, so a partially overwritten buffer can
// never be observed. Negative dimensions are treated as zero.
func (g *Grid) Resize(newWidth, newHeight int) {
	if newWidth < 0 {
		newWidth = 0
	}
	if newHeight < 0 {
		newHeight = 0
	}
	cells := make([]Cell, newWidth*newHeight)
	copyW := min(g.width, newWidth)
	copyH := min(g.height, newHeight)
	for y := 0; y < copyH; y++ {
		copy(cells[y*newWidth:y*newWidth+copyW], g.cells[y*g.width:y*g.width+copyW])
	}
	g.width, g.height, g.cells = newWidth, newHeight, cells
}

// Crop returns a new grid holding the window [x0,x1) x [y0,y1). Fails with
// ErrBadWindow when the window is inverted or reaches outside the grid; a
// zero-area window at a valid position yields an empty grid, not an error.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x0 < 0 || y0 < 0 || x0 > g.width || x1 > g.width || y0 > g.height || y1 > g.height || x0 > x1 || y0 > y1 {
		return nil, fmt.Errorf("%w: [%d,%d)x[%d,%d) in %dx%d", ErrBadWindow, x0, x1, y0, y1, g.width, g.height)
	}
	out := New(x1-x0, y1-y0)
	for y := y0; y < y1; y++ {
		copy(out.cells[(y-y0)*out.width:(y-y0+1)*out.width], g.cells[y*g.width+x0:y*g.width+x1])
	}
	return out, nil
}

// Merge overlays other onto the grid with its top-left corner at (x0, y0).
// With aliveOnly false every covered cell is overwritten with the source
// value. With aliveOnly true the window becomes destination OR source, so a
// merge can wake cells but never kill them. Fails with ErrNoFit, before
// touching any cell, when the overlay does not sit entirely inside the grid.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 || x0+other.width > g.width || y0+other.height > g.height {
		return fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d",
			ErrNoFit, other.width, other.height, x0, y0, g.width, g.height)
	}
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			src := other.cells[other.Index(x, y)]
			if aliveOnly {
				if src == Alive {
					g.cells[g.Index(x0+x, y0+y)] = Alive
				}
				continue
			}
			g.cells[g.Index(x0+x, y0+y)] = src
		}
	}
	return nil
}

// Rotate returns a copy of the grid rotated by k*90 degrees clockwise. Any
// integer k is accepted and reduced modulo 4 up front, so the cost never
// depends on its magnitude. Odd rotations swap width and height.
func (g *Grid) Rotate(k int) *Grid {
	switch ((k % 4) + 4) % 4 {
	case 1:
		out := New(g.height, g.width)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				out.cells[out.Index(g.height-1-y, x)] = g.cells[g.Index(x, y)]
			}
		}
		return out
	case 2:
		out := New(g.width, g.height)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				out.cells[out.Index(g.width-1-x, g.height-1-y)] = g.cells[g.Index(x, y)]
			}
		}
		return out
	case 3:
		out := New(g.height, g.width)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				out.cells[out.Index(y, g.width-1-x)] = g.cells[g.Index(x, y)]
			}
		}
		return out
	default:
		return g.Clone()
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether both grids have the same dimensions and cell values.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid for human display: a horizontal +--...--+ border
// with every row wrapped in pipes, '#' for Alive and ' ' for Dead. This
// rendering is not a persistence format; the codec package owns those.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 3) * (g.height + 2))
	border := "+" + strings.Repeat("-", g.width) + "+\n"
	b.WriteString(border)
	for y := 0; y < g.height; y++ {
		b.WriteByte('|')
		for x := 0; x < g.width; x++ {
			if g.cells[g.Index(x, y)] == Alive {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
