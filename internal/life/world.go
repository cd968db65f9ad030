// Package life implements Conway's Game of Life over a pair of
// double-buffered grids with bounded or toroidal boundary policies.
package life

import (
	"lifelab/internal/grid"
)

// World owns two equally sized grids and advances the automaton between
// them, exchanging the buffer roles after every generation.
type World struct {
	curr *grid.Grid
	next *grid.Grid
}

// New returns a World of the given dimensions with every cell Dead.
func New(width, height int) *World {
	return &World{
		curr: grid.New(width, height),
		next: grid.New(width, height),
	}
}

// FromGrid returns a World whose starting state is a copy of initial.
// The caller keeps ownership of initial; the World never aliases it.
func FromGrid(initial *grid.Grid) *World {
	return &World{
		curr: initial.Clone(),
		next: initial.Clone(),
	}
}

// Width returns the horizontal cell count.
func (w *World) Width() int { return w.curr.Width() }

// Height returns the vertical cell count.
func (w *World) Height() int { return w.curr.Height() }

// AliveCells returns the live population of the current generation.
func (w *World) AliveCells() int { return w.curr.AliveCells() }

// State returns the current generation without copying. The grid stays
// owned by the World; clone it to keep a stable snapshot across steps.
func (w *World) State() *grid.Grid { return w.curr }

// Resize changes both buffers to the new dimensions. The current
// generation keeps its content within the overlapping rectangle; the next
// buffer is simply replaced, since every step rewrites it in full.
func (w *World) Resize(width, height int) {
	w.curr.Resize(width, height)
	w.next = grid.New(width, height)
}

// countNeighbours returns how many of the eight Moore neighbours of (x,y)
// are Alive in the current generation. With wrap false, coordinates beyond
// the edges are treated as Dead; with wrap true, each axis wraps
// independently, so every cell has exactly eight neighbour slots (on tiny
// grids several slots may resolve to the same cell).
func (w *World) countNeighbours(x, y int, wrap bool) int {
	width, height := w.curr.Width(), w.curr.Height()
	if width == 0 || height == 0 {
		return 0
	}
	cells := w.curr.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if wrap {
				nx = ((nx % width) + width) % width
				ny = ((ny % height) + height) % height
			} else if nx < 0 || ny < 0 || nx >= width || ny >= height {
				continue
			}
			if cells[ny*width+nx] == grid.Alive {
				count++
			}
		}
	}
	return count
}

// Step advances the world by one generation. Cell fates are read from the
// current buffer and written to the next, then the buffers swap roles in
// constant time.
func (w *World) Step(wrap bool) {
	width, height := w.curr.Width(), w.curr.Height()
	curr, next := w.curr.Cells(), w.next.Cells()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := w.countNeighbours(x, y, wrap)
			idx := y*width + x
			alive := curr[idx] == grid.Alive
			next[idx] = grid.Dead
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				next[idx] = grid.Alive
			}
		}
	}
	w.curr, w.next = w.next, w.curr
}

// Advance applies Step the given number of times. Zero or negative counts
// leave the world untouched.
func (w *World) Advance(steps int, wrap bool) {
	for i := 0; i < steps; i++ {
		w.Step(wrap)
	}
}
