package life

import (
	"math/rand/v2"

	"lifelab/internal/grid"
)

// Randomize fills the current generation with a random soup. Each cell is
// independently Alive with probability density, clamped to [0,1]; the same
// seed always produces the same soup.
func (w *World) Randomize(seed int64, density float64) {
	if density < 0 {
		density = 0
	} else if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	cells := w.curr.Cells()
	for i := range cells {
		cells[i] = grid.Dead
		if rng.Float64() < density {
			cells[i] = grid.Alive
		}
	}
}
