//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifelab/internal/config"
	"lifelab/internal/grid"
	"lifelab/internal/life"
	"lifelab/internal/render"
)

// Game adapts a life.World to the ebiten.Game interface.
type Game struct {
	world   *life.World
	initial *grid.Grid
	painter *render.GridPainter
	timer   *FixedStep

	cfg config.Config

	onColor  color.Color
	offColor color.Color

	scale      int
	rate       float64
	paused     bool
	tickOnce   bool
	generation int
}

const (
	minRate = 0.5
	maxRate = 240
)

// New constructs a Game around the given starting state.
func New(initial *grid.Grid, cfg config.Config, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		world:    life.FromGrid(initial),
		initial:  initial.Clone(),
		painter:  render.NewGridPainter(initial.Width(), initial.Height()),
		timer:    NewFixedStep(cfg.Rate),
		cfg:      cfg,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		rate:     cfg.Rate,
	}
}

func (g *Game) setRate(rate float64) {
	if rate < minRate {
		rate = minRate
	}
	if rate > maxRate {
		rate = maxRate
	}
	g.rate = rate
	g.timer.SetRate(rate)
}

// Reset rewinds the world to the starting state.
func (g *Game) Reset() {
	g.world = life.FromGrid(g.initial)
	g.generation = 0
	g.tickOnce = false
}

// Reseed replaces the current state with a fresh random soup.
func (g *Game) Reseed(seed int64) {
	g.world.Randomize(seed, g.cfg.Density)
	g.generation = 0
	g.tickOnce = false
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.setRate(g.rate * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.setRate(g.rate / 2)
	}

	// Poll the timer even while paused so ticks never pile up.
	stepDue := g.timer.ShouldStep()
	if (!g.paused && stepDue) || g.tickOnce {
		g.world.Step(g.cfg.Wrap)
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation and a small status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.State().Cells(), g.onColor, g.offColor, g.scale)

	status := fmt.Sprintf("gen %d  pop %d  %g steps/s", g.generation, g.world.AliveCells(), g.rate)
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width() * g.scale, g.world.Height() * g.scale
}
