//go:build ebiten

package app

import (
	"image/color"
	"time"

	"isinglab/internal/core"
	"isinglab/internal/render"
	"isinglab/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sweepsProvider interface {
	SweepsPerFrame() int
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	betaControl core.ParameterControl
	floatSetter core.FloatParameterSetter
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size().W, sim.Size().H),
		overlay:  ui.NewOverlay(sim),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Key == "beta" {
				g.betaControl = ctrl
			}
		}
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		g.floatSetter = setter
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.adjustBeta(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.adjustBeta(-1)
	}

	if g.overlay != nil {
		g.overlay.Update(g.paused)
	}

	if (!g.paused) || g.tickOnce {
		sweeps := 1
		if provider, ok := g.sim.(sweepsProvider); ok {
			sweeps = provider.SweepsPerFrame()
		}
		for i := 0; i < sweeps; i++ {
			g.sim.Step()
		}
		g.tickOnce = false
	}
	return nil
}

// adjustBeta nudges the inverse temperature by the control's step size.
func (g *Game) adjustBeta(direction float64) {
	if g.floatSetter == nil || g.betaControl.Key == "" {
		return
	}
	provider, ok := g.sim.(interface{ Beta() float64 })
	if !ok {
		return
	}
	step := g.betaControl.Step
	if step <= 0 {
		step = 0.02
	}
	next := provider.Beta() + direction*step
	if g.betaControl.HasMin && next < g.betaControl.Min {
		next = g.betaControl.Min
	}
	if g.betaControl.HasMax && next > g.betaControl.Max {
		next = g.betaControl.Max
	}
	g.floatSetter.SetFloatParameter(g.betaControl.Key, next)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
