//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"isinglab/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type observableProvider interface {
	Beta() float64
	Steps() int
	Magnetization() float64
	EnergyPerSite() float64
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Overlay draws run statistics on top of the lattice view.
type Overlay struct {
	sim        core.Sim
	paused     bool
	showStats  bool
	showParams bool
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showStats: true}
}

// Update handles overlay toggles and caches frame state.
func (o *Overlay) Update(paused bool) {
	o.paused = paused
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showParams = !o.showParams
	}
}

// Draw renders the overlay text onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showStats {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s", o.sim.Name())
	if o.paused {
		b.WriteString("  [paused]")
	}
	b.WriteByte('\n')

	if provider, ok := o.sim.(observableProvider); ok {
		fmt.Fprintf(&b, "step %d  beta %.3f\n", provider.Steps(), provider.Beta())
		fmt.Fprintf(&b, "m %+.4f  e %+.4f\n", provider.Magnetization(), provider.EnergyPerSite())
	}

	if o.showParams {
		if provider, ok := o.sim.(parameterProvider); ok {
			for _, group := range provider.Parameters().Groups {
				fmt.Fprintf(&b, "%s\n", group.Name)
				for _, p := range group.Params {
					fmt.Fprintf(&b, "  %s = %s\n", p.Key, p.Value)
				}
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, b.String(), 4, 4)
}
