package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnetizationUniform(t *testing.T) {
	sim := newTest(8, 8, 0.4, 1)
	sim.Grid().Fill(1)
	assert.Equal(t, 1.0, sim.Magnetization())

	sim.Grid().Fill(-1)
	assert.Equal(t, -1.0, sim.Magnetization())
}

func TestMagnetizationCheckerPattern(t *testing.T) {
	sim := newTest(8, 8, 0.4, 1)
	g := sim.Grid()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, 1)
			} else {
				g.Set(x, y, -1)
			}
		}
	}
	assert.Equal(t, 0.0, sim.Magnetization())
}

func TestEnergyPerSiteAlignedGroundState(t *testing.T) {
	sim := newTest(8, 8, 0.4, 1)
	sim.Grid().Fill(1)
	// Fully aligned: every site contributes -8, halved to -4 per site.
	assert.Equal(t, -4.0, sim.EnergyPerSite())

	sim.Grid().Fill(-1)
	assert.Equal(t, -4.0, sim.EnergyPerSite())
}

func TestEnergyPerSiteCheckerPattern(t *testing.T) {
	sim := newTest(8, 8, 0.4, 1)
	g := sim.Grid()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, 1)
			} else {
				g.Set(x, y, -1)
			}
		}
	}
	// Checker pattern on the Moore coupling: 4 diagonal neighbors agree,
	// 4 axial disagree, so each site contributes -(4-4) = 0.
	assert.Equal(t, 0.0, sim.EnergyPerSite())
}
