//go:build !ebiten

package ui

import "isinglab/internal/core"

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(core.Sim) *Overlay { return nil }

// Update is a no-op in the headless build.
func (o *Overlay) Update(bool) {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any) {}
