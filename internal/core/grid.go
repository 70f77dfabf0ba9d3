package core

// SpinGrid stores a 2D lattice of ±1 spins in row-major order. Dimensions are
// fixed at creation; the backing slice is mutated in place by the owning sim.
type SpinGrid struct {
	W, H int
	data []int8
}

// NewSpinGrid allocates a lattice with the given dimensions, all spins up.
func NewSpinGrid(w, h int) *SpinGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &SpinGrid{W: w, H: h, data: make([]int8, w*h)}
	g.Fill(1)
	return g
}

// Spins exposes the backing slice so the sweep can read/write values directly.
func (g *SpinGrid) Spins() []int8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *SpinGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *SpinGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the spin at (x, y) with wraparound.
func (g *SpinGrid) At(x, y int) int8 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set stores a spin at (x, y) with wraparound.
func (g *SpinGrid) Set(x, y int, s int8) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = s
}

// Fill sets every cell to the provided spin.
func (g *SpinGrid) Fill(s int8) {
	for i := range g.data {
		g.data[i] = s
	}
}

// Clone returns an independent copy of the lattice. The sweep never copies
// implicitly; callers snapshotting frames for animation clone explicitly.
func (g *SpinGrid) Clone() *SpinGrid {
	c := &SpinGrid{W: g.W, H: g.H, data: make([]int8, len(g.data))}
	copy(c.data, g.data)
	return c
}
