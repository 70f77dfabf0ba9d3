package core

import (
	"slices"
	"testing"
)

func TestSpinGridWrap(t *testing.T) {
	g := NewSpinGrid(5, 4)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{-6, -5, 4, 3},
		{11, 9, 1, 1},
	}
	for _, c := range cases {
		gx, gy := g.Wrap(c.x, c.y)
		if gx != c.wx || gy != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, gx, gy, c.wx, c.wy)
		}
	}
}

func TestSpinGridAtSetWithWraparound(t *testing.T) {
	g := NewSpinGrid(3, 3)
	g.Set(-1, -1, -1)
	if got := g.At(2, 2); got != -1 {
		t.Fatalf("At(2,2) = %d after Set(-1,-1), want -1", got)
	}
	if got := g.Spins()[g.Index(2, 2)]; got != -1 {
		t.Fatalf("backing slice at Index(2,2) = %d, want -1", got)
	}
}

func TestSpinGridDefaultsToUp(t *testing.T) {
	g := NewSpinGrid(4, 2)
	for idx, v := range g.Spins() {
		if v != 1 {
			t.Fatalf("fresh grid cell %d = %d, want +1", idx, v)
		}
	}
}

func TestSpinGridCloneIsIndependent(t *testing.T) {
	g := NewSpinGrid(3, 2)
	g.Set(1, 1, -1)
	c := g.Clone()

	if !slices.Equal(g.Spins(), c.Spins()) {
		t.Fatal("clone differs from source")
	}
	g.Set(0, 0, -1)
	if c.At(0, 0) != 1 {
		t.Fatal("mutating the source leaked into the clone")
	}
}

func TestSpinGridClampsDegenerateDimensions(t *testing.T) {
	g := NewSpinGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("grid dimensions = %dx%d, want 1x1", g.W, g.H)
	}
}
