package ising

// Magnetization returns the mean spin over the lattice, in [-1, 1].
func (s *Ising) Magnetization() float64 {
	sum := 0
	for _, v := range s.grid.Spins() {
		sum += int(v)
	}
	return float64(sum) / float64(s.w*s.h)
}

// EnergyPerSite returns the mean interaction energy per site for the
// 8-neighbor coupling with unit coupling constant: each site contributes
// -s·Σ(neighbors), halved so every bond counts once. The minimum is -4
// (fully aligned lattice), the maximum 4.
func (s *Ising) EnergyPerSite() float64 {
	total := 0
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			spin := s.grid.Spins()[y*s.w+x]
			total -= int(spin) * s.neighborSum(x, y)
		}
	}
	return float64(total) / 2 / float64(s.w*s.h)
}
