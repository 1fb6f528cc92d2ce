package chemistry

// Spin-orbital integral tables for the molecules whose Hamiltonians
// this package can build from first principles. Values are in
// Hartree, MO basis. Computing such integrals is a quantum-chemistry
// problem in its own right; here they are data.

// h2Spatial holds the H2/STO-3G spatial MO integrals at the
// equilibrium bond length R = 1.4 a.u. (0.7414 Å). Orbital 0 is the
// bonding σg orbital, orbital 1 the antibonding σu.
var h2Spatial = struct {
	core             [2]float64 // one-electron core energies h_PP
	coulomb          [2]float64 // (PP|PP)
	crossCoulomb     float64    // (00|11)
	exchange         float64    // (01|01)
	nuclearRepulsion float64
}{
	core:             [2]float64{-1.252477, -0.475934},
	coulomb:          [2]float64{0.674493, 0.697397},
	crossCoulomb:     0.663472,
	exchange:         0.181287,
	nuclearRepulsion: 0.713754,
}

// H2STO3G expands the H2/STO-3G spatial integrals into spin-orbital
// tensors suitable for JordanWigner. Spin orbital p = 2P + σ, so
// qubits 0,1 are the bonding orbital (up/down spin) and qubits 2,3
// the antibonding one. The second return value is the physicist
// <pq|rs> tensor; the third is the nuclear repulsion energy.
func H2STO3G() ([][]float64, [][][][]float64, float64) {
	const n = 4
	spatial := func(p int) int { return p / 2 }
	spin := func(p int) int { return p % 2 }

	// Chemist-notation spatial integrals (PR|QS). Mixed integrals
	// like (00|01) vanish by g/u symmetry.
	g := func(P, R, Q, S int) float64 {
		switch {
		case P == R && Q == S && P == Q:
			return h2Spatial.coulomb[P]
		case P == R && Q == S:
			return h2Spatial.crossCoulomb
		case P != R && Q != S:
			return h2Spatial.exchange
		}
		return 0
	}

	one := make([][]float64, n)
	for p := range one {
		one[p] = make([]float64, n)
	}
	for p := 0; p < n; p++ {
		one[p][p] = h2Spatial.core[spatial(p)]
	}

	two := make([][][][]float64, n)
	for p := range two {
		two[p] = make([][][]float64, n)
		for q := range two[p] {
			two[p][q] = make([][]float64, n)
			for r := range two[p][q] {
				two[p][q][r] = make([]float64, n)
			}
		}
	}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					if spin(p) != spin(r) || spin(q) != spin(s) {
						continue
					}
					// <pq|rs> = (PR|QS) under matching spins.
					two[p][q][r][s] = g(spatial(p), spatial(r), spatial(q), spatial(s))
				}
			}
		}
	}
	return one, two, h2Spatial.nuclearRepulsion
}
