package chemistry

import (
	"github.com/pkg/errors"

	"github.com/perclft/IsingEngine/internal/operator"
)

// Lowering returns the Jordan–Wigner image of the annihilation
// operator a_p on n fermionic modes:
//
//	a_p = Z_0 ⊗ … ⊗ Z_{p-1} ⊗ (X_p + iY_p)/2
func Lowering(n, p int) *operator.Operator {
	op := operator.New(n)
	xs := map[int]operator.Pauli{p: operator.X}
	ys := map[int]operator.Pauli{p: operator.Y}
	for q := 0; q < p; q++ {
		xs[q] = operator.Z
		ys[q] = operator.Z
	}
	op.Add(0.5, xs)
	op.Add(0.5i, ys)
	return op
}

// Raising returns the Jordan–Wigner image of the creation operator
// a†_p, the Hermitian conjugate of Lowering.
func Raising(n, p int) *operator.Operator {
	op := operator.New(n)
	xs := map[int]operator.Pauli{p: operator.X}
	ys := map[int]operator.Pauli{p: operator.Y}
	for q := 0; q < p; q++ {
		xs[q] = operator.Z
		ys[q] = operator.Z
	}
	op.Add(0.5, xs)
	op.Add(-0.5i, ys)
	return op
}

// JordanWigner maps an electronic Hamiltonian given by spin-orbital
// integrals to a qubit operator:
//
//	H = Σ_pq one[p][q] a†_p a_q
//	  + ½ Σ_pqrs two[p][q][r][s] a†_p a†_q a_s a_r
//
// where two[p][q][r][s] is the physicist-notation integral <pq|rs>.
// The result is simplified and, for valid integrals, Hermitian.
func JordanWigner(one [][]float64, two [][][][]float64) (*operator.Operator, error) {
	n := len(one)
	if n == 0 {
		return nil, errors.New("chemistry: empty one-body tensor")
	}
	for p := range one {
		if len(one[p]) != n {
			return nil, errors.Errorf("chemistry: one-body tensor is not square at row %d", p)
		}
	}
	if len(two) != n {
		return nil, errors.Errorf("chemistry: two-body tensor rank %d, want %d", len(two), n)
	}

	h := operator.New(n)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if one[p][q] == 0 {
				continue
			}
			t := Raising(n, p).Mul(Lowering(n, q))
			t.Scale(complex(one[p][q], 0))
			h.AddOp(t)
		}
	}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					v := two[p][q][r][s]
					if v == 0 {
						continue
					}
					t := Raising(n, p).Mul(Raising(n, q)).Mul(Lowering(n, s)).Mul(Lowering(n, r))
					t.Scale(complex(v/2, 0))
					h.AddOp(t)
				}
			}
		}
	}
	h.Simplify()
	if !h.IsHermitian() {
		return nil, errors.New("chemistry: Jordan-Wigner output is not Hermitian; bad integral tensors")
	}
	return h, nil
}

// NumberOperator returns the qubit image of a†_p a_p = (I - Z_p)/2.
func NumberOperator(n, p int) *operator.Operator {
	return Raising(n, p).Mul(Lowering(n, p))
}
