package operator

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MaxDenseQubits bounds the dense matrix realization; beyond it the
// 4^n memory cost is unreasonable.
const MaxDenseQubits = 12

// Dense realizes the operator as a real symmetric matrix. It fails
// when the operator is too large or has complex matrix elements
// (i.e. is not Hermitian with a real representation).
func (o *Operator) Dense() (*mat.SymDense, error) {
	if o.n > MaxDenseQubits {
		return nil, errors.Errorf("operator: %d qubits exceeds dense limit of %d", o.n, MaxDenseQubits)
	}
	dim := 1 << uint(o.n)
	acc := make([]complex128, dim*dim)
	for _, t := range o.terms {
		for j := 0; j < dim; j++ {
			row, amp := t.apply(j)
			acc[row*dim+j] += t.Coeff * amp
		}
	}

	m := mat.NewSymDense(dim, nil)
	for r := 0; r < dim; r++ {
		for c := r; c < dim; c++ {
			upper := acc[r*dim+c]
			lower := acc[c*dim+r]
			if imagAbs(upper) > 1e-9 || imagAbs(lower) > 1e-9 {
				return nil, errors.Errorf("operator: complex matrix element at (%d,%d)", r, c)
			}
			if diff := real(upper) - real(lower); diff > 1e-9 || diff < -1e-9 {
				return nil, errors.Errorf("operator: asymmetric matrix element at (%d,%d)", r, c)
			}
			m.SetSym(r, c, real(upper))
		}
	}
	return m, nil
}
