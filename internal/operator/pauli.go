// Package operator implements weighted sums of Pauli strings: the
// qubit Hamiltonians produced by the Max-Cut and chemistry mappings,
// with just enough algebra to support the Jordan–Wigner transform.
package operator

import (
	"fmt"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pauli identifies a single-qubit Pauli operator.
type Pauli int32

const (
	I Pauli = 0
	X Pauli = 1
	Y Pauli = 2
	Z Pauli = 3
)

func (p Pauli) String() string {
	switch p {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return "?"
}

// mulPauli multiplies two single-qubit Paulis, returning the
// resulting Pauli and the accumulated phase (one of 1, i, -1, -i).
func mulPauli(a, b Pauli) (Pauli, complex128) {
	switch {
	case a == I:
		return b, 1
	case b == I:
		return a, 1
	case a == b:
		return I, 1
	}
	// Cyclic: XY=iZ, YZ=iX, ZX=iY; reversed order picks up -i.
	switch [2]Pauli{a, b} {
	case [2]Pauli{X, Y}:
		return Z, 1i
	case [2]Pauli{Y, X}:
		return Z, -1i
	case [2]Pauli{Y, Z}:
		return X, 1i
	case [2]Pauli{Z, Y}:
		return X, -1i
	case [2]Pauli{Z, X}:
		return Y, 1i
	case [2]Pauli{X, Z}:
		return Y, -1i
	}
	panic("operator: unreachable pauli product")
}

// Term is a Pauli string with a coefficient. Ops has one letter per
// qubit; qubit q is the q-th entry (and the q-th bit of a basis index).
type Term struct {
	Coeff complex128
	Ops   []Pauli
}

func (t Term) key() string {
	var sb strings.Builder
	for _, p := range t.Ops {
		sb.WriteByte("IXYZ"[p])
	}
	return sb.String()
}

// String renders the term like "(0.5+0i)*Z0 Z2"; identity strings
// render as "(c)*1".
func (t Term) String() string {
	parts := make([]string, 0, len(t.Ops))
	for q, p := range t.Ops {
		if p != I {
			parts = append(parts, fmt.Sprintf("%s%d", p, q))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("(%v)*1", t.Coeff)
	}
	return fmt.Sprintf("(%v)*%s", t.Coeff, strings.Join(parts, " "))
}

// apply computes P|j> = amp |row> for this term's Pauli string (with
// unit coefficient) acting on basis state j, little-endian.
func (t Term) apply(j int) (row int, amp complex128) {
	row = j
	amp = 1
	for q, p := range t.Ops {
		bit := (j >> uint(q)) & 1
		switch p {
		case X:
			row ^= 1 << uint(q)
		case Y:
			row ^= 1 << uint(q)
			if bit == 0 {
				amp *= 1i
			} else {
				amp *= -1i
			}
		case Z:
			if bit == 1 {
				amp = -amp
			}
		}
	}
	return row, amp
}

// Operator is a sum of Pauli-string terms over a fixed qubit count.
type Operator struct {
	n     int
	terms []Term
}

// New returns the zero operator on n qubits.
func New(n int) *Operator {
	if n <= 0 {
		panic("operator: qubit count must be positive")
	}
	return &Operator{n: n}
}

// Identity returns c times the identity on n qubits.
func Identity(n int, c complex128) *Operator {
	op := New(n)
	op.Add(c, map[int]Pauli{})
	return op
}

// NumQubits reports the qubit count.
func (o *Operator) NumQubits() int { return o.n }

// Terms returns the term list. Callers must not mutate it.
func (o *Operator) Terms() []Term { return o.terms }

// Add appends coeff times the Pauli string given as a qubit→letter
// map (absent qubits are identity).
func (o *Operator) Add(coeff complex128, ops map[int]Pauli) *Operator {
	full := make([]Pauli, o.n)
	for q, p := range ops {
		if q < 0 || q >= o.n {
			panic(fmt.Sprintf("operator: qubit %d out of range for %d qubits", q, o.n))
		}
		full[q] = p
	}
	o.terms = append(o.terms, Term{Coeff: coeff, Ops: full})
	return o
}

// AddOp adds another operator term-wise. Panics on qubit mismatch.
func (o *Operator) AddOp(other *Operator) *Operator {
	if other.n != o.n {
		panic("operator: qubit count mismatch")
	}
	o.terms = append(o.terms, other.terms...)
	return o
}

// Scale multiplies every coefficient by c.
func (o *Operator) Scale(c complex128) *Operator {
	for i := range o.terms {
		o.terms[i].Coeff *= c
	}
	return o
}

// Mul returns the operator product o·other, simplified.
func (o *Operator) Mul(other *Operator) *Operator {
	if other.n != o.n {
		panic("operator: qubit count mismatch")
	}
	out := New(o.n)
	for _, a := range o.terms {
		for _, b := range other.terms {
			ops := make([]Pauli, o.n)
			coeff := a.Coeff * b.Coeff
			for q := 0; q < o.n; q++ {
				p, phase := mulPauli(a.Ops[q], b.Ops[q])
				ops[q] = p
				coeff *= phase
			}
			out.terms = append(out.terms, Term{Coeff: coeff, Ops: ops})
		}
	}
	return out.Simplify()
}

const pruneEps = 1e-12

// Simplify merges terms with identical Pauli strings and drops terms
// with negligible coefficients. Terms end up sorted by string.
func (o *Operator) Simplify() *Operator {
	merged := make(map[string]complex128, len(o.terms))
	for _, t := range o.terms {
		merged[t.key()] += t.Coeff
	}

	keys := make([]string, 0, len(merged))
	for k, c := range merged {
		if cmplx.Abs(c) > pruneEps {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	terms := make([]Term, 0, len(keys))
	for _, k := range keys {
		ops := make([]Pauli, o.n)
		for q := 0; q < o.n; q++ {
			ops[q] = Pauli(strings.IndexByte("IXYZ", k[q]))
		}
		terms = append(terms, Term{Coeff: merged[k], Ops: ops})
	}
	o.terms = terms
	return o
}

// Coefficient returns the simplified coefficient of the given Pauli
// string (zero when absent).
func (o *Operator) Coefficient(ops map[int]Pauli) complex128 {
	full := make([]Pauli, o.n)
	for q, p := range ops {
		full[q] = p
	}
	want := Term{Ops: full}.key()
	var sum complex128
	for _, t := range o.terms {
		if t.key() == want {
			sum += t.Coeff
		}
	}
	return sum
}

// IsHermitian reports whether all simplified coefficients are real.
func (o *Operator) IsHermitian() bool {
	tmp := New(o.n)
	tmp.terms = append(tmp.terms, o.terms...)
	tmp.Simplify()
	for _, t := range tmp.terms {
		if imagAbs(t.Coeff) > 1e-9 {
			return false
		}
	}
	return true
}

// IsDiagonal reports whether every term uses only I and Z letters.
func (o *Operator) IsDiagonal() bool {
	for _, t := range o.terms {
		for _, p := range t.Ops {
			if p == X || p == Y {
				return false
			}
		}
	}
	return true
}

// Diagonal returns the 2^n diagonal of a Z-only operator.
func (o *Operator) Diagonal() ([]float64, error) {
	if !o.IsDiagonal() {
		return nil, errors.New("operator: not diagonal")
	}
	dim := 1 << uint(o.n)
	diag := make([]float64, dim)
	for j := 0; j < dim; j++ {
		var e complex128
		for _, t := range o.terms {
			_, amp := t.apply(j)
			e += t.Coeff * amp
		}
		if imagAbs(e) > 1e-9 {
			return nil, errors.Errorf("operator: complex diagonal entry %v at %d", e, j)
		}
		diag[j] = real(e)
	}
	return diag, nil
}

// Expectation computes <psi|O|psi> for a statevector of length 2^n
// and returns the real part. The imaginary part is discarded; it
// vanishes for Hermitian operators.
func (o *Operator) Expectation(psi []complex128) (float64, error) {
	dim := 1 << uint(o.n)
	if len(psi) != dim {
		return 0, errors.Errorf("operator: state has %d amplitudes, want %d", len(psi), dim)
	}
	var total complex128
	for _, t := range o.terms {
		var acc complex128
		for j, a := range psi {
			if a == 0 {
				continue
			}
			row, amp := t.apply(j)
			acc += cmplx.Conj(psi[row]) * amp * a
		}
		total += t.Coeff * acc
	}
	return real(total), nil
}

func imagAbs(c complex128) float64 {
	im := imag(c)
	if im < 0 {
		return -im
	}
	return im
}
