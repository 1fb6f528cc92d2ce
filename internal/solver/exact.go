package solver

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/perclft/IsingEngine/internal/ising"
)

// DefaultMaxDiagonalQubits bounds the diagonal fast path, which only
// needs a 2^n scan rather than a dense eigendecomposition.
const DefaultMaxDiagonalQubits = 24

// Exact computes the lowest eigenvalue by dense diagonalization, or
// by a diagonal scan when the Hamiltonian is Z-only. Cost grows
// exponentially with qubit count; it is the reference for small
// instances, not a production path.
type Exact struct {
	// MaxDiagonalQubits caps the diagonal scan; zero means the
	// default. The dense path is capped by operator.MaxDenseQubits.
	MaxDiagonalQubits int
}

func (e *Exact) Name() string { return "exact" }

// Solve diagonalizes the problem Hamiltonian.
func (e *Exact) Solve(ctx context.Context, p Problem) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	n := p.Hamiltonian.NumQubits()

	if p.Hamiltonian.IsDiagonal() {
		maxQ := e.MaxDiagonalQubits
		if maxQ == 0 {
			maxQ = DefaultMaxDiagonalQubits
		}
		if n > maxQ {
			return nil, errors.Errorf("solver: %d qubits exceeds exact solver limit of %d", n, maxQ)
		}
		return e.solveDiagonal(p, n, start)
	}
	return e.solveDense(p, n, start)
}

func (e *Exact) solveDiagonal(p Problem, n int, start time.Time) (*Result, error) {
	diag, err := p.Hamiltonian.Diagonal()
	if err != nil {
		return nil, errors.Wrap(err, "solver: diagonal path")
	}
	best := 0
	for j, v := range diag {
		if v < diag[best] {
			best = j
		}
	}

	vec := make([]complex128, len(diag))
	vec[best] = 1
	return &Result{
		Solver:      e.Name(),
		Energy:      diag[best],
		Total:       diag[best] + p.Offset,
		Bitstring:   ising.Bits(best, n),
		Eigenvector: vec,
		Elapsed:     time.Since(start),
	}, nil
}

func (e *Exact) solveDense(p Problem, n int, start time.Time) (*Result, error) {
	sym, err := p.Hamiltonian.Dense()
	if err != nil {
		return nil, errors.Wrap(err, "solver: dense path")
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, errors.New("solver: eigendecomposition failed")
	}
	values := eig.Values(nil) // ascending

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	dim := 1 << uint(n)
	ground := make([]complex128, dim)
	for j := 0; j < dim; j++ {
		ground[j] = complex(vectors.At(j, 0), 0)
	}

	bits, err := ising.Decode(ground, n)
	if err != nil {
		return nil, err
	}
	return &Result{
		Solver:      e.Name(),
		Energy:      values[0],
		Total:       values[0] + p.Offset,
		Bitstring:   bits,
		Eigenvector: ground,
		Elapsed:     time.Since(start),
	}, nil
}
