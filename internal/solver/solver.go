// Package solver finds the lowest eigenvalue of a qubit Hamiltonian.
// Two interchangeable strategies exist: exact dense diagonalization,
// which is ground truth for small instances, and a variational
// quantum eigensolver running on a simulator backend.
package solver

import (
	"context"
	"time"

	"github.com/perclft/IsingEngine/internal/operator"
)

// Problem is a Hamiltonian plus the constant offset accumulated
// while building it (the Max-Cut shift or nuclear repulsion).
type Problem struct {
	Hamiltonian *operator.Operator
	Offset      float64
}

// Result is a solver's answer.
type Result struct {
	Solver string `json:"solver"`

	// Energy is the lowest Hamiltonian eigenvalue found; Total adds
	// the problem offset.
	Energy float64 `json:"energy"`
	Total  float64 `json:"total"`

	// Bitstring is the decoded basis state, one 0/1 label per qubit.
	Bitstring []int `json:"bitstring"`

	// Eigenvector is populated by the exact solver only.
	Eigenvector []complex128 `json:"-"`

	// Parameters holds the optimized ansatz angles (variational only).
	Parameters []float64 `json:"parameters,omitempty"`

	Iterations  int           `json:"iterations"`
	Evaluations int           `json:"evaluations"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Solver is one strategy for minimizing a Hamiltonian.
type Solver interface {
	Name() string
	Solve(ctx context.Context, p Problem) (*Result, error)
}
