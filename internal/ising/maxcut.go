// Package ising maps weighted graphs onto Ising-form qubit
// Hamiltonians whose ground states encode maximum cuts, and decodes
// solver output back into graph partitions.
package ising

import (
	"github.com/perclft/IsingEngine/internal/graph"
	"github.com/perclft/IsingEngine/internal/operator"
)

// Hamiltonian maps a weighted graph to its Max-Cut Ising operator.
// For every edge (i,j,w) it contributes (w/2)·ZiZj, and the returned
// offset is -Σw/2, so that for any spin assignment
//
//	<H> + offset = -cut
//
// and in particular offset plus the lowest eigenvalue equals the
// negative of the maximum cut weight.
func Hamiltonian(g *graph.Weighted) (*operator.Operator, float64) {
	op := operator.New(g.N())
	var offset float64
	for _, e := range g.Edges() {
		op.Add(complex(e.Weight/2, 0), map[int]operator.Pauli{
			e.I: operator.Z,
			e.J: operator.Z,
		})
		offset -= e.Weight / 2
	}
	op.Simplify()
	return op, offset
}
