// Package graph holds the weighted graphs that Max-Cut problems are
// defined on: square symmetric matrices with a zero diagonal.
package graph

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Edge is a single undirected weighted edge with I < J.
type Edge struct {
	I, J   int
	Weight float64
}

// Weighted is an undirected weighted graph stored as an adjacency
// matrix. It is immutable once constructed.
type Weighted struct {
	n int
	w [][]float64
}

// FromMatrix validates m as an adjacency matrix and wraps it.
// The matrix must be square and symmetric with a zero diagonal.
func FromMatrix(m [][]float64) (*Weighted, error) {
	n := len(m)
	if n == 0 {
		return nil, errors.New("graph: empty matrix")
	}
	for i, row := range m {
		if len(row) != n {
			return nil, errors.Errorf("graph: matrix is not square: row %d has %d entries, want %d", i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			return nil, errors.Errorf("graph: nonzero diagonal entry at node %d", i)
		}
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return nil, errors.Errorf("graph: matrix is not symmetric at (%d,%d)", i, j)
			}
		}
	}

	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		copy(w[i], m[i])
	}
	return &Weighted{n: n, w: w}, nil
}

// FromEdges builds a graph on n nodes from an edge list.
func FromEdges(n int, edges []Edge) (*Weighted, error) {
	if n <= 0 {
		return nil, errors.Errorf("graph: invalid node count %d", n)
	}
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for _, e := range edges {
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return nil, errors.Errorf("graph: edge (%d,%d) out of range for %d nodes", e.I, e.J, n)
		}
		if e.I == e.J {
			return nil, errors.Errorf("graph: self loop on node %d", e.I)
		}
		m[e.I][e.J] = e.Weight
		m[e.J][e.I] = e.Weight
	}
	return &Weighted{n: n, w: m}, nil
}

// Random generates a seeded Erdős–Rényi graph on n nodes. Each edge
// exists with probability p and carries a uniform weight in
// [wmin, wmax). The same seed always yields the same graph.
func Random(n int, p, wmin, wmax float64, seed int64) (*Weighted, error) {
	if n <= 0 {
		return nil, errors.Errorf("graph: invalid node count %d", n)
	}
	if p < 0 || p > 1 {
		return nil, errors.Errorf("graph: invalid edge probability %f", p)
	}
	rng := rand.New(rand.NewSource(seed))
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				w := wmin + rng.Float64()*(wmax-wmin)
				m[i][j] = w
				m[j][i] = w
			}
		}
	}
	return &Weighted{n: n, w: m}, nil
}

// N is the number of nodes.
func (g *Weighted) N() int { return g.n }

// Weight returns the weight of edge (i,j), 0 if absent.
func (g *Weighted) Weight(i, j int) float64 { return g.w[i][j] }

// Edges returns all edges with nonzero weight, ordered with I < J.
func (g *Weighted) Edges() []Edge {
	var edges []Edge
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.w[i][j] != 0 {
				edges = append(edges, Edge{I: i, J: j, Weight: g.w[i][j]})
			}
		}
	}
	return edges
}

// TotalWeight is the sum of all edge weights.
func (g *Weighted) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.Weight
	}
	return sum
}

// Matrix returns a copy of the adjacency matrix.
func (g *Weighted) Matrix() [][]float64 {
	m := make([][]float64, g.n)
	for i := range m {
		m[i] = make([]float64, g.n)
		copy(m[i], g.w[i])
	}
	return m
}

// CutValue is the total weight of edges crossing the partition given
// by side, where side[i] is the 0/1 cut side of node i.
func (g *Weighted) CutValue(side []int) (float64, error) {
	if len(side) != g.n {
		return 0, errors.Errorf("graph: assignment has %d labels, want %d", len(side), g.n)
	}
	var cut float64
	for _, e := range g.Edges() {
		if side[e.I] != side[e.J] {
			cut += e.Weight
		}
	}
	return cut, nil
}

// MaxCut enumerates all partitions and returns the best cut value and
// one assignment achieving it. Exponential in n; small graphs only.
func (g *Weighted) MaxCut() (float64, []int) {
	best := math.Inf(-1)
	bestSide := make([]int, g.n)
	side := make([]int, g.n)
	for mask := 0; mask < 1<<uint(g.n); mask++ {
		for i := 0; i < g.n; i++ {
			side[i] = (mask >> uint(i)) & 1
		}
		cut, _ := g.CutValue(side)
		if cut > best {
			best = cut
			copy(bestSide, side)
		}
	}
	return best, bestSide
}

// String renders the adjacency matrix, mostly for logging.
func (g *Weighted) String() string {
	var sb strings.Builder
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", g.w[i][j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
