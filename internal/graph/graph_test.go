package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *Weighted {
	t.Helper()
	g, err := FromEdges(3, []Edge{
		{I: 0, J: 1, Weight: 1},
		{I: 1, J: 2, Weight: 2},
		{I: 0, J: 2, Weight: 3},
	})
	require.NoError(t, err)
	return g
}

func TestFromMatrixRejectsAsymmetric(t *testing.T) {
	_, err := FromMatrix([][]float64{
		{0, 1},
		{2, 0},
	})
	assert.Error(t, err)
}

func TestFromMatrixRejectsNonzeroDiagonal(t *testing.T) {
	_, err := FromMatrix([][]float64{
		{1, 0},
		{0, 0},
	})
	assert.Error(t, err)
}

func TestFromEdgesRejectsSelfLoop(t *testing.T) {
	_, err := FromEdges(2, []Edge{{I: 1, J: 1, Weight: 1}})
	assert.Error(t, err)
}

func TestFromEdgesRejectsOutOfRange(t *testing.T) {
	_, err := FromEdges(2, []Edge{{I: 0, J: 5, Weight: 1}})
	assert.Error(t, err)
}

func TestEdgesAndTotalWeight(t *testing.T) {
	g := triangle(t)
	assert.Equal(t, 3, g.N())
	assert.Len(t, g.Edges(), 3)
	assert.InDelta(t, 6.0, g.TotalWeight(), 1e-12)
	assert.InDelta(t, 2.0, g.Weight(1, 2), 1e-12)
	assert.InDelta(t, 2.0, g.Weight(2, 1), 1e-12)
}

func TestCutValue(t *testing.T) {
	g := triangle(t)

	// Node 0 alone cuts edges (0,1) and (0,2).
	cut, err := g.CutValue([]int{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, cut, 1e-12)

	// Everything on one side cuts nothing.
	cut, err = g.CutValue([]int{0, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cut, 1e-12)

	_, err = g.CutValue([]int{0, 1})
	assert.Error(t, err)
}

func TestMaxCutTriangle(t *testing.T) {
	g := triangle(t)
	best, side := g.MaxCut()

	// Best partition isolates node 2: cuts weights 2 and 3.
	assert.InDelta(t, 5.0, best, 1e-12)
	cut, err := g.CutValue(side)
	require.NoError(t, err)
	assert.InDelta(t, best, cut, 1e-12)
}

func TestRandomDeterministic(t *testing.T) {
	a, err := Random(8, 0.5, 0.5, 2.0, 99)
	require.NoError(t, err)
	b, err := Random(8, 0.5, 0.5, 2.0, 99)
	require.NoError(t, err)
	assert.Equal(t, a.Matrix(), b.Matrix())

	c, err := Random(8, 0.5, 0.5, 2.0, 100)
	require.NoError(t, err)
	assert.NotEqual(t, a.Matrix(), c.Matrix())
}

func TestParseEdgeList(t *testing.T) {
	input := `# weighted graph
0 1 1.5
1 2 2.0

2 3 0.5
`
	g, err := ParseEdgeList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.InDelta(t, 1.5, g.Weight(0, 1), 1e-12)
	assert.InDelta(t, 0.5, g.Weight(2, 3), 1e-12)
}

func TestParseEdgeListBadLine(t *testing.T) {
	_, err := ParseEdgeList(strings.NewReader("0 1\n"))
	assert.Error(t, err)
}
