package chemistry

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perclft/IsingEngine/internal/operator"
)

func TestNumberOperator(t *testing.T) {
	// a†_p a_p = (I - Z_p)/2 on any mode.
	for _, p := range []int{0, 1, 3} {
		n := NumberOperator(4, p)
		assert.Equal(t, complex(0.5, 0), n.Coefficient(map[int]operator.Pauli{}), "mode %d", p)
		assert.Equal(t, complex(-0.5, 0), n.Coefficient(map[int]operator.Pauli{p: operator.Z}), "mode %d", p)
		assert.Len(t, n.Terms(), 2, "mode %d", p)
	}
}

func TestHoppingTerm(t *testing.T) {
	// a†_0 a_1 + a†_1 a_0 = (X0X1 + Y0Y1)/2 for adjacent modes.
	h := Raising(2, 0).Mul(Lowering(2, 1))
	h.AddOp(Raising(2, 1).Mul(Lowering(2, 0)))
	h.Simplify()

	assert.Equal(t, complex(0.5, 0), h.Coefficient(map[int]operator.Pauli{0: operator.X, 1: operator.X}))
	assert.Equal(t, complex(0.5, 0), h.Coefficient(map[int]operator.Pauli{0: operator.Y, 1: operator.Y}))
	assert.Len(t, h.Terms(), 2)
}

func TestAnticommutationRelations(t *testing.T) {
	const n = 3
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			// {a_p, a†_q} = δ_pq
			anti := Lowering(n, p).Mul(Raising(n, q))
			anti.AddOp(Raising(n, q).Mul(Lowering(n, p)))
			anti.Simplify()

			if p == q {
				require.Len(t, anti.Terms(), 1, "p=%d q=%d", p, q)
				assert.InDelta(t, 0, cmplx.Abs(anti.Coefficient(map[int]operator.Pauli{})-1), 1e-12)
			} else {
				assert.Empty(t, anti.Terms(), "p=%d q=%d", p, q)
			}

			// {a_p, a_q} = 0
			anti = Lowering(n, p).Mul(Lowering(n, q))
			anti.AddOp(Lowering(n, q).Mul(Lowering(n, p)))
			anti.Simplify()
			assert.Empty(t, anti.Terms(), "lowering p=%d q=%d", p, q)
		}
	}
}

func TestPauliExclusion(t *testing.T) {
	// a†_p a†_p = 0
	sq := Raising(2, 0).Mul(Raising(2, 0))
	assert.Empty(t, sq.Terms())
}

func TestJordanWignerRejectsBadTensors(t *testing.T) {
	_, err := JordanWigner(nil, nil)
	assert.Error(t, err)

	one := [][]float64{{1, 0}, {0}}
	_, err = JordanWigner(one, nil)
	assert.Error(t, err)
}
