package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePicksDominantAmplitude(t *testing.T) {
	psi := []complex128{0.1, 0.2, 0.95, 0.1}
	bits, err := Decode(psi, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, bits) // index 2, little-endian
}

func TestDecodeTieBreaksLowestIndex(t *testing.T) {
	psi := []complex128{0.5, 0.5, 0.5, 0.5}
	bits, err := Decode(psi, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, bits)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := Decode([]complex128{1, 0}, 2)
	assert.Error(t, err)
}

func TestDecodeCounts(t *testing.T) {
	bits, err := DecodeCounts(map[int]int{0: 10, 3: 50, 1: 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, bits)

	// Equal counts prefer the lower index.
	bits, err = DecodeCounts(map[int]int{1: 10, 2: 10}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, bits)

	_, err = DecodeCounts(map[int]int{}, 2)
	assert.Error(t, err)
}

func TestBitsIndexRoundTrip(t *testing.T) {
	for idx := 0; idx < 16; idx++ {
		assert.Equal(t, idx, Index(Bits(idx, 4)))
	}
	assert.Equal(t, []int{1, 0, 1}, Bits(5, 3))
}

func TestPartition(t *testing.T) {
	zero, one := Partition([]int{0, 1, 1, 0, 1})
	assert.Equal(t, []int{0, 3}, zero)
	assert.Equal(t, []int{1, 2, 4}, one)
}
