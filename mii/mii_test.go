package mii

import (
	"testing"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/chunks/chunkstest"
	"github.com/Redundancy/hashroll/util/readers"
	"github.com/stretchr/testify/assert"
)

func TestRandomDataEdges(t *testing.T) {
	lengths := chunkstest.CheckEquivalence(t, Default(), readers.Bytes(0, 32*1024))

	assert.Equal(t, []int{
		1212, 40, 261, 1548, 1881, 312, 2043, 285, 1062, 677, 542, 1473, 303, 172, 318, 839, 2560,
		3242, 396, 202, 123, 898, 2454, 544, 3541, 571, 483, 383, 103, 2629, 929, 47, 524,
	}, lengths)
}

func TestIncreasingRunEndsChunk(t *testing.T) {
	m := MustWithW(3)

	// the first byte of a chunk starts a run but does not count towards it
	lengths := chunkstest.CheckEquivalence(t, m, []byte{5, 1, 2, 3, 4, 0, 9, 8, 9, 10, 11})
	assert.Equal(t, []int{5, 6}, lengths)
}

func TestFallingInputNeverSplits(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(255 - i)
	}

	_, discard, found := Default().NewSearch().FindChunkEdge(data)
	assert.False(t, found)
	assert.Equal(t, 256, discard)
}

func TestInvalidW(t *testing.T) {
	_, err := WithW(0)
	assert.ErrorIs(t, err, chunks.ErrInvalidConfig)
}
