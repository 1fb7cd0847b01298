package zpaq

import (
	"testing"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/chunks/chunkstest"
	"github.com/Redundancy/hashroll/sizerange"
	"github.com/Redundancy/hashroll/util/readers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDataEdges(t *testing.T) {
	cases := []struct {
		seed     uint64
		expected []int
	}{
		{0, []int{10785, 6329, 1287, 860, 4716, 7419}},
		{3, []int{16353, 2334, 970, 5326, 1557}},
	}

	z := MustWithAverageSizePow2(3)

	for _, c := range cases {
		lengths := chunkstest.CheckEquivalence(t, z, readers.Bytes(c.seed, 32*1024))
		assert.Equal(t, c.expected, lengths, "seed %v", c.seed)
	}
}

func TestZpaqParameters(t *testing.T) {
	z := Default()

	assert.Equal(t, uint8(6), z.Fragment())
	assert.Equal(t, uint32(1<<16), z.MaxHash())
	assert.Equal(t, sizerange.HalfOpen(4096, 520192), z.Lengths())
}

func TestDedupParameters(t *testing.T) {
	cases := []struct {
		max      uint64
		fragment uint8
	}{
		{1 << 20, 8},
		{65536, 4},
		{65535, 3},
		{4096, 0},
		{1000, 0},
	}

	for _, c := range cases {
		z, err := WithMaxSize(c.max)
		require.NoError(t, err)

		assert.Equal(t, c.fragment, z.Fragment(), "max %v", c.max)
		assert.Equal(t, sizerange.HalfOpen(c.max/64, c.max), z.Lengths())
	}
}

func TestDedupChunksStayInRange(t *testing.T) {
	z, err := WithMaxSize(65536)
	require.NoError(t, err)

	lengths := chunkstest.CheckEquivalence(t, z, readers.Bytes(1, 256*1024))

	require.NotEmpty(t, lengths)
	for _, l := range lengths {
		assert.GreaterOrEqual(t, l, 1024)
		assert.LessOrEqual(t, l, 65536)
	}
}

func TestFragmentFromRange(t *testing.T) {
	cases := []struct {
		r        sizerange.Range
		fragment uint8
	}{
		{sizerange.Closed(1, 65536), 4},
		{sizerange.HalfOpen(1, 65537), 4},
		{sizerange.AtLeast(1024), 4},
		{sizerange.Range{Start: sizerange.Exclusive(1023), End: sizerange.NoBound()}, 4},
		{sizerange.Full(), DefaultFragment},
	}

	for _, c := range cases {
		z, err := WithRange(c.r)
		require.NoError(t, err, "%v", c.r)

		assert.Equal(t, c.fragment, z.Fragment(), "%v", c.r)
		assert.Equal(t, c.r, z.Lengths())
	}
}

func TestRangeMaxForcesEdges(t *testing.T) {
	// a hash threshold of 1 at fragment 22 is almost never met, so the range decides
	z, err := WithAverageAndRange(22, sizerange.Closed(0, 100))
	require.NoError(t, err)

	lengths := chunkstest.CheckEquivalence(t, z, make([]byte, 1000))

	for _, l := range lengths {
		assert.LessOrEqual(t, l, 101)
	}
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := WithAverageSizePow2(23)
	assert.ErrorIs(t, err, chunks.ErrInvalidConfig)

	_, err = WithMaxSize(0)
	assert.ErrorIs(t, err, chunks.ErrInvalidConfig)

	_, err = WithMaxSize(1 << 40)
	assert.ErrorIs(t, err, chunks.ErrInvalidConfig)

	_, err = WithRange(sizerange.Below(0))
	assert.ErrorIs(t, err, chunks.ErrInvalidConfig)

	assert.Panics(t, func() { MustWithAverageSizePow2(30) })
}

func TestHashPrediction(t *testing.T) {
	var h Hash

	// predictions start as zeros
	assert.Equal(t, uint32(314159265), h.Feed(0))
	assert.Equal(t, uint32(2034857442), h.Feed(0))
	assert.Equal(t, uint32(1578572952), h.Feed(1))
}

func BenchmarkSearch(b *testing.B) {
	data := readers.Bytes(0, 1<<20)
	z := Default()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		chunkstest.SearchLengths(z.NewSearch(), data)
	}
}
