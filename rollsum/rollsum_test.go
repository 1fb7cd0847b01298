package rollsum

import (
	"errors"
	"testing"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/chunks/chunkstest"
	"github.com/Redundancy/hashroll/util/readers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	go4rollsum "go4.org/rollsum"
)

func TestDigestOfSingleByte(t *testing.T) {
	inc := Default().NewIncr()
	inc.RollByte(3)

	if inc.Digest() != 130279491 {
		t.Errorf("Unexpected digest: %v", inc.Digest())
	}
}

func TestThatDigestMatchesGo4Rollsum(t *testing.T) {
	ours := Default().NewIncr()
	theirs := go4rollsum.New()

	assert.Equal(t, theirs.Digest(), ours.Digest())

	for i, b := range readers.Bytes(5, 4096) {
		b &= 0x7f
		ours.RollByte(b)
		theirs.Roll(b)

		if ours.Digest() != theirs.Digest() {
			t.Fatalf("Digests differ after %v bytes: %v vs %v", i+1, ours.Digest(), theirs.Digest())
		}
		if ours.AtSplit() != theirs.OnSplit() {
			t.Fatalf("Split decisions differ after %v bytes", i+1)
		}
	}
}

func TestThatDigestOnlyDependsOnTheWindow(t *testing.T) {
	data := readers.Bytes(1, 1000)

	sum := func(from, to int) uint32 {
		inc := Default().NewIncr()
		for _, b := range data[from:to] {
			inc.RollByte(b)
		}
		return inc.Digest()
	}

	assert.Equal(t, sum(0, len(data)), sum(1, len(data)))
	assert.Equal(t, sum(0, len(data)), sum(len(data)-DefaultWindow, len(data)))
	assert.NotEqual(t, sum(0, len(data)), sum(len(data)-DefaultWindow+1, len(data)))
}

func TestRandomDataEdges(t *testing.T) {
	lengths := chunkstest.CheckEquivalence(t, Default(), readers.Bytes(0, 32*1024))
	assert.Equal(t, []int{2600, 6245}, lengths)
}

func TestShortWindowsAreEquivalent(t *testing.T) {
	data := readers.Bytes(9, 64*1024)

	for _, w := range []int{1, 5, 63, 100} {
		chunkstest.CheckEquivalence(t, MustNew(w), data)
	}
}

func TestInputShorterThanWindowKeepsEverything(t *testing.T) {
	s := Default().NewSearchState()

	_, discard, found := s.FindChunkEdge(make([]byte, 10))

	assert.False(t, found)
	assert.Equal(t, 0, discard)
	assert.Equal(t, 10, s.offset)
}

func TestLongInputKeepsOneWindow(t *testing.T) {
	s := Default().NewSearchState()

	_, discard, found := s.FindChunkEdge(make([]byte, 1000))

	assert.False(t, found)
	assert.Equal(t, 1000-DefaultWindow, discard)
	assert.Equal(t, DefaultWindow, s.offset)
}

func TestEmptyInput(t *testing.T) {
	edge, discard, found := Default().NewSearch().FindChunkEdge(nil)
	assert.Equal(t, []interface{}{0, 0, false}, []interface{}{edge, discard, found})

	_, found = Default().NewIncremental().Push(nil)
	assert.False(t, found)
}

func TestInvalidWindow(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chunks.ErrInvalidConfig))

	assert.Panics(t, func() { MustNew(-1) })
}

func BenchmarkSearch(b *testing.B) {
	data := readers.Bytes(0, 1<<20)
	r := Default()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		chunkstest.SearchLengths(r.NewSearch(), data)
	}
}

func BenchmarkIncremental(b *testing.B) {
	data := readers.Bytes(0, 1<<20)
	r := Default()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		chunkstest.IncrLengths(r.NewIncremental(), data, 4096)
	}
}

func TestStateStaysBoundedOverLongStreams(t *testing.T) {
	if testing.Short() {
		t.Skip("long stream")
	}

	data := readers.Bytes(1, chunkstest.BoundedStreamSize)
	const feed = 64 * 1024

	inc := Default().NewIncr()
	edges := 0
	allocs := testing.AllocsPerRun(1, func() {
		edges = chunkstest.DriveIncr(inc, data, feed)
	})

	assert.Zero(t, allocs, "Push allocated")
	assert.Positive(t, edges)
	assert.LessOrEqual(t, inc.window.Len(), DefaultWindow)
	assert.Equal(t, DefaultWindow, inc.window.Limit())

	s := Default().NewSearchState()
	kept := 0
	allocs = testing.AllocsPerRun(1, func() {
		_, kept = chunkstest.DriveSearch(s, data, feed)
	})

	assert.Zero(t, allocs, "FindChunkEdge allocated")
	assert.LessOrEqual(t, kept, DefaultWindow)
}
