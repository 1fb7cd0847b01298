// Package chunkstest drives chunkers the way real callers do, for use in tests of algorithm packages.
package chunkstest

import (
	"testing"

	"github.com/Redundancy/hashroll/chunks"
)

// SearchLengths runs s over all of data, dropping discarded bytes after every call,
// and returns the length of each chunk terminated by an edge.
func SearchLengths(s chunks.Search, data []byte) []int {
	return FedSearchLengths(s, data, len(data))
}

// FedSearchLengths reveals data to s feed bytes at a time, as a caller reading a stream into a
// growing buffer would. Only edges are counted, a trailing remainder is not.
func FedSearchLengths(s chunks.Search, data []byte, feed int) []int {
	if feed < 1 {
		feed = 1
	}

	var lengths []int
	base, last := 0, 0
	avail := min(feed, len(data))

	for {
		edge, discard, found := s.FindChunkEdge(data[base:avail])

		if found {
			end := base + edge
			lengths = append(lengths, end-last)
			last = end
			base += discard
			continue
		}

		base += discard
		if avail == len(data) {
			return lengths
		}
		avail = min(avail+feed, len(data))
	}
}

// IncrLengths pushes data into inc feed bytes at a time
func IncrLengths(inc chunks.Incremental, data []byte, feed int) []int {
	if feed < 1 {
		feed = 1
	}

	var lengths []int
	chunkLen := 0

	for off := 0; off < len(data); off += feed {
		piece := data[off:min(off+feed, len(data))]

		for len(piece) > 0 {
			edge, found := inc.Push(piece)
			if !found {
				chunkLen += len(piece)
				break
			}

			lengths = append(lengths, chunkLen+edge)
			chunkLen = 0
			piece = piece[edge:]
		}
	}

	return lengths
}

// Feeds are the call sizes CheckEquivalence splits input into
var Feeds = []int{1, 2, 3, 7, 64, 1000, 4096, 1 << 30}

// CheckEquivalence asserts that every way of feeding data to fresh states of c produces
// the same edges, and returns them
func CheckEquivalence(t testing.TB, c chunks.Chunker, data []byte) []int {
	t.Helper()

	expected := SearchLengths(c.NewSearch(), data)

	for _, feed := range Feeds {
		if got := FedSearchLengths(c.NewSearch(), data, feed); !equal(got, expected) {
			t.Errorf("search fed %v bytes at a time gave %v, expected %v", feed, got, expected)
		}

		if got := IncrLengths(c.NewIncremental(), data, feed); !equal(got, expected) {
			t.Errorf("incremental fed %v bytes at a time gave %v, expected %v", feed, got, expected)
		}
	}

	return expected
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DriveSearch runs s over data revealed feed bytes at a time, like FedSearchLengths, but only
// counts edges so that it does not allocate. kept is the most bytes s ever left undiscarded
// after a call that found no edge.
func DriveSearch(s chunks.Search, data []byte, feed int) (edges, kept int) {
	if feed < 1 {
		feed = 1
	}

	base := 0
	avail := min(feed, len(data))

	for {
		_, discard, found := s.FindChunkEdge(data[base:avail])
		base += discard

		if found {
			edges++
			continue
		}

		kept = max(kept, avail-base)
		if avail == len(data) {
			return edges, kept
		}
		avail = min(avail+feed, len(data))
	}
}

// DriveIncr pushes data into inc feed bytes at a time and counts edges without allocating
func DriveIncr(inc chunks.Incremental, data []byte, feed int) (edges int) {
	if feed < 1 {
		feed = 1
	}

	for off := 0; off < len(data); off += feed {
		piece := data[off:min(off+feed, len(data))]

		for len(piece) > 0 {
			edge, found := inc.Push(piece)
			if !found {
				break
			}
			edges++
			piece = piece[edge:]
		}
	}
	return edges
}

// BoundedStreamSize is the input length state size and allocation tests run over
const BoundedStreamSize = 4 << 20
