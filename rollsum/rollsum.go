/*
Package rollsum implements bup's rolling checksum and the content defined chunker built on it.

The checksum is the librsync style pair of sums over a fixed window of trailing bytes.
A chunk ends after any byte that leaves the low 13 bits of the digest all set, giving chunks of
8 KiB on average. After each edge the sums restart from their seed value.

See https://github.com/bup/bup/blob/master/lib/bup/bupsplit.c
*/
package rollsum

import (
	"fmt"

	"github.com/Redundancy/hashroll/chunks"
)

const (
	// DefaultWindow is bup's window length
	DefaultWindow = 64

	charOffset = 31
	blobBits   = 13
	blobSize   = 1 << blobBits
)

// RollSum is the configuration of a bup chunker
type RollSum struct {
	windowLen int
}

// New creates a chunker over a window of windowLen bytes
func New(windowLen int) (*RollSum, error) {
	if windowLen < 1 {
		return nil, fmt.Errorf("%w: rollsum window length %v", chunks.ErrInvalidConfig, windowLen)
	}
	return &RollSum{windowLen: windowLen}, nil
}

// MustNew is New for constant parameters, panicking on error
func MustNew(windowLen int) *RollSum {
	r, err := New(windowLen)
	if err != nil {
		panic(err)
	}
	return r
}

// Default is bup's configuration
func Default() *RollSum {
	return &RollSum{windowLen: DefaultWindow}
}

func (r *RollSum) WindowLen() int {
	return r.windowLen
}

func (r *RollSum) NewSearchState() *SearchState {
	return &SearchState{
		params: r,
		sums:   seed(r.windowLen),
	}
}

func (r *RollSum) NewSearch() chunks.Search {
	return r.NewSearchState()
}

func (r *RollSum) NewIncremental() chunks.Incremental {
	return r.NewIncr()
}

// SearchState looks back into the caller's slice, so the caller keeps at least the last
// window of bytes between calls
type SearchState struct {
	params *RollSum
	sums   sums
	// first byte of the next slice not yet rolled in
	offset int
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	w := s.params.windowLen

	for i := s.offset; i < len(data); i++ {
		var drop byte
		if i >= w {
			drop = data[i-w]
		}

		s.sums.add(w, drop, data[i])

		if s.sums.atSplit() {
			s.sums = seed(w)
			s.offset = 0
			return i + 1, i + 1, true
		}
	}

	discard = len(data) - w
	if discard < 0 {
		discard = 0
	}
	s.offset = len(data) - discard
	return 0, discard, false
}
