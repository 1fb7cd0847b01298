/*
Package ram implements the rapid asymmetric maximum chunker of Widodo et al. (2017).

The first w+1 bytes of a chunk form a fixed window whose largest byte is remembered. A chunk ends
after the first byte past the window that is at least as large as every byte before it.
*/
package ram

import (
	"github.com/Redundancy/hashroll/chunks"
)

// Ram is the configuration of a RAM chunker. Chunks are always at least w+2 bytes long.
type Ram struct {
	w uint64
}

func WithW(w uint64) *Ram {
	return &Ram{w: w}
}

func (r *Ram) W() uint64 {
	return r.w
}

type state struct {
	w uint64
	// index of the next byte within the current chunk
	i   uint64
	max byte
}

func (s *state) scan(data []byte) (int, bool) {
	for j, b := range data {
		if b >= s.max {
			if s.i > s.w {
				s.i = 0
				s.max = 0
				return j + 1, true
			}
			s.max = b
		}
		s.i++
	}
	return 0, false
}

type SearchState struct {
	state
}

func (r *Ram) NewSearchState() *SearchState {
	return &SearchState{state{w: r.w}}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	if edge, found = s.scan(data); found {
		return edge, edge, true
	}
	return 0, len(data), false
}

type Incr struct {
	state
}

func (r *Ram) NewIncr() *Incr {
	return &Incr{state{w: r.w}}
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	return inc.scan(data)
}

func (r *Ram) NewSearch() chunks.Search {
	return r.NewSearchState()
}

func (r *Ram) NewIncremental() chunks.Incremental {
	return r.NewIncr()
}
