/*
Package mii implements the minimal incremental interval chunker of Zhang et al. (2019).

A chunk ends once w consecutive bytes have each been larger than the byte before them.
The only state is the previous byte and the length of the current increasing run.
*/
package mii

import (
	"fmt"

	"github.com/Redundancy/hashroll/chunks"
)

const DefaultW = 5

// Mii is the configuration of an MII chunker
type Mii struct {
	w uint64
}

func WithW(w uint64) (*Mii, error) {
	if w == 0 {
		return nil, fmt.Errorf("%w: mii interval must be positive", chunks.ErrInvalidConfig)
	}
	return &Mii{w: w}, nil
}

func MustWithW(w uint64) *Mii {
	m, err := WithW(w)
	if err != nil {
		panic(err)
	}
	return m
}

func Default() *Mii {
	return MustWithW(DefaultW)
}

func (m *Mii) W() uint64 {
	return m.w
}

type run struct {
	w         uint64
	prev      byte
	increment uint64
}

func (m *Mii) newRun() run {
	// nothing is larger than 0xff, so the first byte of a chunk never extends a run
	return run{w: m.w, prev: 0xff}
}

func (r *run) scan(data []byte) (int, bool) {
	for i, b := range data {
		if b > r.prev {
			r.increment++
			if r.increment == r.w {
				*r = run{w: r.w, prev: 0xff}
				return i + 1, true
			}
		} else {
			r.increment = 0
		}
		r.prev = b
	}
	return 0, false
}

type SearchState struct {
	run
}

func (m *Mii) NewSearchState() *SearchState {
	return &SearchState{m.newRun()}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	if edge, found = s.scan(data); found {
		return edge, edge, true
	}
	return 0, len(data), false
}

type Incr struct {
	run
}

func (m *Mii) NewIncr() *Incr {
	return &Incr{m.newRun()}
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	return inc.scan(data)
}

func (m *Mii) NewSearch() chunks.Search {
	return m.NewSearchState()
}

func (m *Mii) NewIncremental() chunks.Incremental {
	return m.NewIncr()
}
