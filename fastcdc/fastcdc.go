/*
Package fastcdc implements the FastCDC chunker of Xia et al. (USENIX ATC '16).

FastCDC is a gear hash with normalized chunking: no edge is looked for in the first min bytes of a
chunk, a harder mask is used until the chunk reaches its normal size, an easier one after that,
and a chunk is always cut when it reaches the max size.
*/
package fastcdc

import (
	"fmt"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/tables"
)

const (
	maskS uint64 = 0x0003590703530000
	maskL uint64 = 0x0000d90003530000
)

const (
	DefaultMinSize    = 2 * 1024
	DefaultNormalSize = 8 * 1024
	DefaultMaxSize    = 64 * 1024
)

// FastCDC is the configuration of a FastCDC chunker
type FastCDC struct {
	table                        *[256]uint64
	minSize, normalSize, maxSize uint64
	// leading bytes of a chunk that are never hashed. One less than max when min == max.
	skip uint64
}

// New requires 0 < min <= normal <= max
func New(table *[256]uint64, min, normal, max uint64) (*FastCDC, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: fastcdc requires a gear table", chunks.ErrInvalidConfig)
	}
	if min == 0 || min > normal || normal > max {
		return nil, fmt.Errorf(
			"%w: fastcdc sizes must satisfy 0 < min <= normal <= max, got %v, %v, %v",
			chunks.ErrInvalidConfig, min, normal, max,
		)
	}

	skip := min
	if skip == max {
		skip--
	}

	return &FastCDC{
		table:      table,
		minSize:    min,
		normalSize: normal,
		maxSize:    max,
		skip:       skip,
	}, nil
}

func MustNew(table *[256]uint64, min, normal, max uint64) *FastCDC {
	f, err := New(table, min, normal, max)
	if err != nil {
		panic(err)
	}
	return f
}

// Default has 2 KiB, 8 KiB and 64 KiB limits and the built-in gear table
func Default() *FastCDC {
	return MustNew(&tables.Gear64, DefaultMinSize, DefaultNormalSize, DefaultMaxSize)
}

func (f *FastCDC) MinSize() uint64    { return f.minSize }
func (f *FastCDC) NormalSize() uint64 { return f.normalSize }
func (f *FastCDC) MaxSize() uint64    { return f.maxSize }

// state is shared by both views, neither needs to look back
type state struct {
	params *FastCDC
	// length of the current chunk so far
	l  uint64
	fp uint64
}

func (s *state) reset() {
	s.l = 0
	s.fp = 0
}

// push returns the index after the byte that ends the current chunk, if there is one in data
func (s *state) push(data []byte) (int, bool) {
	p := s.params
	n := uint64(len(data))

	if s.l+n <= p.skip {
		s.l += n
		return 0, false
	}

	i := 0
	if s.l < p.skip {
		i = int(p.skip - s.l)
		s.l = p.skip
	}

	for ; i < len(data); i++ {
		s.l++
		s.fp = (s.fp << 1) + p.table[data[i]]

		mask := maskL
		if s.l <= p.normalSize {
			mask = maskS
		}

		if s.fp&mask == 0 || s.l >= p.maxSize {
			s.reset()
			return i + 1, true
		}
	}

	return 0, false
}

type SearchState struct {
	state
}

func (f *FastCDC) NewSearchState() *SearchState {
	return &SearchState{state{params: f}}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	if edge, found = s.push(data); found {
		return edge, edge, true
	}
	return 0, len(data), false
}

type Incr struct {
	state
}

func (f *FastCDC) NewIncr() *Incr {
	return &Incr{state{params: f}}
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	return inc.push(data)
}

func (f *FastCDC) NewSearch() chunks.Search {
	return f.NewSearchState()
}

func (f *FastCDC) NewIncremental() chunks.Incremental {
	return f.NewIncr()
}
