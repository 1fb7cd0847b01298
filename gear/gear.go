/*
Package gear is the plain gear hash chunker that FastCDC refines.

Each byte shifts the fingerprint left by one and adds the byte's table entry, so a byte stops
influencing the fingerprint once it has been shifted out, 32 bytes later. No window needs to be
kept. A chunk ends once the masked fingerprint equals the target.
*/
package gear

import (
	"fmt"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/tables"
)

// DefaultAverageSizeLog2 gives chunks of 8 KiB on average
const DefaultAverageSizeLog2 = 13

// Gear32 is the configuration of a 32 bit gear chunker
type Gear32 struct {
	mask   uint32
	target uint32
	table  *[256]uint32
}

func New(mask, target uint32, table *[256]uint32) (*Gear32, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: gear requires a table", chunks.ErrInvalidConfig)
	}
	if target&^mask != 0 {
		return nil, fmt.Errorf("%w: gear target %#x has bits outside mask %#x", chunks.ErrInvalidConfig, target, mask)
	}

	return &Gear32{mask: mask, target: target, table: table}, nil
}

// MSBMask selects the n most significant bits
func MSBMask(n uint) uint32 {
	return uint32(((uint64(1) << n) - 1) << (32 - n))
}

// WithAverageSizeLog2 tests the top n bits of the fingerprint against zero, giving chunks of
// 2^n bytes on average
func WithAverageSizeLog2(n uint) (*Gear32, error) {
	if n < 1 || n > 31 {
		return nil, fmt.Errorf("%w: gear average size log2 %v not in [1, 31]", chunks.ErrInvalidConfig, n)
	}
	return New(MSBMask(n), 0, &tables.Gear32)
}

func MustWithAverageSizeLog2(n uint) *Gear32 {
	g, err := WithAverageSizeLog2(n)
	if err != nil {
		panic(err)
	}
	return g
}

func Default() *Gear32 {
	return MustWithAverageSizeLog2(DefaultAverageSizeLog2)
}

func (g *Gear32) Mask() uint32 {
	return g.mask
}

// fingerprint is the state of both views
type fingerprint struct {
	params *Gear32
	fp     uint32
}

// scan returns the index after the first byte that ends a chunk
func (f *fingerprint) scan(data []byte) (int, bool) {
	p := f.params

	for i, v := range data {
		f.fp = (f.fp << 1) + p.table[v]

		if f.fp&p.mask == p.target {
			f.fp = 0
			return i + 1, true
		}
	}
	return 0, false
}

type SearchState struct {
	fingerprint
}

func (g *Gear32) NewSearchState() *SearchState {
	return &SearchState{fingerprint{params: g}}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	if edge, found = s.scan(data); found {
		return edge, edge, true
	}
	return 0, len(data), false
}

type Incr struct {
	fingerprint
}

func (g *Gear32) NewIncr() *Incr {
	return &Incr{fingerprint{params: g}}
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	return inc.scan(data)
}

func (g *Gear32) NewSearch() chunks.Search {
	return g.NewSearchState()
}

func (g *Gear32) NewIncremental() chunks.Incremental {
	return g.NewIncr()
}
