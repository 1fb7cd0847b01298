// Package pigz implements the rsyncable splitter of pigz, whose hash needs no window.
//
// Each byte is xored into a shift register of bits bits. A chunk ends whenever the register
// holds the pattern 0111...1, which is also its starting value.
package pigz

import (
	"fmt"

	"github.com/Redundancy/hashroll/chunks"
)

const DefaultBits = 12

// PigzRsyncable is the configuration of a pigz chunker
type PigzRsyncable struct {
	bits uint8
	mask uint32
	hit  uint32
}

func WithBits(bits uint8) (*PigzRsyncable, error) {
	if bits < 1 || bits > 31 {
		return nil, fmt.Errorf("%w: pigz bits %v not in [1, 31]", chunks.ErrInvalidConfig, bits)
	}

	mask := uint32(1)<<bits - 1
	return &PigzRsyncable{
		bits: bits,
		mask: mask,
		hit:  mask >> 1,
	}, nil
}

func MustWithBits(bits uint8) *PigzRsyncable {
	p, err := WithBits(bits)
	if err != nil {
		panic(err)
	}
	return p
}

// Default is pigz's 12 bit register
func Default() *PigzRsyncable {
	return MustWithBits(DefaultBits)
}

func (p *PigzRsyncable) Bits() uint8 {
	return p.bits
}

type register struct {
	params *PigzRsyncable
	hash   uint32
}

func (r *register) scan(data []byte) (int, bool) {
	p := r.params

	for i, v := range data {
		r.hash = ((r.hash << 1) ^ uint32(v)) & p.mask

		if r.hash == p.hit {
			return i + 1, true
		}
	}
	return 0, false
}

type SearchState struct {
	register
}

func (p *PigzRsyncable) NewSearchState() *SearchState {
	return &SearchState{register{params: p, hash: p.hit}}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	if edge, found = s.scan(data); found {
		return edge, edge, true
	}
	return 0, len(data), false
}

type Incr struct {
	register
}

func (p *PigzRsyncable) NewIncr() *Incr {
	return &Incr{register{params: p, hash: p.hit}}
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	return inc.scan(data)
}

func (p *PigzRsyncable) NewSearch() chunks.Search {
	return p.NewSearchState()
}

func (p *PigzRsyncable) NewIncremental() chunks.Incremental {
	return p.NewIncr()
}
