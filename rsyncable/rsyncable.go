/*
Package rsyncable implements the splitter of the gzip --rsyncable patch, also used by rsyncrypto.

The hash is the plain sum of the last window bytes. A chunk ends after any byte that leaves
the sum divisible by the modulus. There is no minimum or maximum chunk length.

See http://rsyncrypto.lingnu.com/index.php/Algorithm
*/
package rsyncable

import (
	"fmt"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/circularbuffer"
)

const (
	DefaultWindow  = 8192
	DefaultModulus = 4096
)

// GzipRsyncable is the configuration of a gzip-rsyncable chunker
type GzipRsyncable struct {
	windowLen int
	modulus   uint64
}

func WithWindowAndModulus(window int, modulus uint64) (*GzipRsyncable, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: rsyncable window length %v", chunks.ErrInvalidConfig, window)
	}
	if modulus == 0 {
		return nil, fmt.Errorf("%w: rsyncable modulus must be positive", chunks.ErrInvalidConfig)
	}

	return &GzipRsyncable{windowLen: window, modulus: modulus}, nil
}

func MustWithWindowAndModulus(window int, modulus uint64) *GzipRsyncable {
	g, err := WithWindowAndModulus(window, modulus)
	if err != nil {
		panic(err)
	}
	return g
}

// Default is gzip's 8192 byte window and 4096 modulus
func Default() *GzipRsyncable {
	return MustWithWindowAndModulus(DefaultWindow, DefaultModulus)
}

func (g *GzipRsyncable) WindowLen() int {
	return g.windowLen
}

func (g *GzipRsyncable) NewSearch() chunks.Search {
	return g.NewSearchState()
}

func (g *GzipRsyncable) NewIncremental() chunks.Incremental {
	return g.NewIncr()
}

// SearchState subtracts bytes leaving the window by reading them back from the caller's slice
type SearchState struct {
	params *GzipRsyncable
	accum  uint64
	offset int
}

func (g *GzipRsyncable) NewSearchState() *SearchState {
	return &SearchState{params: g}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	w := s.params.windowLen

	for i := s.offset; i < len(data); i++ {
		if i >= w {
			s.accum -= uint64(data[i-w])
		}
		s.accum += uint64(data[i])

		if s.accum%s.params.modulus == 0 {
			s.accum = 0
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

// Incr copies the window into a buffer of its own
type Incr struct {
	params *GzipRsyncable
	accum  uint64
	window *circularbuffer.Buffer[byte]
}

func (g *GzipRsyncable) NewIncr() *Incr {
	return &Incr{
		params: g,
		window: circularbuffer.New[byte](g.windowLen),
	}
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	for i, v := range data {
		if old, full := inc.window.Push(v); full {
			inc.accum -= uint64(old)
		}
		inc.accum += uint64(v)

		if inc.accum%inc.params.modulus == 0 {
			inc.accum = 0
			inc.window.Reset()
			return i + 1, true
		}
	}
	return 0, false
}
