/*
Package zpaq implements the chunker of the zpaq archiver, also used by klauspost/dedup.

The hash is an order 1 context hash: each byte is compared with the byte that last followed
the previous byte, and the hash is multiplied by one of two constants depending on whether
that prediction held. A chunk ends when the hash drops below a threshold, subject to a range of
allowed chunk lengths. Nothing before the current byte needs to be kept except a 256 byte
prediction table.

zpaq and dedup derive the length range and the threshold from their parameters differently.
WithAverageSizePow2 follows zpaq, WithMaxSize follows dedup.
*/
package zpaq

import (
	"fmt"
	"math"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/sizerange"
)

const (
	// DefaultFragment is zpaq's default "-fragment" argument, 64 KiB chunks on average
	DefaultFragment = 6
	maxFragment     = 22
)

// Zpaq is the configuration of a zpaq chunker
type Zpaq struct {
	lengths  sizerange.Range
	maxHash  uint32
	fragment uint8
}

// WithAverageAndRange sets every parameter. Chunks average 2^fragment KiB when the range
// does not get in the way.
func WithAverageAndRange(fragment uint8, lengths sizerange.Range) (*Zpaq, error) {
	if fragment > maxFragment {
		return nil, fmt.Errorf("%w: zpaq fragment %v exceeds %v", chunks.ErrInvalidConfig, fragment, maxFragment)
	}

	return &Zpaq{
		lengths:  lengths,
		maxHash:  1 << (maxFragment - fragment),
		fragment: fragment,
	}, nil
}

// WithAverageSizePow2 is zpaq's "-fragment" option, allowing chunks of [64, 8128) << fragment bytes
func WithAverageSizePow2(fragment uint8) (*Zpaq, error) {
	if fragment > maxFragment {
		return nil, fmt.Errorf("%w: zpaq fragment %v exceeds %v", chunks.ErrInvalidConfig, fragment, maxFragment)
	}
	return WithAverageAndRange(fragment, sizerange.HalfOpen(64<<fragment, 8128<<fragment))
}

func MustWithAverageSizePow2(fragment uint8) *Zpaq {
	z, err := WithAverageSizePow2(fragment)
	if err != nil {
		panic(err)
	}
	return z
}

// WithMaxSize is dedup's parameterization: chunks of [max/64, max) bytes averaging about max/4
func WithMaxSize(max uint64) (*Zpaq, error) {
	if max == 0 {
		return nil, fmt.Errorf("%w: zpaq max size must be positive", chunks.ErrInvalidConfig)
	}
	return WithAverageAndRange(fragmentFromMax(max), sizerange.HalfOpen(max/64, max))
}

// WithRange uses the given length range and derives the average from its largest allowed length,
// or from 64 times its smallest if it has no maximum
func WithRange(lengths sizerange.Range) (*Zpaq, error) {
	f, err := fragmentFromRange(lengths)
	if err != nil {
		return nil, err
	}
	return WithAverageAndRange(f, lengths)
}

func Default() *Zpaq {
	return MustWithAverageSizePow2(DefaultFragment)
}

// fragmentFromMax is dedup's log2(max / 4096), truncated and saturated to a byte
func fragmentFromMax(max uint64) uint8 {
	f := math.Log2(float64(max) / (64 * 64))

	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(f)
}

func fragmentFromRange(r sizerange.Range) (uint8, error) {
	var v uint64

	switch r.End.Kind {
	case sizerange.Included:
		v = r.End.Value
	case sizerange.Excluded:
		if r.End.Value == 0 {
			return 0, fmt.Errorf("%w: zpaq range %v is empty", chunks.ErrInvalidConfig, r)
		}
		v = r.End.Value - 1
	default:
		switch r.Start.Kind {
		case sizerange.Included:
			v = 64 * r.Start.Value
		case sizerange.Excluded:
			v = 64 * (r.Start.Value + 1)
		default:
			return DefaultFragment, nil
		}
	}

	return fragmentFromMax(v), nil
}

func (z *Zpaq) Fragment() uint8 {
	return z.fragment
}

func (z *Zpaq) MaxHash() uint32 {
	return z.maxHash
}

func (z *Zpaq) Lengths() sizerange.Range {
	return z.lengths
}

// splitHere decides on the byte that brings the chunk to length n
func (z *Zpaq) splitHere(h uint32, n uint64) bool {
	return (h < z.maxHash && !z.lengths.UnderMin(n)) || z.lengths.ExceedsMax(n)
}

func (z *Zpaq) NewSearch() chunks.Search {
	return z.NewSearchState()
}

func (z *Zpaq) NewIncremental() chunks.Incremental {
	return z.NewIncr()
}
