/*
Package zstd finds the synchronization points of zstd's --rsyncable mode.

zstd hashes the last 32 bytes with a polynomial rolling hash and ends a section wherever the low
bits of the hash are all set. Unlike the other chunkers here the hash is never reset at an edge:
the window simply slides on, so an edge depends only on the 32 bytes before it, wherever the
previous edge was. Maximum section sizes are not enforced.

See ZSTD_rollingHash_append and findSynchronizationPoint in zstd's lib/compress.
*/
package zstd

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/Redundancy/hashroll/chunks"
)

const (
	// WindowLen is zstd's RSYNC_LENGTH
	WindowLen = 32

	// DefaultTargetSectionSize is zstd's default job size of 8 MiB
	DefaultTargetSectionSize = 8 << 20

	prime      uint64 = 0xCF1BBCDCB7A56463
	charOffset uint64 = 10
)

// Zstd is the configuration of a zstd rsyncable chunker
type Zstd struct {
	hitMask    uint64
	primePower uint64
}

// WithTargetSectionSize aims for sections of n bytes on average, rounded down to a power of two
// number of MiB. n must be at least 1 MiB.
func WithTargetSectionSize(n uint64) (*Zstd, error) {
	jobSizeMB := n >> 20
	if jobSizeMB == 0 || jobSizeMB > math.MaxUint32 {
		return nil, fmt.Errorf("%w: zstd target section size %v not in [1 MiB, 4 PiB)", chunks.ErrInvalidConfig, n)
	}

	// ZSTD_highbit32(jobSizeMB) + 20
	rsyncBits := uint(bits.Len32(uint32(jobSizeMB))-1) + 20

	return &Zstd{
		hitMask:    (uint64(1) << rsyncBits) - 1,
		primePower: power(prime, WindowLen-1),
	}, nil
}

func MustWithTargetSectionSize(n uint64) *Zstd {
	z, err := WithTargetSectionSize(n)
	if err != nil {
		panic(err)
	}
	return z
}

func Default() *Zstd {
	return MustWithTargetSectionSize(DefaultTargetSectionSize)
}

// power is base^exp modulo 2^64
func power(base uint64, exp int) uint64 {
	result := uint64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

func (z *Zstd) HitMask() uint64 {
	return z.hitMask
}

func (z *Zstd) PrimePower() uint64 {
	return z.primePower
}

func (z *Zstd) NewSearch() chunks.Search {
	return z.NewSearchState()
}

func (z *Zstd) NewIncremental() chunks.Incremental {
	return z.NewIncr()
}

type rollingHash struct {
	hash uint64
}

// ZSTD_rollingHash_append
func (r *rollingHash) append(b byte) {
	r.hash = r.hash*prime + uint64(b) + charOffset
}

// ZSTD_rollingHash_rotate
func (r *rollingHash) rotate(remove, add byte, primePower uint64) {
	r.hash -= (uint64(remove) + charOffset) * primePower
	r.hash *= prime
	r.hash += uint64(add) + charOffset
}

func (z *Zstd) atSplit(r rollingHash) bool {
	return r.hash&z.hitMask == z.hitMask
}
