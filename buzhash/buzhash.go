/*
Package buzhash is a cyclic polynomial rolling hash chunker.

The hash of a window of k bytes c1..ck is

	rotl(h(c1), k-1) ^ rotl(h(c2), k-2) ^ ... ^ h(ck)

where h is a Hasher. A chunk ends after any byte that leaves every bit of the mask set in the hash,
or once a chunk grows past the maximum chunk size.

NewNom is the configuration used by noms and dolt.
*/
package buzhash

import (
	"fmt"
	"math/bits"

	"github.com/Redundancy/hashroll/chunks"
	"github.com/Redundancy/hashroll/tables"
)

// BuzHash is the configuration of a buzhash chunker
type BuzHash struct {
	k            int
	mask         uint32
	hasher       Hasher
	maxChunkSize uint64
}

// New creates a chunker over windows of k bytes
func New(k int, mask uint32, h Hasher, maxChunkSize uint64) (*BuzHash, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: buzhash window length %v", chunks.ErrInvalidConfig, k)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: buzhash requires a hasher", chunks.ErrInvalidConfig)
	}

	return &BuzHash{
		k:            k,
		mask:         mask,
		hasher:       h,
		maxChunkSize: maxChunkSize,
	}, nil
}

func MustNew(k int, mask uint32, h Hasher, maxChunkSize uint64) *BuzHash {
	b, err := New(k, mask, h, maxChunkSize)
	if err != nil {
		panic(err)
	}
	return b
}

// NewNom is noms' chunker: a 67 byte window, 4 KiB average chunks and chunks of at most 16 MiB,
// using the go-buzhash table permuted by salt
func NewNom(salt byte) *BuzHash {
	return MustNew(67, (1<<12)-1, NewSaltedTableHash(salt, &tables.GoBuzhash), 1<<24)
}

func (b *BuzHash) WindowLen() int {
	return b.k
}

func (b *BuzHash) NewSearch() chunks.Search {
	return b.NewSearchState()
}

func (b *BuzHash) NewIncremental() chunks.Incremental {
	return b.NewIncr()
}

// hash is the rolling value, shared by both states
type hash struct {
	h uint32
}

func (s *hash) add(p *BuzHash, v byte) {
	s.h = bits.RotateLeft32(s.h, 1) ^ p.hasher.Hash(v)
}

// roll adds v and removes the byte that entered k bytes ago
func (s *hash) roll(p *BuzHash, v, drop byte) {
	// the dropped value is rotated by k mod 8, not k mod 32. Existing chunk boundaries depend on it.
	s.h = bits.RotateLeft32(s.h, 1) ^
		bits.RotateLeft32(p.hasher.Hash(drop), p.k%8) ^
		p.hasher.Hash(v)
}

func (b *BuzHash) atEdge(h uint32, chunkLen uint64) bool {
	return h&b.mask == b.mask || chunkLen > b.maxChunkSize
}
