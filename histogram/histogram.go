/*
Package histogram records the distribution of chunk lengths produced by a chunker.

Lengths are kept in an ordered tree of length to count, so that percentiles can be read off
by walking the tree in order, and the memory used depends on the number of distinct lengths
rather than on the number of chunks.
*/
package histogram

import (
	"errors"
	"fmt"
	"math"

	"github.com/petar/GoLLRB/llrb"
)

var (
	// ErrEmpty is returned by statistics of a histogram with nothing in it
	ErrEmpty = errors.New("histogram is empty")

	ErrPercentileRange = errors.New("percentile must be within [0, 100]")
)

type bucket struct {
	length int
	count  int
}

func (b *bucket) Less(than llrb.Item) bool {
	return b.length < than.(*bucket).length
}

// Histogram is not safe for concurrent use
type Histogram struct {
	tree   *llrb.LLRB
	chunks int
	bytes  uint64
}

func New() *Histogram {
	return &Histogram{tree: llrb.New()}
}

// Of builds a histogram of the given lengths
func Of(lengths []int) *Histogram {
	h := New()
	for _, l := range lengths {
		h.Add(l)
	}
	return h
}

func (h *Histogram) Add(length int) {
	h.chunks++
	h.bytes += uint64(length)

	if existing := h.tree.Get(&bucket{length: length}); existing != nil {
		existing.(*bucket).count++
		return
	}
	h.tree.ReplaceOrInsert(&bucket{length: length, count: 1})
}

// Count is the number of chunks of exactly length bytes
func (h *Histogram) Count(length int) int {
	if existing := h.tree.Get(&bucket{length: length}); existing != nil {
		return existing.(*bucket).count
	}
	return 0
}

// Total is the number of chunks added
func (h *Histogram) Total() int {
	return h.chunks
}

// Bytes is the sum of all lengths added
func (h *Histogram) Bytes() uint64 {
	return h.bytes
}

// Distinct is the number of different lengths seen
func (h *Histogram) Distinct() int {
	return h.tree.Len()
}

func (h *Histogram) Min() (int, error) {
	if h.chunks == 0 {
		return 0, ErrEmpty
	}
	return h.tree.Min().(*bucket).length, nil
}

func (h *Histogram) Max() (int, error) {
	if h.chunks == 0 {
		return 0, ErrEmpty
	}
	return h.tree.Max().(*bucket).length, nil
}

func (h *Histogram) Mean() (float64, error) {
	if h.chunks == 0 {
		return 0, ErrEmpty
	}
	return float64(h.bytes) / float64(h.chunks), nil
}

// Percentile is the nearest rank percentile: the smallest length such that at least p percent
// of chunks are no longer than it. Percentile(0) is the minimum.
func (h *Histogram) Percentile(p float64) (int, error) {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("%w: %v", ErrPercentileRange, p)
	}
	if h.chunks == 0 {
		return 0, ErrEmpty
	}

	rank := int(math.Ceil(p / 100 * float64(h.chunks)))
	if rank < 1 {
		rank = 1
	}

	seen := 0
	result := 0
	h.Ascend(func(length, count int) bool {
		seen += count
		result = length
		return seen < rank
	})

	return result, nil
}

// Ascend calls fn for each distinct length in increasing order, until fn returns false
func (h *Histogram) Ascend(fn func(length, count int) bool) {
	if h.tree.Len() == 0 {
		return
	}

	h.tree.AscendGreaterOrEqual(h.tree.Min(), func(i llrb.Item) bool {
		b := i.(*bucket)
		return fn(b.length, b.count)
	})
}
