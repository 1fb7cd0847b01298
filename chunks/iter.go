package chunks

import (
	"fmt"
	"io"
)

// SliceIter yields successive chunks of a single in-memory source using the Search view.
// Chunks alias the source slice; nothing is copied.
type SliceIter struct {
	search Search
	data   []byte
	mode   Mode

	// start of the data still referenced by the search
	base int
	// start of the chunk currently being built
	start int
	done  bool
}

// IterSlices creates an iterator over data with a fresh search state from c
func IterSlices(c Chunker, data []byte, mode Mode) *SliceIter {
	return IterSearch(c.NewSearch(), data, mode)
}

// IterSearch iterates using an existing search state
func IterSearch(s Search, data []byte, mode Mode) *SliceIter {
	return &SliceIter{
		search: s,
		data:   data,
		mode:   mode,
	}
}

// Next returns the next chunk, or false once the source is exhausted
func (it *SliceIter) Next() ([]byte, bool) {
	if it.done {
		return nil, false
	}

	edge, discard, found := it.search.FindChunkEdge(it.data[it.base:])

	if found {
		end := it.base + edge
		chunk := it.data[it.start:end]
		it.start = end
		it.base += discard
		return chunk, true
	}

	it.done = true
	return it.remainder()
}

func (it *SliceIter) remainder() ([]byte, bool) {
	if it.mode == Partial && it.start < len(it.data) {
		return it.data[it.start:], true
	}
	return nil, false
}

// IncrSliceIter yields successive chunks of a single in-memory source using the Incremental view
type IncrSliceIter struct {
	incr  Incremental
	data  []byte
	mode  Mode
	start int
	done  bool
}

func IterIncrSlices(incr Incremental, data []byte, mode Mode) *IncrSliceIter {
	return &IncrSliceIter{
		incr: incr,
		data: data,
		mode: mode,
	}
}

func (it *IncrSliceIter) Next() ([]byte, bool) {
	if it.done {
		return nil, false
	}

	edge, found := it.incr.Push(it.data[it.start:])

	if found {
		end := it.start + edge
		chunk := it.data[it.start:end]
		it.start = end
		return chunk, true
	}

	it.done = true
	if it.mode == Partial && it.start < len(it.data) {
		return it.data[it.start:], true
	}
	return nil, false
}

// StreamIter reads a source piecemeal through an Incremental and yields owned copies of each chunk.
// Only the chunk under construction and one read buffer are held in memory.
type StreamIter struct {
	incr    Incremental
	r       io.Reader
	mode    Mode
	buffer  []byte
	pending []byte
	current []byte
	err     error
}

// NewStreamIter creates an iterator that reads r bufSize bytes at a time
func NewStreamIter(incr Incremental, r io.Reader, bufSize int, mode Mode) (*StreamIter, error) {
	if bufSize < 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBufferSize, bufSize)
	}

	return &StreamIter{
		incr:   incr,
		r:      r,
		mode:   mode,
		buffer: make([]byte, bufSize),
	}, nil
}

// Next returns the next chunk. At the end of the source it returns io.EOF,
// and any other read error is returned as is.
func (it *StreamIter) Next() ([]byte, error) {
	for {
		if len(it.pending) > 0 {
			edge, found := it.incr.Push(it.pending)

			if found {
				chunk := append(it.current, it.pending[:edge]...)
				it.current = nil
				it.pending = it.pending[edge:]
				return chunk, nil
			}

			it.current = append(it.current, it.pending...)
			it.pending = nil
		}

		if it.err != nil {
			return it.finish()
		}

		n, err := it.r.Read(it.buffer)
		it.pending = it.buffer[:n]
		it.err = err
	}
}

func (it *StreamIter) finish() ([]byte, error) {
	if it.err != io.EOF {
		return nil, it.err
	}

	if it.mode == Partial && len(it.current) > 0 {
		chunk := it.current
		it.current = nil
		return chunk, nil
	}
	return nil, io.EOF
}

// Split collects every chunk of data found by c
func Split(c Chunker, data []byte, mode Mode) [][]byte {
	var result [][]byte
	it := IterSlices(c, data, mode)

	for chunk, ok := it.Next(); ok; chunk, ok = it.Next() {
		result = append(result, chunk)
	}

	return result
}

// Lengths maps chunks to their lengths
func Lengths(chunks [][]byte) []int {
	result := make([]int, len(chunks))
	for i, c := range chunks {
		result[i] = len(c)
	}
	return result
}
