/*
Package comparer measures how many chunks two chunkings of related data have in common.

Content defined chunking is only useful if a small edit to the data changes a small number of
chunks. Compare reports, for a modified source b, how much of it is made of chunks that also
occur in the original a. Chunks are keyed by their content, so no checksums are involved.
*/
package comparer

// Summary describes the chunks of a comparison source relative to a reference
type Summary struct {
	// Chunks and Bytes of the comparison
	Chunks int
	Bytes  uint64

	// SharedChunks is the number of comparison chunks whose content occurs in the reference,
	// and SharedBytes their total length
	SharedChunks int
	SharedBytes  uint64
}

// Overlap is the fraction of comparison chunks found in the reference
func (s Summary) Overlap() float64 {
	if s.Chunks == 0 {
		return 0
	}
	return float64(s.SharedChunks) / float64(s.Chunks)
}

// ByteOverlap is the fraction of comparison bytes covered by chunks found in the reference
func (s Summary) ByteOverlap() float64 {
	if s.Bytes == 0 {
		return 0
	}
	return float64(s.SharedBytes) / float64(s.Bytes)
}

// Index is the set of chunk contents of a reference
type Index map[string]struct{}

func MakeIndex(reference [][]byte) Index {
	index := make(Index, len(reference))
	for _, c := range reference {
		index[string(c)] = struct{}{}
	}
	return index
}

func (index Index) Contains(chunk []byte) bool {
	_, ok := index[string(chunk)]
	return ok
}

// Add accounts for one comparison chunk
func (s *Summary) Add(index Index, chunk []byte) {
	s.Chunks++
	s.Bytes += uint64(len(chunk))

	if index.Contains(chunk) {
		s.SharedChunks++
		s.SharedBytes += uint64(len(chunk))
	}
}

// Compare summarizes the chunks of b against those of a
func Compare(a, b [][]byte) Summary {
	index := MakeIndex(a)

	var s Summary
	for _, chunk := range b {
		s.Add(index, chunk)
	}
	return s
}
