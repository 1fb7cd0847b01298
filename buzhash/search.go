package buzhash

// SearchState reads the dropped byte back out of the caller's slice
type SearchState struct {
	params *BuzHash
	hash   hash
	offset int
	// bytes hashed since the last edge
	chunkLen uint64
}

func (b *BuzHash) NewSearchState() *SearchState {
	return &SearchState{params: b}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	p := s.params

	for i := s.offset; i < len(data); i++ {
		if i >= p.k {
			s.hash.roll(p, data[i], data[i-p.k])
		} else {
			s.hash.add(p, data[i])
		}
		s.chunkLen++

		if p.atEdge(s.hash.h, s.chunkLen) {
			*s = SearchState{params: p}
			return i + 1, i + 1, true
		}
	}

	discard = len(data) - p.k
	if discard < 0 {
		discard = 0
	}
	s.offset = len(data) - discard
	return 0, discard, false
}
