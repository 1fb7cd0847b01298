package zpaq

// Hash is the order 1 context hash. The zero value is ready to use.
type Hash struct {
	h         uint32
	last      byte
	predicted [256]byte
}

// Feed adds c and returns the new hash
func (z *Hash) Feed(c byte) uint32 {
	if c == z.predicted[z.last] {
		z.h = (z.h + uint32(c) + 1) * 314159265
	} else {
		z.h = (z.h + uint32(c) + 1) * 271828182
	}

	z.predicted[z.last] = c
	z.last = c
	return z.h
}

// chunkState is shared by both views, zpaq never looks back into the data
type chunkState struct {
	params *Zpaq
	hash   Hash
	// length of the chunk including the byte just fed
	n uint64
}

func (s *chunkState) scan(data []byte) (int, bool) {
	for i, c := range data {
		s.n++
		h := s.hash.Feed(c)

		if s.params.splitHere(h, s.n) {
			s.hash = Hash{}
			s.n = 0
			return i + 1, true
		}
	}
	return 0, false
}

type SearchState struct {
	chunkState
}

func (z *Zpaq) NewSearchState() *SearchState {
	return &SearchState{chunkState{params: z}}
}

func (s *SearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	if edge, found = s.scan(data); found {
		return edge, edge, true
	}
	return 0, len(data), false
}

type Incr struct {
	chunkState
}

func (z *Zpaq) NewIncr() *Incr {
	return &Incr{chunkState{params: z}}
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	return inc.scan(data)
}
