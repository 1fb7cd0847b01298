package zstd

import (
	"github.com/Redundancy/hashroll/circularbuffer"
)

// PersistentSearchState carries its window across edges, so the caller always keeps the last
// WindowLen bytes it passed, even after an edge
type PersistentSearchState struct {
	params *Zstd
	hash   rollingHash
	// bytes of the current slice already hashed. Below WindowLen only while the first window fills.
	offset int
}

func (z *Zstd) NewSearchState() *PersistentSearchState {
	return &PersistentSearchState{params: z}
}

func (s *PersistentSearchState) FindChunkEdge(data []byte) (edge, discard int, found bool) {
	for ; s.offset < WindowLen; s.offset++ {
		if s.offset == len(data) {
			return 0, 0, false
		}
		s.hash.append(data[s.offset])
	}

	for i := s.offset; i < len(data); i++ {
		s.hash.rotate(data[i-WindowLen], data[i], s.params.primePower)

		if s.params.atSplit(s.hash) {
			s.offset = WindowLen
			return i + 1, i + 1 - WindowLen, true
		}
	}

	s.offset = WindowLen
	return 0, len(data) - WindowLen, false
}

// PersistentIncr copies the last WindowLen bytes through its own window
type PersistentIncr struct {
	params *Zstd
	hash   rollingHash
	window *circularbuffer.Buffer[byte]
}

func (z *Zstd) NewIncr() *PersistentIncr {
	return &PersistentIncr{
		params: z,
		window: circularbuffer.New[byte](WindowLen),
	}
}

func (inc *PersistentIncr) Push(data []byte) (edge int, found bool) {
	for i, v := range data {
		removed, full := inc.window.Push(v)
		if !full {
			inc.hash.append(v)
			continue
		}

		inc.hash.rotate(removed, v, inc.params.primePower)

		if inc.params.atSplit(inc.hash) {
			return i + 1, true
		}
	}
	return 0, false
}
