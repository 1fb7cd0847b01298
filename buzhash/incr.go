package buzhash

import (
	"github.com/Redundancy/hashroll/circularbuffer"
)

// Incr keeps the last k bytes in its own window
type Incr struct {
	params   *BuzHash
	hash     hash
	window   *circularbuffer.Buffer[byte]
	chunkLen uint64
}

func (b *BuzHash) NewIncr() *Incr {
	return &Incr{
		params: b,
		window: circularbuffer.New[byte](b.k),
	}
}

// Sum is the rolling hash of the bytes pushed since the last edge
func (inc *Incr) Sum() uint32 {
	return inc.hash.h
}

func (inc *Incr) pushByte(v byte) {
	if drop, full := inc.window.Push(v); full {
		inc.hash.roll(inc.params, v, drop)
	} else {
		inc.hash.add(inc.params, v)
	}
	inc.chunkLen++
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	for i, v := range data {
		inc.pushByte(v)

		if inc.params.atEdge(inc.hash.h, inc.chunkLen) {
			inc.hash = hash{}
			inc.window.Reset()
			inc.chunkLen = 0
			return i + 1, true
		}
	}
	return 0, false
}
