package rollsum

import (
	"github.com/Redundancy/hashroll/circularbuffer"
)

// Incr copies every byte through its own window so it can be fed any amount of data at a time.
// If the caller can keep its data in one slice, SearchState avoids the copy.
type Incr struct {
	windowLen int
	sums      sums
	window    *circularbuffer.Buffer[byte]
}

func (r *RollSum) NewIncr() *Incr {
	return &Incr{
		windowLen: r.windowLen,
		sums:      seed(r.windowLen),
		window:    circularbuffer.New[byte](r.windowLen),
	}
}

// RollByte advances the checksum by one byte without checking for an edge.
// The window starts out as zeros.
func (inc *Incr) RollByte(b byte) {
	// an empty slot of the window is a zero
	drop, _ := inc.window.Push(b)
	inc.sums.add(inc.windowLen, drop, b)
}

// Digest is the current 32 bit checksum
func (inc *Incr) Digest() uint32 {
	return inc.sums.digest()
}

// AtSplit reports whether the last byte rolled ends a chunk
func (inc *Incr) AtSplit() bool {
	return inc.sums.atSplit()
}

func (inc *Incr) reset() {
	inc.sums = seed(inc.windowLen)
	inc.window.Reset()
}

func (inc *Incr) Push(data []byte) (edge int, found bool) {
	for i, b := range data {
		inc.RollByte(b)

		if inc.AtSplit() {
			inc.reset()
			return i + 1, true
		}
	}
	return 0, false
}
