/*
Package readers provides deterministic io.Readers for generating chunker inputs.

The PCG64 reader reproduces the byte stream of rand_pcg's Pcg64 (Lcg128Xsl64) as filled by
fill_bytes, which is what the recorded edge offsets of bup, zpaq, gzip, pigz and zstd were
measured against. The other readers build edited copies of a source for stability tests.
*/
package readers

import (
	"encoding/binary"
	"io"
	"math/bits"
)

// DefaultStream is the PCG stream selector the recorded test vectors were generated with
const (
	DefaultStreamHi = 0x0a02bdbf7bb3c0a7
	DefaultStreamLo = 0xac28fa16a64abf96
)

const (
	pcgMulHi = 0x2360ed051fc65da4
	pcgMulLo = 0x4385df649fccf645
)

// PCG64 is a 128 bit LCG with an XSL-RR output function.
// Bytes are produced as little endian 64 bit words.
type PCG64 struct {
	hi, lo       uint64
	incHi, incLo uint64

	word    [8]byte
	wordPos int
}

// NewPCG64 seeds a generator on the default stream
func NewPCG64(seed uint64) *PCG64 {
	return NewPCG64Stream(0, seed, DefaultStreamHi, DefaultStreamLo)
}

// NewSizedPCG64 limits a default stream generator to size bytes
func NewSizedPCG64(seed uint64, size int64) io.Reader {
	return io.LimitReader(NewPCG64(seed), size)
}

// NewPCG64Stream seeds a generator with a 128 bit state and stream selector
func NewPCG64Stream(seedHi, seedLo, streamHi, streamLo uint64) *PCG64 {
	// increment is (stream << 1) | 1
	p := &PCG64{
		incHi:   streamHi<<1 | streamLo>>63,
		incLo:   streamLo<<1 | 1,
		wordPos: 8,
	}

	var carry uint64
	p.lo, carry = bits.Add64(seedLo, p.incLo, 0)
	p.hi, _ = bits.Add64(seedHi, p.incHi, carry)
	p.step()

	return p
}

func (p *PCG64) step() {
	// state = state * MUL + inc (mod 2^128)
	hi, lo := bits.Mul64(p.lo, pcgMulLo)
	hi += p.hi*pcgMulLo + p.lo*pcgMulHi

	var carry uint64
	p.lo, carry = bits.Add64(lo, p.incLo, 0)
	p.hi, _ = bits.Add64(hi, p.incHi, carry)
}

// Uint64 advances the generator and returns the next output
func (p *PCG64) Uint64() uint64 {
	p.step()
	rot := int(p.hi >> 58)
	return bits.RotateLeft64(p.hi^p.lo, -rot)
}

// Read never fails and always fills b
func (p *PCG64) Read(b []byte) (n int, err error) {
	for n < len(b) {
		if p.wordPos == len(p.word) {
			binary.LittleEndian.PutUint64(p.word[:], p.Uint64())
			p.wordPos = 0
		}

		c := copy(b[n:], p.word[p.wordPos:])
		p.wordPos += c
		n += c
	}

	return n, nil
}

// Bytes is a convenience for tests and fixtures: size bytes from seed on the default stream
func Bytes(seed uint64, size int) []byte {
	b := make([]byte, size)
	NewPCG64(seed).Read(b)
	return b
}
