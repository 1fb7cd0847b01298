package readers

import (
	"io"
)

// Reads a continuous stream of bytes with the same value, up to length
type uniformReader struct {
	value  byte
	length int
	read   int
}

func (r *uniformReader) Read(p []byte) (n int, err error) {
	readable := r.length - r.read
	if readable == 0 {
		return 0, io.EOF
	}

	n = len(p)
	if readable < n {
		n = readable
	}

	for i := range p[:n] {
		p[i] = r.value
	}
	r.read += n

	if r.read == r.length {
		err = io.EOF
	}

	return n, err
}

// UniformReader reads length copies of value
func UniformReader(value byte, length int) io.Reader {
	return &uniformReader{
		value:  value,
		length: length,
	}
}

func ZeroReader(length int) io.Reader {
	return UniformReader(0, length)
}

func OneReader(length int) io.Reader {
	return UniformReader(1, length)
}

// InjectedReader inserts inject into base after offsetFromStart bytes
func InjectedReader(
	offsetFromStart int64,
	base io.Reader,
	inject io.Reader,
) io.Reader {
	return io.MultiReader(
		io.LimitReader(base, offsetFromStart),
		inject,
		base,
	)
}

// SkippedReader drops count bytes of base after offsetFromStart bytes
func SkippedReader(
	offsetFromStart int64,
	count int64,
	base io.Reader,
) io.Reader {
	return io.MultiReader(
		io.LimitReader(base, offsetFromStart),
		&skipReader{base: base, skip: count},
	)
}

type skipReader struct {
	base io.Reader
	skip int64
}

func (s *skipReader) Read(p []byte) (int, error) {
	if s.skip > 0 {
		n, err := io.CopyN(io.Discard, s.base, s.skip)
		s.skip -= n
		if err != nil {
			return 0, err
		}
	}
	return s.base.Read(p)
}

// SequenceLimit reads from 'readers' in sequence up to a limit of 'size'
func SequenceLimit(size int64, readers ...io.Reader) io.Reader {
	return io.LimitReader(
		io.MultiReader(readers...),
		size)
}
