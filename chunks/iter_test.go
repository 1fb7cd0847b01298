package chunks

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// delimiter ends a chunk after each occurrence of a byte
type delimiter byte

func (d delimiter) NewSearch() Search           { return delimiterState(d) }
func (d delimiter) NewIncremental() Incremental { return delimiterState(d) }

type delimiterState byte

func (d delimiterState) FindChunkEdge(data []byte) (int, int, bool) {
	if i := bytes.IndexByte(data, byte(d)); i >= 0 {
		return i + 1, i + 1, true
	}
	return 0, len(data), false
}

func (d delimiterState) Push(data []byte) (int, bool) {
	if i := bytes.IndexByte(data, byte(d)); i >= 0 {
		return i + 1, true
	}
	return 0, false
}

func collect(next func() ([]byte, bool)) []string {
	var result []string
	for chunk, ok := next(); ok; chunk, ok = next() {
		result = append(result, string(chunk))
	}
	return result
}

func TestSliceIterPartialYieldsRemainder(t *testing.T) {
	it := IterSlices(delimiter(','), []byte("a,bc,,def"), Partial)
	assert.Equal(t, []string{"a,", "bc,", ",", "def"}, collect(it.Next))
}

func TestSliceIterStrictDropsRemainder(t *testing.T) {
	it := IterSlices(delimiter(','), []byte("a,bc,,def"), Strict)
	assert.Equal(t, []string{"a,", "bc,", ","}, collect(it.Next))
}

func TestSliceIterEndingOnEdgeHasNoRemainder(t *testing.T) {
	it := IterSlices(delimiter(','), []byte("a,b,"), Partial)
	assert.Equal(t, []string{"a,", "b,"}, collect(it.Next))
}

func TestEmptyInputYieldsNothing(t *testing.T) {
	for _, mode := range []Mode{Partial, Strict} {
		assert.Empty(t, collect(IterSlices(delimiter(','), nil, mode).Next), mode.String())
		assert.Empty(t, collect(IterIncrSlices(delimiter(',').NewIncremental(), nil, mode).Next), mode.String())

		it, err := NewStreamIter(delimiter(',').NewIncremental(), bytes.NewReader(nil), 4, mode)
		require.NoError(t, err)
		_, err = it.Next()
		assert.Equal(t, io.EOF, err)
	}
}

func TestSliceIterChunksAliasSource(t *testing.T) {
	data := []byte("xy,z")
	chunk, ok := IterSlices(delimiter(','), data, Strict).Next()

	require.True(t, ok)
	chunk[0] = 'q'
	assert.Equal(t, byte('q'), data[0])
}

func TestIncrSliceIterMatchesSliceIter(t *testing.T) {
	data := []byte(",,hello, world,  and others,")

	for _, mode := range []Mode{Partial, Strict} {
		expected := collect(IterSlices(delimiter(' '), data, mode).Next)
		got := collect(IterIncrSlices(delimiter(' ').NewIncremental(), data, mode).Next)
		assert.Equal(t, expected, got, mode.String())
	}
}

func TestStreamIterMatchesSliceIterForAnyBufferSize(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	expected := collect(IterSlices(delimiter('o'), data, Partial).Next)

	for _, size := range []int{1, 2, 3, 5, 16, 1024} {
		it, err := NewStreamIter(delimiter('o').NewIncremental(), bytes.NewReader(data), size, Partial)
		require.NoError(t, err)

		var got []string
		for {
			chunk, err := it.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			got = append(got, string(chunk))
		}

		assert.Equal(t, expected, got, "buffer size %v", size)
	}
}

func TestStreamIterChunksAreOwned(t *testing.T) {
	data := []byte("ab,cd,")
	it, err := NewStreamIter(delimiter(',').NewIncremental(), bytes.NewReader(data), 64, Strict)
	require.NoError(t, err)

	first, err := it.Next()
	require.NoError(t, err)
	data[0] = 'z'

	second, err := it.Next()
	require.NoError(t, err)

	assert.Equal(t, "ab,", string(first))
	assert.Equal(t, "cd,", string(second))
}

func TestStreamIterStrictDropsRemainder(t *testing.T) {
	it, err := NewStreamIter(delimiter(',').NewIncremental(), bytes.NewReader([]byte("a,bcd")), 2, Strict)
	require.NoError(t, err)

	chunk, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "a,", string(chunk))

	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStreamIterHandlesDataReturnedWithEOF(t *testing.T) {
	r := iotest.DataErrReader(bytes.NewReader([]byte("a,b")))
	it, err := NewStreamIter(delimiter(',').NewIncremental(), r, 16, Partial)
	require.NoError(t, err)

	var got []string
	for chunk, err := it.Next(); err == nil; chunk, err = it.Next() {
		got = append(got, string(chunk))
	}

	assert.Equal(t, []string{"a,", "b"}, got)
}

func TestStreamIterReturnsReadErrors(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader([]byte("ab")), iotest.ErrReader(boom))

	it, err := NewStreamIter(delimiter(',').NewIncremental(), r, 16, Partial)
	require.NoError(t, err)

	_, err = it.Next()
	assert.ErrorIs(t, err, boom)
}

func TestInvalidStreamBufferSize(t *testing.T) {
	_, err := NewStreamIter(delimiter(',').NewIncremental(), bytes.NewReader(nil), 0, Partial)
	assert.ErrorIs(t, err, ErrInvalidBufferSize)
}

func TestSplitAndLengths(t *testing.T) {
	chunks := Split(delimiter('.'), []byte("ab.c.def"), Partial)
	assert.Equal(t, []int{3, 2, 3}, Lengths(chunks))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "partial", Partial.String())
	assert.Equal(t, "strict", Strict.String())
}
