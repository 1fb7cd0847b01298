package histogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyHistogram(t *testing.T) {
	h := New()

	_, err := h.Min()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = h.Max()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = h.Mean()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = h.Percentile(50)
	assert.ErrorIs(t, err, ErrEmpty)

	assert.Equal(t, 0, h.Total())
	h.Ascend(func(int, int) bool {
		t.Error("Ascend visited an empty histogram")
		return true
	})
}

func TestCounts(t *testing.T) {
	h := Of([]int{5, 3, 5, 9, 5})

	assert.Equal(t, 3, h.Count(5))
	assert.Equal(t, 1, h.Count(3))
	assert.Equal(t, 0, h.Count(4))
	assert.Equal(t, 5, h.Total())
	assert.Equal(t, 3, h.Distinct())
	assert.Equal(t, uint64(27), h.Bytes())
}

func TestMinMaxMean(t *testing.T) {
	h := Of([]int{2600, 6245})

	min, err := h.Min()
	require.NoError(t, err)
	max, err := h.Max()
	require.NoError(t, err)
	mean, err := h.Mean()
	require.NoError(t, err)

	assert.Equal(t, 2600, min)
	assert.Equal(t, 6245, max)
	assert.InDelta(t, 4422.5, mean, 1e-9)
}

func TestNearestRankPercentiles(t *testing.T) {
	h := Of([]int{15, 20, 35, 40, 50})

	cases := []struct {
		p        float64
		expected int
	}{
		{0, 15},
		{5, 15},
		{30, 20},
		{40, 20},
		{50, 35},
		{100, 50},
	}

	for _, c := range cases {
		got, err := h.Percentile(c.p)
		require.NoError(t, err)
		assert.Equal(t, c.expected, got, "p%v", c.p)
	}
}

func TestPercentileOutOfRange(t *testing.T) {
	h := Of([]int{1})

	for _, p := range []float64{-1, 100.5} {
		_, err := h.Percentile(p)
		assert.ErrorIs(t, err, ErrPercentileRange)
	}
}

func TestAscendIsOrderedAndStops(t *testing.T) {
	h := Of([]int{9, 1, 4, 4, 7})

	var lengths []int
	h.Ascend(func(length, count int) bool {
		lengths = append(lengths, length)
		return length < 4
	})

	assert.Equal(t, []int{1, 4}, lengths)
}
