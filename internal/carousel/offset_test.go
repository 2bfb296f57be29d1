package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want int
	}{
		{name: "in range", i: 2, n: 5, want: 2},
		{name: "one past end", i: 5, n: 5, want: 0},
		{name: "negative one", i: -1, n: 5, want: 4},
		{name: "far negative", i: -11, n: 5, want: 4},
		{name: "far positive", i: 17, n: 5, want: 2},
		{name: "empty", i: 3, n: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.i, tt.n))
		})
	}
}

func TestCircularOffsetRangeAndAntisymmetry(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for active := 0; active < n; active++ {
			for index := 0; index < n; index++ {
				got := CircularOffset(index, active, n)
				if n%2 == 0 {
					require.GreaterOrEqual(t, got, -n/2, "n=%d active=%d index=%d", n, active, index)
					require.Less(t, got, n/2, "n=%d active=%d index=%d", n, active, index)
				} else {
					require.LessOrEqual(t, abs(got), n/2, "n=%d active=%d index=%d", n, active, index)
					require.Equal(t, -got, CircularOffset(active, index, n), "antisymmetry n=%d active=%d index=%d", n, active, index)
				}
				require.Equal(t, index, Wrap(active+got, n), "offset must lead back to index")
			}
		}
	}
}

func TestCircularOffsetEvenTieIsBehind(t *testing.T) {
	assert.Equal(t, -3, CircularOffset(3, 0, 6))
	assert.Equal(t, -3, CircularOffset(0, 3, 6))
	assert.Equal(t, -2, CircularOffset(3, 1, 4))
	assert.Equal(t, -1, CircularOffset(1, 0, 2))
}

func TestCircularOffsetWrapsAtBoundary(t *testing.T) {
	// E is two steps behind B on a five item ring, not three ahead.
	assert.Equal(t, -2, CircularOffset(4, 1, 5))
	assert.Equal(t, 1, CircularOffset(0, 4, 5))
	assert.Equal(t, -1, CircularOffset(4, 0, 5))
}

func TestCircularOffsetSingleAndEmpty(t *testing.T) {
	assert.Equal(t, 0, CircularOffset(0, 0, 1))
	assert.Equal(t, 0, CircularOffset(3, 7, 1))
	assert.Equal(t, 0, CircularOffset(0, 0, 0))
}
