// Package carousel implements a circular carousel controller: wrap-aware index
// arithmetic, offset-driven visual descriptors and the autoplay/interaction state
// machine shared by every carousel in the showcase.
package carousel

// NoIndex is the active index reported by a carousel without items.
const NoIndex = -1

// Wrap maps any integer onto [0, n) using a non-negative modulo.
// It returns 0 when n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// CircularOffset returns the signed minimal distance from activeIndex to index on a
// circle of n items. Positive offsets are ahead of the active item, negative ones
// behind it, and |offset| never exceeds n/2.
//
// When n is even and both directions are equally short (|diff| == n/2) the item is
// reported as behind the active one, so CircularOffset(3, 0, 6) == -3 and the range
// for even n is [-n/2, n/2).
func CircularOffset(index, activeIndex, n int) int {
	if n <= 1 {
		return 0
	}
	diff := Wrap(index, n) - Wrap(activeIndex, n)
	if diff > n/2 {
		diff -= n
	}
	if diff < -n/2 {
		diff += n
	}
	if n%2 == 0 && diff == n/2 {
		diff = -diff
	}
	return diff
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
