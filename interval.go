package intervals

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

// Interval is a closed range [low, high] over an ordered key type.
//
// Both endpoints belong to the interval. The invariant low <= high is
// established by NewInterval and holds for every Interval obtained through
// this package; the tree relies on it and never re-validates.
type Interval[K cmp.Ordered] struct {
	low  K
	high K
}

// NewInterval returns the closed interval [low, high], or an error wrapping
// ErrInvalidInterval if high lies before low.
func NewInterval[K cmp.Ordered](low, high K) (Interval[K], error) {
	if high < low {
		return Interval[K]{}, errors.Wrapf(ErrInvalidInterval, "[%v, %v]", low, high)
	}
	return Interval[K]{low: low, high: high}, nil
}

// Point returns the degenerate interval [k, k].
func Point[K cmp.Ordered](k K) Interval[K] {
	return Interval[K]{low: k, high: k}
}

// Low returns the lower bound of the interval.
func (iv Interval[K]) Low() K {
	return iv.low
}

// High returns the upper bound of the interval.
func (iv Interval[K]) High() K {
	return iv.high
}

// Overlaps reports whether two closed intervals intersect. Overlap is
// inclusive: intervals that merely touch at a shared endpoint, like [0,1]
// and [1,3], do overlap.
func (iv Interval[K]) Overlaps(other Interval[K]) bool {
	return iv.low <= other.high && other.low <= iv.high
}

// less orders intervals lexicographically by (low, high). The tree uses it
// for node placement, so intervals with equal lower bounds are still totally
// ordered.
func (iv Interval[K]) less(other Interval[K]) bool {
	return iv.low < other.low || iv.low == other.low && iv.high < other.high
}

func (iv Interval[K]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.low, iv.high)
}
