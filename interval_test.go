package intervals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIntervalRejectsReversedBounds(t *testing.T) {
	r := require.New(t)

	_, err := NewInterval(9, 3)
	r.Error(err)
	r.True(errors.Is(err, ErrInvalidInterval))

	iv, err := NewInterval(3, 3)
	r.NoError(err)
	r.Equal(3, iv.Low())
	r.Equal(3, iv.High())
}

func TestPoint(t *testing.T) {
	r := require.New(t)
	p := Point(42)
	r.Equal(42, p.Low())
	r.Equal(42, p.High())
	r.True(p.Overlaps(ivl(40, 42)))
	r.False(p.Overlaps(ivl(43, 50)))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b    Interval[int]
		overlap bool
	}{
		{ivl(0, 8), ivl(4, 8), true},
		{ivl(0, 8), ivl(-3, 17), true},
		{ivl(0, 8), ivl(-2, 2), true},
		{ivl(0, 8), ivl(5, 13), true},
		{ivl(0, 8), ivl(-1, 0), true}, // touching at 0
		{ivl(0, 8), ivl(8, 9), true},  // touching at 8
		{ivl(0, 8), ivl(-9, -2), false},
		{ivl(0, 8), ivl(14, 20), false},
		{ivl(3, 3), ivl(3, 3), true},
	}
	for _, tc := range tests {
		if got := tc.a.Overlaps(tc.b); got != tc.overlap {
			t.Errorf("%s.Overlaps(%s) = %v, expected %v", tc.a, tc.b, got, tc.overlap)
		}
		if got := tc.b.Overlaps(tc.a); got != tc.overlap {
			t.Errorf("overlap of %s and %s not symmetric", tc.b, tc.a)
		}
	}
}

func TestIntervalString(t *testing.T) {
	require.Equal(t, "[4, 8]", ivl(4, 8).String())
}

func TestIntervalOrdering(t *testing.T) {
	r := require.New(t)
	r.True(ivl(1, 5).less(ivl(2, 3)))
	r.True(ivl(1, 3).less(ivl(1, 5))) // ties on low broken by high
	r.False(ivl(1, 5).less(ivl(1, 5)))
	r.False(ivl(2, 3).less(ivl(1, 9)))
}
