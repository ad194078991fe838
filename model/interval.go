package model

import (
	"math"
	"strconv"
)

// Interval is an immutable closed range [start, end] on the integer line.
//
// Interval is a comparable value: two intervals with the same bounds are ==,
// and an Interval can be used directly as a map key.
type Interval struct {
	start int
	end   int
}

// NewInterval returns the interval [start, end]. It fails with an
// *InvalidRangeError when start > end.
func NewInterval(start, end int) (Interval, error) {
	if start > end {
		return Interval{}, &InvalidRangeError{Start: start, End: end}
	}
	return Interval{start, end}, nil
}

// Point returns the single-value interval [x, x].
func Point(x int) Interval {
	return Interval{x, x}
}

func (i Interval) Start() int {
	return i.start
}

func (i Interval) End() int {
	return i.end
}

// Contains reports whether x lies within the interval.
func (i Interval) Contains(x int) bool {
	return i.start <= x && x <= i.end
}

// Overlaps reports whether the two intervals share at least one integer.
// Touching endpoints count as an overlap.
func (i Interval) Overlaps(other Interval) bool {
	noOverlap := i.end < other.start || i.start > other.end
	return !noOverlap
}

// Adjacent reports whether the two intervals are disjoint with no integer
// between them, e.g. [1, 3] and [4, 7].
func (i Interval) Adjacent(other Interval) bool {
	return precedes(i, other) || precedes(other, i)
}

func precedes(a, b Interval) bool {
	return a.end < math.MaxInt && a.end+1 == b.start
}

// Union returns the smallest interval covering both. The two intervals must
// overlap or be adjacent, otherwise a *DisjointRangeError is returned.
func (i Interval) Union(other Interval) (Interval, error) {
	if !i.Overlaps(other) && !i.Adjacent(other) {
		return Interval{}, &DisjointRangeError{Op: "union", A: i, B: other}
	}
	if i.start <= other.start && i.end >= other.end {
		return i, nil
	}
	if other.start <= i.start && other.end >= i.end {
		return other, nil
	}
	return Interval{min(i.start, other.start), max(i.end, other.end)}, nil
}

// Intersection returns the integers shared by both intervals. The two
// intervals must overlap, otherwise a *DisjointRangeError is returned.
func (i Interval) Intersection(other Interval) (Interval, error) {
	if !i.Overlaps(other) {
		return Interval{}, &DisjointRangeError{Op: "intersection", A: i, B: other}
	}
	return Interval{max(i.start, other.start), min(i.end, other.end)}, nil
}

// Compare orders intervals by start, then by end. It returns -1, 0 or +1.
func (i Interval) Compare(other Interval) int {
	switch {
	case i.start < other.start:
		return -1
	case i.start > other.start:
		return 1
	case i.end < other.end:
		return -1
	case i.end > other.end:
		return 1
	}
	return 0
}

// String renders "n" for a single value and "start-end" otherwise.
func (i Interval) String() string {
	if i.start == i.end {
		return strconv.Itoa(i.start)
	}
	return strconv.Itoa(i.start) + "-" + strconv.Itoa(i.end)
}

// Span returns the bounding interval of all given intervals. It returns false
// if intervals is empty.
func Span(intervals []Interval) (Interval, bool) {
	if len(intervals) == 0 {
		return Interval{}, false
	}
	ret := intervals[0]
	for i := 1; i < len(intervals); i++ {
		ret.start = min(intervals[i].start, ret.start)
		ret.end = max(intervals[i].end, ret.end)
	}
	return ret, true
}
