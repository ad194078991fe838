// Package intervalset implements immutable sets of integers represented as
// sorted sequences of disjoint, non-adjacent closed intervals.
package intervalset

import (
	"encoding/binary"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/liznear/intervalset-from-scratch/model"
)

// Set is an immutable set of integers. The zero value is the empty set.
//
// The intervals are always kept normalized:
//   - sorted by start,
//   - pairwise disjoint,
//   - pairwise non-adjacent.
//
// Normalization is unique for a given region, so two sets cover the same
// integers iff their interval sequences are equal. No method modifies a Set;
// operations always return a new one.
type Set struct {
	intervals []model.Interval
}

// Empty returns the set with no integers.
func Empty() Set {
	return Set{}
}

// OfRange returns the set of all integers in [start, end]. It fails with a
// *model.InvalidRangeError when start > end.
func OfRange(start, end int) (Set, error) {
	iv, err := model.NewInterval(start, end)
	if err != nil {
		return Set{}, err
	}
	return Set{intervals: []model.Interval{iv}}, nil
}

// MustOfRange is like OfRange but panics if the range is invalid.
func MustOfRange(start, end int) Set {
	s, err := OfRange(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// FromIntervals returns the set covering every given interval. The intervals
// may be given in any order and may overlap.
func FromIntervals(intervals ...model.Interval) Set {
	b := NewBuilder()
	for _, iv := range intervals {
		b.AddInterval(iv)
	}
	return b.Build()
}

// Contains reports whether x is in the set. It runs a binary search in
// O(log n) where n is the number of pieces.
func (s Set) Contains(x int) bool {
	_, found := slices.BinarySearchFunc(s.intervals, model.Point(x), overlapOrder)
	return found
}

// Union returns the set of integers in s or other.
func (s Set) Union(other Set) Set {
	return Set{intervals: mergeSorted(s.intervals, other.intervals)}
}

// Intersection returns the set of integers in both s and other.
func (s Set) Intersection(other Set) Set {
	return Set{intervals: intersectSorted(s.intervals, other.intervals)}
}

// PieceCount returns the number of disjoint intervals in the set. It measures
// fragmentation, not the number of integers covered.
func (s Set) PieceCount() int {
	return len(s.intervals)
}

func (s Set) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Intervals returns a copy of the normalized intervals in ascending order.
func (s Set) Intervals() []model.Interval {
	return slices.Clone(s.intervals)
}

// Extent returns the smallest interval covering the whole set. It returns
// false for the empty set.
func (s Set) Extent() (model.Interval, bool) {
	if len(s.intervals) == 0 {
		return model.Interval{}, false
	}
	// Sorted and disjoint, so the first and last pieces bound the set.
	return model.Span([]model.Interval{s.intervals[0], s.intervals[len(s.intervals)-1]})
}

// Equal reports whether both sets contain the same integers.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.intervals, other.intervals)
}

// Key returns a canonical string for the set. Equal sets have equal keys, so
// it can be used where a Set needs to be a map key.
func (s Set) Key() string {
	return s.String()
}

// Hash returns a 64-bit FNV-1a hash of the normalized bounds. Equal sets have
// equal hashes.
func (s Set) Hash() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	for _, iv := range s.intervals {
		binary.BigEndian.PutUint64(buf[:8], uint64(iv.Start()))
		binary.BigEndian.PutUint64(buf[8:], uint64(iv.End()))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the set as "[a,b-c,...]", e.g. "[1-3,5,7-9]". The empty set
// renders as "[]".
func (s Set) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, iv := range s.intervals {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(iv.String())
	}
	sb.WriteString("]")
	return sb.String()
}
