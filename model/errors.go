package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange matches any *InvalidRangeError through errors.Is.
	ErrInvalidRange = errors.New("invalid range")
	// ErrDisjointRange matches any *DisjointRangeError through errors.Is.
	ErrDisjointRange = errors.New("disjoint range")
)

// InvalidRangeError is returned when an interval is constructed with
// start > end.
type InvalidRangeError struct {
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("interval: invalid range [%d, %d]: start is greater than end", e.Start, e.End)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// DisjointRangeError is returned when two intervals are combined but they
// don't overlap (or, for union, aren't adjacent either).
type DisjointRangeError struct {
	Op string
	A  Interval
	B  Interval
}

func (e *DisjointRangeError) Error() string {
	return fmt.Sprintf("interval: fail to compute %s of disjoint ranges %s and %s", e.Op, e.A, e.B)
}

func (e *DisjointRangeError) Is(target error) bool {
	return target == ErrDisjointRange
}
