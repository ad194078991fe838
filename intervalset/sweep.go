package intervalset

import (
	"github.com/liznear/intervalset-from-scratch/model"
	"go.uber.org/zap"
)

// merger folds a stream of intervals, ordered by start, into a normalized
// sequence. Overlapping or adjacent intervals are merged into cur; anything
// else flushes cur to out.
type merger struct {
	out   []model.Interval
	cur   model.Interval
	valid bool
}

func (m *merger) push(iv model.Interval) {
	if !m.valid {
		m.cur, m.valid = iv, true
		return
	}
	if m.cur.Overlaps(iv) || m.cur.Adjacent(iv) {
		m.cur = mustUnion(m.cur, iv)
		return
	}
	m.out = append(m.out, m.cur)
	m.cur = iv
}

func (m *merger) finish() []model.Interval {
	if m.valid {
		m.out = append(m.out, m.cur)
		m.valid = false
	}
	return m.out
}

// mergeSorted merges two normalized sequences the same way the merge step of
// merge sort does. On equal starts the left one goes first.
func mergeSorted(a, b []model.Interval) []model.Interval {
	m := &merger{out: make([]model.Interval, 0, len(a)+len(b))}
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i == len(a):
			m.push(b[j])
			j++
		case j == len(b):
			m.push(a[i])
			i++
		case b[j].Start() < a[i].Start():
			m.push(b[j])
			j++
		default:
			m.push(a[i])
			i++
		}
	}
	return m.finish()
}

// normalize merges a sequence sorted by start. The input may contain
// overlapping and adjacent intervals.
func normalize(sorted []model.Interval) []model.Interval {
	m := &merger{out: make([]model.Interval, 0, len(sorted))}
	for _, iv := range sorted {
		m.push(iv)
	}
	return m.finish()
}

// intersectSorted walks both normalized sequences in parallel. At every step
// the interval that ends first is advanced, so every overlapping pair is
// visited exactly once.
func intersectSorted(a, b []model.Interval) []model.Interval {
	var ret []model.Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Overlaps(b[j]) {
			ret = append(ret, mustIntersection(a[i], b[j]))
		}
		if a[i].End() >= b[j].End() {
			j++
		} else {
			i++
		}
	}
	return ret
}

// overlapOrder orders intervals by start but treats overlapping intervals as
// equal. This is only a valid order over pairwise disjoint sequences, where at
// most one element can overlap a given point, so it must not be used outside
// of Set.
func overlapOrder(e, target model.Interval) int {
	if e.Overlaps(target) {
		return 0
	}
	if e.Start() < target.Start() {
		return -1
	}
	return 1
}

func mustUnion(a, b model.Interval) model.Interval {
	ret, err := a.Union(b)
	if err != nil {
		zap.L().Panic("intervalset: union sweep merged disjoint intervals",
			zap.Stringer("a", a), zap.Stringer("b", b), zap.Error(err))
	}
	return ret
}

func mustIntersection(a, b model.Interval) model.Interval {
	ret, err := a.Intersection(b)
	if err != nil {
		zap.L().Panic("intervalset: intersection sweep visited disjoint intervals",
			zap.Stringer("a", a), zap.Stringer("b", b), zap.Error(err))
	}
	return ret
}
