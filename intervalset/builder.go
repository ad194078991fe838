package intervalset

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/v2/sets/treeset"
	"github.com/liznear/intervalset-from-scratch/model"
	"go.uber.org/zap"
)

// Builder accumulates intervals in any order and produces a normalized Set.
//
// The zero value is ready to use with the default Config. Use NewBuilder to
// pass options. It is safe to call Add/AddInterval/AddSet concurrently. Sets
// returned by Build don't share any memory with the Builder.
type Builder struct {
	m sync.Mutex

	cfg *Config
	// pending is ordered by (start, end), so identical intervals collapse on
	// insertion and Values() is always ready for the merge sweep.
	pending *treeset.Set[model.Interval]
	// nextCompaction is the pending size that triggers the next compaction.
	nextCompaction int
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	b.init(opts...)
	return b
}

// init fills in the config and the pending tree if they're unset. Must be
// called with b.m held, except from NewBuilder.
func (b *Builder) init(opts ...Option) {
	if b.pending != nil {
		return
	}
	cfg := &Config{
		Logger:     zap.L(),
		MaxPending: defaultMaxPending,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	b.cfg = cfg
	b.pending = treeset.NewWith[model.Interval](model.Interval.Compare)
	b.nextCompaction = cfg.MaxPending
}

// Add adds all integers in [start, end]. It fails with a
// *model.InvalidRangeError when start > end, and nothing is added.
func (b *Builder) Add(start, end int) error {
	iv, err := model.NewInterval(start, end)
	if err != nil {
		return fmt.Errorf("builder: fail to add range: %w", err)
	}
	b.AddInterval(iv)
	return nil
}

func (b *Builder) AddInterval(iv model.Interval) {
	b.m.Lock()
	defer b.m.Unlock()
	b.init()

	b.pending.Add(iv)
	b.postAdd()
}

// AddSet adds every integer of s.
func (b *Builder) AddSet(s Set) {
	if s.IsEmpty() {
		return
	}

	b.m.Lock()
	defer b.m.Unlock()
	b.init()

	b.pending.Add(s.intervals...)
	b.postAdd()
}

// Len returns the number of pending intervals. It may shrink after a
// compaction.
func (b *Builder) Len() int {
	b.m.Lock()
	defer b.m.Unlock()
	b.init()

	return b.pending.Size()
}

// Build returns the normalized set of everything added so far. The Builder
// can still be used afterwards, and later Builds include earlier additions.
func (b *Builder) Build() Set {
	b.m.Lock()
	defer b.m.Unlock()
	b.init()

	return Set{intervals: normalize(b.pending.Values())}
}

// postAdd compacts the pending intervals once there are too many of them.
// Must be called with b.m held.
func (b *Builder) postAdd() {
	if b.cfg.MaxPending <= 0 || b.pending.Size() < b.nextCompaction {
		return
	}
	before := b.pending.Size()
	merged := normalize(b.pending.Values())
	b.pending.Clear()
	b.pending.Add(merged...)

	// Disjoint intervals don't shrink. Back off until the pending size
	// doubles.
	b.nextCompaction = max(b.cfg.MaxPending, 2*len(merged))
	b.cfg.Logger.Debug("Compact pending intervals",
		zap.Int("before", before),
		zap.Int("after", len(merged)),
		zap.Int("next", b.nextCompaction))
}
