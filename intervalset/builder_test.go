package intervalset

import (
	"errors"
	"sync"
	"testing"

	"github.com/liznear/intervalset-from-scratch/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(WithLogger(zaptest.NewLogger(t)))
	if err := run(
		toRunnable2(b.Add, 10, 12),
		toRunnable2(b.Add, 1, 3),
		toRunnable2(b.Add, 4, 4),
		toRunnable2(b.Add, 20, 20),
		toRunnable2(b.Add, 11, 15),
	); err != nil {
		t.Fatal(err)
	}
	got := b.Build()
	if got.String() != "[1-4,10-15,20]" {
		t.Errorf("Got %s, want [1-4,10-15,20]", got)
	}

	// The builder stays usable after Build.
	if err := b.Add(5, 9); err != nil {
		t.Fatal(err)
	}
	again := b.Build()
	if again.String() != "[1-15,20]" {
		t.Errorf("Got %s, want [1-15,20]", again)
	}
	if got.String() != "[1-4,10-15,20]" {
		t.Errorf("Earlier set changed to %s", got)
	}
}

func TestBuilder_AddInvalid(t *testing.T) {
	b := NewBuilder()
	err := b.Add(3, 1)
	if !errors.Is(err, model.ErrInvalidRange) {
		t.Fatalf("Got err %v, want ErrInvalidRange", err)
	}
	if b.Len() != 0 {
		t.Errorf("Got %d pending, want 0", b.Len())
	}
	if !b.Build().IsEmpty() {
		t.Errorf("Got %s, want []", b.Build())
	}
}

func TestBuilder_Duplicates(t *testing.T) {
	b := NewBuilder(WithMaxPending(0))
	for i := 0; i < 10; i++ {
		b.AddInterval(model.Point(7))
	}
	if b.Len() != 1 {
		t.Errorf("Got %d pending, want 1", b.Len())
	}
}

func TestBuilder_Compaction(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := NewBuilder(WithLogger(zap.New(core)), WithMaxPending(4))

	// Four adjacent points trigger a compaction into a single interval.
	for i := 0; i < 4; i++ {
		b.AddInterval(model.Point(i))
	}
	if b.Len() != 1 {
		t.Errorf("Got %d pending, want 1", b.Len())
	}
	entries := logs.FilterMessage("Compact pending intervals").All()
	if len(entries) != 1 {
		t.Fatalf("Got %d compaction logs, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["before"] != int64(4) || fields["after"] != int64(1) {
		t.Errorf("Got fields %v, want before=4 after=1", fields)
	}

	// Disjoint intervals don't shrink, so the compaction threshold doubles.
	for i := 0; i < 4; i++ {
		b.AddInterval(model.Point(10 + 2*i))
	}
	if b.Len() != 5 {
		t.Errorf("Got %d pending, want 5", b.Len())
	}
	entries = logs.FilterMessage("Compact pending intervals").All()
	if len(entries) != 2 {
		t.Fatalf("Got %d compaction logs, want 2", len(entries))
	}
	if next := entries[1].ContextMap()["next"]; next != int64(8) {
		t.Errorf("Got next compaction at %v, want 8", next)
	}
	if got := b.Build().String(); got != "[0-3,10,12,14,16]" {
		t.Errorf("Got %s, want [0-3,10,12,14,16]", got)
	}
}

func TestBuilder_Concurrent(t *testing.T) {
	b := NewBuilder(WithMaxPending(16))
	wg := sync.WaitGroup{}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := b.Add(2*i, 2*i); err != nil {
				t.Error(err)
			}
			b.AddInterval(model.Point(2*i + 1))
		}(i)
	}
	wg.Wait()
	got := b.Build()
	if got.String() != "[0-199]" {
		t.Errorf("Got %s, want [0-199]", got)
	}
}

func TestBuilder_AddSet(t *testing.T) {
	b := NewBuilder()
	b.AddSet(Empty())
	b.AddSet(setOf([2]int{1, 2}, [2]int{6, 7}))
	b.AddSet(MustOfRange(3, 5))
	if got := b.Build().String(); got != "[1-7]" {
		t.Errorf("Got %s, want [1-7]", got)
	}
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	if b.Len() != 0 {
		t.Errorf("Got %d pending, want 0", b.Len())
	}
	if !b.Build().IsEmpty() {
		t.Errorf("Got %s, want []", b.Build())
	}
	if err := b.Add(4, 6); err != nil {
		t.Fatal(err)
	}
	b.AddInterval(model.Point(3))
	b.AddSet(MustOfRange(8, 9))
	if got := b.Build().String(); got != "[3-6,8-9]" {
		t.Errorf("Got %s, want [3-6,8-9]", got)
	}
}
