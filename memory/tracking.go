package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var (
	// ErrDoubleFree reports a block deallocated twice, or never allocated by this resource.
	ErrDoubleFree = errors.New("block deallocated twice")
	// ErrSizeMismatch reports a deallocation whose (size, align) differs from the allocation.
	ErrSizeMismatch = errors.New("deallocation size or alignment mismatch")
	// ErrLeak reports a block still live when Verify runs.
	ErrLeak = errors.New("block leaked")
)

// Stats is a snapshot of a Tracking resource's counters.
type Stats struct {
	Allocations   int
	Deallocations int
	Failures      int
	LiveBlocks    int
	LiveBytes     uintptr
}

type allocation struct {
	size  uintptr
	align uintptr
}

// Tracking records every allocation passing through it and audits the
// allocate/deallocate pairing. Double frees and mismatched deallocations are
// recorded and not forwarded upstream.
type Tracking struct {
	upstream Resource

	mu         sync.Mutex
	stats      Stats
	live       map[uuid.UUID]allocation
	violations []error
}

// NewTracking wraps upstream with instrumentation. A nil upstream means Heap().
func NewTracking(upstream Resource) *Tracking {
	if upstream == nil {
		upstream = Heap()
	}
	return &Tracking{
		upstream: upstream,
		live:     make(map[uuid.UUID]allocation),
	}
}

func (t *Tracking) Allocate(size, align uintptr) (*Block, error) {
	b, err := t.upstream.Allocate(size, align)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.stats.Failures++
		return nil, err
	}
	t.stats.Allocations++
	t.stats.LiveBlocks++
	t.stats.LiveBytes += size
	t.live[b.ID()] = allocation{size: size, align: align}
	return b, nil
}

func (t *Tracking) Deallocate(b *Block, size, align uintptr) {
	t.mu.Lock()
	rec, ok := t.live[b.ID()]
	if !ok {
		t.violations = append(t.violations, fmt.Errorf("%w: block %s", ErrDoubleFree, b.ID()))
		t.mu.Unlock()
		return
	}
	if rec.size != size || rec.align != align {
		t.violations = append(t.violations, fmt.Errorf(
			"%w: block %s allocated (%d, %d), deallocated (%d, %d)",
			ErrSizeMismatch, b.ID(), rec.size, rec.align, size, align,
		))
	}
	delete(t.live, b.ID())
	t.stats.Deallocations++
	t.stats.LiveBlocks--
	t.stats.LiveBytes -= rec.size
	t.mu.Unlock()

	t.upstream.Deallocate(b, rec.size, rec.align)
}

// Stats returns a snapshot of the counters.
func (t *Tracking) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Verify reports every recorded violation and every live block as a leak.
func (t *Tracking) Verify() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	errs := make([]error, 0, len(t.violations)+len(t.live))
	errs = append(errs, t.violations...)
	for id, rec := range t.live {
		errs = append(errs, fmt.Errorf("%w: block %s (%d bytes)", ErrLeak, id, rec.size))
	}
	return multierr.Combine(errs...)
}
