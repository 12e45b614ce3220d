package memory

import (
	"fmt"
	"sync"
)

// Limited is a resource with a fixed byte budget on top of an upstream resource.
// Allocations that would exceed the budget fail with ErrExhausted.
type Limited struct {
	upstream Resource

	mu       sync.Mutex
	maxBytes uintptr
	inUse    uintptr
}

// NewLimited wraps upstream with a budget of maxBytes. A nil upstream means Heap().
func NewLimited(upstream Resource, maxBytes uintptr) *Limited {
	if upstream == nil {
		upstream = Heap()
	}
	return &Limited{upstream: upstream, maxBytes: maxBytes}
}

func (l *Limited) Allocate(size, align uintptr) (*Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inUse > l.maxBytes || size > l.maxBytes-l.inUse {
		return nil, fmt.Errorf("%w: requested %d bytes, %d of %d in use", ErrExhausted, size, l.inUse, l.maxBytes)
	}
	b, err := l.upstream.Allocate(size, align)
	if err != nil {
		return nil, err
	}
	l.inUse += size
	return b, nil
}

func (l *Limited) Deallocate(b *Block, size, align uintptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.upstream.Deallocate(b, size, align)
	if size > l.inUse {
		l.inUse = 0
		return
	}
	l.inUse -= size
}

// InUse reports the bytes currently allocated through l.
func (l *Limited) InUse() uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inUse
}

// SetLimit changes the budget. Blocks already handed out are unaffected.
func (l *Limited) SetLimit(maxBytes uintptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.maxBytes = maxBytes
}
