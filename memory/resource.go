// Package memory defines the allocation contract used by delegates for
// targets that cannot be stored inline, together with a process-wide default
// resource and two decorators: a budgeted resource that can run out, and an
// instrumented resource that counts and audits every block.
package memory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Resource hands out and takes back memory blocks.
//
// Allocate may fail; Deallocate never does. Every Deallocate must be called
// with the same (size, align) pair that produced the block.
type Resource interface {
	Allocate(size, align uintptr) (*Block, error)
	Deallocate(b *Block, size, align uintptr)
}

// Block is an allocation owned by exactly one holder.
type Block struct {
	id    uuid.UUID
	size  uintptr
	align uintptr
	value any
}

// NewBlock creates a fresh block. Custom resources use it to build the blocks they hand out.
func NewBlock(size, align uintptr) *Block {
	return &Block{id: uuid.New(), size: size, align: align}
}

func (b *Block) ID() uuid.UUID   { return b.id }
func (b *Block) Size() uintptr   { return b.size }
func (b *Block) Align() uintptr  { return b.align }
func (b *Block) Load() any       { return b.value }
func (b *Block) Store(value any) { b.value = value }

// ErrExhausted is returned by Allocate when a resource cannot satisfy a request.
var ErrExhausted = errors.New("memory resource exhausted")

// ErrDefaultInUse is returned by SetDefault once the default resource has been handed out.
var ErrDefaultInUse = errors.New("default memory resource already in use")

// heapResource allocates blocks from the Go heap and never fails.
type heapResource struct{}

func (heapResource) Allocate(size, align uintptr) (*Block, error) {
	if align == 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: invalid alignment %d", ErrExhausted, align)
	}
	return NewBlock(size, align), nil
}

func (heapResource) Deallocate(b *Block, _, _ uintptr) {
	b.Store(nil)
}

// Heap returns a stateless resource backed by the Go heap.
func Heap() Resource { return heapResource{} }

var (
	defaultMu       sync.Mutex
	defaultResource Resource
	defaultInUse    bool
)

// SetDefault installs r as the process-wide default resource.
// It must be called before the first call to Default; afterwards the default
// is fixed and SetDefault returns ErrDefaultInUse.
func SetDefault(r Resource) error {
	if r == nil {
		return fmt.Errorf("memory: nil resource")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultInUse {
		return ErrDefaultInUse
	}
	defaultResource = r
	return nil
}

// Default returns the process-wide default resource, initializing it to Heap()
// on first use unless SetDefault installed another one.
func Default() Resource {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if !defaultInUse {
		if defaultResource == nil {
			defaultResource = Heap()
		}
		defaultInUse = true
	}
	return defaultResource
}
