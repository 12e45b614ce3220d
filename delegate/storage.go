package delegate

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/on-the-ground/delegate_go/memory"
	"go.uber.org/zap"
)

// The inline buffer holds three pointer words: enough for a function value,
// a bound method (instance + method expression) or a small struct.
const (
	BufferSize  = 3 * unsafe.Sizeof(uintptr(0))
	BufferAlign = unsafe.Alignof(uintptr(0))
)

type placement uint8

const (
	placementEmpty placement = iota
	placementInline
	placementHeap
)

func (p placement) String() string {
	switch p {
	case placementInline:
		return "inline"
	case placementHeap:
		return "heap"
	default:
		return "empty"
	}
}

// storage is a tagged union over the two placements.
// Inline: value holds the *T owned by the holder.
// Heap: block holds the *T and resource is the block's owner.
type storage struct {
	kind     placement
	value    any
	block    *memory.Block
	resource memory.Resource
}

// InlineEligible reports whether values of T are stored in the holder itself
// rather than in a block from the memory resource.
func InlineEligible[T any]() bool {
	var zero T
	if unsafe.Sizeof(zero) > BufferSize || unsafe.Alignof(zero) > BufferAlign {
		return false
	}
	return !relocationMayFail[T]()
}

func relocationMayFail[T any]() bool {
	t, r := reflect.TypeFor[T](), reflect.TypeFor[Relocator]()
	return t.Implements(r) || reflect.PointerTo(t).Implements(r)
}

func layoutOf[T any]() (size, align uintptr) {
	var zero T
	return unsafe.Sizeof(zero), unsafe.Alignof(zero)
}

// view resolves the stored *T whatever the placement.
func view[T any](s *storage) *T {
	switch s.kind {
	case placementInline:
		return s.value.(*T)
	case placementHeap:
		return s.block.Load().(*T)
	default:
		panic(ErrEmpty)
	}
}

func placeInline[T any](s *storage, v T) {
	p := new(T)
	*p = v
	*s = storage{kind: placementInline, value: p}
}

// placeHeap builds v in a fresh block without touching any holder state.
// It fails with errNoMemory when the resource refuses the allocation, or with
// the target's own error when relocation fails; in both cases nothing is owned.
func placeHeap[T any](res memory.Resource, v T) (storage, error) {
	size, align := layoutOf[T]()
	b, err := res.Allocate(size, align)
	if err != nil {
		logger().Warn("out-of-line allocation failed",
			zap.Stringer("target", reflect.TypeFor[T]()),
			zap.Uint64("size", uint64(size)),
			zap.Uint64("align", uint64(align)),
			zap.Error(err),
		)
		return storage{}, fmt.Errorf("%w: %w", errNoMemory, err)
	}
	p := new(T)
	*p = v
	if err := relocate(p); err != nil {
		res.Deallocate(b, size, align)
		logger().Debug("target relocation failed",
			zap.Stringer("target", reflect.TypeFor[T]()),
			zap.Error(err),
		)
		return storage{}, err
	}
	b.Store(p)
	return storage{kind: placementHeap, block: b, resource: res}, nil
}

func relocate[T any](p *T) error {
	if r, ok := any(p).(Relocator); ok {
		return r.Relocate()
	}
	if r, ok := any(*p).(Relocator); ok {
		return r.Relocate()
	}
	return nil
}
