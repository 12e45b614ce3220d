package delegate

import (
	"reflect"

	"github.com/on-the-ground/delegate_go/internal/registry"
	"go.uber.org/zap"
)

// dispatcher is the per-target-type operation table. Its identity doubles as
// the same-type test in Delegate.Equal.
type dispatcher interface {
	// move transfers the target from src to dst and leaves src empty. It never fails.
	move(src, dst *storage)
	// compare reports whether a and b hold equal targets. Both must belong to this dispatcher.
	compare(a, b *storage) bool
	// destroy tears the target down, returns heap blocks and leaves s empty.
	destroy(s *storage)
	target() reflect.Type
}

type typedDispatcher[T any] struct {
	typ    reflect.Type
	inline bool
	equal  func(a, b *T) bool
}

func newTypedDispatcher[T any]() *typedDispatcher[T] {
	return &typedDispatcher[T]{
		typ:    reflect.TypeFor[T](),
		inline: InlineEligible[T](),
		equal:  equalityOf[T](),
	}
}

// move hands the owned *T (inline) or the block (heap) over to dst as is.
func (d *typedDispatcher[T]) move(src, dst *storage) {
	*dst = *src
	*src = storage{}
}

func (d *typedDispatcher[T]) compare(a, b *storage) bool {
	if d.equal == nil {
		return false
	}
	return d.equal(view[T](a), view[T](b))
}

func (d *typedDispatcher[T]) destroy(s *storage) {
	p := view[T](s)
	if t, ok := any(p).(Destroyer); ok {
		t.Destroy()
	}
	if s.kind == placementHeap {
		size, align := layoutOf[T]()
		s.resource.Deallocate(s.block, size, align)
	}
	*s = storage{}
}

func (d *typedDispatcher[T]) target() reflect.Type { return d.typ }

// equalityOf picks the equality of T: its Equal method when it has one,
// == when T is comparable, nothing otherwise.
func equalityOf[T any]() func(a, b *T) bool {
	var zero T
	if _, ok := any(&zero).(Equaler[T]); ok {
		return func(a, b *T) bool {
			return any(a).(Equaler[T]).Equal(*b)
		}
	}
	if reflect.TypeFor[T]().Comparable() {
		return func(a, b *T) bool {
			return safeEqual(*a, *b)
		}
	}
	return nil
}

// safeEqual compares with ==; a comparable type holding incomparable
// interface values panics at runtime, which counts as unequal.
func safeEqual[T any](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return any(a) == any(b)
}

// binding is everything the holder installs for one (target, shape, signature).
type binding[A, R any] struct {
	disp   dispatcher
	call   adapter[A, R]
	inline bool
}

// bindings is the process-wide table: target type -> shape -> signature.
var bindings = registry.NewTrie[any](3)

func bindingFor[C Shape, A, R, T any]() *binding[A, R] {
	targetType := reflect.TypeFor[T]()
	shapeType := reflect.TypeFor[C]()
	signature := reflect.TypeFor[func(A) R]()

	raw, loaded := bindings.LoadOrStore(func() any {
		disp := newTypedDispatcher[T]()
		return &binding[A, R]{
			disp:   disp,
			call:   bindAdapter[T, A, R](ContractOf[C]()),
			inline: disp.inline,
		}
	}, targetType, shapeType, signature)

	b := raw.(*binding[A, R])
	if !loaded {
		contract := ContractOf[C]()
		logger().Debug("registered dispatcher",
			zap.Stringer("target", targetType),
			zap.Stringer("contract", contract),
			zap.Stringer("signature", signature),
			zap.Bool("inline", b.inline),
			zap.Bool("invocable", b.call != nil),
			zap.Uint64("fingerprint", registry.Fingerprint(targetType.String(), contract.String(), signature.String())),
		)
	}
	return b
}
