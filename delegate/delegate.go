package delegate

import (
	"errors"
	"fmt"
	"reflect"
)

// Delegate holds at most one callable target matching shape C and the
// signature func(A) R. The zero value is an empty delegate ready for use.
//
// A Delegate owns its target exclusively: never copy it by value, transfer
// it with Move, MoveFrom or Swap instead. A Delegate is not safe for
// concurrent mutation.
type Delegate[C Shape, A, R any] struct {
	_     noCopy
	cfg   config
	store storage
	disp  dispatcher
	call  adapter[A, R]
}

// New returns an empty delegate.
func New[C Shape, A, R any](opts ...Option) *Delegate[C, A, R] {
	return &Delegate[C, A, R]{cfg: newConfig(opts)}
}

// FromFunc returns a delegate holding f, or an empty one when f is nil.
func FromFunc[C Shape, A, R any](f func(A) R, opts ...Option) *Delegate[C, A, R] {
	d := New[C, A, R](opts...)
	d.AssignFunc(f)
	return d
}

// Of returns a delegate holding v.
//
// A nil function or pointer yields an empty delegate. When the memory
// resource refuses the out-of-line allocation the delegate is empty and err
// is nil. err is ErrNotInvocable when v has no method matching the shape,
// or the error returned by v's Relocate. The returned delegate is never nil.
func Of[C Shape, A, R, T any](v T, opts ...Option) (*Delegate[C, A, R], error) {
	d := New[C, A, R](opts...)
	if err := Assign(d, v); err != nil {
		return d, err
	}
	return d, nil
}

// MustOf is like Of but panics on error.
func MustOf[C Shape, A, R, T any](v T, opts ...Option) *Delegate[C, A, R] {
	d, err := Of[C, A, R](v, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Assign replaces the target of d with v.
//
// Assigning a nil function or pointer is a no-op. Out-of-line targets are
// fully built before the old target is destroyed, so an allocation or
// relocation failure leaves d untouched. Inline targets cannot fail and are
// built in place after the old target is destroyed.
func Assign[C Shape, A, R, T any](d *Delegate[C, A, R], v T) error {
	if isNilTarget(v) {
		return nil
	}
	b := bindingFor[C, A, R, T]()
	if b.call == nil {
		return fmt.Errorf("%w: %s cannot be called as %s with %s",
			ErrNotInvocable, reflect.TypeFor[T](), ContractOf[C](), reflect.TypeFor[func(A) R]())
	}

	if b.inline {
		d.clear()
		placeInline(&d.store, v)
	} else {
		built, err := placeHeap(d.cfg.resourceOrDefault(), v)
		if errors.Is(err, errNoMemory) {
			return nil
		}
		if err != nil {
			return err
		}
		d.clear()
		d.store = built
	}
	d.disp, d.call = b.disp, b.call
	return nil
}

// AssignFunc replaces the target of d with f. A nil f leaves d unchanged.
func (d *Delegate[C, A, R]) AssignFunc(f func(A) R) {
	if f == nil {
		return
	}
	if err := Assign(d, Func[A, R](f)); err != nil {
		panic(err)
	}
}

// Reset destroys the target, if any, and leaves d empty.
func (d *Delegate[C, A, R]) Reset() {
	d.clear()
}

// Move transfers the target of d to a new delegate and leaves d empty.
func (d *Delegate[C, A, R]) Move() *Delegate[C, A, R] {
	dst := &Delegate[C, A, R]{cfg: d.cfg}
	dst.MoveFrom(d)
	return dst
}

// MoveFrom destroys the target of d, takes over the target of src and leaves src empty.
func (d *Delegate[C, A, R]) MoveFrom(src *Delegate[C, A, R]) {
	if d == src {
		return
	}
	d.clear()
	if src.disp == nil {
		return
	}
	d.disp, d.call = src.disp, src.call
	d.disp.move(&src.store, &d.store)
	src.disp, src.call = nil, nil
}

// Swap exchanges the targets of d and other.
func (d *Delegate[C, A, R]) Swap(other *Delegate[C, A, R]) {
	if d == other {
		return
	}
	var tmp Delegate[C, A, R]
	tmp.MoveFrom(other)
	other.MoveFrom(d)
	d.MoveFrom(&tmp)
}

// Invoke calls the target with a and returns its result.
// Errors from TryCall-style targets are returned unchanged and panics propagate;
// either way the delegate keeps its target.
// Invoking an empty delegate panics with ErrEmpty.
func (d *Delegate[C, A, R]) Invoke(a A) (R, error) {
	if d.call == nil {
		panic(ErrEmpty)
	}
	return d.call(&d.store, a)
}

// IsSet reports whether d holds a target.
func (d *Delegate[C, A, R]) IsSet() bool {
	return d != nil && d.disp != nil
}

// IsNil reports whether d is empty. It is the comparison against null.
func (d *Delegate[C, A, R]) IsNil() bool {
	return !d.IsSet()
}

// Equal reports whether d and other are both empty, or hold equal targets of
// the same type. Targets without equality never compare equal.
func (d *Delegate[C, A, R]) Equal(other *Delegate[C, A, R]) bool {
	if !d.IsSet() && !other.IsSet() {
		return true
	}
	if !d.IsSet() || !other.IsSet() {
		return false
	}
	if d.disp != other.disp {
		return false
	}
	return d.disp.compare(&d.store, &other.store)
}

func (d *Delegate[C, A, R]) String() string {
	contract := ContractOf[C]()
	if !d.IsSet() {
		return fmt.Sprintf("delegate[%s](empty)", contract)
	}
	return fmt.Sprintf("delegate[%s](%s, %s)", contract, d.disp.target(), d.store.kind)
}

// clear destroys the current target and unsets all three fields together.
func (d *Delegate[C, A, R]) clear() {
	if d.disp != nil {
		d.disp.destroy(&d.store)
	}
	d.store = storage{}
	d.disp, d.call = nil, nil
}

func isNilTarget[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer:
		return rv.IsNil()
	}
	if n, ok := any(v).(interface{ isNil() bool }); ok {
		return n.isNil()
	}
	return false
}

// noCopy lets go vet's copylocks check flag delegates copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
