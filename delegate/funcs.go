package delegate

import "unsafe"

// Func is a plain function target. Two Func targets are equal when they are
// the same function value: the same top-level function or method expression,
// or the very same closure or method value.
type Func[A, R any] func(A) R

func (f Func[A, R]) Call(a A) R       { return f(a) }
func (f Func[A, R]) CallShared(a A) R { return f(a) }

func (f Func[A, R]) Equal(other Func[A, R]) bool { return sameFunc(f, other) }

// TryFunc is a fallible function target. It binds only MayFail shapes.
type TryFunc[A, R any] func(A) (R, error)

func (f TryFunc[A, R]) TryCall(a A) (R, error)       { return f(a) }
func (f TryFunc[A, R]) TryCallShared(a A) (R, error) { return f(a) }

func (f TryFunc[A, R]) Equal(other TryFunc[A, R]) bool { return sameFunc(f, other) }

// Closure is a function literal target. Closures have no equality: a delegate
// holding one never compares equal to anything, itself included.
type Closure[A, R any] func(A) R

func (f Closure[A, R]) Call(a A) R { return f(a) }

// Method binds a method expression to an instance.
type Method[T, A, R any] struct {
	Recv *T
	Fn   func(*T, A) R
}

// Bind pairs recv with a method expression such as (*Counter).Add.
func Bind[T, A, R any](recv *T, fn func(*T, A) R) Method[T, A, R] {
	return Method[T, A, R]{Recv: recv, Fn: fn}
}

func (m Method[T, A, R]) Call(a A) R { return m.Fn(m.Recv, a) }

// Equal reports whether both sides bind the same method to the same instance.
func (m Method[T, A, R]) Equal(other Method[T, A, R]) bool {
	return m.Recv == other.Recv && sameFunc(m.Fn, other.Fn)
}

func (m Method[T, A, R]) isNil() bool { return m.Fn == nil }

// sameFunc compares two function values by identity. A func value points to
// its closure context: top-level functions and method expressions share one
// static context, while closures and method values get a fresh one per
// evaluation, so two of them are equal only when they are the same value.
func sameFunc[F any](a, b F) bool {
	return funcContext(&a) == funcContext(&b)
}

func funcContext[F any](f *F) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(f))
}
