package delegate

// Unit is the argument or result type of calls that take or return nothing.
type Unit = struct{}

// Args2 packs two arguments into the single argument slot of a delegate.
type Args2[A1, A2 any] struct {
	V1 A1
	V2 A2
}

// Args3 packs three arguments into the single argument slot of a delegate.
type Args3[A1, A2, A3 any] struct {
	V1 A1
	V2 A2
	V3 A3
}

// Func0 is a function target taking no arguments.
type Func0[R any] func() R

func (f Func0[R]) Call(Unit) R               { return f() }
func (f Func0[R]) CallShared(Unit) R         { return f() }
func (f Func0[R]) Equal(other Func0[R]) bool { return sameFunc(f, other) }

// Func2 is a function target taking two arguments.
type Func2[A1, A2, R any] func(A1, A2) R

func (f Func2[A1, A2, R]) Call(a Args2[A1, A2]) R       { return f(a.V1, a.V2) }
func (f Func2[A1, A2, R]) CallShared(a Args2[A1, A2]) R { return f(a.V1, a.V2) }

func (f Func2[A1, A2, R]) Equal(other Func2[A1, A2, R]) bool { return sameFunc(f, other) }

// Func3 is a function target taking three arguments.
type Func3[A1, A2, A3, R any] func(A1, A2, A3) R

func (f Func3[A1, A2, A3, R]) Call(a Args3[A1, A2, A3]) R       { return f(a.V1, a.V2, a.V3) }
func (f Func3[A1, A2, A3, R]) CallShared(a Args3[A1, A2, A3]) R { return f(a.V1, a.V2, a.V3) }

func (f Func3[A1, A2, A3, R]) Equal(other Func3[A1, A2, A3, R]) bool { return sameFunc(f, other) }

// Action is a function target with no result.
type Action[A any] func(A)

func (f Action[A]) Call(a A) Unit       { f(a); return Unit{} }
func (f Action[A]) CallShared(a A) Unit { f(a); return Unit{} }

func (f Action[A]) Equal(other Action[A]) bool { return sameFunc(f, other) }

// Action0 is a function target with neither arguments nor result.
type Action0 func()

func (f Action0) Call(Unit) Unit       { f(); return Unit{} }
func (f Action0) CallShared(Unit) Unit { f(); return Unit{} }

func (f Action0) Equal(other Action0) bool { return sameFunc(f, other) }

// Invoke0 calls a delegate whose argument slot is Unit.
func Invoke0[C Shape, R any](d *Delegate[C, Unit, R]) (R, error) {
	return d.Invoke(Unit{})
}

// Invoke2 calls a two-argument delegate.
func Invoke2[C Shape, A1, A2, R any](d *Delegate[C, Args2[A1, A2], R], a1 A1, a2 A2) (R, error) {
	return d.Invoke(Args2[A1, A2]{V1: a1, V2: a2})
}

// Invoke3 calls a three-argument delegate.
func Invoke3[C Shape, A1, A2, A3, R any](d *Delegate[C, Args3[A1, A2, A3], R], a1 A1, a2 A2, a3 A3) (R, error) {
	return d.Invoke(Args3[A1, A2, A3]{V1: a1, V2: a2, V3: a3})
}
