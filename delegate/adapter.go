package delegate

import "reflect"

// adapter invokes the target held by a storage with one argument.
type adapter[A, R any] func(s *storage, a A) (R, error)

// family names one of the four method families a target may expose.
type family uint8

const (
	familyCall family = iota
	familyOnce
	familyShared
	familySharedOnce
)

// resolution lists the method families a contract may bind, most specific first.
// Exclusive shapes may fall back to shared methods; shared shapes never fall
// back to exclusive ones. Consume-once shapes prefer the once overloads.
func resolution(c Contract) []family {
	switch {
	case c.Access == Exclusive && c.Mode == ConsumeOnce:
		return []family{familyOnce, familyCall, familySharedOnce, familyShared}
	case c.Access == Exclusive:
		return []family{familyCall, familyShared}
	case c.Mode == ConsumeOnce:
		return []family{familySharedOnce, familyShared}
	default:
		return []family{familyShared}
	}
}

// bindAdapter returns the call adapter binding T to contract c, or nil when T does not match.
func bindAdapter[T, A, R any](c Contract) adapter[A, R] {
	readOnly := c.Mutability == ReadOnly
	for _, f := range resolution(c) {
		if c.Failure == MayFail {
			if call := bindFallible[T, A, R](f, readOnly); call != nil {
				return call
			}
		}
		if call := bindInfallible[T, A, R](f, readOnly); call != nil {
			return call
		}
	}
	return nil
}

func bindInfallible[T, A, R any](f family, readOnly bool) adapter[A, R] {
	switch f {
	case familyCall:
		return via[T, Caller[A, R], A, R](readOnly, func(c Caller[A, R], a A) (R, error) {
			return c.Call(a), nil
		})
	case familyOnce:
		return via[T, OnceCaller[A, R], A, R](readOnly, func(c OnceCaller[A, R], a A) (R, error) {
			return c.CallOnce(a), nil
		})
	case familyShared:
		return via[T, SharedCaller[A, R], A, R](readOnly, func(c SharedCaller[A, R], a A) (R, error) {
			return c.CallShared(a), nil
		})
	case familySharedOnce:
		return via[T, SharedOnceCaller[A, R], A, R](readOnly, func(c SharedOnceCaller[A, R], a A) (R, error) {
			return c.CallSharedOnce(a), nil
		})
	default:
		panic("exhaustive match")
	}
}

func bindFallible[T, A, R any](f family, readOnly bool) adapter[A, R] {
	switch f {
	case familyCall:
		return via[T, TryCaller[A, R], A, R](readOnly, TryCaller[A, R].TryCall)
	case familyOnce:
		return via[T, TryOnceCaller[A, R], A, R](readOnly, TryOnceCaller[A, R].TryCallOnce)
	case familyShared:
		return via[T, TrySharedCaller[A, R], A, R](readOnly, TrySharedCaller[A, R].TryCallShared)
	case familySharedOnce:
		return via[T, TrySharedOnceCaller[A, R], A, R](readOnly, TrySharedOnceCaller[A, R].TryCallSharedOnce)
	default:
		panic("exhaustive match")
	}
}

// via binds T through interface I. Read-write adapters call through the
// stored *T so mutations persist; read-only adapters call a copy of T and
// therefore only see value-receiver methods.
func via[T, I, A, R any](readOnly bool, call func(I, A) (R, error)) adapter[A, R] {
	target, iface := reflect.TypeFor[T](), reflect.TypeFor[I]()
	if !readOnly && reflect.PointerTo(target).Implements(iface) {
		return func(s *storage, a A) (R, error) {
			return call(any(view[T](s)).(I), a)
		}
	}
	if target.Implements(iface) {
		return func(s *storage, a A) (R, error) {
			return call(any(*view[T](s)).(I), a)
		}
	}
	return nil
}
