package helper

import (
	"fmt"
)

// Cast safely asserts the result of a getter function to the expected type T.
// Returns false if the getter found nothing or the value has another type.
func Cast[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		res, ok = raw.(T)
	}
	return
}

// CastOf asserts raw to T and reports a descriptive error on mismatch.
func CastOf[T any](raw any) (T, error) {
	val, ok := raw.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected type: %T, want %T", raw, zero)
	}
	return val, nil
}

// MustCast is the panic-on-failure variant of CastOf.
// Use when a mismatch means a broken internal invariant.
func MustCast[T any](raw any) T {
	res, err := CastOf[T](raw)
	if err != nil {
		panic(err)
	}
	return res
}
