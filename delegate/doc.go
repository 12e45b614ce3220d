// Package delegate provides a type-erased callable holder.
//
// A Delegate[C, A, R] stores one callable target and invokes it as func(A) R
// under the qualifier shape C. Free functions, bound methods, function objects
// and closures all go through the same handle:
//
//	d := delegate.FromFunc[delegate.Fn](strconv.Itoa)
//	s, _ := d.Invoke(42)
//
//	d2, err := delegate.Of[delegate.ConstFn, int, int](Adder{N: 3})
//
// # Shapes
//
// A shape combines four qualifier axes: mutability (ReadWrite, ReadOnly),
// access (Exclusive, Shared), invocation mode (AnyRef, Repeatable,
// ConsumeOnce) and failure mode (MayFail, NeverFails). The 24 combinations
// are the aliases Fn, ConstFn, SharedFn, ... ConstSharedOnceNoFailFn. A target
// binds to a shape when it exposes a matching method family; see Caller and
// its siblings.
//
// # Placement
//
// Targets no larger than BufferSize, no more aligned than BufferAlign, and
// not implementing Relocator are stored inline. Everything else lives in a
// block allocated from a memory.Resource: the one given with WithResource, or
// the process-wide memory.Default(). Placement never changes observable
// behavior, equality included.
//
// # Failures
//
//   - Allocation failure: construction yields an empty delegate, assignment
//     leaves the previous target in place. Neither reports an error.
//   - Target failures (Relocate errors, TryCall errors, panics) reach the
//     caller unchanged and leave the delegate valid.
//   - Invoking an empty delegate is a programming error and panics with ErrEmpty.
package delegate
