package delegate

// Targets expose their call operator through one or more of the method
// families below. Which family a delegate uses is decided by its shape:
//
//	Call / TryCall                     exclusive, any invocation mode
//	CallOnce / TryCallOnce             exclusive, consume-once mode
//	CallShared / TryCallShared         shared access, any invocation mode
//	CallSharedOnce / TryCallSharedOnce shared access, consume-once mode
//
// ReadWrite shapes look the method up on *T, ReadOnly shapes on T.

type Caller[A, R any] interface {
	Call(A) R
}

type OnceCaller[A, R any] interface {
	CallOnce(A) R
}

type SharedCaller[A, R any] interface {
	CallShared(A) R
}

type SharedOnceCaller[A, R any] interface {
	CallSharedOnce(A) R
}

type TryCaller[A, R any] interface {
	TryCall(A) (R, error)
}

type TryOnceCaller[A, R any] interface {
	TryCallOnce(A) (R, error)
}

type TrySharedCaller[A, R any] interface {
	TryCallShared(A) (R, error)
}

type TrySharedOnceCaller[A, R any] interface {
	TryCallSharedOnce(A) (R, error)
}

// Relocator is implemented by targets whose transfer into holder storage can fail.
// Relocate runs once, on the holder's own copy, when the target is placed.
// Such targets are always stored out of line so that moving a holder never
// relocates them again.
type Relocator interface {
	Relocate() error
}

// Destroyer is implemented by targets that need teardown when their holder
// releases them.
type Destroyer interface {
	Destroy()
}

// Equaler lets a target define the equality used by Delegate.Equal.
type Equaler[T any] interface {
	Equal(T) bool
}
