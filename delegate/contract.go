package delegate

import (
	"fmt"
	"strings"
)

// Mutability selects whether the target is invoked through a read-write or a read-only view.
type Mutability uint8

const (
	// ReadWrite invokes the target in place; mutations made by the call persist.
	ReadWrite Mutability = iota
	// ReadOnly invokes a copy of the target; only value-receiver methods bind.
	ReadOnly
)

// Access selects the exclusive or shared method family of the target.
type Access uint8

const (
	// Exclusive binds Call-style methods, falling back to the shared family.
	Exclusive Access = iota
	// Shared binds CallShared-style methods only. It is a documented hint
	// that the target tolerates concurrent invocation; nothing is locked.
	Shared
)

// InvocationMode selects how the target's call is resolved.
type InvocationMode uint8

const (
	// AnyRef is the unqualified mode.
	AnyRef InvocationMode = iota
	// Repeatable binds only methods that may be called any number of times.
	Repeatable
	// ConsumeOnce prefers the target's once-consuming overload (CallOnce).
	// It selects an overload; it never empties the holder.
	ConsumeOnce
)

// FailureMode selects whether the call may report an error.
type FailureMode uint8

const (
	// MayFail prefers TryCall-style methods returning (R, error).
	MayFail FailureMode = iota
	// NeverFails binds only methods without an error result.
	NeverFails
)

// Contract is the runtime description of a call shape's qualifier axes.
type Contract struct {
	Mutability Mutability
	Access     Access
	Mode       InvocationMode
	Failure    FailureMode
}

// Valid reports whether every axis holds a known value.
func (c Contract) Valid() bool {
	return c.Mutability <= ReadOnly &&
		c.Access <= Shared &&
		c.Mode <= ConsumeOnce &&
		c.Failure <= NeverFails
}

func (c Contract) String() string {
	if !c.Valid() {
		return fmt.Sprintf("invalid(%d,%d,%d,%d)", c.Mutability, c.Access, c.Mode, c.Failure)
	}
	var parts []string
	if c.Mutability == ReadOnly {
		parts = append(parts, "const")
	}
	if c.Access == Shared {
		parts = append(parts, "shared")
	}
	switch c.Mode {
	case Repeatable:
		parts = append(parts, "ref")
	case ConsumeOnce:
		parts = append(parts, "once")
	}
	if c.Failure == NeverFails {
		parts = append(parts, "nofail")
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, " ")
}

// Contracts enumerates every valid contract, in the order of the shape aliases below.
func Contracts() []Contract {
	all := make([]Contract, 0, 24)
	for f := MayFail; f <= NeverFails; f++ {
		for m := AnyRef; m <= ConsumeOnce; m++ {
			for a := Exclusive; a <= Shared; a++ {
				for mu := ReadWrite; mu <= ReadOnly; mu++ {
					all = append(all, Contract{Mutability: mu, Access: a, Mode: m, Failure: f})
				}
			}
		}
	}
	return all
}

// Shape is the compile-time form of a Contract. The set of shapes is closed:
// use one of the aliases declared in this file.
type Shape interface {
	Contract() Contract
	sealed()
}

// ContractOf returns the runtime contract of shape C.
func ContractOf[C Shape]() Contract {
	var c C
	return c.Contract()
}

type mutabilityAxis interface{ mutability() Mutability }
type accessAxis interface{ access() Access }
type modeAxis interface{ mode() InvocationMode }
type failureAxis interface{ failure() FailureMode }

type readWrite struct{}
type readOnly struct{}
type exclusive struct{}
type shared struct{}
type anyRef struct{}
type repeatable struct{}
type consumeOnce struct{}
type mayFail struct{}
type neverFails struct{}

func (readWrite) mutability() Mutability { return ReadWrite }
func (readOnly) mutability() Mutability  { return ReadOnly }
func (exclusive) access() Access         { return Exclusive }
func (shared) access() Access            { return Shared }
func (anyRef) mode() InvocationMode      { return AnyRef }
func (repeatable) mode() InvocationMode  { return Repeatable }
func (consumeOnce) mode() InvocationMode { return ConsumeOnce }
func (mayFail) failure() FailureMode     { return MayFail }
func (neverFails) failure() FailureMode  { return NeverFails }

type shape[M mutabilityAxis, S accessAxis, I modeAxis, F failureAxis] struct{}

func (shape[M, S, I, F]) sealed() {}

func (shape[M, S, I, F]) Contract() Contract {
	var (
		m M
		s S
		i I
		f F
	)
	return Contract{
		Mutability: m.mutability(),
		Access:     s.access(),
		Mode:       i.mode(),
		Failure:    f.failure(),
	}
}

// The 24 call shapes.
type (
	Fn                = shape[readWrite, exclusive, anyRef, mayFail]
	ConstFn           = shape[readOnly, exclusive, anyRef, mayFail]
	SharedFn          = shape[readWrite, shared, anyRef, mayFail]
	ConstSharedFn     = shape[readOnly, shared, anyRef, mayFail]
	RefFn             = shape[readWrite, exclusive, repeatable, mayFail]
	ConstRefFn        = shape[readOnly, exclusive, repeatable, mayFail]
	SharedRefFn       = shape[readWrite, shared, repeatable, mayFail]
	ConstSharedRefFn  = shape[readOnly, shared, repeatable, mayFail]
	OnceFn            = shape[readWrite, exclusive, consumeOnce, mayFail]
	ConstOnceFn       = shape[readOnly, exclusive, consumeOnce, mayFail]
	SharedOnceFn      = shape[readWrite, shared, consumeOnce, mayFail]
	ConstSharedOnceFn = shape[readOnly, shared, consumeOnce, mayFail]

	NoFailFn                = shape[readWrite, exclusive, anyRef, neverFails]
	ConstNoFailFn           = shape[readOnly, exclusive, anyRef, neverFails]
	SharedNoFailFn          = shape[readWrite, shared, anyRef, neverFails]
	ConstSharedNoFailFn     = shape[readOnly, shared, anyRef, neverFails]
	RefNoFailFn             = shape[readWrite, exclusive, repeatable, neverFails]
	ConstRefNoFailFn        = shape[readOnly, exclusive, repeatable, neverFails]
	SharedRefNoFailFn       = shape[readWrite, shared, repeatable, neverFails]
	ConstSharedRefNoFailFn  = shape[readOnly, shared, repeatable, neverFails]
	OnceNoFailFn            = shape[readWrite, exclusive, consumeOnce, neverFails]
	ConstOnceNoFailFn       = shape[readOnly, exclusive, consumeOnce, neverFails]
	SharedOnceNoFailFn      = shape[readWrite, shared, consumeOnce, neverFails]
	ConstSharedOnceNoFailFn = shape[readOnly, shared, consumeOnce, neverFails]
)
