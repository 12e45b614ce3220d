package delegate

import "errors"

var (
	// ErrEmpty is the panic value raised when an empty delegate is invoked.
	ErrEmpty = errors.New("delegate: invoked while empty")

	// ErrNotInvocable is returned when a target has no method matching the delegate's shape and signature.
	ErrNotInvocable = errors.New("delegate: target does not match the call contract")

	// errNoMemory marks an out-of-line allocation failure. It never leaves the package.
	errNoMemory = errors.New("delegate: out-of-line allocation failed")
)
