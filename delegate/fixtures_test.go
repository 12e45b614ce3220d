package delegate_test

import (
	"errors"
	"strconv"
)

const arg = 10

// small fits the inline buffer together with functor's value field; large does not.
type small = struct{}
type large = [4]uintptr

// functor exposes every method family. The offset returned by each family
// tells which one a shape selected: Call 1, CallShared 3, CallOnce 9,
// CallSharedOnce 11, and +100 for the TryCall variants.
type functor[D any] struct {
	value int
	data  D
}

func (f functor[D]) Call(a int) int           { return a + 1 }
func (f functor[D]) CallShared(a int) int     { return a + 3 }
func (f functor[D]) CallOnce(a int) int       { return a + 9 }
func (f functor[D]) CallSharedOnce(a int) int { return a + 11 }

func (f functor[D]) TryCall(a int) (int, error)           { return a + 101, nil }
func (f functor[D]) TryCallShared(a int) (int, error)     { return a + 103, nil }
func (f functor[D]) TryCallOnce(a int) (int, error)       { return a + 109, nil }
func (f functor[D]) TryCallSharedOnce(a int) (int, error) { return a + 111, nil }

// noComparison has every family but no equality.
type noComparison struct {
	data [4]func()
}

func (noComparison) Call(a int) int       { return 0 }
func (noComparison) CallShared(a int) int { return 0 }

type exclusiveOnly struct{}

func (exclusiveOnly) Call(a int) int { return a + 1 }

type sharedOnly struct{}

func (sharedOnly) CallShared(a int) int { return a + 3 }

type onceOnly struct{}

func (onceOnly) CallOnce(a int) int { return a + 9 }

type sharedOnceOnly struct{}

func (sharedOnceOnly) CallSharedOnce(a int) int { return a + 11 }

// accumulator mutates itself through a pointer receiver.
type accumulator struct {
	total int
}

func (acc *accumulator) Call(x int) int {
	acc.total += x
	return acc.total
}

// tally mutates a copy of itself.
type tally struct {
	total int
}

func (t tally) Call(x int) int {
	t.total += x
	return t.total
}

type counter struct {
	n int
}

func (c *counter) Add(a int) int {
	c.n += a
	return c.n
}

func (c *counter) Sub(a int) int {
	c.n -= a
	return c.n
}

type testClass struct{}

func (testClass) method(a int) int { return a + 1 }

var errRelocate = errors.New("relocation refused")

type refusesRelocation struct{}

func (refusesRelocation) Call(a int) int  { return a }
func (refusesRelocation) Relocate() error { return errRelocate }

type countsRelocation struct {
	relocations *int
}

func (c countsRelocation) Call(a int) int { return a + *c.relocations }
func (c countsRelocation) Relocate() error {
	*c.relocations++
	return nil
}

type destroyable[D any] struct {
	destroyed *int
	data      D
}

func (d destroyable[D]) Call(a int) int { return a }
func (d destroyable[D]) Destroy()       { *d.destroyed++ }

var errCall = errors.New("call failed")

type failsOnCall struct {
	data int
}

func (failsOnCall) TryCall(int) (int, error) { return 0, errCall }

func functionNoFail(a int) int { return a + 13 }

func functionUnique(a int) int { return a }

func functionFallible(a int) (int, error) {
	if a < 0 {
		return 0, errCall
	}
	return a * 2, nil
}

func functionOverloadString(a int) string { return strconv.Itoa(a) }

func functionOverloadSum(a, b int) int { return a + b }
