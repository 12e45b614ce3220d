package delegate_test

import (
	"testing"

	"github.com/on-the-ground/delegate_go/delegate"
	"github.com/on-the-ground/delegate_go/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shapeCase struct {
	name  string
	check func(t *testing.T, want int)
	want  int
}

func shapeCases[D any]() []shapeCase {
	return []shapeCase{
		{"Fn", callFunctor[delegate.Fn, D], 101},
		{"ConstFn", callFunctor[delegate.ConstFn, D], 101},
		{"SharedFn", callFunctor[delegate.SharedFn, D], 103},
		{"ConstSharedFn", callFunctor[delegate.ConstSharedFn, D], 103},
		{"RefFn", callFunctor[delegate.RefFn, D], 101},
		{"ConstRefFn", callFunctor[delegate.ConstRefFn, D], 101},
		{"SharedRefFn", callFunctor[delegate.SharedRefFn, D], 103},
		{"ConstSharedRefFn", callFunctor[delegate.ConstSharedRefFn, D], 103},
		{"OnceFn", callFunctor[delegate.OnceFn, D], 109},
		{"ConstOnceFn", callFunctor[delegate.ConstOnceFn, D], 109},
		{"SharedOnceFn", callFunctor[delegate.SharedOnceFn, D], 111},
		{"ConstSharedOnceFn", callFunctor[delegate.ConstSharedOnceFn, D], 111},
		{"NoFailFn", callFunctor[delegate.NoFailFn, D], 1},
		{"ConstNoFailFn", callFunctor[delegate.ConstNoFailFn, D], 1},
		{"SharedNoFailFn", callFunctor[delegate.SharedNoFailFn, D], 3},
		{"ConstSharedNoFailFn", callFunctor[delegate.ConstSharedNoFailFn, D], 3},
		{"RefNoFailFn", callFunctor[delegate.RefNoFailFn, D], 1},
		{"ConstRefNoFailFn", callFunctor[delegate.ConstRefNoFailFn, D], 1},
		{"SharedRefNoFailFn", callFunctor[delegate.SharedRefNoFailFn, D], 3},
		{"ConstSharedRefNoFailFn", callFunctor[delegate.ConstSharedRefNoFailFn, D], 3},
		{"OnceNoFailFn", callFunctor[delegate.OnceNoFailFn, D], 9},
		{"ConstOnceNoFailFn", callFunctor[delegate.ConstOnceNoFailFn, D], 9},
		{"SharedOnceNoFailFn", callFunctor[delegate.SharedOnceNoFailFn, D], 11},
		{"ConstSharedOnceNoFailFn", callFunctor[delegate.ConstSharedOnceNoFailFn, D], 11},
	}
}

func callFunctor[C delegate.Shape, D any](t *testing.T, want int) {
	tr := memory.NewTracking(nil)
	d, err := delegate.Of[C, int, int](functor[D]{value: 10}, delegate.WithResource(tr))
	require.NoError(t, err)
	require.True(t, d.IsSet())

	got, err := d.Invoke(arg)
	require.NoError(t, err)
	assert.Equal(t, want+arg, got)

	// consume-once shapes select an overload; the holder keeps its target
	got, err = d.Invoke(arg)
	require.NoError(t, err)
	assert.Equal(t, want+arg, got)
	assert.True(t, d.IsSet())

	d.Reset()
	assert.NoError(t, tr.Verify())
}

func TestShapes_CallSmallFunctor(t *testing.T) {
	for _, tc := range shapeCases[small]() {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, tc.want)
		})
	}
}

func TestShapes_CallLargeFunctor(t *testing.T) {
	for _, tc := range shapeCases[large]() {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, tc.want)
		})
	}
}

func TestShapes_Contracts(t *testing.T) {
	all := delegate.Contracts()
	require.Len(t, all, 24)

	seen := map[delegate.Contract]bool{}
	for _, c := range all {
		assert.True(t, c.Valid())
		assert.False(t, seen[c], "duplicate contract %s", c)
		seen[c] = true
	}

	assert.Equal(t, delegate.Contract{}, delegate.ContractOf[delegate.Fn]())
	assert.Equal(t, "plain", delegate.ContractOf[delegate.Fn]().String())
	assert.Equal(t, delegate.Contract{
		Mutability: delegate.ReadOnly,
		Access:     delegate.Shared,
		Mode:       delegate.ConsumeOnce,
		Failure:    delegate.NeverFails,
	}, delegate.ContractOf[delegate.ConstSharedOnceNoFailFn]())
	assert.Equal(t, "const shared once nofail", delegate.ContractOf[delegate.ConstSharedOnceNoFailFn]().String())
	assert.Equal(t, "ref", delegate.ContractOf[delegate.RefFn]().String())

	assert.False(t, delegate.Contract{Mode: 7}.Valid())
	assert.Contains(t, delegate.Contract{Mode: 7}.String(), "invalid")
}

func TestShapes_AllBindFunctionPointers(t *testing.T) {
	checks := []func(t *testing.T){
		commonOps[delegate.Fn], commonOps[delegate.ConstFn],
		commonOps[delegate.SharedFn], commonOps[delegate.ConstSharedFn],
		commonOps[delegate.RefFn], commonOps[delegate.ConstRefFn],
		commonOps[delegate.SharedRefFn], commonOps[delegate.ConstSharedRefFn],
		commonOps[delegate.OnceFn], commonOps[delegate.ConstOnceFn],
		commonOps[delegate.SharedOnceFn], commonOps[delegate.ConstSharedOnceFn],
		commonOps[delegate.NoFailFn], commonOps[delegate.ConstNoFailFn],
		commonOps[delegate.SharedNoFailFn], commonOps[delegate.ConstSharedNoFailFn],
		commonOps[delegate.RefNoFailFn], commonOps[delegate.ConstRefNoFailFn],
		commonOps[delegate.SharedRefNoFailFn], commonOps[delegate.ConstSharedRefNoFailFn],
		commonOps[delegate.OnceNoFailFn], commonOps[delegate.ConstOnceNoFailFn],
		commonOps[delegate.SharedOnceNoFailFn], commonOps[delegate.ConstSharedOnceNoFailFn],
	}
	for i, check := range checks {
		t.Run(delegate.Contracts()[i].String(), check)
	}
}

// commonOps runs the shape-independent checks: emptiness, function identity,
// equality across placements, swap.
func commonOps[C delegate.Shape](t *testing.T) {
	tr := memory.NewTracking(nil)
	opt := delegate.WithResource(tr)

	empty := delegate.New[C, int, int]()
	fromNil := delegate.FromFunc[C, int, int](nil)
	assert.True(t, empty.Equal(fromNil))
	assert.False(t, fromNil.IsSet())

	f1 := delegate.FromFunc[C](functionNoFail)
	f2 := delegate.FromFunc[C](functionNoFail)
	f3 := delegate.FromFunc[C](functionUnique)
	assert.True(t, f1.Equal(f2))
	assert.False(t, f1.Equal(f3))
	assert.False(t, f1.Equal(empty))
	got, err := f1.Invoke(arg)
	require.NoError(t, err)
	assert.Equal(t, functionNoFail(arg), got)

	s1 := delegate.MustOf[C, int, int](functor[small]{value: 10}, opt)
	s2 := delegate.MustOf[C, int, int](functor[small]{value: 10}, opt)
	l1 := delegate.MustOf[C, int, int](functor[large]{value: 10}, opt)
	l2 := delegate.MustOf[C, int, int](functor[large]{value: 10}, opt)
	assert.True(t, s1.Equal(s2))
	assert.True(t, l1.Equal(l2))
	assert.False(t, s1.Equal(l1))
	assert.False(t, l1.Equal(f1))

	s1.Swap(l1)
	assert.True(t, s1.Equal(l2))
	assert.True(t, l1.Equal(s2))

	for _, d := range []*delegate.Delegate[C, int, int]{f1, f2, f3, s1, s2, l1, l2} {
		d.Reset()
	}
	assert.NoError(t, tr.Verify())
}
