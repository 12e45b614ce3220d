package registry

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/delegate_go/shared/helper"
)

// Trie is a concurrency-safe table of values addressed by a fixed-length key path.
// Entries are never evicted: once a value is published for a path, every
// later lookup of that path observes the same value.
type Trie[V any] struct {
	root  *sync.Map
	depth int
	size  atomic.Uint32
}

// NewTrie returns an empty trie whose key paths have exactly depth elements.
func NewTrie[V any](depth int) *Trie[V] {
	if depth <= 0 {
		panic("depth should be greater than 0")
	}
	return &Trie[V]{root: &sync.Map{}, depth: depth}
}

// Load returns the value stored under keys, if any.
func (t *Trie[V]) Load(keys ...any) (V, bool) {
	t.checkDepth(keys)
	m := t.root
	for _, k := range keys[:len(keys)-1] {
		next, ok := helper.Cast[*sync.Map](func() (any, bool) { return m.Load(k) })
		if !ok {
			var zero V
			return zero, false
		}
		m = next
	}
	return helper.Cast[V](func() (any, bool) { return m.Load(keys[len(keys)-1]) })
}

// LoadOrStore returns the value stored under keys. When the path is empty it
// publishes build() and returns it with loaded == false. Under contention
// build may run more than once, but only one result is ever published.
func (t *Trie[V]) LoadOrStore(build func() V, keys ...any) (v V, loaded bool) {
	t.checkDepth(keys)
	m, k := t.traverse(keys)
	if raw, ok := m.Load(k); ok {
		return helper.MustCast[V](raw), true
	}
	raw, loaded := m.LoadOrStore(k, build())
	if !loaded {
		t.size.Add(1)
	}
	return helper.MustCast[V](raw), loaded
}

// Len reports the number of published values.
func (t *Trie[V]) Len() int {
	return int(t.size.Load())
}

func (t *Trie[V]) traverse(keys []any) (*sync.Map, any) {
	m := t.root
	for _, k := range keys[:len(keys)-1] {
		v, ok := m.Load(k)
		if !ok {
			v, _ = m.LoadOrStore(k, &sync.Map{})
		}
		m = helper.MustCast[*sync.Map](v)
	}
	return m, keys[len(keys)-1]
}

func (t *Trie[V]) checkDepth(keys []any) {
	if len(keys) != t.depth {
		panic("registry: key path length does not match trie depth")
	}
}
