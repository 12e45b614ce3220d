package delegate

import "github.com/on-the-ground/delegate_go/internal/registry"

// ResetBindings forgets every registered dispatcher.
func ResetBindings() {
	bindings = registry.NewTrie[any](3)
}
