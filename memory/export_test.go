package memory

// ResetDefault restores the process-wide default to its uninitialized state.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultResource = nil
	defaultInUse = false
}
