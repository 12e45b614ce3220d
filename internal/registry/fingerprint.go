package registry

import (
	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes a key path into a stable 64-bit value suitable for log fields.
func Fingerprint(parts ...string) uint64 {
	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.WriteString("\x00")
		}
		_, _ = d.WriteString(p)
	}
	return d.Sum64()
}
