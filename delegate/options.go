package delegate

import (
	"github.com/on-the-ground/delegate_go/memory"
)

type config struct {
	resource memory.Resource
}

// Option configures a delegate at construction.
type Option func(*config)

// WithResource makes the delegate allocate out-of-line targets from r instead
// of the process-wide default resource.
func WithResource(r memory.Resource) Option {
	return func(c *config) {
		c.resource = r
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// resourceOrDefault resolves the resource lazily so that the process-wide
// default is only touched by the first out-of-line placement.
func (c *config) resourceOrDefault() memory.Resource {
	if c.resource == nil {
		c.resource = memory.Default()
		logger().Debug("delegate bound to default memory resource")
	}
	return c.resource
}
