package mesh

import (
	"github.com/katalvlaran/tristrip/observe"
	"github.com/katalvlaran/tristrip/strip"
)

// Option configures AssembleStrips. It composes strip.Option so callers
// never need to import the strip package directly for the common case.
type Option func(*config)

type config struct {
	stripOpts []strip.Option
	observer  observe.Observer
}

func newConfig(opts []Option) config {
	cfg := config{observer: observe.NoOp}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeedPolicy forwards to strip.WithSeedPolicy.
func WithSeedPolicy(p strip.SeedPolicy) Option {
	return func(c *config) { c.stripOpts = append(c.stripOpts, strip.WithSeedPolicy(p)) }
}

// WithOneSided forwards to strip.WithOneSided.
func WithOneSided(oneSided bool) Option {
	return func(c *config) { c.stripOpts = append(c.stripOpts, strip.WithOneSided(oneSided)) }
}

// WithObserver attaches an Observer that receives phase events around
// both adjacency construction and strip walking.
func WithObserver(o observe.Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
			c.stripOpts = append(c.stripOpts, strip.WithObserver(o))
		}
	}
}
