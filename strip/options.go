package strip

import "github.com/katalvlaran/tristrip/observe"

// SeedPolicy selects which unconsumed triangle becomes the next strip's
// seed.
type SeedPolicy int

const (
	// NaturalOrder scans triangle indices in ascending order, advancing
	// a cursor from its last position. This is the default; this
	// package's exact-output tests are written against NaturalOrder.
	NaturalOrder SeedPolicy = iota

	// LeastConnectedFirst pre-sorts triangle indices by ascending
	// count of non-boundary adjacencies, so sparsely-connected
	// triangles (more likely to become dead ends) seed first. Purely
	// an optimisation for strip length; changes the output but not
	// correctness or termination.
	LeastConnectedFirst
)

// Option configures Walk. Mirrors the teacher's functional-option
// pattern (lvlath/dfs.Option, lvlath/algorithms.BFSOptions).
type Option func(*config)

type config struct {
	seedPolicy SeedPolicy
	oneSided   bool
	observer   observe.Observer
}

func newConfig(opts []Option) config {
	cfg := config{seedPolicy: NaturalOrder, observer: observe.NoOp}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeedPolicy selects the seed-selection policy (default
// NaturalOrder).
func WithSeedPolicy(p SeedPolicy) Option {
	return func(c *config) { c.seedPolicy = p }
}

// WithOneSided enables or disables the winding-preservation fix-up for
// single-sided rendering. Default is false: two-sided, unconnected
// strips need no winding correction.
func WithOneSided(oneSided bool) Option {
	return func(c *config) { c.oneSided = oneSided }
}

// WithObserver attaches an Observer that receives phase_started/
// phase_ended events around the walk. Defaults to observe.NoOp.
func WithObserver(o observe.Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observer = o
		}
	}
}
