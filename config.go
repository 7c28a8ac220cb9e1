package skiplist

// Config holds construction-time options, adapted from the teacher's
// skl/types.go functional-options Config (NewConfig/WithSkipList*). The
// level *count* itself is not configurable here (it is derived from size,
// spec.md §4.1); Config instead controls the RNG seed and an optional
// starting level hint used to pre-size the head column on construction
// from a known-size sequence.
type Config struct {
	seed          uint64
	initialLevels int
}

// Option mutates a Config during construction.
type Option func(*Config)

// NewConfig builds a Config from a sequence of Options, exactly as the
// teacher's skl.NewConfig does for its own option set.
func NewConfig(opts ...Option) Config {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed fixes the RNG seed used for column-height draws. Tests depend
// on this for reproducibility (spec.md §5).
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithInitialLevels pre-grows the head column to the given level count
// before the first insertion, avoiding repeated addLevel calls when the
// approximate final size is known ahead of time.
func WithInitialLevels(levels int) Option {
	return func(c *Config) {
		if levels > 0 {
			c.initialLevels = levels
		}
	}
}
