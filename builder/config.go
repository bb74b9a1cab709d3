package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Option configures a Build call.
type Option func(*builderConfig)

// WeightFn draws one edge weight. rng is nil unless WithSeed or WithRand was given.
type WeightFn func(rng *rand.Rand) int64

// DefaultEdgeWeight is the constant weight used when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
	err      error // first option violation
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) int64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithIDScheme names node i by fn(i), where i is the global slot index.
// A nil fn is ignored.
func WithIDScheme(fn func(int) string) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithPrefixIDs names nodes prefix+i.
func WithPrefixIDs(prefix string) Option {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithWeightFn sets the edge-weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithConstantWeight gives every edge weight w. Negative w records ErrOptionViolation.
func WithConstantWeight(w int64) Option {
	return func(c *builderConfig) {
		if w < 0 {
			c.fail(fmt.Errorf("WithConstantWeight: w=%d < 0: %w", w, ErrOptionViolation))
			return
		}
		c.weightFn = func(*rand.Rand) int64 { return w }
	}
}

// WithUniformWeight draws weights uniformly from [lo, hi]. Without a random
// source every edge gets lo. Requires 0 <= lo <= hi.
func WithUniformWeight(lo, hi int64) Option {
	return func(c *builderConfig) {
		if lo < 0 || hi < lo {
			c.fail(fmt.Errorf("WithUniformWeight: require 0 <= lo <= hi, got lo=%d hi=%d: %w", lo, hi, ErrOptionViolation))
			return
		}
		c.weightFn = func(rng *rand.Rand) int64 {
			if rng == nil || lo == hi {
				return lo
			}
			return lo + rng.Int63n(hi-lo+1)
		}
	}
}

func (c *builderConfig) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}
