// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// options.go: functional options and the resolved configuration.
//
// Contract:
//   • Options mutate config in order; later options win.
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • No randomness unless WithSeed or WithRand is given.

package builder

import (
	"fmt"
	"math/rand"
)

// Defaults.
const (
	DefaultWeight  = int64(1)
	DefaultSpacing = 120.0
)

// config aggregates every knob used by constructors. It is passed by value.
type config struct {
	keyFn    KeyFn
	rng      *rand.Rand
	weightFn WeightFn
	spacing  float64
}

// Option customizes generation.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		keyFn:    DecimalKeys,
		weightFn: ConstantWeight(DefaultWeight),
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithKeys sets the node key scheme. Panics on nil.
func WithKeys(fn KeyFn) Option {
	if fn == nil {
		panic("builder: WithKeys(nil)")
	}

	return func(c *config) { c.keyFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG, making stochastic output reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}

// WithConstantWeight sets every edge weight to w.
func WithConstantWeight(w int64) Option { return WithWeightFn(ConstantWeight(w)) }

// WithUniformWeight draws edge weights uniformly from [min, max].
func WithUniformWeight(min, max int64) Option { return WithWeightFn(UniformWeight(min, max)) }

// WithSpacing sets the layout unit distance. Panics unless spacing > 0.
func WithSpacing(spacing float64) Option {
	if spacing <= 0 {
		panic(fmt.Sprintf("builder: WithSpacing(%g): spacing must be > 0", spacing))
	}

	return func(c *config) { c.spacing = spacing }
}
