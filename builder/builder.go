// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// builder.go: the orchestrator and shared emission helpers.
//
// Design contract:
//   - One orchestrator: Build(name, opts, cons...). Resolves config, runs
//     constructors in order, fills default terminals, validates the result.
//   - Constructors append nodes and edges in a documented, stable order.
//   - Positions are rounded to two decimals so YAML output stays readable.

package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathstep/preset"
)

// Constructor appends one topology (or modifier) to g using the resolved
// config. Constructors validate parameters before touching g.
type Constructor func(g *preset.Graph, cfg config) error

// Build creates an empty preset called name, applies cons in order and
// validates the outcome. Source and Target default to the first and last
// node when no constructor set them.
//
// Errors:
//   - constructor sentinels, wrapped with "Build: %w".
//   - preset.ErrInvalidPreset when constructors composed into an invalid
//     document (e.g. two topologies with overlapping keys).
func Build(name string, opts []Option, cons ...Constructor) (*preset.Graph, error) {
	cfg := newConfig(opts...)
	g := &preset.Graph{Name: name}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if n := len(g.Nodes); n > 0 {
		if g.Source == "" {
			g.Source = g.Nodes[0].Key
		}
		if g.Target == "" {
			g.Target = g.Nodes[n-1].Key
		}
	}
	if err := preset.Validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// Terminals overrides the default source and target keys.
func Terminals(source, target string) Constructor {
	return func(g *preset.Graph, _ config) error {
		for _, key := range []string{source, target} {
			if !hasKey(g, key) {
				return fmt.Errorf("Terminals: %q: %w", key, ErrUnknownKey)
			}
		}
		g.Source, g.Target = source, target

		return nil
	}
}

// Generate parses spec (see Parse) and builds it under the name spec.
func Generate(spec string, opts ...Option) (*preset.Graph, error) {
	ctor, err := Parse(spec)
	if err != nil {
		return nil, err
	}

	return Build(spec, opts, ctor)
}

// IsUsageError reports whether err stems from bad generator input rather
// than an internal failure.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrTooFewNodes) ||
		errors.Is(err, ErrInvalidProbability) ||
		errors.Is(err, ErrNeedRandSource) ||
		errors.Is(err, ErrUnknownTopology) ||
		errors.Is(err, ErrUnknownKey)
}

func hasKey(g *preset.Graph, key string) bool {
	for _, n := range g.Nodes {
		if n.Key == key {
			return true
		}
	}

	return false
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func addNode(g *preset.Graph, key string, x, y float64) {
	x, y = round2(x), round2(y)
	g.Nodes = append(g.Nodes, preset.Node{Key: key, X: &x, Y: &y})
}

func addEdge(g *preset.Graph, cfg config, from, to string) {
	g.Edges = append(g.Edges, preset.Edge{From: from, To: to, Weight: cfg.weightFn(cfg.rng)})
}

// ring places n nodes on a circle, starting at the top and going clockwise.
// The circle's bounding box starts at (spacing/2, spacing/2).
func ring(n int, spacing float64) (cx, cy, r float64, at func(i int) (x, y float64)) {
	r = math.Max(spacing, spacing*float64(n)/(2*math.Pi))
	cx, cy = r+spacing/2, r+spacing/2
	at = func(i int) (float64, float64) {
		theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		return cx + r*math.Cos(theta), cy + r*math.Sin(theta)
	}

	return cx, cy, r, at
}
