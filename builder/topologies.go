// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// topologies.go: deterministic topology constructors.
//
// Determinism:
//   • Nodes are emitted in ascending index order with keys from cfg.keyFn
//     (Grid uses fixed "r,c" keys; Star and Wheel add a fixed "center").
//   • Edges are emitted in a documented order per constructor; weights are
//     drawn from cfg.weightFn in that same order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathstep/preset"
)

const (
	centerKey  = "center"
	gridKeyFmt = "%d,%d"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridDim       = 1
	minRandomNodes   = 1
)

// Path builds P_n laid out left to right: edges (i, i+1) for i ascending.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *preset.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			addNode(g, cfg.keyFn(i), cfg.spacing/2+float64(i)*cfg.spacing, cfg.spacing/2)
		}
		for i := 0; i+1 < n; i++ {
			addEdge(g, cfg, cfg.keyFn(i), cfg.keyFn(i+1))
		}

		return nil
	}
}

// Cycle builds C_n on a circle: edges (i, (i+1)%n) for i ascending.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *preset.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
		}
		cycle(g, cfg, n)

		return nil
	}
}

func cycle(g *preset.Graph, cfg config, n int) {
	_, _, _, at := ring(n, cfg.spacing)
	for i := 0; i < n; i++ {
		x, y := at(i)
		addNode(g, cfg.keyFn(i), x, y)
	}
	for i := 0; i < n; i++ {
		addEdge(g, cfg, cfg.keyFn(i), cfg.keyFn((i+1)%n))
	}
}

// Star builds a hub "center" (emitted first) with n-1 leaves on a circle;
// spokes (center, i) for i ascending.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *preset.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
		}
		cx, cy, _, at := ring(n-1, cfg.spacing)
		addNode(g, centerKey, cx, cy)
		for i := 0; i < n-1; i++ {
			x, y := at(i)
			addNode(g, cfg.keyFn(i), x, y)
		}
		for i := 0; i < n-1; i++ {
			addEdge(g, cfg, centerKey, cfg.keyFn(i))
		}

		return nil
	}
}

// Wheel builds W_n = C_{n-1} + "center" (emitted last): the rim edges
// first, then spokes (center, i) for i ascending.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *preset.Graph, cfg config) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewNodes)
		}
		cycle(g, cfg, n-1)
		cx, cy, _, _ := ring(n-1, cfg.spacing)
		addNode(g, centerKey, cx, cy)
		for i := 0; i < n-1; i++ {
			addEdge(g, cfg, centerKey, cfg.keyFn(i))
		}

		return nil
	}
}

// Complete builds K_n on a circle: edges (i, j) for i<j, lexicographic.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *preset.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
		}
		_, _, _, at := ring(n, cfg.spacing)
		for i := 0; i < n; i++ {
			x, y := at(i)
			addNode(g, cfg.keyFn(i), x, y)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(g, cfg, cfg.keyFn(i), cfg.keyFn(j))
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbour lattice with keys "r,c" in row-major
// order. For each cell it emits the right edge, then the bottom edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *preset.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewNodes)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				addNode(g, fmt.Sprintf(gridKeyFmt, r, c),
					cfg.spacing/2+float64(c)*cfg.spacing, cfg.spacing/2+float64(r)*cfg.spacing)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridKeyFmt, r, c)
				if c+1 < cols {
					addEdge(g, cfg, u, fmt.Sprintf(gridKeyFmt, r, c+1))
				}
				if r+1 < rows {
					addEdge(g, cfg, u, fmt.Sprintf(gridKeyFmt, r+1, c))
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi graph on a circle: each pair i<j is
// kept with probability p, trials in lexicographic order.
//
// Errors: ErrTooFewNodes, then ErrInvalidProbability, then ErrNeedRandSource
// (an RNG is only needed when 0 < p < 1).
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *preset.Graph, cfg config) error {
		if n < minRandomNodes {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		_, _, _, at := ring(n, cfg.spacing)
		for i := 0; i < n; i++ {
			x, y := at(i)
			addNode(g, cfg.keyFn(i), x, y)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					addEdge(g, cfg, cfg.keyFn(i), cfg.keyFn(j))
				}
			}
		}

		return nil
	}
}
