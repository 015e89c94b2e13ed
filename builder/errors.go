// SPDX-License-Identifier: MIT
// Package: pathstep/builder
//
// errors.go: sentinel errors.
//
// Callers branch with errors.Is; messages carry the constructor name and the
// offending parameter as context.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownTopology indicates an unparsable generator spec.
var ErrUnknownTopology = errors.New("builder: unknown topology")

// ErrUnknownKey indicates Terminals naming a key the graph does not contain.
var ErrUnknownKey = errors.New("builder: unknown node key")
