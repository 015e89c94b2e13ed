// Package builder generates example graphs as preset.Graph documents.
//
// It offers deterministic topology constructors (Path, Cycle, Star, Wheel,
// Complete, Grid, RandomSparse) plus functional options for node keys,
// edge weights, layout spacing and randomness:
//
//   - Key schemes (KeyFn):
//     – DecimalKeys:  "0","1",…
//     – LetterKeys:   "A","B",…,"Z","AA",…
//     – PrefixKeys:   "v0","v1",…
//   - Weight distributions (WeightFn):
//     – ConstantWeight: fixed value.
//     – UniformWeight:  integers ∼U[min,max].
//   - Layout: every node gets a position so renderers can draw it directly.
//
// Guarantees:
//
//   - Determinism: same constructor, options and seed ⇒ identical document.
//   - Output always passes preset.Validate.
//   - Terminals default to the first and last generated node unless
//     Terminals(...) overrides them.
//
// Errors are sentinels (ErrTooFewNodes, ErrInvalidProbability,
// ErrNeedRandSource, ErrUnknownTopology); option constructors panic on
// meaningless input.
package builder
