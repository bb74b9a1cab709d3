// Package builder generates deterministic directed test graphs as
// core.Dynamic[string, int64] values.
//
// Usage:
//
//	g, err := builder.Build(
//		[]builder.Option{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
//		builder.Cycle(3),             // handles 0..2
//		builder.RandomSparse(50, 0.1), // handles 3..52
//	)
//
// Each constructor appends its own nodes, so composing several yields a
// disjoint union. Payloads come from the ID scheme (decimal slot index by
// default) and weights from the WeightFn (constant 1 by default).
//
// Constructors: Path, Cycle, Complete, Star, Grid, RandomSparse, RandomEdges.
package builder
