// SPDX-License-Identifier: MIT
// errors.go - sentinel errors for builder constructors and options.
//
// Callers branch with errors.Is; constructors wrap with "%s: ...: %w" context.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor was passed to Build.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid option value.
var ErrOptionViolation = errors.New("builder: invalid option value")
