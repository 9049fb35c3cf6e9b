// Package pkg provides the core libraries for prefsample preference generation.
//
// # Overview
//
// Prefsample generates synthetic preference data for social choice experiments:
// random ordered trees, exhaustive ranking and profile enumerations, and the
// structured-profile samplers built on top of them. The pkg directory is
// organized into four areas:
//
//  1. [tree] - Ordered rooted trees (builders, random generators, enumeration)
//  2. [profiles] - Exhaustive enumeration, predicates, and combinatorial helpers
//  3. [ordinal] - Random profile samplers (group-separable, single-crossing)
//  4. [observability] - Sampler event hooks and structured logging
//
// # Architecture
//
// The typical data flow through a structured sampler:
//
//	(numVoters, numCandidates, *rand.Rand)
//	         ↓
//	    [tree] package (draw or build a Schröder tree)
//	         ↓
//	    [ordinal] package (decompose voters over the tree)
//	         ↓
//	    [][]int profile (one ranking per voter)
//
// The [profiles] package enumerates every profile in a class exhaustively and
// serves as the correctness oracle for the samplers.
//
// # Quick Start
//
// Sample a group-separable profile over a uniform random Schröder tree:
//
//	import (
//	    "math/rand"
//	    "github.com/matzehuels/prefsample/pkg/ordinal"
//	)
//
//	rng := rand.New(rand.NewSource(42))
//	profile, err := ordinal.GroupSeparable(4, 6, ordinal.ShapeSchroeder, rng)
//
// # Main Packages
//
// [tree] - Arena-based ordered rooted trees. Deterministic caterpillar and
// balanced builders, three random Schröder generators (uniform via the cycle
// lemma, brute force over the enumeration, and rejection on the internal
// count), lazy exhaustive enumeration, and exact tree counting in math/big.
//
// [profiles] - Enumeration of rankings and profiles (anonymous,
// non-isomorphic, single-crossing, group-separable), single-peaked domains on
// a line and a circle, group-separable structure decomposition, and the
// combinatorial helpers behind them (binomial coefficients, powersets,
// Kendall tau distance).
//
// [ordinal] - Random profile samplers assembled from the other packages:
// group-separable over a choice of tree shapes, single-crossing via a random
// domain walk, and single-crossing impartial via exact election counting.
//
// [observability] - Hook interfaces fired by the generators and samplers,
// no-op by default, with a charmbracelet/log-backed implementation for
// structured debug output.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/tree/...            # Specific package
//	go test -run Example ./pkg/...    # Examples only
//	go test -short ./pkg/...          # Skip statistical and large enumerations
//
// [tree]: https://pkg.go.dev/github.com/matzehuels/prefsample/pkg/tree
// [profiles]: https://pkg.go.dev/github.com/matzehuels/prefsample/pkg/profiles
// [ordinal]: https://pkg.go.dev/github.com/matzehuels/prefsample/pkg/ordinal
// [observability]: https://pkg.go.dev/github.com/matzehuels/prefsample/pkg/observability
package pkg
