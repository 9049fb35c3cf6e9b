// Package ordinal samples complete preference profiles from structured
// domains.
//
// # Overview
//
// A profile is one ranking of the candidates 0..m-1 per voter, best first.
// [GroupSeparable] samples group-separable profiles by drawing a
// decomposition tree (see [TreeShape] for the available generators) and
// flipping subtrees per voter. [SingleCrossing] samples single-crossing
// profiles by walking a random swap domain, and [SingleCrossingImpartial]
// samples uniformly over the anonymous non-isomorphic single-crossing
// profiles at exponential cost.
//
// Samplers take an explicit *rand.Rand so runs can be reproduced by
// seeding. The exhaustive enumerations in
// [github.com/matzehuels/prefsample/pkg/profiles] serve as test oracles for
// the domains sampled here.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	votes, err := ordinal.GroupSeparable(4, 6, ordinal.ShapeSchroeder, rng)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Concurrency
//
// Samplers share no state apart from the hooks in
// [github.com/matzehuels/prefsample/pkg/observability]; give each goroutine
// its own random source.
//
// # Related Packages
//
//   - [github.com/matzehuels/prefsample/pkg/tree] generates the Schröder
//     decomposition trees.
//   - [github.com/matzehuels/prefsample/pkg/profiles] enumerates the target
//     domains exhaustively.
package ordinal
