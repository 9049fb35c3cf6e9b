// Package tree implements ordered rooted trees and uniform random samplers
// for Schröder trees (plane trees whose internal nodes all have at least two
// children).
//
// # Overview
//
// [Tree] stores an ordered rooted tree in a flat arena addressed by integer
// indices. Deterministic builders ([Caterpillar], [Balanced]) construct fixed
// shapes, while [Schroeder], [SchroederLescanne] and [SchroederBruteForce]
// sample Schröder trees at random. [Count] counts the trees exactly, and
// [ForEach] and [All] enumerate every distinct plane tree for small sizes.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(42))
//	t, err := tree.Schroeder(8, tree.AnyInternal, rng)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t.NumLeaves(), t.NumInternal())
//	fmt.Println(t.ShapeString())
//
// # Concurrency
//
// The samplers keep no state between calls apart from the observability
// hooks. They are safe to run concurrently as long as each goroutine uses
// its own random source. A [Tree] must not be mutated concurrently.
//
// # Related Packages
//
//   - [github.com/matzehuels/prefsample/pkg/ordinal]: preference samplers built on these trees
//   - [github.com/matzehuels/prefsample/pkg/observability]: hooks into sampler internals
package tree
