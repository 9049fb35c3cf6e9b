// Package profiles enumerates preference domains and provides the
// combinatorial helpers behind them.
//
// # Overview
//
// A ranking is a permutation of the candidates 0..m-1, best first, and a
// profile is one ranking per voter. [AllRankings], [AllProfiles],
// [AllAnonymousProfiles] and [AllNonIsomorphicProfiles] enumerate these
// spaces in deterministic order, which makes them usable as oracles when a
// sampler must be checked against the domain it claims to cover.
//
// Restricted domains come with their own enumerations and recognisers:
// single-peaked rankings on a line ([AllSinglePeakedRankings]) and on a
// circle ([AllSinglePeakedCircleRankings]), single-crossing profiles
// ([IsSingleCrossing], [AllSingleCrossingProfiles]) and group-separable
// profiles ([AllGroupSeparableProfiles], [GSStructure], [AllGSStructures]).
// Counting functions ([NumRankings], [NumAnonymousProfiles]) return exact
// big integers, and scalar helpers ([Binomial], [AscendingFactorial],
// [KendallTau], [Powerset]) cover the small combinatorial plumbing.
//
// # Basic Usage
//
//	rankings := profiles.AllRankings(3)
//	all := profiles.AllProfiles(2, 3)
//	sc := profiles.AllSingleCrossingProfiles(2, 3, all, false)
//	node, err := profiles.GSStructure(sc[0])
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. Enumerated profiles
// share ranking slices with each other; treat results as read-only.
//
// # Related Packages
//
//   - [github.com/matzehuels/prefsample/pkg/tree] builds the Schröder trees
//     behind group-separable sampling.
//   - [github.com/matzehuels/prefsample/pkg/ordinal] samples voting profiles
//     from these domains.
package profiles
