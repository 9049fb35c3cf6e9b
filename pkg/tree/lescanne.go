package tree

import (
	"math/rand"

	"github.com/matzehuels/prefsample/pkg/observability"
)

// SchroederLescanne samples a Schröder tree with the given number of leaves
// by rejection on the internal-node count: counts are drawn from the exact
// tree-count distribution until one matches the request, and a uniform tree
// with the accepted count is built through the word encoding. Every discarded
// draw is reported through [observability.SamplerHooks.OnRejection].
//
// With numInternal set to [AnyInternal] the first draw is accepted, and the
// sampler coincides with [Schroeder].
func SchroederLescanne(numLeaves, numInternal int, rng *rand.Rand) (*Tree, error) {
	if err := validateCounts(numLeaves, numInternal); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if numLeaves == 1 {
		observability.Sampler().OnTreeSampled("schroeder-lescanne", 1, 0)
		return singleNode(), nil
	}
	var k int
	for attempt := 1; ; attempt++ {
		k = randomInternalCount(numLeaves, rng)
		if numInternal == AnyInternal || k == numInternal {
			break
		}
		observability.Sampler().OnRejection("schroeder-lescanne", attempt)
	}
	t := parseSequence(rotateToRoot(schroederSequence(numLeaves, k, rng)))
	observability.Sampler().OnTreeSampled("schroeder-lescanne", numLeaves, k)
	return t, nil
}
