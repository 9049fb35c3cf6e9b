// Package observability provides hook interfaces for monitoring sampler internals.
//
// Hooks allow callers to observe tree generation and profile sampling without
// coupling the samplers to a specific logging or metrics implementation. All
// hook implementations must be safe for concurrent use, as samplers may be
// invoked from multiple goroutines with independent random sources.
//
// The zero state is usable: all hooks default to no-op implementations, so
// instrumentation is opt-in and adds no overhead unless installed.
package observability

import (
	"sync"
	"time"
)

// SamplerHooks receives events from the tree generators.
//
// OnTreeSampled fires once per successfully generated tree. OnRejection fires
// each time a candidate is discarded by a rejection-sampling loop; attempt is
// the 1-based count of candidates drawn so far in the current call.
type SamplerHooks interface {
	OnTreeSampled(source string, numLeaves, numInternal int)
	OnRejection(source string, attempt int)
}

// ProfileHooks receives events from the preference-profile samplers.
//
// OnProfileSampled fires once per generated profile with the wall-clock time
// the sampler spent, including any internal tree generation.
type ProfileHooks interface {
	OnProfileSampled(model string, numVoters, numCandidates int, elapsed time.Duration)
}

// NoopSamplerHooks is a SamplerHooks implementation that does nothing.
// It is the default when no hooks are installed.
type NoopSamplerHooks struct{}

// OnTreeSampled does nothing.
func (NoopSamplerHooks) OnTreeSampled(string, int, int) {}

// OnRejection does nothing.
func (NoopSamplerHooks) OnRejection(string, int) {}

// NoopProfileHooks is a ProfileHooks implementation that does nothing.
// It is the default when no hooks are installed.
type NoopProfileHooks struct{}

// OnProfileSampled does nothing.
func (NoopProfileHooks) OnProfileSampled(string, int, int, time.Duration) {}

var (
	samplerHooks SamplerHooks = NoopSamplerHooks{}
	profileHooks ProfileHooks = NoopProfileHooks{}
	hooksMu      sync.RWMutex
)

// SetSamplerHooks installs hooks for tree generation events.
// Passing nil restores the no-op implementation.
func SetSamplerHooks(h SamplerHooks) {
	if h == nil {
		h = NoopSamplerHooks{}
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	samplerHooks = h
}

// SetProfileHooks installs hooks for profile sampling events.
// Passing nil restores the no-op implementation.
func SetProfileHooks(h ProfileHooks) {
	if h == nil {
		h = NoopProfileHooks{}
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	profileHooks = h
}

// Sampler returns the currently installed SamplerHooks.
func Sampler() SamplerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return samplerHooks
}

// Profile returns the currently installed ProfileHooks.
func Profile() ProfileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return profileHooks
}

// Reset restores all hooks to their no-op defaults.
// It is primarily useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	samplerHooks = NoopSamplerHooks{}
	profileHooks = NoopProfileHooks{}
}
