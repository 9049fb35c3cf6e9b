package observability

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements SamplerHooks and ProfileHooks by emitting structured
// debug logs. It is safe for concurrent use.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates hooks that write structured logs to w at the given
// level. Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
// Sampler events are logged at debug level, so pass log.DebugLevel to see
// per-draw output.
func NewLogHooks(w io.Writer, level log.Level) *LogHooks {
	return &LogHooks{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// OnTreeSampled logs a generated tree with its leaf and internal node counts.
func (h *LogHooks) OnTreeSampled(source string, numLeaves, numInternal int) {
	h.logger.Debug("sampled tree", "source", source, "leaves", numLeaves, "internal", numInternal)
}

// OnRejection logs a discarded candidate from a rejection-sampling loop.
func (h *LogHooks) OnRejection(source string, attempt int) {
	h.logger.Debug("rejected candidate", "source", source, "attempt", attempt)
}

// OnProfileSampled logs a generated profile with its dimensions and the time
// the sampler spent, rounded to the nearest microsecond.
func (h *LogHooks) OnProfileSampled(model string, numVoters, numCandidates int, elapsed time.Duration) {
	h.logger.Debug("sampled profile",
		"model", model,
		"voters", numVoters,
		"candidates", numCandidates,
		"elapsed", elapsed.Round(time.Microsecond),
	)
}
