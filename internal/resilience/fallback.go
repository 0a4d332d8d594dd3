package resilience

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Strategy is one recovery action in an ordered fallback chain.
type Strategy struct {
	Name string
	Run  func(ctx context.Context) error
}

// Attempt records the outcome of a single strategy.
type Attempt struct {
	Strategy string
	Err      error
	Duration time.Duration
}

// FallbackReport describes what TryStrategies did.
type FallbackReport struct {
	// Succeeded is the name of the strategy that worked, empty if none did.
	Succeeded string
	Attempts  []Attempt
}

// OK reports whether any strategy succeeded.
func (r FallbackReport) OK() bool {
	return r.Succeeded != ""
}

// TryStrategies runs strategies in order until one succeeds. Failures are
// logged and never returned: the caller always proceeds, and the report
// tells it what happened.
func TryStrategies(ctx context.Context, logger *slog.Logger, strategies ...Strategy) FallbackReport {
	if logger == nil {
		logger = discardLogger()
	}

	var report FallbackReport
	for _, s := range strategies {
		if ctx.Err() != nil {
			report.Attempts = append(report.Attempts, Attempt{Strategy: s.Name, Err: ctx.Err()})
			break
		}

		start := time.Now()
		err := s.Run(ctx)
		report.Attempts = append(report.Attempts, Attempt{Strategy: s.Name, Err: err, Duration: time.Since(start)})
		if err == nil {
			report.Succeeded = s.Name
			logger.Debug("cleanup strategy succeeded", "strategy", s.Name)
			return report
		}
		logger.Debug("cleanup strategy failed", "strategy", s.Name, "error", err)
	}

	if len(strategies) > 0 {
		logger.Warn("best-effort cleanup abandoned, continuing", "strategies", len(report.Attempts))
	}
	return report
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
