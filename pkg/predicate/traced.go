package predicate

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/predicate/pkg/logger"
)

// Traced wraps p so that every evaluation is logged at debug level under
// the given name. The result of p is returned unchanged.
// A nil log falls back to slog.Default().
func Traced[T any](log *slog.Logger, name string, p Predicate[T]) Predicate[T] {
	if log == nil {
		log = slog.Default()
	}
	return func(v T) bool {
		ok := p(v)
		// Skip building attributes when debug output is disabled.
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("predicate evaluated",
				logger.Predicate(name),
				logger.Result(ok),
			)
		}
		return ok
	}
}
