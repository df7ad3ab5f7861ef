// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// result in a ContextHandler, which adds attributes extracted from the
// context of each record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(os.Getenv("APP_ENV")), "predcheck"),
//	    logger.WithContextValue("document", documentKey{}),
//	)
//	log.DebugContext(ctx, "predicate evaluated", logger.Predicate("isColor"), logger.Result(true))
//
// Error and Source return an empty attribute for empty input, so they can be
// passed unconditionally.
package logger
