package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Predicate records a predicate or combinator name under the key "predicate".
func Predicate(name string) slog.Attr {
	return slog.String("predicate", name)
}

// Result records a predicate outcome under the key "result".
func Result(ok bool) slog.Attr {
	return slog.Bool("result", ok)
}

// Document records the position of an input document under the key "document".
func Document(index int) slog.Attr {
	return slog.Int("document", index)
}

// Source records where an expression was read from under the key "source".
// An empty source returns an empty Attr.
func Source(src string) slog.Attr {
	if src == "" {
		return slog.Attr{}
	}
	return slog.String("source", src)
}
