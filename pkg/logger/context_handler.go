package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor resolves an attribute from the context a record is logged with.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler is a slog.Handler that appends attributes resolved from
// each record's context before passing it on.
type ContextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps h. Nil extractors are skipped.
func NewContextHandler(h slog.Handler, extractors ...ContextExtractor) *ContextHandler {
	ch := &ContextHandler{Handler: h}
	for _, ex := range extractors {
		if ex != nil {
			ch.extractors = append(ch.extractors, ex)
		}
	}
	return ch
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
