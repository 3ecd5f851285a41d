// Package codeclog wraps a caller-supplied slog.Handler: absent a handler,
// logging is discarded rather than defaulting to os.Stderr, and every
// record gets one contextual attribute recording which codec operation
// produced it.
package codeclog

import (
	"context"
	"io"
	"log/slog"
)

// Operation names a single serialize or deserialize call for log
// correlation.
type Operation string

const (
	OpSerialize   Operation = "serialize"
	OpDeserialize Operation = "deserialize"
)

type operationKey struct{}

// WithOperation returns a context carrying op, read back by Handler.Handle
// to attach an "operation" attribute to every record logged during a
// single serialize or deserialize call.
func WithOperation(ctx context.Context, op Operation) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

// Handler wraps an slog.Handler, injecting the ambient Operation (if any)
// as a top-level attribute. A nil inner handler discards all records.
type Handler struct {
	inner slog.Handler
}

// New wraps inner. If inner is nil, the returned Handler discards every
// record.
func New(inner slog.Handler) *Handler {
	if inner == nil {
		inner = slog.NewTextHandler(io.Discard, nil)
	}
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if op, ok := ctx.Value(operationKey{}).(Operation); ok {
		record.AddAttrs(slog.String("operation", string(op)))
	}
	return h.inner.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}

// NewLogger builds an *slog.Logger from a possibly-nil handler, wrapped
// with Handler so operation attribution is always active.
func NewLogger(inner slog.Handler) *slog.Logger {
	return slog.New(New(inner))
}
