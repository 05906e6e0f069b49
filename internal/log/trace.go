package log

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// FieldTraceID names the dispatch trace id in log records.
const FieldTraceID = "trace_id"

type contextKey string

const traceIDKey contextKey = "trace_id"

// NewTraceID returns a short random id for correlating the log lines of one
// dispatched intent.
func NewTraceID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("trc_%d", time.Now().UnixNano())
	}
	return "trc_" + hex.EncodeToString(b)
}

// WithTraceID stores id in ctx.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey, id)
}

// TraceID returns the id stored by WithTraceID, or "".
func TraceID(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}

// EnsureTraceID returns ctx unchanged if it already carries an id, otherwise
// a child context with a fresh one.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if id := TraceID(ctx); id != "" {
		return ctx, id
	}
	id := NewTraceID()
	return WithTraceID(ctx, id), id
}
