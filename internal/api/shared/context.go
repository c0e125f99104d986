package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"github.com/attire-labs/wardrobe-api/internal/domain"
)

// ContextKey is the type for context values set by this package and the
// middleware layer.
type ContextKey string

// Context keys.
const (
	// UserIDContextKey holds the authenticated caller's account ID
	// (domain.ID), set by the authentication middleware.
	UserIDContextKey ContextKey = "userID"

	// TraceIDKey holds the per-request trace ID.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of random bytes in a trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// WithUserID returns a context carrying the authenticated caller's ID.
func WithUserID(ctx context.Context, id domain.ID) context.Context {
	return context.WithValue(ctx, UserIDContextKey, id)
}

// UserIDFromContext retrieves the authenticated caller's ID from the
// context. The boolean reports whether one was set.
func UserIDFromContext(ctx context.Context) (domain.ID, bool) {
	id, ok := ctx.Value(UserIDContextKey).(domain.ID)
	if !ok || !id.IsValid() {
		return "", false
	}
	return id, true
}

// SetTraceID adds a fresh trace ID to the context for correlating logs
// with error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" if none is set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		// Extremely unlikely; a missing trace ID only degrades log
		// correlation, so log and carry on.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
