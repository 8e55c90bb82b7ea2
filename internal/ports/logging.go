package ports

import (
	"context"
	"crypto/rand"
)

// Logger is the structured logging contract shared by the component, the
// gallery sources and the hosts. Fields are key/value pairs. Implementations
// must be safe for concurrent use and add correlation_id when the context
// carries one. Common keys:
//   - correlation_id (one per CLI invocation)
//   - layer (component|host|infrastructure)
//   - component (lightbox, gallery, downloader, tui, ...)
//   - index / src / url for image-scoped entries
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationKey struct{}

// WithCorrelationID tags ctx so every entry logged under it carries id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// NewCorrelation tags ctx with a fresh random ID, one per CLI command or
// TUI session.
func NewCorrelation(ctx context.Context) (context.Context, string) {
	id := rand.Text()
	return WithCorrelationID(ctx, id), id
}

// CorrelationID returns the ID ctx was tagged with, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}
