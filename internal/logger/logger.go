// Package logger provides a zerolog-backed ports.Logger used for log files,
// where one JSON object per line is easier to ship than charmbracelet output.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Layer         string
}

// Logger wraps zerolog and satisfies ports.Logger.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	base := zerolog.New(output).Level(level).With().Timestamp().Str("layer", layer).Logger()
	return &Logger{base: base}, nil
}

// With returns a derived logger that always writes the supplied key/value pairs.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Fields(pairs(fields)).Logger()}
	return &derived
}

// Debug writes a debug-level entry if enabled.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Debug(), msg, fields)
}

// Info writes an informational entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Info(), msg, fields)
}

// Warn writes a warning entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error entry. An "error" field holding an error value is
// rendered through zerolog's Err so it lands under the standard key.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	l.emit(ctx, l.base.Error(), msg, fields)
}

func (l *Logger) emit(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	values := pairs(fields)
	if err, ok := values["error"].(error); ok {
		event = event.Err(err)
		delete(values, "error")
	}
	if id := ports.CorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	event.Fields(values).Msg(msg)
}

func pairs(fields []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		out[key] = fields[i+1]
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
