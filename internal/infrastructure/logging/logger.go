package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer io.Writer
	Level  string
	// Format is "text", "json" or "logfmt"; it applies when Formatter is left
	// at its zero value.
	Format       string
	Formatter    cblog.Formatter
	TimeFormat   string
	ReportCaller bool
	// Layer defaults to "infrastructure".
	Layer     string
	Component string
	Fields    map[string]interface{}
}

// Logger implements ports.Logger on top of charmbracelet/log.
type Logger struct {
	base   *cblog.Logger
	fields []interface{}
	layer  string
}

// ParseFormatter maps a format name to a charmbracelet/log formatter.
func ParseFormatter(name string) (cblog.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return cblog.TextFormatter, nil
	case "json":
		return cblog.JSONFormatter, nil
	case "logfmt":
		return cblog.LogfmtFormatter, nil
	default:
		return cblog.TextFormatter, fmt.Errorf("unknown log format %q", name)
	}
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter := opts.Formatter
	if opts.Format != "" && formatter == cblog.TextFormatter {
		parsed, err := ParseFormatter(opts.Format)
		if err != nil {
			return nil, err
		}
		formatter = parsed
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: true,
		ReportCaller:    opts.ReportCaller,
		Formatter:       formatter,
		Fields:          sortedPairs(opts.Fields),
	})

	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	var fields []interface{}
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}

	return &Logger{base: base, fields: fields, layer: layer}, nil
}

// Debug implements ports.Logger.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, cblog.DebugLevel, msg, fields)
}

// Info implements ports.Logger.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, cblog.InfoLevel, msg, fields)
}

// Warn implements ports.Logger.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, cblog.WarnLevel, msg, fields)
}

// Error implements ports.Logger.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.write(ctx, cblog.ErrorLevel, msg, fields)
}

// With returns a child logger carrying fields on every entry.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return Discard
	}
	next := make([]interface{}, 0, len(l.fields)+len(fields))
	next = append(next, l.fields...)
	next = append(next, fields...)
	return &Logger{base: l.base, fields: next, layer: l.layer}
}

func (l *Logger) write(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.base == nil {
		return
	}

	pairs := mergePairs(l.fields, fields)
	pairs = appendIfMissing(pairs, "layer", l.layer)
	if id := ports.CorrelationID(ctx); id != "" {
		pairs = appendIfMissing(pairs, "correlation_id", id)
	}

	switch level {
	case cblog.DebugLevel:
		l.base.Debug(msg, pairs...)
	case cblog.WarnLevel:
		l.base.Warn(msg, pairs...)
	case cblog.ErrorLevel:
		l.base.Error(msg, pairs...)
	default:
		l.base.Info(msg, pairs...)
	}
}

// mergePairs flattens key/value lists, later keys overriding earlier ones
// while keeping first-seen order.
func mergePairs(lists ...[]interface{}) []interface{} {
	values := make(map[string]interface{})
	var order []string
	for _, list := range lists {
		for i := 0; i+1 < len(list); i += 2 {
			key, ok := list[i].(string)
			if !ok || key == "" {
				continue
			}
			if _, seen := values[key]; !seen {
				order = append(order, key)
			}
			values[key] = list[i+1]
		}
	}

	out := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		out = append(out, key, values[key])
	}
	return out
}

func appendIfMissing(pairs []interface{}, key string, value string) []interface{} {
	if value == "" {
		return pairs
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == key {
			return pairs
		}
	}
	return append(pairs, key, value)
}

func sortedPairs(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, input[k])
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
