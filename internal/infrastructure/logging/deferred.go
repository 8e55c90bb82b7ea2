package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

const defaultDeferredLimit = 1000

type deferredLevel int

const (
	deferredDebug deferredLevel = iota
	deferredInfo
	deferredWarn
	deferredError
)

type deferredEntry struct {
	ctx    context.Context
	level  deferredLevel
	msg    string
	fields []interface{}
}

// Deferred holds entries while the terminal is owned by the TUI and replays
// them once it is released. When full, the oldest entry is dropped.
type Deferred struct {
	mu      sync.Mutex
	limit   int
	entries []deferredEntry
}

// NewDeferred returns a store for up to limit entries (1000 when limit <= 0).
func NewDeferred(limit int) *Deferred {
	if limit <= 0 {
		limit = defaultDeferredLimit
	}
	return &Deferred{limit: limit}
}

// Logger returns a ports.Logger writing into d.
func (d *Deferred) Logger() ports.Logger {
	return &deferredLogger{store: d}
}

// Len reports how many entries are waiting.
func (d *Deferred) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Release replays every stored entry into delegate in order and empties d.
func (d *Deferred) Release(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	d.mu.Lock()
	entries := d.entries
	d.entries = nil
	d.mu.Unlock()

	for _, e := range entries {
		switch e.level {
		case deferredDebug:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case deferredWarn:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case deferredError:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

func (d *Deferred) add(e deferredEntry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.entries) == d.limit {
		d.entries = append(d.entries[:0], d.entries[1:]...)
	}
	d.entries = append(d.entries, e)
}

type deferredLogger struct {
	store  *Deferred
	fields []interface{}
}

func (l *deferredLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, deferredDebug, msg, fields)
}

func (l *deferredLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, deferredInfo, msg, fields)
}

func (l *deferredLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, deferredWarn, msg, fields)
}

func (l *deferredLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, deferredError, msg, fields)
}

func (l *deferredLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &deferredLogger{store: l.store, fields: next}
}

func (l *deferredLogger) add(ctx context.Context, level deferredLevel, msg string, fields []interface{}) {
	if l == nil || l.store == nil {
		return
	}
	l.store.add(deferredEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	})
}
