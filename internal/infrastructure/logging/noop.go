package logging

import (
	"context"

	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// Discard is the logger used when a component, source or host is built
// without one. Derived loggers are Discard too.
var Discard ports.Logger = discard{}

type discard struct{}

func (discard) Debug(context.Context, string, ...interface{}) {}
func (discard) Info(context.Context, string, ...interface{})  {}
func (discard) Warn(context.Context, string, ...interface{})  {}
func (discard) Error(context.Context, string, ...interface{}) {}
func (d discard) With(...interface{}) ports.Logger            { return d }
