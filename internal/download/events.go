package download

import (
	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// Completed is published after a download was written to disk.
type Completed struct {
	Index int
	URL   string
	Path  string
}

var _ ports.DomainEvent = Completed{}

// EventType implements ports.DomainEvent.
func (Completed) EventType() string { return ports.EventDownloadCompleted }

// Payload implements ports.DomainEvent.
func (e Completed) Payload() interface{} {
	return map[string]interface{}{"index": e.Index, "url": e.URL, "path": e.Path}
}

// Failed is published when a download returned an error.
type Failed struct {
	Index int
	URL   string
	Err   error
}

// EventType implements ports.DomainEvent.
func (Failed) EventType() string { return ports.EventDownloadFailed }

// Payload implements ports.DomainEvent.
func (e Failed) Payload() interface{} {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return map[string]interface{}{"index": e.Index, "url": e.URL, "error": msg}
}

// Outcome turns a Fetch result into the event a host publishes.
func Outcome(index int, url, path string, err error) ports.DomainEvent {
	if err != nil {
		return Failed{Index: index, URL: url, Err: err}
	}
	return Completed{Index: index, URL: url, Path: path}
}
