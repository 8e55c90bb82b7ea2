package ports

import "context"

// DomainEvent is anything a host publishes: lightbox change requests and
// download outcomes alike.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

const (
	// EventDownloadCompleted is published by hosts after a Saver finished.
	EventDownloadCompleted = "download.completed"
	// EventDownloadFailed is published by hosts when a Saver returned an error.
	EventDownloadFailed = "download.failed"
)

// EventPublisher fans events out to subscribers. Publish is synchronous and
// returns after every handler ran.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes one event. Returned errors are logged by the
// publisher and do not stop delivery to other handlers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription is a registered handler; Unsubscribe may be called more than once.
type Subscription interface {
	Unsubscribe()
}
