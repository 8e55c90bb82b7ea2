package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/vlightbox/internal/ports"
)

// LoggingPublisher writes every published event as a structured log entry and
// then hands it to the subscribers of its type.
type LoggingPublisher struct {
	logger ports.Logger
	mu     sync.RWMutex
	subs   map[string][]subscriber
	nextID int
}

type subscriber struct {
	id      int
	handler ports.EventHandler
}

// NewLoggingPublisher creates a publisher logging through logger.
func NewLoggingPublisher(logger ports.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		logger: logger,
		subs:   make(map[string][]subscriber),
	}
}

// Publish logs event and runs its subscribers synchronously, in subscription order.
func (p *LoggingPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriber(nil), p.subs[event.EventType()]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Info(ctx, "lightbox event", payloadFields(event)...)
	}

	for _, sub := range handlers {
		if err := sub.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}
	return nil
}

// Subscribe registers handler for eventType.
func (p *LoggingPublisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return noopSubscription{}, nil
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriber{id: id, handler: handler})
	p.mu.Unlock()

	return &subscription{cancel: func() { p.remove(eventType, id) }}, nil
}

func (p *LoggingPublisher) remove(eventType string, id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.subs[eventType]
	for i, sub := range current {
		if sub.id == id {
			p.subs[eventType] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
}

func payloadFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case nil:
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	once   sync.Once
	cancel func()
}

func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
