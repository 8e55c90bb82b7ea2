package lightbox

import (
	"sort"
	"sync"
)

// KeyBus is the process-wide keyboard source. Hosts call Dispatch for every key
// press; mounted components receive them through their own Listener.
type KeyBus struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Key)
}

// NewKeyBus returns an empty bus.
func NewKeyBus() *KeyBus {
	return &KeyBus{listeners: make(map[int]func(Key))}
}

// Listener is an owned registration on a KeyBus.
type Listener struct {
	bus  *KeyBus
	id   int
	once sync.Once
}

// Listen registers fn and returns the handle that releases it.
func (b *KeyBus) Listen(fn func(Key)) *Listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.listeners[b.nextID] = fn
	return &Listener{bus: b, id: b.nextID}
}

// Remove releases the registration. Calling it again is a no-op.
func (l *Listener) Remove() {
	if l == nil || l.bus == nil {
		return
	}
	l.once.Do(func() {
		l.bus.mu.Lock()
		delete(l.bus.listeners, l.id)
		l.bus.mu.Unlock()
	})
}

// Dispatch delivers k to every listener in registration order.
func (b *KeyBus) Dispatch(k Key) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.listeners))
	for id := range b.listeners {
		ids = append(ids, id)
	}
	handlers := make([]func(Key), 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		handlers = append(handlers, b.listeners[id])
	}
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(k)
	}
}

// Len reports the number of live registrations.
func (b *KeyBus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
