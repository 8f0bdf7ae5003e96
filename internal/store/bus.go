package store

import "sync"

// Bus is the cross-context channel the store uses in place of ambient browser
// storage events: every browsing context that writes the profile publishes
// the serialized result, and every other context applies what it receives
// last-writer-wins. The origin identifies the publishing context so a store
// can ignore its own writes, the way storage events never fire in the writing
// tab. Injecting the bus lets tests simulate another context without a real
// shared medium.
type Bus interface {
	Publish(origin string, payload []byte) error
	Subscribe(handler func(origin string, payload []byte)) (unsubscribe func())
}

// MemoryBus is an in-process Bus for single-context sessions and tests.
type MemoryBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(string, []byte)
}

// NewMemoryBus returns a bus with no subscribers.
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[int]func(string, []byte))}
}

// Publish delivers the payload to every subscriber synchronously.
func (b *MemoryBus) Publish(origin string, payload []byte) error {
	b.mu.Lock()
	handlers := make([]func(string, []byte), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()
	for _, h := range handlers {
		h(origin, append([]byte(nil), payload...))
	}
	return nil
}

// Subscribe registers a handler and returns its unsubscribe func.
func (b *MemoryBus) Subscribe(handler func(string, []byte)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}
}
