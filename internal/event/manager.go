package event

import (
	"sync"

	"github.com/bethropolis/tidemark/internal/logger"
)

// Handler is an event subscriber. It returns true when it consumed the
// event, which stops delivery to later subscribers.
type Handler func(e Event) bool

// Subscription identifies a handler for Unsubscribe.
type Subscription struct {
	eventType Type
	id        uint64
}

type registration struct {
	id      uint64
	handler Handler
}

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]registration
	nextID   uint64
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]registration),
	}
}

// Subscribe adds a handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.handlers[eventType] = append(m.handlers[eventType], registration{id: m.nextID, handler: handler})
	logger.DebugTagf("event", "Handler subscribed to %v", eventType)
	return Subscription{eventType: eventType, id: m.nextID}
}

// Unsubscribe removes the handler registered under sub.
func (m *Manager) Unsubscribe(sub Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()

	regs := m.handlers[sub.eventType]
	for i, r := range regs {
		if r.id == sub.id {
			m.handlers[sub.eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers an event to the handlers of its type, in subscription
// order, on the caller's goroutine.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	regs := make([]registration, len(m.handlers[eventType]))
	copy(regs, m.handlers[eventType])
	m.mu.RUnlock()

	if len(regs) == 0 {
		return
	}

	logger.DebugTagf("event", "Dispatching %v to %d handler(s)", eventType, len(regs))
	for _, r := range regs {
		if r.handler(event) {
			break
		}
	}
}
