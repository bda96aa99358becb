package eventbus

import (
	"glance/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventQueryChanged         = domain.EventQueryChanged
	EventVoiceStarted         = domain.EventVoiceStarted
	EventVoiceCancelled       = domain.EventVoiceCancelled
	EventVoiceResulted        = domain.EventVoiceResulted
	EventVoiceFailed          = domain.EventVoiceFailed
	EventImagePicked          = domain.EventImagePicked
	EventImageSearchCompleted = domain.EventImageSearchCompleted
	EventError                = domain.EventError
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
)

// AllEventTypes lists every event type the bus knows about
var AllEventTypes = []EventType{
	EventQueryChanged,
	EventVoiceStarted,
	EventVoiceCancelled,
	EventVoiceResulted,
	EventVoiceFailed,
	EventImagePicked,
	EventImageSearchCompleted,
	EventError,
	EventConfigLoaded,
	EventConfigSaved,
}

// Re-export domain event types
type QueryChangedEvent = domain.QueryChangedEvent
type VoiceStartedEvent = domain.VoiceStartedEvent
type VoiceCancelledEvent = domain.VoiceCancelledEvent
type VoiceResultedEvent = domain.VoiceResultedEvent
type VoiceFailedEvent = domain.VoiceFailedEvent
type ImagePickedEvent = domain.ImagePickedEvent
type ImageSearchCompletedEvent = domain.ImageSearchCompletedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventQueryChanged:
		// one per keystroke
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and drops any queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
