package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"picgrid/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventImagesReordered  = domain.EventImagesReordered
	EventSelectionChanged = domain.EventSelectionChanged
	EventImagesDeleted    = domain.EventImagesDeleted
	EventPreviewOpened    = domain.EventPreviewOpened
	EventPreviewClosed    = domain.EventPreviewClosed
	EventFeaturedChanged  = domain.EventFeaturedChanged
	EventThemeChanged     = domain.EventThemeChanged
	EventConfigChanged    = domain.EventConfigChanged
	EventError            = domain.EventError
)

// AllEventTypes lists every event type the application publishes
var AllEventTypes = []EventType{
	EventImagesReordered,
	EventSelectionChanged,
	EventImagesDeleted,
	EventPreviewOpened,
	EventPreviewClosed,
	EventFeaturedChanged,
	EventThemeChanged,
	EventConfigChanged,
	EventError,
}

// Re-export domain event types
type ImagesReorderedEvent = domain.ImagesReorderedEvent
type SelectionChangedEvent = domain.SelectionChangedEvent
type ImagesDeletedEvent = domain.ImagesDeletedEvent
type PreviewOpenedEvent = domain.PreviewOpenedEvent
type PreviewClosedEvent = domain.PreviewClosedEvent
type FeaturedChangedEvent = domain.FeaturedChangedEvent
type ThemeChangedEvent = domain.ThemeChangedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup // dispatcher
	running   sync.WaitGroup // handler goroutines
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus with the given queue size
func New(bufferSize int) EventBus {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, bufferSize),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers without blocking the caller
func (b *bus) Publish(event DomainEvent) {
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
		for i, sub := range subs {
			if sub.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close delivers the events already queued, then stops the dispatcher and waits
// for running handlers
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
		b.running.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.running.Add(1)
		go func(h EventHandler, eventType EventType) {
			defer b.running.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
				}
			}()
			h(event)
		}(sub.handler, event.Type())
	}
}
