// Package logging routes the standard logger to a file so the terminal stays free for the UI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"picgrid/internal/eventbus"
)

// Session is an open log file tagged with a per-run id
type Session struct {
	ID   string
	file *os.File
}

// Setup redirects the standard logger to path (append mode) and prefixes every line with a
// fresh session id
func Setup(path string) (*Session, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	id := uuid.NewString()[:8]
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix(fmt.Sprintf("[%s] ", id))

	return &Session{ID: id, file: f}, nil
}

// Discard silences the standard logger, for when no log file can be opened
func Discard() {
	log.SetOutput(io.Discard)
}

// Close restores stderr logging and closes the file
func (s *Session) Close() error {
	log.SetOutput(os.Stderr)
	log.SetPrefix("")
	return s.file.Close()
}

// SubscribeActivity logs every domain event published on the bus
func SubscribeActivity(bus eventbus.EventBus) func() {
	var unsubscribers []func()
	for _, t := range eventbus.AllEventTypes {
		unsubscribers = append(unsubscribers, bus.Subscribe(t, logEvent))
	}
	return func() {
		for _, u := range unsubscribers {
			u()
		}
	}
}

func logEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.ImagesReorderedEvent:
		log.Printf("reorder: image %d moved %d -> %d", ev.ImageID, ev.From, ev.To)
	case eventbus.SelectionChangedEvent:
		log.Printf("selection: image %d selected=%t (total %d)", ev.ImageID, ev.Selected, ev.Total)
	case eventbus.ImagesDeletedEvent:
		log.Printf("delete: removed %v, %d remaining", ev.IDs, ev.Remaining)
	case eventbus.PreviewOpenedEvent:
		log.Printf("preview: opened image %d", ev.ImageID)
	case eventbus.FeaturedChangedEvent:
		log.Printf("featured: %d -> %d", ev.Previous, ev.ImageID)
	case eventbus.ThemeChangedEvent:
		log.Printf("theme: %s", ev.Theme)
	case eventbus.ConfigChangedEvent:
		log.Printf("config saved to %s", ev.Path)
	case eventbus.ErrorEvent:
		log.Printf("error: %s: %v", ev.Message, ev.Err)
	default:
		log.Printf("event: %s", e.Type())
	}
}
