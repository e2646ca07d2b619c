// Package events carries note change notifications from the edit screen to
// the note list without either side holding a reference to the other.
package events

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Listener receives note events published on a [Bus].
type Listener interface {
	HandleNoteEvent(ctx context.Context, event models.NoteEvent) error
}

// ListenerFunc adapts a plain function to [Listener].
type ListenerFunc func(ctx context.Context, event models.NoteEvent) error

func (f ListenerFunc) HandleNoteEvent(ctx context.Context, event models.NoteEvent) error {
	return f(ctx, event)
}

type subscription struct {
	id       int
	listener Listener
}

// Bus is an in-process, synchronous observer. Listeners are called in
// subscription order on the publishing goroutine.
type Bus struct {
	mu        sync.Mutex
	nextID    int
	listeners []subscription

	logger *logger.Logger
}

func NewBus(logger *logger.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers l and returns a function that removes it again.
// Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(l Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, subscription{id: id, listener: l})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.listeners {
		if s.id == id {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every listener. All listeners are called even
// when some of them fail; the failures are joined into the returned error.
func (b *Bus) Publish(ctx context.Context, event models.NoteEvent) error {
	b.mu.Lock()
	listeners := make([]subscription, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	var errs []error
	for _, s := range listeners {
		if err := s.listener.HandleNoteEvent(ctx, event); err != nil {
			b.logger.Warn().
				Err(err).
				Str("func", "Bus.Publish").
				Str("event", string(event.Type)).
				Str("note_id", event.NoteID).
				Msg("listener failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Len returns the number of subscribed listeners.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
