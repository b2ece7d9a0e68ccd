package journal

import (
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

// Journal is an append-only, in-memory sequence of StorableEvents.
// Positions start at 1 and increase by one per appended event.
// It is safe for concurrent use.
type Journal struct {
	mu     sync.RWMutex
	events StorableEvents
}

// New creates an empty Journal.
func New() *Journal {
	return &Journal{}
}

// Append serializes the event with its metadata and appends it.
// It returns the stored event including its position.
func (j *Journal) Append(event core.DomainEvent, metadata EventMetadata) (StorableEvent, error) {
	storableEvent, err := StorableEventFrom(event, metadata)
	if err != nil {
		return StorableEvent{}, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	storableEvent.Position = uint64(len(j.events)) + 1
	j.events = append(j.events, storableEvent)

	return storableEvent, nil
}

// Events returns a copy of all appended events in append order.
func (j *Journal) Events() StorableEvents {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return slices.Clone(j.events)
}

// Query returns the events whose type is one of eventTypes, in append order.
// Without eventTypes it behaves like Events.
func (j *Journal) Query(eventTypes ...string) StorableEvents {
	j.mu.RLock()
	defer j.mu.RUnlock()

	if len(eventTypes) == 0 {
		return slices.Clone(j.events)
	}

	matching := make(StorableEvents, 0)
	for _, event := range j.events {
		if slices.Contains(eventTypes, event.EventType) {
			matching = append(matching, event)
		}
	}

	return matching
}

// Len returns the number of appended events.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.events)
}
