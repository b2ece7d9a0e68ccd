package journal

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.UserRegisteredEventType:
		return unmarshal[core.UserRegistered](storableEvent.PayloadJSON)

	case core.BookAddedToCatalogEventType:
		return unmarshal[core.BookAddedToCatalog](storableEvent.PayloadJSON)

	case core.BookCopiesAddedEventType:
		return unmarshal[core.BookCopiesAdded](storableEvent.PayloadJSON)

	case core.BookCopyLentToUserEventType:
		return unmarshal[core.BookCopyLentToUser](storableEvent.PayloadJSON)

	case core.BookCopyReturnedByUserEventType:
		return unmarshal[core.BookCopyReturnedByUser](storableEvent.PayloadJSON)

	case core.LendingBookToUserFailedEventType:
		return unmarshal[core.LendingBookToUserFailed](storableEvent.PayloadJSON)

	case core.ReturningBookFromUserFailedEventType:
		return unmarshal[core.ReturningBookFromUserFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshal[T core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(T)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
