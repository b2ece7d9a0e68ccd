package journal

import (
	"fmt"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// EventMetadata ties a journal entry to the request that produced it.
// All entries written by one library operation share the same CorrelationID.
type EventMetadata struct {
	MessageID     string `json:"message_id"`
	CausationID   string `json:"causation_id"`
	CorrelationID string `json:"correlation_id"`
}

// BuildEventMetadata creates EventMetadata from the three ids.
func BuildEventMetadata(messageID uuid.UUID, causationID uuid.UUID, correlationID uuid.UUID) EventMetadata {
	return EventMetadata{
		MessageID:     messageID.String(),
		CausationID:   causationID.String(),
		CorrelationID: correlationID.String(),
	}
}

// CorrelatedEventMetadata gives an event a fresh message id and marks it as caused by
// the request identified by correlationID.
func CorrelatedEventMetadata(correlationID uuid.UUID) EventMetadata {
	return BuildEventMetadata(uuid.New(), correlationID, correlationID)
}

// EventMetadataFrom decodes the metadata of a journal entry.
func EventMetadataFrom(storableEvent StorableEvent) (EventMetadata, error) {
	var metadata EventMetadata

	if err := jsoniter.ConfigFastest.Unmarshal(storableEvent.MetadataJSON, &metadata); err != nil {
		return EventMetadata{}, fmt.Errorf("%w: position %d: %w", ErrInvalidMetadataJSON, storableEvent.Position, err)
	}

	return metadata, nil
}
