package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types
const (
	// TypeEntityCreated is emitted after an entity is stored.
	TypeEntityCreated = "entity.created"

	// TypeEnvironmentSeeded is emitted after the test environment is built.
	TypeEnvironmentSeeded = "environment.seeded"
)

// EntityEvent describes a change to a single entity.
type EntityEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Entity names the entity kind, e.g. "user" or "goal table"
	Entity string `json:"entity"`

	// EntityID is the id of the affected entity
	EntityID uint32 `json:"entity_id"`

	// Payload contains an entity summary serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *EntityEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEntityEvent creates a new EntityEvent with the given type, entity kind,
// entity id and payload.
func NewEntityEvent(eventType, entity string, entityID uint32, payload interface{}) (*EntityEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &EntityEvent{
		ID:        uuid.New(),
		Type:      eventType,
		Entity:    entity,
		EntityID:  entityID,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *EntityEvent) error
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *EntityEvent) error
}
