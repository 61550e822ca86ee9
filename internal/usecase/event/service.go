package event

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
)

// Service defines the interface for event use case
type Service interface {
	// CreateEvent creates a new event owned by the caller
	CreateEvent(ctx context.Context, input CreateEventInput) (*entities.Event, error)

	// GetEvent retrieves an event the user organizes
	GetEvent(ctx context.Context, eventID, userID uuid.UUID) (*entities.Event, error)

	// ListEvents retrieves events with filters
	ListEvents(ctx context.Context, filters repositories.EventFilters) ([]*entities.Event, int64, error)

	// UpdateEvent updates an event (organizer only)
	UpdateEvent(ctx context.Context, input UpdateEventInput) (*entities.Event, error)

	// DeleteEvent deletes an event and its guests (organizer only)
	DeleteEvent(ctx context.Context, eventID, userID uuid.UUID) error
}

// Ensure EventService implements Service interface
var _ Service = (*EventService)(nil)
