package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *entities.Event) error

	// FindByID retrieves an event by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)

	// Update updates an existing event
	Update(ctx context.Context, event *entities.Event) error

	// Delete deletes an event and, through the foreign key, its guests
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves events with filters and pagination
	List(ctx context.Context, filters EventFilters) ([]*entities.Event, int64, error)

	// FindStartingBetween retrieves published events starting inside the window
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entities.Event, error)

	// UpdateStatus updates the event status
	UpdateStatus(ctx context.Context, eventID uuid.UUID, status entities.EventStatus) error
}

// EventFilters represents filter options for listing events
type EventFilters struct {
	OrganizerID *uuid.UUID
	Status      *entities.EventStatus
	Search      string // Search in name, description, location
	Limit       int
	Offset      int
	SortBy      string // "created_at", "starts_at", "name"
	SortOrder   string // "asc", "desc"
}
