package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// EventService handles event business logic
type EventService struct {
	eventRepo repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo repositories.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEventInput represents input for creating an event
type CreateEventInput struct {
	OrganizerID uuid.UUID
	Name        string
	Description *string
	Location    *string
	Status      entities.EventStatus
	StartsAt    *time.Time
	EndsAt      *time.Time
	Metadata    map[string]interface{}
}

// UpdateEventInput represents input for updating an event. Nil fields are left unchanged.
type UpdateEventInput struct {
	EventID     uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Description *string
	Location    *string
	Status      *entities.EventStatus
	StartsAt    *time.Time
	EndsAt      *time.Time
	Metadata    map[string]interface{}
}

// CreateEvent creates a new event owned by the caller
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (*entities.Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", usecaseErrors.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = entities.EventStatusDraft
	}
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidEventStatus
	}
	if err := checkWindow(input.StartsAt, input.EndsAt); err != nil {
		return nil, err
	}

	event := &entities.Event{
		OrganizerID: input.OrganizerID,
		Name:        name,
		Description: input.Description,
		Location:    input.Location,
		Status:      status,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
	}

	metadata, err := encodeMetadata(input.Metadata)
	if err != nil {
		return nil, err
	}
	event.Metadata = metadata

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// GetEvent retrieves an event the user organizes
func (s *EventService) GetEvent(ctx context.Context, eventID, userID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !event.IsOrganizer(userID) {
		return nil, usecaseErrors.ErrNotOrganizer
	}
	return event, nil
}

// ListEvents retrieves events with filters
func (s *EventService) ListEvents(ctx context.Context, filters repositories.EventFilters) ([]*entities.Event, int64, error) {
	events, total, err := s.eventRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}

// UpdateEvent updates an event (organizer only)
func (s *EventService) UpdateEvent(ctx context.Context, input UpdateEventInput) (*entities.Event, error) {
	event, err := s.GetEvent(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", usecaseErrors.ErrInvalidInput)
		}
		event.Name = name
	}
	if input.Description != nil {
		event.Description = input.Description
	}
	if input.Location != nil {
		event.Location = input.Location
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, usecaseErrors.ErrInvalidEventStatus
		}
		event.Status = *input.Status
	}
	if input.StartsAt != nil {
		event.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		event.EndsAt = input.EndsAt
	}
	if err := checkWindow(event.StartsAt, event.EndsAt); err != nil {
		return nil, err
	}
	if input.Metadata != nil {
		metadata, err := encodeMetadata(input.Metadata)
		if err != nil {
			return nil, err
		}
		event.Metadata = metadata
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// DeleteEvent deletes an event and its guests (organizer only)
func (s *EventService) DeleteEvent(ctx context.Context, eventID, userID uuid.UUID) error {
	if _, err := s.GetEvent(ctx, eventID, userID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func checkWindow(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return usecaseErrors.ErrInvalidEventWindow
	}
	return nil
}

func encodeMetadata(metadata map[string]interface{}) (datatypes.JSON, error) {
	if metadata == nil {
		return datatypes.JSON("{}"), nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", usecaseErrors.ErrInvalidInput, err)
	}
	return datatypes.JSON(data), nil
}
