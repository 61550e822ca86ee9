package event

import (
	"time"

	"github.com/johnquangdev/event-planner/internal/adapter/dto/common"
)

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Name        string                 `json:"name" validate:"required,min=1,max=255"`
	Description *string                `json:"description,omitempty"`
	Location    *string                `json:"location,omitempty" validate:"omitempty,max=255"`
	Status      string                 `json:"status,omitempty" validate:"omitempty,event_status"`
	StartsAt    *time.Time             `json:"starts_at,omitempty"`
	EndsAt      *time.Time             `json:"ends_at,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string                `json:"description,omitempty"`
	Location    *string                `json:"location,omitempty" validate:"omitempty,max=255"`
	Status      *string                `json:"status,omitempty" validate:"omitempty,event_status"`
	StartsAt    *time.Time             `json:"starts_at,omitempty"`
	EndsAt      *time.Time             `json:"ends_at,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ListEventsRequest represents query parameters for listing events
type ListEventsRequest struct {
	common.PageRequest
	Status *string `query:"status" validate:"omitempty,event_status"`
	Search string  `query:"search"`
	SortBy string  `query:"sort_by" validate:"omitempty,oneof=created_at starts_at name"`
}
