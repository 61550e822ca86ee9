package event

import (
	"time"

	"github.com/johnquangdev/event-planner/internal/adapter/dto/common"
)

// EventResponse represents an event in API responses
type EventResponse struct {
	ID          string                 `json:"id"`
	OrganizerID string                 `json:"organizer_id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description,omitempty"`
	Location    *string                `json:"location,omitempty"`
	Status      string                 `json:"status"`
	StartsAt    *time.Time             `json:"starts_at,omitempty"`
	EndsAt      *time.Time             `json:"ends_at,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events     []*EventResponse           `json:"events"`
	Pagination *common.PaginationResponse `json:"pagination"`
}
