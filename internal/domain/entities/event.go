package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventStatus represents the lifecycle status of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// IsValid reports whether the status is one of the known event statuses
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// Event represents a planned event owned by an organizer
type Event struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"organizer_id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	Location    *string        `gorm:"type:varchar(255)" json:"location,omitempty"`
	Status      EventStatus    `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	StartsAt    *time.Time     `gorm:"index" json:"starts_at,omitempty"`
	EndsAt      *time.Time     `json:"ends_at,omitempty"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// IsOrganizer checks if the user organizes this event
func (e *Event) IsOrganizer(userID uuid.UUID) bool {
	return e.OrganizerID == userID
}

// IsEditable checks if guests of the event may still be changed
func (e *Event) IsEditable() bool {
	return e.Status == EventStatusDraft || e.Status == EventStatusPublished
}

// Publish marks the event as published
func (e *Event) Publish() {
	e.Status = EventStatusPublished
}

// Cancel marks the event as cancelled
func (e *Event) Cancel() {
	e.Status = EventStatusCancelled
}
