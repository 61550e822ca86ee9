package guest

import (
	"time"

	"github.com/johnquangdev/event-planner/internal/adapter/dto/common"
)

// GuestResponse represents a guest in API responses
type GuestResponse struct {
	ID               string                 `json:"id"`
	EventID          string                 `json:"event_id"`
	Name             string                 `json:"name"`
	Email            *string                `json:"email,omitempty"`
	Phone            *string                `json:"phone,omitempty"`
	RSVPStatus       string                 `json:"rsvp_status"`
	CheckedInAt      *time.Time             `json:"checked_in_at,omitempty"`
	InvitationSentAt *time.Time             `json:"invitation_sent_at,omitempty"`
	PlusOne          bool                   `json:"plus_one"`
	PlusOneName      *string                `json:"plus_one_name,omitempty"`
	Notes            *string                `json:"notes,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// GuestListResponse represents a paginated list of guests
type GuestListResponse struct {
	Guests     []*GuestResponse           `json:"guests"`
	Pagination *common.PaginationResponse `json:"pagination"`
}

// SummaryResponse represents the guest list summary of an event
type SummaryResponse struct {
	EventID   string         `json:"event_id"`
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
	CheckedIn int            `json:"checked_in"`
	Invited   int            `json:"invited"`
	WithEmail int            `json:"with_email"`
	PlusOnes  int            `json:"plus_ones"`
}

// ExportResponse represents an uploaded guest export
type ExportResponse struct {
	URL       string    `json:"url"`
	Object    string    `json:"object"`
	Rows      int       `json:"rows"`
	ExpiresAt time.Time `json:"expires_at"`
}
