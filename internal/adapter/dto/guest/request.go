package guest

import "github.com/johnquangdev/event-planner/internal/adapter/dto/common"

// CreateGuestRequest represents the request to add a guest
type CreateGuestRequest struct {
	Name        string                 `json:"name" validate:"required,min=1,max=255"`
	Email       *string                `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       *string                `json:"phone,omitempty" validate:"omitempty,max=50"`
	RSVPStatus  string                 `json:"rsvp_status,omitempty" validate:"omitempty,rsvp_status"`
	PlusOne     bool                   `json:"plus_one"`
	PlusOneName *string                `json:"plus_one_name,omitempty" validate:"omitempty,max=255"`
	Notes       *string                `json:"notes,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateGuestRequest represents the request to update a guest
type UpdateGuestRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email       *string                `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone       *string                `json:"phone,omitempty" validate:"omitempty,max=50"`
	RSVPStatus  *string                `json:"rsvp_status,omitempty" validate:"omitempty,rsvp_status"`
	PlusOne     *bool                  `json:"plus_one,omitempty"`
	PlusOneName *string                `json:"plus_one_name,omitempty" validate:"omitempty,max=255"`
	Notes       *string                `json:"notes,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ListGuestsRequest represents query parameters for listing guests
type ListGuestsRequest struct {
	common.PageRequest
	RSVPStatus *string `query:"rsvp_status" validate:"omitempty,rsvp_status"`
	CheckedIn  *bool   `query:"checked_in"`
	Invited    *bool   `query:"invited"`
	Search     string  `query:"search"`
	SortBy     string  `query:"sort_by" validate:"omitempty,oneof=name created_at rsvp_status"`
}
