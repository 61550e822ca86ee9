package bulk

// SelectionRequest carries the ids of the selected guests
type SelectionRequest struct {
	GuestIDs []string `json:"guest_ids" validate:"dive,uuid"`
}

// OpenDialogRequest represents the request to open a bulk action dialog
type OpenDialogRequest struct {
	Action     string   `json:"action" validate:"required,bulk_action"`
	GuestIDs   []string `json:"guest_ids" validate:"required,min=1,dive,uuid"`
	RSVPStatus string   `json:"rsvp_status,omitempty" validate:"required_if=Action update_rsvp,omitempty,rsvp_status"`
}
