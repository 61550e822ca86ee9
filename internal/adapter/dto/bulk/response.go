package bulk

import "time"

// ActionResponse describes one toolbar button
type ActionResponse struct {
	Action        string `json:"action"`
	Label         string `json:"label"`
	Enabled       bool   `json:"enabled"`
	EligibleCount int    `json:"eligible_count"`
}

// BarResponse is the bulk actions bar state
type BarResponse struct {
	Visible   bool             `json:"visible"`
	Count     int              `json:"count"`
	Breakdown map[string]int   `json:"breakdown,omitempty"`
	Actions   []ActionResponse `json:"actions,omitempty"`
}

// IneligibleGuestResponse is a guest the action will skip
type IneligibleGuestResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// DialogResponse is an opened confirmation dialog
type DialogResponse struct {
	SnapshotID    *string                   `json:"snapshot_id,omitempty"`
	ExpiresAt     *time.Time                `json:"expires_at,omitempty"`
	Action        string                    `json:"action"`
	State         string                    `json:"state"`
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	SelectedCount int                       `json:"selected_count"`
	EligibleCount int                       `json:"eligible_count"`
	Breakdown     map[string]int            `json:"breakdown,omitempty"`
	Ineligible    []IneligibleGuestResponse `json:"ineligible"`
	CanConfirm    bool                      `json:"can_confirm"`
}

// FailedGuestResponse is a guest the action failed for
type FailedGuestResponse struct {
	GuestID string `json:"guest_id"`
	Reason  string `json:"reason"`
}

// ResultResponse reports a confirmed bulk action
type ResultResponse struct {
	SnapshotID string                `json:"snapshot_id"`
	Action     string                `json:"action"`
	Requested  int                   `json:"requested"`
	Processed  int                   `json:"processed"`
	Skipped    int                   `json:"skipped"`
	Failed     []FailedGuestResponse `json:"failed"`
}
