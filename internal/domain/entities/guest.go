package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RSVPStatus represents a guest's answer to an invitation
type RSVPStatus string

const (
	RSVPStatusPending  RSVPStatus = "pending"
	RSVPStatusAccepted RSVPStatus = "accepted"
	RSVPStatusDeclined RSVPStatus = "declined"
	RSVPStatusMaybe    RSVPStatus = "maybe"
)

// RSVPStatuses lists every recognised RSVP status in display order
func RSVPStatuses() []RSVPStatus {
	return []RSVPStatus{RSVPStatusPending, RSVPStatusAccepted, RSVPStatusDeclined, RSVPStatusMaybe}
}

// IsValid reports whether the status is one of the four recognised values
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPStatusPending, RSVPStatusAccepted, RSVPStatusDeclined, RSVPStatusMaybe:
		return true
	}
	return false
}

// Guest represents a person invited to an event
type Guest struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EventID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"event_id"`
	Event            *Event         `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Name             string         `gorm:"type:varchar(255);not null" json:"name"`
	Email            *string        `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Phone            *string        `gorm:"type:varchar(50)" json:"phone,omitempty"`
	RSVPStatus       RSVPStatus     `gorm:"column:rsvp_status;type:varchar(20);not null;default:'pending';index" json:"rsvp_status"`
	CheckedInAt      *time.Time     `gorm:"index" json:"checked_in_at,omitempty"`
	InvitationSentAt *time.Time     `json:"invitation_sent_at,omitempty"`
	PlusOne          bool           `gorm:"default:false" json:"plus_one"`
	PlusOneName      *string        `gorm:"type:varchar(255)" json:"plus_one_name,omitempty"`
	Notes            *string        `gorm:"type:text" json:"notes,omitempty"`
	Metadata         datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
	CreatedAt        time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Guest
func (Guest) TableName() string {
	return "guests"
}

// HasEmail checks if the guest has a non-blank email address
func (g *Guest) HasEmail() bool {
	return g.Email != nil && strings.TrimSpace(*g.Email) != ""
}

// IsCheckedIn checks if the guest has been checked in
func (g *Guest) IsCheckedIn() bool {
	return g.CheckedInAt != nil
}

// IsInvited checks if an invitation has already been sent to the guest
func (g *Guest) IsInvited() bool {
	return g.InvitationSentAt != nil
}

// CheckIn marks the guest as checked in
func (g *Guest) CheckIn() {
	now := time.Now()
	g.CheckedInAt = &now
}

// UndoCheckIn clears the check-in timestamp
func (g *Guest) UndoCheckIn() {
	g.CheckedInAt = nil
}

// MarkInvitationSent records that an invitation was dispatched
func (g *Guest) MarkInvitationSent() {
	now := time.Now()
	g.InvitationSentAt = &now
}
