package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
)

// GuestRepository defines the interface for guest data access
type GuestRepository interface {
	// Create creates a new guest record
	Create(ctx context.Context, guest *entities.Guest) error

	// FindByID retrieves a guest by ID within an event
	FindByID(ctx context.Context, eventID, id uuid.UUID) (*entities.Guest, error)

	// FindByEventAndEmail retrieves a guest of an event by email
	FindByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*entities.Guest, error)

	// FindByIDs retrieves the guests of an event matching the given IDs, in no particular order
	FindByIDs(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*entities.Guest, error)

	// FindByEventID retrieves every guest of an event ordered by name
	FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Guest, error)

	// Update updates an existing guest
	Update(ctx context.Context, guest *entities.Guest) error

	// Delete deletes a guest record
	Delete(ctx context.Context, eventID, id uuid.UUID) error

	// List retrieves guests of an event with filters and pagination
	List(ctx context.Context, filters GuestFilters) ([]*entities.Guest, int64, error)

	// MarkCheckedIn stamps checked_in_at on the given guests and returns the affected count
	MarkCheckedIn(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error)

	// ClearCheckedIn clears checked_in_at on the given guests and returns the affected count
	ClearCheckedIn(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error)

	// UpdateRSVP sets the RSVP status of the given guests and returns the affected count
	UpdateRSVP(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID, status entities.RSVPStatus) (int64, error)

	// MarkInvitationSent stamps invitation_sent_at on a guest
	MarkInvitationSent(ctx context.Context, id uuid.UUID) error

	// DeleteMany deletes the given guests and returns the affected count
	DeleteMany(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// GuestFilters represents filter options for listing guests
type GuestFilters struct {
	EventID    uuid.UUID
	RSVPStatus *entities.RSVPStatus
	CheckedIn  *bool
	Invited    *bool
	Search     string // Search in name, email, phone
	Limit      int
	Offset     int
	SortBy     string // "name", "created_at", "rsvp_status"
	SortOrder  string // "asc", "desc"
}
