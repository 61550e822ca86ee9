package guest

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
)

// Service defines the interface for guest use case
type Service interface {
	// CreateGuest adds a guest to an event
	CreateGuest(ctx context.Context, input CreateGuestInput) (*entities.Guest, error)

	// GetGuest retrieves a guest of an event
	GetGuest(ctx context.Context, eventID, guestID, userID uuid.UUID) (*entities.Guest, error)

	// ListGuests retrieves guests of an event with filters
	ListGuests(ctx context.Context, userID uuid.UUID, filters repositories.GuestFilters) ([]*entities.Guest, int64, error)

	// UpdateGuest updates a guest
	UpdateGuest(ctx context.Context, input UpdateGuestInput) (*entities.Guest, error)

	// DeleteGuest removes a guest from an event
	DeleteGuest(ctx context.Context, eventID, guestID, userID uuid.UUID) error

	// Summary returns the RSVP breakdown and attendance counters of an event
	Summary(ctx context.Context, eventID, userID uuid.UUID) (*Summary, error)

	// ExportGuests uploads the guest list as CSV and returns a download link
	ExportGuests(ctx context.Context, eventID, userID uuid.UUID) (*ExportOutput, error)
}

// ObjectStorage stores exported files
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Ensure GuestService implements Service interface
var _ Service = (*GuestService)(nil)
