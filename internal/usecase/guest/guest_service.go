package guest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
	"github.com/johnquangdev/event-planner/internal/usecase/bulk"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// GuestService handles guest business logic
type GuestService struct {
	eventRepo repositories.EventRepository
	guestRepo repositories.GuestRepository
	storage   ObjectStorage
	exportTTL time.Duration
	logger    *zap.Logger
}

// NewGuestService creates a new guest service. storage may be nil when exports are disabled.
func NewGuestService(
	eventRepo repositories.EventRepository,
	guestRepo repositories.GuestRepository,
	storage ObjectStorage,
	exportTTL time.Duration,
	logger *zap.Logger,
) *GuestService {
	if exportTTL <= 0 {
		exportTTL = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuestService{
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		storage:   storage,
		exportTTL: exportTTL,
		logger:    logger,
	}
}

// CreateGuestInput represents input for adding a guest
type CreateGuestInput struct {
	EventID     uuid.UUID
	UserID      uuid.UUID
	Name        string
	Email       *string
	Phone       *string
	RSVPStatus  entities.RSVPStatus
	PlusOne     bool
	PlusOneName *string
	Notes       *string
	Metadata    map[string]interface{}
}

// UpdateGuestInput represents input for updating a guest. Nil fields are left unchanged.
type UpdateGuestInput struct {
	EventID     uuid.UUID
	GuestID     uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Email       *string
	Phone       *string
	RSVPStatus  *entities.RSVPStatus
	PlusOne     *bool
	PlusOneName *string
	Notes       *string
	Metadata    map[string]interface{}
}

// Summary aggregates the guest list of an event
type Summary struct {
	EventID   uuid.UUID            `json:"event_id"`
	Total     int                  `json:"total"`
	Breakdown bulk.StatusBreakdown `json:"breakdown"`
	CheckedIn int                  `json:"checked_in"`
	Invited   int                  `json:"invited"`
	WithEmail int                  `json:"with_email"`
	PlusOnes  int                  `json:"plus_ones"`
}

// CreateGuest adds a guest to an event
func (s *GuestService) CreateGuest(ctx context.Context, input CreateGuestInput) (*entities.Guest, error) {
	event, err := s.organizedEvent(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !event.IsEditable() {
		return nil, usecaseErrors.ErrEventNotEditable
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", usecaseErrors.ErrInvalidInput)
	}

	status := input.RSVPStatus
	if status == "" {
		status = entities.RSVPStatusPending
	}
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidRSVPStatus
	}

	email := normalizeEmail(input.Email)
	if email != nil {
		if err := s.ensureEmailFree(ctx, input.EventID, *email, uuid.Nil); err != nil {
			return nil, err
		}
	}

	metadata, err := encodeMetadata(input.Metadata)
	if err != nil {
		return nil, err
	}

	guest := &entities.Guest{
		EventID:     input.EventID,
		Name:        name,
		Email:       email,
		Phone:       input.Phone,
		RSVPStatus:  status,
		PlusOne:     input.PlusOne,
		PlusOneName: input.PlusOneName,
		Notes:       input.Notes,
		Metadata:    metadata,
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

// GetGuest retrieves a guest of an event
func (s *GuestService) GetGuest(ctx context.Context, eventID, guestID, userID uuid.UUID) (*entities.Guest, error) {
	if _, err := s.organizedEvent(ctx, eventID, userID); err != nil {
		return nil, err
	}
	return s.findGuest(ctx, eventID, guestID)
}

// ListGuests retrieves guests of an event with filters
func (s *GuestService) ListGuests(ctx context.Context, userID uuid.UUID, filters repositories.GuestFilters) ([]*entities.Guest, int64, error) {
	if _, err := s.organizedEvent(ctx, filters.EventID, userID); err != nil {
		return nil, 0, err
	}
	if filters.RSVPStatus != nil && !filters.RSVPStatus.IsValid() {
		return nil, 0, usecaseErrors.ErrInvalidRSVPStatus
	}

	guests, total, err := s.guestRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, total, nil
}

// UpdateGuest updates a guest
func (s *GuestService) UpdateGuest(ctx context.Context, input UpdateGuestInput) (*entities.Guest, error) {
	event, err := s.organizedEvent(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}
	if !event.IsEditable() {
		return nil, usecaseErrors.ErrEventNotEditable
	}

	guest, err := s.findGuest(ctx, input.EventID, input.GuestID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", usecaseErrors.ErrInvalidInput)
		}
		guest.Name = name
	}
	if input.Email != nil {
		email := normalizeEmail(input.Email)
		if email != nil {
			if err := s.ensureEmailFree(ctx, input.EventID, *email, guest.ID); err != nil {
				return nil, err
			}
		}
		guest.Email = email
	}
	if input.Phone != nil {
		guest.Phone = input.Phone
	}
	if input.RSVPStatus != nil {
		if !input.RSVPStatus.IsValid() {
			return nil, usecaseErrors.ErrInvalidRSVPStatus
		}
		guest.RSVPStatus = *input.RSVPStatus
	}
	if input.PlusOne != nil {
		guest.PlusOne = *input.PlusOne
		if !guest.PlusOne {
			guest.PlusOneName = nil
		}
	}
	if input.PlusOneName != nil {
		guest.PlusOneName = input.PlusOneName
	}
	if input.Notes != nil {
		guest.Notes = input.Notes
	}
	if input.Metadata != nil {
		metadata, err := encodeMetadata(input.Metadata)
		if err != nil {
			return nil, err
		}
		guest.Metadata = metadata
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	return guest, nil
}

// DeleteGuest removes a guest from an event
func (s *GuestService) DeleteGuest(ctx context.Context, eventID, guestID, userID uuid.UUID) error {
	if _, err := s.organizedEvent(ctx, eventID, userID); err != nil {
		return err
	}
	if _, err := s.findGuest(ctx, eventID, guestID); err != nil {
		return err
	}
	if err := s.guestRepo.Delete(ctx, eventID, guestID); err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	return nil
}

// Summary returns the RSVP breakdown and attendance counters of an event
func (s *GuestService) Summary(ctx context.Context, eventID, userID uuid.UUID) (*Summary, error) {
	if _, err := s.organizedEvent(ctx, eventID, userID); err != nil {
		return nil, err
	}

	guests, err := s.guestRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	return Summarize(eventID, guests), nil
}

// Summarize builds a Summary from a guest list
func Summarize(eventID uuid.UUID, guests []*entities.Guest) *Summary {
	summary := &Summary{
		EventID:   eventID,
		Total:     len(guests),
		Breakdown: bulk.Aggregate(guests),
	}
	for _, g := range guests {
		if g == nil {
			continue
		}
		if g.IsCheckedIn() {
			summary.CheckedIn++
		}
		if g.IsInvited() {
			summary.Invited++
		}
		if g.HasEmail() {
			summary.WithEmail++
		}
		if g.PlusOne {
			summary.PlusOnes++
		}
	}
	return summary
}

// organizedEvent loads an event and checks that the user organizes it
func (s *GuestService) organizedEvent(ctx context.Context, eventID, userID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !event.IsOrganizer(userID) {
		return nil, usecaseErrors.ErrNotOrganizer
	}
	return event, nil
}

func (s *GuestService) findGuest(ctx context.Context, eventID, guestID uuid.UUID) (*entities.Guest, error) {
	guest, err := s.guestRepo.FindByID(ctx, eventID, guestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	return guest, nil
}

// ensureEmailFree rejects an email already used by another guest of the event
func (s *GuestService) ensureEmailFree(ctx context.Context, eventID uuid.UUID, email string, self uuid.UUID) error {
	existing, err := s.guestRepo.FindByEventAndEmail(ctx, eventID, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check guest email: %w", err)
	}
	if existing.ID != self {
		return usecaseErrors.ErrGuestAlreadyExists
	}
	return nil
}

// normalizeEmail trims an email and turns blank values into nil
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.ToLower(strings.TrimSpace(*email))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func encodeMetadata(metadata map[string]interface{}) (datatypes.JSON, error) {
	if metadata == nil {
		return datatypes.JSON("{}"), nil
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata: %v", usecaseErrors.ErrInvalidInput, err)
	}
	return datatypes.JSON(data), nil
}
