package bulk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// maxBars bounds the memoized toolbar states kept in memory
const maxBars = 1024

// Service defines the interface for the bulk action use case
type Service interface {
	// SelectionState returns the bulk actions bar state for a selection
	SelectionState(ctx context.Context, input SelectionInput) (*BarState, error)

	// OpenDialog classifies a selection and stores the decision as a snapshot
	OpenDialog(ctx context.Context, input OpenDialogInput) (*OpenDialogOutput, error)

	// ConfirmDialog applies a snapshot to its eligible guests
	ConfirmDialog(ctx context.Context, input DialogRef) (*BulkResult, error)

	// CancelDialog discards a snapshot
	CancelDialog(ctx context.Context, input DialogRef) error
}

// Ensure BulkService implements Service interface
var _ Service = (*BulkService)(nil)

// Mailer delivers guest emails
type Mailer interface {
	SendInvitation(ctx context.Context, event *entities.Event, guest *entities.Guest) error
	SendReminder(ctx context.Context, event *entities.Event, guest *entities.Guest) error
}

// Options tunes the bulk service
type Options struct {
	SnapshotTTL         time.Duration
	MaxSelection        int
	MailMaxElapsed      time.Duration
	MailInitialInterval time.Duration
}

// BulkService handles bulk guest actions
type BulkService struct {
	eventRepo repositories.EventRepository
	guestRepo repositories.GuestRepository
	cache     Cache
	mailer    Mailer
	logger    *zap.Logger
	opts      Options

	barsMu sync.Mutex
	bars   map[uuid.UUID]*Bar
}

// NewBulkService creates a new bulk service
func NewBulkService(
	eventRepo repositories.EventRepository,
	guestRepo repositories.GuestRepository,
	cache Cache,
	mailer Mailer,
	logger *zap.Logger,
	opts Options,
) *BulkService {
	if opts.SnapshotTTL <= 0 {
		opts.SnapshotTTL = 15 * time.Minute
	}
	if opts.MaxSelection <= 0 {
		opts.MaxSelection = 500
	}
	if opts.MailMaxElapsed <= 0 {
		opts.MailMaxElapsed = 30 * time.Second
	}
	if opts.MailInitialInterval <= 0 {
		opts.MailInitialInterval = 500 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BulkService{
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		cache:     cache,
		mailer:    mailer,
		logger:    logger,
		opts:      opts,
		bars:      make(map[uuid.UUID]*Bar),
	}
}

// SelectionInput represents input for computing the bar state
type SelectionInput struct {
	EventID  uuid.UUID
	UserID   uuid.UUID
	GuestIDs []uuid.UUID
}

// OpenDialogInput represents input for opening a bulk action dialog
type OpenDialogInput struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	Action     Action
	GuestIDs   []uuid.UUID
	RSVPStatus entities.RSVPStatus
}

// OpenDialogOutput is the opened dialog. SnapshotID is nil when nothing can be confirmed.
type OpenDialogOutput struct {
	SnapshotID *uuid.UUID
	ExpiresAt  *time.Time
	View       DialogView
}

// DialogRef identifies a stored snapshot
type DialogRef struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	SnapshotID uuid.UUID
}

// FailedGuest is a guest the action could not be applied to
type FailedGuest struct {
	GuestID uuid.UUID `json:"guest_id"`
	Reason  string    `json:"reason"`
}

// BulkResult reports the outcome of a confirmed action.
// Requested = Processed + Skipped + len(Failed).
type BulkResult struct {
	SnapshotID uuid.UUID     `json:"snapshot_id"`
	Action     Action        `json:"action"`
	Requested  int           `json:"requested"`
	Processed  int           `json:"processed"`
	Skipped    int           `json:"skipped"`
	Failed     []FailedGuest `json:"failed"`
}

// SelectionState returns the bulk actions bar state for a selection
func (s *BulkService) SelectionState(ctx context.Context, input SelectionInput) (*BarState, error) {
	if _, err := s.organizedEvent(ctx, input.EventID, input.UserID); err != nil {
		return nil, err
	}

	if len(input.GuestIDs) == 0 {
		s.dropBar(input.EventID)
		return &BarState{Visible: false}, nil
	}
	bar := s.barFor(input.EventID)

	guests, err := s.resolveSelection(ctx, input.EventID, input.GuestIDs)
	if err != nil {
		return nil, err
	}

	state, err := bar.Update(guests)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// OpenDialog classifies a selection and stores the decision as a snapshot
func (s *BulkService) OpenDialog(ctx context.Context, input OpenDialogInput) (*OpenDialogOutput, error) {
	if !input.Action.IsValid() {
		return nil, fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidBulkAction, input.Action)
	}
	if input.Action == ActionUpdateRSVP && !input.RSVPStatus.IsValid() {
		return nil, fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidRSVPStatus, input.RSVPStatus)
	}
	if len(input.GuestIDs) == 0 {
		return nil, usecaseErrors.ErrEmptySelection
	}

	if _, err := s.organizedEvent(ctx, input.EventID, input.UserID); err != nil {
		return nil, err
	}

	guests, err := s.resolveSelection(ctx, input.EventID, input.GuestIDs)
	if err != nil {
		return nil, err
	}

	result, err := Classify(guests, input.Action)
	if err != nil {
		return nil, err
	}

	dialog := NewDialog()
	if err := dialog.Open(input.Action, guests, result); err != nil {
		return nil, err
	}
	output := &OpenDialogOutput{View: dialog.View()}

	if len(result.Eligible) == 0 {
		s.logger.Info("bulk.dialog.nothing_eligible",
			zap.String("event_id", input.EventID.String()),
			zap.String("action", string(input.Action)),
			zap.Int("selected", len(guests)),
		)
		return output, nil
	}

	now := time.Now()
	snap := &Snapshot{
		ID:          uuid.New(),
		EventID:     input.EventID,
		OrganizerID: input.UserID,
		Action:      input.Action,
		Requested:   len(guests),
		EligibleIDs: result.EligibleIDs(),
		Ineligible:  result.Reasons,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.opts.SnapshotTTL),
	}
	if input.Action == ActionUpdateRSVP {
		snap.RSVPStatus = input.RSVPStatus
	}

	if err := saveSnapshot(ctx, s.cache, snap, s.opts.SnapshotTTL); err != nil {
		return nil, err
	}

	output.SnapshotID = &snap.ID
	output.ExpiresAt = &snap.ExpiresAt

	s.logger.Info("bulk.dialog.opened",
		zap.String("event_id", input.EventID.String()),
		zap.String("snapshot_id", snap.ID.String()),
		zap.String("action", string(input.Action)),
		zap.Int("selected", len(guests)),
		zap.Int("eligible", len(result.Eligible)),
	)
	return output, nil
}

// ConfirmDialog applies a snapshot to its eligible guests. A snapshot can be confirmed once.
func (s *BulkService) ConfirmDialog(ctx context.Context, input DialogRef) (*BulkResult, error) {
	event, err := s.organizedEvent(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}

	snap, err := takeSnapshot(ctx, s.cache, input.EventID, input.UserID, input.SnapshotID)
	if err != nil {
		return nil, err
	}

	guests, err := s.loadOrdered(ctx, snap.EventID, snap.EligibleIDs)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, usecaseErrors.ErrNothingEligible
	}

	dialog := NewDialog()
	restored := Result{Action: snap.Action, Eligible: guests, Reasons: snap.Ineligible}
	if err := dialog.Open(snap.Action, guests, restored); err != nil {
		return nil, err
	}

	result := &BulkResult{
		SnapshotID: snap.ID,
		Action:     snap.Action,
		Requested:  snap.Requested,
		Failed:     make([]FailedGuest, 0),
	}

	exec := &executor{ctx: ctx, svc: s, event: event, guests: dialog.Eligible(), result: result}
	err = dialog.Confirm(func() error {
		if snap.Action == ActionSendReminders {
			return exec.sendReminders()
		}
		return snapshotBar(snap.Action, exec.guests).Dispatch(snap.Action, snap.RSVPStatus, exec)
	})
	dialog.Close()
	if err != nil {
		s.logger.Error("bulk.dialog.failed",
			zap.String("snapshot_id", snap.ID.String()),
			zap.String("action", string(snap.Action)),
			zap.Error(err),
		)
		return nil, err
	}

	result.Skipped = result.Requested - result.Processed - len(result.Failed)
	if result.Skipped < 0 {
		result.Skipped = 0
	}

	s.logger.Info("bulk.dialog.confirmed",
		zap.String("event_id", snap.EventID.String()),
		zap.String("snapshot_id", snap.ID.String()),
		zap.String("action", string(snap.Action)),
		zap.Int("requested", result.Requested),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

// CancelDialog discards a snapshot
func (s *BulkService) CancelDialog(ctx context.Context, input DialogRef) error {
	if _, err := s.organizedEvent(ctx, input.EventID, input.UserID); err != nil {
		return err
	}

	snap, err := takeSnapshot(ctx, s.cache, input.EventID, input.UserID, input.SnapshotID)
	if err != nil {
		return err
	}

	s.logger.Info("bulk.dialog.cancelled",
		zap.String("event_id", snap.EventID.String()),
		zap.String("snapshot_id", snap.ID.String()),
		zap.String("action", string(snap.Action)),
	)
	return nil
}

// organizedEvent loads an event and checks that the user organizes it
func (s *BulkService) organizedEvent(ctx context.Context, eventID, userID uuid.UUID) (*entities.Event, error) {
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

// resolveSelection turns selected IDs into guest records in selection order.
// Every ID must belong to the event.
func (s *BulkService) resolveSelection(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*entities.Guest, error) {
	ids = dedupe(ids)
	if len(ids) > s.opts.MaxSelection {
		return nil, fmt.Errorf("%w: max %d", usecaseErrors.ErrSelectionTooLarge, s.opts.MaxSelection)
	}

	guests, err := s.loadOrdered(ctx, eventID, ids)
	if err != nil {
		return nil, err
	}
	if len(guests) != len(ids) {
		found := make(map[uuid.UUID]bool, len(guests))
		for _, g := range guests {
			found[g.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrGuestNotFound, id)
			}
		}
	}
	return guests, nil
}

// loadOrdered fetches guests and orders them like ids, dropping missing ones
func (s *BulkService) loadOrdered(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*entities.Guest, error) {
	records, err := s.guestRepo.FindByIDs(ctx, eventID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}

	byID := make(map[uuid.UUID]*entities.Guest, len(records))
	for _, g := range records {
		byID[g.ID] = g
	}

	guests := make([]*entities.Guest, 0, len(ids))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			guests = append(guests, g)
		}
	}
	return guests, nil
}

func (s *BulkService) barFor(eventID uuid.UUID) *Bar {
	s.barsMu.Lock()
	defer s.barsMu.Unlock()

	bar, ok := s.bars[eventID]
	if !ok {
		if len(s.bars) >= maxBars {
			// the memo is only a cache, any entry can go
			for id := range s.bars {
				delete(s.bars, id)
				break
			}
		}
		bar = NewBar()
		s.bars[eventID] = bar
	}
	return bar
}

// dropBar forgets the toolbar memo of an event
func (s *BulkService) dropBar(eventID uuid.UUID) {
	s.barsMu.Lock()
	defer s.barsMu.Unlock()
	delete(s.bars, eventID)
}

// deliver retries a mail send with exponential backoff
func (s *BulkService) deliver(ctx context.Context, send func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.opts.MailInitialInterval
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = s.opts.MailMaxElapsed

	return backoff.Retry(send, backoff.WithContext(bo, ctx))
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
