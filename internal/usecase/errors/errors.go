package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
)

// Event errors
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrNotOrganizer       = errors.New("user is not the organizer")
	ErrEventNotEditable   = errors.New("event is cancelled or completed")
	ErrInvalidEventStatus = errors.New("invalid event status")
	ErrInvalidEventWindow = errors.New("event must end after it starts")
)

// Guest errors
var (
	ErrGuestNotFound      = errors.New("guest not found")
	ErrGuestAlreadyExists = errors.New("guest with this email already invited")
	ErrInvalidRSVPStatus  = errors.New("invalid rsvp status")
)

// Bulk action errors
var (
	ErrInvalidBulkAction  = errors.New("unknown bulk action")
	ErrEmptySelection     = errors.New("selection is empty")
	ErrSelectionTooLarge  = errors.New("selection exceeds the allowed size")
	ErrSnapshotNotFound   = errors.New("bulk action snapshot not found or expired")
	ErrNothingEligible    = errors.New("no selected guest is eligible")
	ErrInvalidDialogState = errors.New("invalid dialog transition")
)

// Integration errors
var (
	ErrStorageUnavailable = errors.New("object storage not configured")
	ErrStorageFailed      = errors.New("object storage operation failed")
	ErrSnapshotStore      = errors.New("snapshot store operation failed")
)
