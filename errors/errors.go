package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error type returned to API clients
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrUnauthenticated() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_UNAUTHENTICATED,
		Message:  "Authentication required",
	}
}

// ErrForbidden represents a forbidden error.
func ErrForbidden(message string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_FORBIDDEN,
		Message:  message,
	}
}

func ErrInvalidPayload(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Authentication Errors
func ErrInvalidToken() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_INVALID_TOKEN,
		Message:  "Invalid authentication token",
	}
}

func ErrTokenExpired() AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_AUTH_TOKEN_EXPIRED,
		Message:  "Authentication token has expired",
	}
}

// Event Errors
func ErrEventNotFound(eventID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_EVENT_NOT_FOUND,
		Message:  "Event not found",
	}.WithDetail("event_id", eventID)
}

func ErrNotOrganizer(eventID string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_EVENT_NOT_ORGANIZER,
		Message:  "User is not the organizer of this event",
	}.WithDetail("event_id", eventID)
}

func ErrEventInvalidState(eventID, currentState string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_EVENT_INVALID_STATE,
		Message:  "Event is in invalid state",
	}.WithDetail("event_id", eventID).
		WithDetail("current_state", currentState)
}

// Guest Errors
func ErrGuestNotFound(guestID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_GUEST_NOT_FOUND,
		Message:  "Guest not found",
	}.WithDetail("guest_id", guestID)
}

func ErrGuestAlreadyExists(email string) AppError {
	return AppError{
		HTTPCode: http.StatusConflict,
		Code:     ErrorCode_GUEST_ALREADY_EXISTS,
		Message:  "A guest with this email already exists for the event",
	}.WithDetail("email", email)
}

func ErrInvalidRsvpStatus(status string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_GUEST_INVALID_RSVP,
		Message:  "RSVP status must be pending, accepted, declined or maybe",
	}.WithDetail("rsvp_status", status)
}

// Bulk Action Errors
func ErrInvalidBulkAction(action string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_BULK_INVALID_ACTION,
		Message:  "Unknown bulk action",
	}.WithDetail("action", action)
}

func ErrEmptySelection() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_BULK_EMPTY_SELECTION,
		Message:  "No guests selected",
	}
}

func ErrSelectionTooLarge(max int) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_BULK_SELECTION_TOO_BIG,
		Message:  "Too many guests selected",
	}.WithDetail("max_selection", fmt.Sprintf("%d", max))
}

func ErrSnapshotNotFound(snapshotID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_BULK_SNAPSHOT_NOT_FOUND,
		Message:  "Bulk action dialog expired or already closed",
	}.WithDetail("snapshot_id", snapshotID)
}

func ErrNothingEligible(action string) AppError {
	return AppError{
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_BULK_NOTHING_ELIGIBLE,
		Message:  "No selected guest is eligible for this action",
	}.WithDetail("action", action)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrStorageUnavailable() AppError {
	return AppError{
		HTTPCode: http.StatusServiceUnavailable,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  "Object storage is not configured",
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

