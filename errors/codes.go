package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_FORBIDDEN         ErrorCode = 1006
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1007

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2000
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 2001

	// Events
	ErrorCode_EVENT_NOT_FOUND     ErrorCode = 3000
	ErrorCode_EVENT_NOT_ORGANIZER ErrorCode = 3001
	ErrorCode_EVENT_INVALID_STATE ErrorCode = 3002

	// Guests
	ErrorCode_GUEST_NOT_FOUND      ErrorCode = 4000
	ErrorCode_GUEST_ALREADY_EXISTS ErrorCode = 4001
	ErrorCode_GUEST_INVALID_RSVP   ErrorCode = 4002

	// Bulk actions
	ErrorCode_BULK_INVALID_ACTION     ErrorCode = 5000
	ErrorCode_BULK_EMPTY_SELECTION    ErrorCode = 5001
	ErrorCode_BULK_SNAPSHOT_NOT_FOUND ErrorCode = 5002
	ErrorCode_BULK_NOTHING_ELIGIBLE   ErrorCode = 5003
	ErrorCode_BULK_SELECTION_TOO_BIG  ErrorCode = 5004

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 6000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 6001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_FORBIDDEN:                  "FORBIDDEN",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_EVENT_NOT_FOUND:            "EVENT_NOT_FOUND",
	ErrorCode_EVENT_NOT_ORGANIZER:        "EVENT_NOT_ORGANIZER",
	ErrorCode_EVENT_INVALID_STATE:        "EVENT_INVALID_STATE",
	ErrorCode_GUEST_NOT_FOUND:            "GUEST_NOT_FOUND",
	ErrorCode_GUEST_ALREADY_EXISTS:       "GUEST_ALREADY_EXISTS",
	ErrorCode_GUEST_INVALID_RSVP:         "GUEST_INVALID_RSVP",
	ErrorCode_BULK_INVALID_ACTION:        "BULK_INVALID_ACTION",
	ErrorCode_BULK_EMPTY_SELECTION:       "BULK_EMPTY_SELECTION",
	ErrorCode_BULK_SNAPSHOT_NOT_FOUND:    "BULK_SNAPSHOT_NOT_FOUND",
	ErrorCode_BULK_NOTHING_ELIGIBLE:      "BULK_NOTHING_ELIGIBLE",
	ErrorCode_BULK_SELECTION_TOO_BIG:     "BULK_SELECTION_TOO_BIG",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
