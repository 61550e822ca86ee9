package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/errors"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
	"github.com/johnquangdev/event-planner/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request or the response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusCreated, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(c, err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    int(appErr.Code),
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// HTTPErrorHandler renders errors returned by middleware and unknown routes with the error envelope
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if herr := HandleError(logger, c, err); herr != nil {
			logger.Error("http.response.write_failed", zap.Error(herr))
		}
	}
}

// toAppError maps use case errors onto API errors
func toAppError(c echo.Context, err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	eventID := c.Param("id")
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrEventNotFound):
		return errors.ErrEventNotFound(eventID)
	case stdErrors.Is(err, usecaseErrors.ErrNotOrganizer):
		return errors.ErrNotOrganizer(eventID)
	case stdErrors.Is(err, usecaseErrors.ErrEventNotEditable):
		return errors.ErrEventInvalidState(eventID, "closed")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidEventStatus),
		stdErrors.Is(err, usecaseErrors.ErrInvalidEventWindow):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrGuestNotFound):
		appErr = errors.ErrGuestNotFound(c.Param("guestId"))
		appErr.Raw = err
		return appErr
	case stdErrors.Is(err, usecaseErrors.ErrGuestAlreadyExists):
		return errors.ErrGuestAlreadyExists("")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidRSVPStatus):
		appErr = errors.ErrInvalidRsvpStatus("")
		appErr.Raw = err
		return appErr
	case stdErrors.Is(err, usecaseErrors.ErrInvalidBulkAction):
		appErr = errors.ErrInvalidBulkAction("")
		appErr.Raw = err
		return appErr
	case stdErrors.Is(err, usecaseErrors.ErrEmptySelection):
		return errors.ErrEmptySelection()
	case stdErrors.Is(err, usecaseErrors.ErrSelectionTooLarge):
		appErr = errors.ErrInvalidArgument("Too many guests selected")
		appErr.Code = errors.ErrorCode_BULK_SELECTION_TOO_BIG
		appErr.Raw = err
		return appErr
	case stdErrors.Is(err, usecaseErrors.ErrSnapshotNotFound):
		return errors.ErrSnapshotNotFound(c.Param("snapshotId"))
	case stdErrors.Is(err, usecaseErrors.ErrNothingEligible):
		return errors.ErrNothingEligible("")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidDialogState):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrStorageUnavailable):
		return errors.ErrStorageUnavailable()
	case stdErrors.Is(err, usecaseErrors.ErrStorageFailed):
		return errors.ErrStorageFailed("export", err)
	case stdErrors.Is(err, usecaseErrors.ErrSnapshotStore):
		return errors.ErrCacheFailed("snapshot", err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrUnauthorized):
		return errors.ErrUnauthenticated()
	case stdErrors.Is(err, usecaseErrors.ErrForbidden):
		return errors.ErrForbidden(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("resource")
	}

	return errors.ErrInternal(err)
}

func fromHTTPError(httpErr *echo.HTTPError) errors.AppError {
	message := http.StatusText(httpErr.Code)
	if m, ok := httpErr.Message.(string); ok {
		message = m
	}

	var appErr errors.AppError
	switch httpErr.Code {
	case http.StatusNotFound:
		appErr = errors.ErrNotFound("route")
	case http.StatusUnauthorized:
		appErr = errors.ErrUnauthenticated()
	case http.StatusForbidden:
		appErr = errors.ErrForbidden(message)
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		appErr = errors.ErrInvalidPayload(httpErr.Internal)
	default:
		appErr = errors.ErrInternal(httpErr.Internal)
	}
	appErr.HTTPCode = httpErr.Code
	appErr.Message = message
	return appErr
}

// bindAndValidate binds the request into req and validates it
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload(err)
	}
	if err := c.Validate(req); err != nil {
		appErr := errors.ErrInvalidArgument("Validation failed")
		appErr.Raw = err
		for field, tag := range validator.FieldErrors(err) {
			appErr = appErr.WithDetail(field, tag)
		}
		return appErr
	}
	return nil
}

// userIDFrom returns the authenticated user set by the auth middleware
func userIDFrom(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return userID, nil
}

// uuidParam parses a path parameter as a UUID
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		appErr := errors.ErrInvalidArgument(name + " must be a valid UUID")
		appErr.Raw = err
		return uuid.Nil, appErr
	}
	return id, nil
}

// parseUUIDs parses a list of ids, rejecting the whole list on the first bad value
func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			appErr := errors.ErrInvalidArgument("guest_ids must contain valid UUIDs")
			appErr.Raw = err
			return nil, appErr
		}
		ids = append(ids, id)
	}
	return ids, nil
}
