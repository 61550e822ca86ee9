package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/errors"
	dto "github.com/johnquangdev/event-planner/internal/adapter/dto/bulk"
	"github.com/johnquangdev/event-planner/internal/adapter/presenter"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/usecase/bulk"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// Bulk handles the bulk actions bar and its confirmation dialogs
type Bulk struct {
	bulkService  bulk.Service
	maxSelection int
	logger       *zap.Logger
}

// NewBulkHandler creates a new bulk handler
func NewBulkHandler(bulkService bulk.Service, maxSelection int, logger *zap.Logger) *Bulk {
	return &Bulk{
		bulkService:  bulkService,
		maxSelection: maxSelection,
		logger:       logger,
	}
}

// Selection handles POST /events/:id/guests/selection
// @Summary      Bulk actions bar state
// @Description  Returns the bar visibility, RSVP breakdown and per-action eligibility for the selected guests
// @Tags         Bulk
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "Event ID (UUID)"
// @Param        request  body      bulk.SelectionRequest  true  "Selected guests"
// @Success      200      {object}  bulk.BarResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse  "Unknown guest in selection"
// @Router       /events/{id}/guests/selection [post]
func (h *Bulk) Selection(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return h.fail(c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.SelectionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, err)
	}
	ids, err := parseUUIDs(req.GuestIDs)
	if err != nil {
		return h.fail(c, err)
	}

	state, err := h.bulkService.SelectionState(c.Request().Context(), bulk.SelectionInput{
		EventID:  eventID,
		UserID:   userID,
		GuestIDs: ids,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToBarResponse(state))
}

// OpenDialog handles POST /events/:id/guests/bulk/dialogs
// @Summary      Open a bulk action dialog
// @Description  Classifies the selection and stores the eligible guests until the dialog is confirmed or cancelled
// @Tags         Bulk
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                  true  "Event ID (UUID)"
// @Param        request  body      bulk.OpenDialogRequest  true  "Action and selection"
// @Success      201      {object}  bulk.DialogResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /events/{id}/guests/bulk/dialogs [post]
func (h *Bulk) OpenDialog(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return h.fail(c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req dto.OpenDialogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.fail(c, err)
	}
	ids, err := parseUUIDs(req.GuestIDs)
	if err != nil {
		return h.fail(c, err)
	}

	out, err := h.bulkService.OpenDialog(c.Request().Context(), bulk.OpenDialogInput{
		EventID:    eventID,
		UserID:     userID,
		Action:     bulk.Action(req.Action),
		GuestIDs:   ids,
		RSVPStatus: entities.RSVPStatus(req.RSVPStatus),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToDialogResponse(out))
}

// ConfirmDialog handles POST /events/:id/guests/bulk/dialogs/:snapshotId/confirm
// @Summary      Confirm a bulk action dialog
// @Description  Applies the action to the guests that were eligible when the dialog opened. The dialog can be confirmed once.
// @Tags         Bulk
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string  true  "Event ID (UUID)"
// @Param        snapshotId  path      string  true  "Dialog snapshot ID (UUID)"
// @Success      200         {object}  bulk.ResultResponse
// @Failure      404         {object}  common.ErrorResponse  "Dialog expired or already closed"
// @Router       /events/{id}/guests/bulk/dialogs/{snapshotId}/confirm [post]
func (h *Bulk) ConfirmDialog(c echo.Context) error {
	ref, err := h.dialogRef(c)
	if err != nil {
		return h.fail(c, err)
	}

	result, err := h.bulkService.ConfirmDialog(c.Request().Context(), ref)
	if err != nil {
		return h.fail(c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToResultResponse(result))
}

// CancelDialog handles DELETE /events/:id/guests/bulk/dialogs/:snapshotId
// @Summary      Cancel a bulk action dialog
// @Tags         Bulk
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string  true  "Event ID (UUID)"
// @Param        snapshotId  path      string  true  "Dialog snapshot ID (UUID)"
// @Success      200         {object}  common.SuccessResponse
// @Failure      404         {object}  common.ErrorResponse
// @Router       /events/{id}/guests/bulk/dialogs/{snapshotId} [delete]
func (h *Bulk) CancelDialog(c echo.Context) error {
	ref, err := h.dialogRef(c)
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.bulkService.CancelDialog(c.Request().Context(), ref); err != nil {
		return h.fail(c, err)
	}

	return HandleSuccess(h.logger, c, map[string]string{"snapshot_id": ref.SnapshotID.String()})
}

func (h *Bulk) dialogRef(c echo.Context) (bulk.DialogRef, error) {
	userID, err := userIDFrom(c)
	if err != nil {
		return bulk.DialogRef{}, err
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return bulk.DialogRef{}, err
	}
	snapshotID, err := uuidParam(c, "snapshotId")
	if err != nil {
		return bulk.DialogRef{}, err
	}
	return bulk.DialogRef{EventID: eventID, UserID: userID, SnapshotID: snapshotID}, nil
}

// fail adds the configured selection limit before the generic mapping
func (h *Bulk) fail(c echo.Context, err error) error {
	if stdErrors.Is(err, usecaseErrors.ErrSelectionTooLarge) {
		appErr := errors.ErrSelectionTooLarge(h.maxSelection)
		appErr.Raw = err
		err = appErr
	}
	return HandleError(h.logger, c, err)
}
