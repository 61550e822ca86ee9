package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/internal/adapter/dto/guest"
	"github.com/johnquangdev/event-planner/internal/adapter/presenter"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
	guestUsecase "github.com/johnquangdev/event-planner/internal/usecase/guest"
)

// Guest handles guest list HTTP requests
type Guest struct {
	guestService guestUsecase.Service
	logger       *zap.Logger
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService guestUsecase.Service, logger *zap.Logger) *Guest {
	return &Guest{
		guestService: guestService,
		logger:       logger,
	}
}

// CreateGuest handles POST /events/:id/guests
// @Summary      Add a guest
// @Tags         Guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Event ID (UUID)"
// @Param        request  body      guest.CreateGuestRequest  true  "Guest"
// @Success      201      {object}  guest.GuestResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      403      {object}  common.ErrorResponse
// @Failure      409      {object}  common.ErrorResponse  "Email already used in this event"
// @Router       /events/{id}/guests [post]
func (h *Guest) CreateGuest(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req guest.CreateGuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.guestService.CreateGuest(c.Request().Context(), guestUsecase.CreateGuestInput{
		EventID:     eventID,
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		RSVPStatus:  entities.RSVPStatus(req.RSVPStatus),
		PlusOne:     req.PlusOne,
		PlusOneName: req.PlusOneName,
		Notes:       req.Notes,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToGuestResponse(created))
}

// ListGuests handles GET /events/:id/guests
// @Summary      List guests
// @Tags         Guests
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Event ID (UUID)"
// @Param        rsvp_status  query     string  false  "Filter by RSVP status"  Enums(pending, accepted, declined, maybe)
// @Param        checked_in   query     bool    false  "Filter by check-in"
// @Param        invited      query     bool    false  "Filter by invitation sent"
// @Param        search       query     string  false  "Search in name, email and phone"
// @Param        page         query     int     false  "Page number"  default(1)
// @Param        page_size    query     int     false  "Page size"    default(20)
// @Param        sort_by      query     string  false  "Sort field"   Enums(name, created_at, rsvp_status)
// @Param        sort_order   query     string  false  "Sort order"   Enums(asc, desc)
// @Success      200  {object}  guest.GuestListResponse
// @Failure      400  {object}  common.ErrorResponse
// @Failure      403  {object}  common.ErrorResponse
// @Router       /events/{id}/guests [get]
func (h *Guest) ListGuests(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req guest.ListGuestsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	req.Normalize()

	filters := repositories.GuestFilters{
		EventID:   eventID,
		CheckedIn: req.CheckedIn,
		Invited:   req.Invited,
		Search:    req.Search,
		Limit:     req.PageSize,
		Offset:    req.Offset(),
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
	if req.RSVPStatus != nil {
		status := entities.RSVPStatus(*req.RSVPStatus)
		filters.RSVPStatus = &status
	}

	guests, total, err := h.guestService.ListGuests(c.Request().Context(), userID, filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToGuestListResponse(guests, total, req.Page, req.PageSize))
}

// GetGuest handles GET /events/:id/guests/:guestId
// @Summary      Get a guest
// @Tags         Guests
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Event ID (UUID)"
// @Param        guestId  path      string  true  "Guest ID (UUID)"
// @Success      200      {object}  guest.GuestResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /events/{id}/guests/{guestId} [get]
func (h *Guest) GetGuest(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	guestID, err := uuidParam(c, "guestId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	g, err := h.guestService.GetGuest(c.Request().Context(), eventID, guestID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToGuestResponse(g))
}

// UpdateGuest handles PUT /events/:id/guests/:guestId
// @Summary      Update a guest
// @Tags         Guests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Event ID (UUID)"
// @Param        guestId  path      string                    true  "Guest ID (UUID)"
// @Param        request  body      guest.UpdateGuestRequest  true  "Fields to update"
// @Success      200      {object}  guest.GuestResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Failure      409      {object}  common.ErrorResponse
// @Router       /events/{id}/guests/{guestId} [put]
func (h *Guest) UpdateGuest(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	guestID, err := uuidParam(c, "guestId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req guest.UpdateGuestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := guestUsecase.UpdateGuestInput{
		EventID:     eventID,
		GuestID:     guestID,
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		PlusOne:     req.PlusOne,
		PlusOneName: req.PlusOneName,
		Notes:       req.Notes,
		Metadata:    req.Metadata,
	}
	if req.RSVPStatus != nil {
		status := entities.RSVPStatus(*req.RSVPStatus)
		input.RSVPStatus = &status
	}

	updated, err := h.guestService.UpdateGuest(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToGuestResponse(updated))
}

// DeleteGuest handles DELETE /events/:id/guests/:guestId
// @Summary      Remove a guest
// @Tags         Guests
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Event ID (UUID)"
// @Param        guestId  path      string  true  "Guest ID (UUID)"
// @Success      200      {object}  common.SuccessResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /events/{id}/guests/{guestId} [delete]
func (h *Guest) DeleteGuest(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	guestID, err := uuidParam(c, "guestId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.guestService.DeleteGuest(c.Request().Context(), eventID, guestID, userID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]string{"id": guestID.String()})
}

// Summary handles GET /events/:id/guests/summary
// @Summary      Guest list summary
// @Description  RSVP breakdown with check-in, invitation, email and plus-one counters
// @Tags         Guests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {object}  guest.SummaryResponse
// @Failure      403  {object}  common.ErrorResponse
// @Router       /events/{id}/guests/summary [get]
func (h *Guest) Summary(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, err := h.guestService.Summary(c.Request().Context(), eventID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToSummaryResponse(summary))
}

// Export handles POST /events/:id/guests/export
// @Summary      Export guests as CSV
// @Description  Uploads the guest list to object storage and returns a presigned download URL
// @Tags         Guests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {object}  guest.ExportResponse
// @Failure      403  {object}  common.ErrorResponse
// @Failure      503  {object}  common.ErrorResponse  "Object storage not configured"
// @Router       /events/{id}/guests/export [post]
func (h *Guest) Export(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.guestService.ExportGuests(c.Request().Context(), eventID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToExportResponse(out))
}
