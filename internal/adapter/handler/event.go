package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/internal/adapter/dto/event"
	"github.com/johnquangdev/event-planner/internal/adapter/presenter"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
	eventUsecase "github.com/johnquangdev/event-planner/internal/usecase/event"
)

// Event handles event-related HTTP requests
type Event struct {
	eventService eventUsecase.Service
	logger       *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService eventUsecase.Service, logger *zap.Logger) *Event {
	return &Event{
		eventService: eventService,
		logger:       logger,
	}
}

// CreateEvent handles POST /events
// @Summary      Create an event
// @Description  Creates a new event organized by the caller
// @Tags         Events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      event.CreateEventRequest  true  "Event creation request"
// @Success      201      {object}  event.EventResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid request or validation failed"
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Router       /events [post]
func (h *Event) CreateEvent(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req event.CreateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	created, err := h.eventService.CreateEvent(c.Request().Context(), eventUsecase.CreateEventInput{
		OrganizerID: userID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Status:      entities.EventStatus(req.Status),
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Metadata:    req.Metadata,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToEventResponse(created))
}

// ListEvents handles GET /events
// @Summary      List my events
// @Description  Lists the events organized by the caller
// @Tags         Events
// @Produce      json
// @Security     BearerAuth
// @Param        status      query     string  false  "Filter by status"  Enums(draft, published, cancelled, completed)
// @Param        search      query     string  false  "Search in name and location"
// @Param        page        query     int     false  "Page number"  default(1)
// @Param        page_size   query     int     false  "Page size"    default(20)
// @Param        sort_by     query     string  false  "Sort field"   Enums(created_at, starts_at, name)
// @Param        sort_order  query     string  false  "Sort order"   Enums(asc, desc)
// @Success      200  {object}  event.EventListResponse
// @Failure      400  {object}  common.ErrorResponse
// @Router       /events [get]
func (h *Event) ListEvents(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req event.ListEventsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	req.Normalize()

	filters := repositories.EventFilters{
		OrganizerID: &userID,
		Search:      req.Search,
		Limit:       req.PageSize,
		Offset:      req.Offset(),
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
	}
	if req.Status != nil {
		status := entities.EventStatus(*req.Status)
		filters.Status = &status
	}

	events, total, err := h.eventService.ListEvents(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToEventListResponse(events, total, req.Page, req.PageSize))
}

// GetEvent handles GET /events/:id
// @Summary      Get an event
// @Tags         Events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {object}  event.EventResponse
// @Failure      403  {object}  common.ErrorResponse  "Not the organizer"
// @Failure      404  {object}  common.ErrorResponse  "Event not found"
// @Router       /events/{id} [get]
func (h *Event) GetEvent(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	e, err := h.eventService.GetEvent(c.Request().Context(), eventID, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToEventResponse(e))
}

// UpdateEvent handles PUT /events/:id
// @Summary      Update an event
// @Tags         Events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Event ID (UUID)"
// @Param        request  body      event.UpdateEventRequest  true  "Fields to update"
// @Success      200      {object}  event.EventResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      403      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Router       /events/{id} [put]
func (h *Event) UpdateEvent(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req event.UpdateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input := eventUsecase.UpdateEventInput{
		EventID:     eventID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Metadata:    req.Metadata,
	}
	if req.Status != nil {
		status := entities.EventStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.eventService.UpdateEvent(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToEventResponse(updated))
}

// DeleteEvent handles DELETE /events/:id
// @Summary      Delete an event
// @Description  Deletes an event and its guest list
// @Tags         Events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID (UUID)"
// @Success      200  {object}  common.SuccessResponse
// @Failure      403  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /events/{id} [delete]
func (h *Event) DeleteEvent(c echo.Context) error {
	userID, err := userIDFrom(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	eventID, err := uuidParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), eventID, userID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]string{"id": eventID.String()})
}
