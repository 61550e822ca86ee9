package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/event-planner/errors"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
)

// EventKey is the Echo context key holding the loaded *entities.Event
const EventKey = "event"

// EventLoader loads an event the user organizes
type EventLoader interface {
	GetEvent(ctx context.Context, eventID, userID uuid.UUID) (*entities.Event, error)
}

// RequireEventOrganizer middleware: only allow the organizer of the :id event.
// Use case errors are returned as is and rendered by the HTTP error handler.
func RequireEventOrganizer(events EventLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			eventID, err := uuid.Parse(c.Param("id"))
			if err != nil {
				appErr := errors.ErrInvalidArgument("id must be a valid UUID")
				appErr.Raw = err
				return appErr
			}
			userID, ok := c.Get("user_id").(uuid.UUID)
			if !ok {
				return errors.ErrUnauthenticated()
			}

			event, err := events.GetEvent(c.Request().Context(), eventID, userID)
			if err != nil {
				return err
			}

			c.Set(EventKey, event)
			return next(c)
		}
	}
}

// EventFrom returns the event loaded by RequireEventOrganizer
func EventFrom(c echo.Context) (*entities.Event, bool) {
	event, ok := c.Get(EventKey).(*entities.Event)
	return event, ok
}
