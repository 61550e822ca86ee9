package middleware

import (
	"context"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/event-planner/errors"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

type loaderFunc func(ctx context.Context, eventID, userID uuid.UUID) (*entities.Event, error)

func (f loaderFunc) GetEvent(ctx context.Context, eventID, userID uuid.UUID) (*entities.Event, error) {
	return f(ctx, eventID, userID)
}

func newContext(eventID string, userID interface{}) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(eventID)
	if userID != nil {
		c.Set("user_id", userID)
	}
	return c
}

func TestRequireEventOrganizer_LoadsEvent(t *testing.T) {
	userID := uuid.New()
	event := &entities.Event{ID: uuid.New(), OrganizerID: userID}

	mw := RequireEventOrganizer(loaderFunc(func(_ context.Context, eventID, uid uuid.UUID) (*entities.Event, error) {
		assert.Equal(t, event.ID, eventID)
		assert.Equal(t, userID, uid)
		return event, nil
	}))

	called := false
	c := newContext(event.ID.String(), userID)
	err := mw(func(c echo.Context) error {
		called = true
		got, ok := EventFrom(c)
		require.True(t, ok)
		assert.Same(t, event, got)
		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireEventOrganizer_Rejects(t *testing.T) {
	next := func(echo.Context) error {
		t.Fatal("next must not be called")
		return nil
	}
	notOrganizer := loaderFunc(func(context.Context, uuid.UUID, uuid.UUID) (*entities.Event, error) {
		return nil, usecaseErrors.ErrNotOrganizer
	})

	t.Run("bad event id", func(t *testing.T) {
		err := RequireEventOrganizer(notOrganizer)(next)(newContext("abc", uuid.New()))
		var appErr errors.AppError
		require.True(t, stdErrors.As(err, &appErr))
		assert.Equal(t, errors.ErrorCode_INVALID_ARGUMENT, appErr.Code)
	})

	t.Run("no user", func(t *testing.T) {
		err := RequireEventOrganizer(notOrganizer)(next)(newContext(uuid.NewString(), nil))
		var appErr errors.AppError
		require.True(t, stdErrors.As(err, &appErr))
		assert.Equal(t, errors.ErrorCode_UNAUTHENTICATED, appErr.Code)
	})

	t.Run("not organizer", func(t *testing.T) {
		err := RequireEventOrganizer(notOrganizer)(next)(newContext(uuid.NewString(), uuid.New()))
		assert.ErrorIs(t, err, usecaseErrors.ErrNotOrganizer)
	})
}
