package middleware

import (
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/event-planner/errors"
	"github.com/johnquangdev/event-planner/pkg/jwt"
)

func run(t *testing.T, m *jwt.Manager, setup func(r *http.Request)) (uuid.UUID, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
	setup(req)
	c := e.NewContext(req, httptest.NewRecorder())

	var got uuid.UUID
	err := EchoAuth(m)(func(c echo.Context) error {
		got, _ = c.Get(UserIDKey).(uuid.UUID)
		return nil
	})(c)
	return got, err
}

func TestEchoAuth(t *testing.T) {
	m := jwt.NewManager("secret", time.Minute, "event-planner")
	userID := uuid.New()
	token, err := m.GenerateAccessToken(userID, "orga@example.com", "Orga")
	require.NoError(t, err)

	got, err := run(t, m, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) })
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	got, err = run(t, m, func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: token}) })
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestEchoAuth_Rejections(t *testing.T) {
	m := jwt.NewManager("secret", time.Minute, "event-planner")
	expired, err := jwt.NewManager("secret", -time.Minute, "event-planner").GenerateAccessToken(uuid.New(), "", "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   errors.ErrorCode
	}{
		{"missing", "", errors.ErrorCode_UNAUTHENTICATED},
		{"wrong scheme", "Basic abc", errors.ErrorCode_UNAUTHENTICATED},
		{"garbage", "Bearer abc", errors.ErrorCode_AUTH_INVALID_TOKEN},
		{"expired", "Bearer " + expired, errors.ErrorCode_AUTH_TOKEN_EXPIRED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, m, func(r *http.Request) {
				if tt.header != "" {
					r.Header.Set("Authorization", tt.header)
				}
			})
			var appErr errors.AppError
			require.True(t, stdErrors.As(err, &appErr))
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)
		})
	}
}
