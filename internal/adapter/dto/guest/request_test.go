package guest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/event-planner/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestUpdateGuestRequest_Email(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Validate(&UpdateGuestRequest{}))
	assert.NoError(t, v.Validate(&UpdateGuestRequest{Email: strPtr("alice@example.com")}))
	// an empty string clears the address
	assert.NoError(t, v.Validate(&UpdateGuestRequest{Email: strPtr("")}))

	for _, email := range []string{"not-an-email", "alice@example.com\r\nBcc: victim@example.com"} {
		err := v.Validate(&UpdateGuestRequest{Email: strPtr(email)})
		require.Error(t, err, email)
		assert.Equal(t, map[string]string{"email": "email"}, validator.FieldErrors(err))
	}
}

func TestCreateGuestRequest_Email(t *testing.T) {
	v := validator.New()

	err := v.Validate(&CreateGuestRequest{Name: "Alice", Email: strPtr("alice@example.com\r\nBcc: victim@example.com")})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"email": "email"}, validator.FieldErrors(err))
}
