package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Status string `json:"rsvp_status" validate:"omitempty,rsvp_status"`
	Event  string `json:"status" validate:"omitempty,event_status"`
	Action string `json:"action" validate:"required,bulk_action"`
}

func TestValidate_DomainTags(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Status: "accepted", Event: "published", Action: "check_in"}))
	assert.NoError(t, v.Validate(&sample{Action: "send_reminders"}))

	err := v.Validate(&sample{Status: "perhaps", Event: "archived", Action: "archive"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"rsvp_status": "rsvp_status",
		"status":      "event_status",
		"action":      "bulk_action",
	}, FieldErrors(err))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
