package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/usecase/bulk"
)

const yamlGuests = `
guests:
  - id: 7b0c1a2e-8f57-4a43-9d0e-2f6f1f0b5a01
    name: Alice
    email: alice@example.com
    rsvp_status: accepted
    invitation_sent_at: "2024-05-01T10:00:00Z"
  - id: 7b0c1a2e-8f57-4a43-9d0e-2f6f1f0b5a02
    name: Bruno
    checked_in_at: "2024-06-01T18:30:00Z"
  - id: not-a-uuid
    name: Chloé
    email: chloe@example.com
`

func TestLoadGuests_YAML(t *testing.T) {
	guests, err := LoadGuests(strings.NewReader(yamlGuests))
	require.NoError(t, err)
	require.Len(t, guests, 3)

	alice := guests[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, entities.RSVPStatusAccepted, alice.RSVPStatus)
	require.NotNil(t, alice.Email)
	assert.True(t, alice.IsInvited())

	bruno := guests[1]
	assert.Equal(t, entities.RSVPStatusPending, bruno.RSVPStatus)
	assert.Nil(t, bruno.Email)
	assert.True(t, bruno.IsCheckedIn())

	assert.Equal(t, uuid.Nil, guests[2].ID)
}

func TestLoadGuests_JSON(t *testing.T) {
	input := `{"guests": [{"id": "7b0c1a2e-8f57-4a43-9d0e-2f6f1f0b5a01", "name": "Alice", "plus_one": true, "plus_one_name": "Marc"}]}`

	guests, err := LoadGuests(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.True(t, guests[0].PlusOne)
	require.NotNil(t, guests[0].PlusOneName)
	assert.Equal(t, "Marc", *guests[0].PlusOneName)
}

func TestLoadGuests_Errors(t *testing.T) {
	_, err := LoadGuests(strings.NewReader("guests:\n  - name: A\n    checked_in_at: yesterday\n"))
	assert.ErrorContains(t, err, "guest #1: checked_in_at")

	guests, err := LoadGuests(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, guests)
}

func TestWriteOverview(t *testing.T) {
	guests, err := LoadGuests(strings.NewReader(yamlGuests))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteOverview(&out, guests))

	text := out.String()
	assert.Contains(t, text, "3 guest(s)")
	assert.Regexp(t, `accepted\s+1`, text)
	assert.Regexp(t, `pending\s+2`, text)
	// Chloé has an email but no valid id, so she never counts as eligible.
	assert.Regexp(t, `send_invitations\s+1\s+2`, text)
	assert.Regexp(t, `undo_check_in\s+1\s+2`, text)
}

func TestWriteClassification(t *testing.T) {
	guests, err := LoadGuests(strings.NewReader(yamlGuests))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteClassification(&out, guests, bulk.ActionSendReminders))

	text := out.String()
	assert.Contains(t, text, bulk.ActionSendReminders.Title())
	assert.Contains(t, text, "Eligible (1):\n  - Alice")
	assert.Contains(t, text, "Bruno: "+bulk.ReasonReminderNoEmail)
	assert.Contains(t, text, "Chloé: "+bulk.ReasonIncompleteGuest)
}
