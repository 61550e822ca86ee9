package bulk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

func openDialog(t *testing.T, action Action, selection []*entities.Guest) *Dialog {
	t.Helper()
	res, err := Classify(selection, action)
	require.NoError(t, err)

	d := NewDialog()
	require.NoError(t, d.Open(action, selection, res))
	return d
}

func TestDialog_Lifecycle(t *testing.T) {
	d := NewDialog()
	assert.Equal(t, DialogClosed, d.State())

	selection := []*entities.Guest{newGuest("A"), newGuest("B", checkedIn())}
	res, err := Classify(selection, ActionCheckIn)
	require.NoError(t, err)

	require.NoError(t, d.Open(ActionCheckIn, selection, res))
	assert.Equal(t, DialogReady, d.State())

	calls := 0
	require.NoError(t, d.Confirm(func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, DialogConfirmed, d.State())

	err = d.Confirm(func() error {
		calls++
		return nil
	})
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidDialogState))
	assert.Equal(t, 1, calls)

	d.Close()
	assert.Equal(t, DialogClosed, d.State())
	assert.Empty(t, d.Eligible())
}

func TestDialog_View(t *testing.T) {
	a := newGuest("Alice", withEmail("alice@example.com"))
	b := newGuest("Bob")
	c := newGuest("Chloé")

	d := openDialog(t, ActionSendInvitations, []*entities.Guest{a, b, c})
	view := d.View()

	assert.Equal(t, ActionSendInvitations, view.Action)
	assert.Equal(t, DialogReady, view.State)
	assert.Equal(t, "Envoyer les invitations", view.Title)
	assert.Equal(t, "1 invité(s) recevront une invitation par email", view.Description)
	assert.Equal(t, 3, view.SelectedCount)
	assert.Equal(t, 1, view.EligibleCount)
	assert.True(t, view.CanConfirm)
	assert.Nil(t, view.Breakdown)
	assert.Equal(t, []IneligibleGuest{
		{ID: b.ID, Name: "Bob", Reason: ReasonNoEmail},
		{ID: c.ID, Name: "Chloé", Reason: ReasonNoEmail},
	}, view.Ineligible)
}

func TestDialog_UpdateRSVPBreakdownCoversEligibleOnly(t *testing.T) {
	selection := []*entities.Guest{
		newGuest("A", withRSVP(entities.RSVPStatusAccepted)),
		newGuest("B", withRSVP(entities.RSVPStatusDeclined)),
		newGuest(" ", withRSVP(entities.RSVPStatusAccepted)),
	}

	view := openDialog(t, ActionUpdateRSVP, selection).View()

	require.NotNil(t, view.Breakdown)
	assert.Equal(t, 2, view.Breakdown.Total())
	assert.Equal(t, 1, view.Breakdown[entities.RSVPStatusAccepted])
	assert.Equal(t, 1, view.Breakdown[entities.RSVPStatusDeclined])
	require.Len(t, view.Ineligible, 1)
	assert.Equal(t, ReasonIncompleteGuest, view.Ineligible[0].Reason)
}

func TestDialog_CannotConfirmWithoutEligibleGuests(t *testing.T) {
	d := openDialog(t, ActionUndoCheckIn, []*entities.Guest{newGuest("A")})

	view := d.View()
	assert.False(t, view.CanConfirm)
	assert.Zero(t, view.EligibleCount)

	called := false
	err := d.Confirm(func() error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidDialogState))
	assert.False(t, called)
	assert.Equal(t, DialogReady, d.State())
}

func TestDialog_ConfirmCommitsToOpenSnapshot(t *testing.T) {
	a := newGuest("A")
	b := newGuest("B", checkedIn())
	selection := []*entities.Guest{a, b}

	res, err := Classify(selection, ActionCheckIn)
	require.NoError(t, err)

	d := NewDialog()
	require.NoError(t, d.Open(ActionCheckIn, selection, res))

	// the world changes after opening
	b.UndoCheckIn()
	res.Eligible[0] = b

	var affected []*entities.Guest
	require.NoError(t, d.Confirm(func() error {
		affected = d.Eligible()
		return nil
	}))
	assert.Equal(t, []*entities.Guest{a}, affected)
}

func TestDialog_ConfirmReturnsCallbackError(t *testing.T) {
	d := openDialog(t, ActionDelete, []*entities.Guest{newGuest("A")})

	boom := errors.New("boom")
	err := d.Confirm(func() error { return boom })
	assert.Equal(t, boom, err)
	assert.Equal(t, DialogConfirmed, d.State())
}

func TestDialog_Cancel(t *testing.T) {
	d := openDialog(t, ActionDelete, []*entities.Guest{newGuest("A")})

	require.NoError(t, d.Cancel())
	assert.Equal(t, DialogCancelled, d.State())

	err := d.Confirm(func() error { return nil })
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidDialogState))

	err = d.Cancel()
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidDialogState))

	d.Close()
	assert.Equal(t, DialogClosed, d.State())
}

func TestDialog_OpenRejections(t *testing.T) {
	selection := []*entities.Guest{newGuest("A")}
	res, err := Classify(selection, ActionDelete)
	require.NoError(t, err)

	d := NewDialog()
	err = d.Open(ActionCheckIn, selection, res)
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidDialogState))
	assert.Equal(t, DialogClosed, d.State())

	require.NoError(t, d.Open(ActionDelete, selection, res))
	err = d.Open(ActionDelete, selection, res)
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidDialogState))
}
