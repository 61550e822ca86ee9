package bulk

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

func mixedGuests() []*entities.Guest {
	return []*entities.Guest{
		newGuest("Alice", withEmail("alice@example.com")),
		newGuest("Bob"),
		newGuest("Chloé", withEmail("chloe@example.com"), invited(), checkedIn()),
		newGuest("David", withEmail(" "), checkedIn()),
		newGuest("Emma", withEmail("emma@example.com"), invited(), withRSVP(entities.RSVPStatusAccepted)),
	}
}

func TestRulesCoverAllActions(t *testing.T) {
	for _, a := range AllActions() {
		r, ok := rules[a]
		require.True(t, ok, "missing rule for %s", a)
		assert.NotNil(t, r.check, a)
		assert.NotEmpty(t, a.Title(), a)
		assert.Contains(t, a.Describe(3), "3", a)
	}
	assert.Len(t, rules, len(AllActions()))
}

func TestToolbarActionsOmitReminders(t *testing.T) {
	assert.NotContains(t, ToolbarActions(), ActionSendReminders)
	for _, a := range ToolbarActions() {
		assert.True(t, a.IsValid())
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("check_in")
	require.NoError(t, err)
	assert.Equal(t, ActionCheckIn, a)

	_, err = ParseAction("archive")
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidBulkAction))
}

func TestClassify_UnknownAction(t *testing.T) {
	_, err := Classify(mixedGuests(), Action("archive"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidBulkAction))
}

func TestClassify_PartitionsInputExactly(t *testing.T) {
	guests := mixedGuests()

	for _, a := range AllActions() {
		t.Run(string(a), func(t *testing.T) {
			res, err := Classify(guests, a)
			require.NoError(t, err)

			assert.Equal(t, a, res.Action)
			assert.Equal(t, len(guests), len(res.Eligible)+len(res.Ineligible))
			assert.Len(t, res.Reasons, len(res.Ineligible))

			seen := make(map[uuid.UUID]int)
			for _, g := range res.Eligible {
				seen[g.ID]++
				_, hasReason := res.Reason(g)
				assert.False(t, hasReason)
			}
			for _, g := range res.Ineligible {
				seen[g.ID]++
				reason, ok := res.Reason(g)
				assert.True(t, ok)
				assert.NotEmpty(t, reason)
			}
			for _, g := range guests {
				assert.Equal(t, 1, seen[g.ID], g.Name)
			}
		})
	}
}

func TestClassify_UpdateRSVPAndDeleteAcceptEveryone(t *testing.T) {
	guests := mixedGuests()
	for _, a := range []Action{ActionUpdateRSVP, ActionDelete} {
		res, err := Classify(guests, a)
		require.NoError(t, err)
		assert.Empty(t, res.Ineligible, a)
		assert.Equal(t, guests, res.Eligible, a)
	}
}

func TestClassify_CheckIn(t *testing.T) {
	a := newGuest("A")
	b := newGuest("B", checkedIn())
	c := newGuest("C")
	d := newGuest("D", checkedIn())

	res, err := Classify([]*entities.Guest{a, b, c, d}, ActionCheckIn)
	require.NoError(t, err)

	assert.Equal(t, []*entities.Guest{a, c}, res.Eligible)
	assert.Equal(t, []*entities.Guest{b, d}, res.Ineligible)
	assert.Equal(t, ReasonAlreadyCheckedIn, res.Reasons[b.ID])
	assert.Equal(t, ReasonAlreadyCheckedIn, res.Reasons[d.ID])
}

func TestClassify_UndoCheckIn(t *testing.T) {
	a := newGuest("A", checkedIn())
	b := newGuest("B")

	res, err := Classify([]*entities.Guest{a, b}, ActionUndoCheckIn)
	require.NoError(t, err)

	assert.Equal(t, []*entities.Guest{a}, res.Eligible)
	assert.Equal(t, []*entities.Guest{b}, res.Ineligible)
	assert.Equal(t, ReasonNotCheckedIn, res.Reasons[b.ID])
}

func TestClassify_SendInvitations(t *testing.T) {
	noEmail := newGuest("Guest 1")
	withMail := newGuest("Guest 2", withEmail("x@y.com"), checkedIn())
	blank := newGuest("Guest 3", withEmail("   "))

	res, err := Classify([]*entities.Guest{noEmail, withMail, blank}, ActionSendInvitations)
	require.NoError(t, err)

	assert.Equal(t, []*entities.Guest{withMail}, res.Eligible)
	assert.Equal(t, []*entities.Guest{noEmail, blank}, res.Ineligible)
	assert.Equal(t, ReasonNoEmail, res.Reasons[noEmail.ID])
	assert.Equal(t, ReasonNoEmail, res.Reasons[blank.ID])
}

func TestClassify_SendReminders(t *testing.T) {
	noEmail := newGuest("No email", invited())
	notInvited := newGuest("Not invited", withEmail("a@b.com"))
	ok := newGuest("Invited", withEmail("c@d.com"), invited())

	res, err := Classify([]*entities.Guest{noEmail, notInvited, ok}, ActionSendReminders)
	require.NoError(t, err)

	assert.Equal(t, []*entities.Guest{ok}, res.Eligible)
	assert.Equal(t, ReasonReminderNoEmail, res.Reasons[noEmail.ID])
	assert.Equal(t, ReasonNotInvited, res.Reasons[notInvited.ID])
}

func TestClassify_MalformedGuestsAreIneligible(t *testing.T) {
	valid := newGuest("Valid")
	noName := newGuest("  ")
	noID := newGuest("No ID")
	noID.ID = uuid.Nil

	res, err := Classify([]*entities.Guest{nil, valid, noName, noID}, ActionCheckIn)
	require.NoError(t, err)

	assert.Equal(t, []*entities.Guest{valid}, res.Eligible)
	require.Len(t, res.Ineligible, 3)
	assert.Nil(t, res.Ineligible[0])
	assert.Equal(t, ReasonIncompleteGuest, res.Reasons[noName.ID])
	assert.Equal(t, ReasonIncompleteGuest, res.Reasons[uuid.Nil])
	// nil and noID share the uuid.Nil key
	assert.Len(t, res.Reasons, 2)

	for _, g := range res.Ineligible {
		reason, ok := res.Reason(g)
		assert.True(t, ok)
		assert.Equal(t, ReasonIncompleteGuest, reason)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	res, err := Classify(nil, ActionDelete)
	require.NoError(t, err)
	assert.NotNil(t, res.Eligible)
	assert.Empty(t, res.Eligible)
	assert.Empty(t, res.Ineligible)
	assert.Empty(t, res.EligibleIDs())
}

func TestClassify_IsDeterministic(t *testing.T) {
	guests := mixedGuests()
	first, err := Classify(guests, ActionSendReminders)
	require.NoError(t, err)
	second, err := Classify(guests, ActionSendReminders)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
