package bulk

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// Result is the partition of a selection for one action.
// Eligible and Ineligible keep the relative order of the input.
// Reasons is keyed by guest ID: nil records and records without an ID all share
// the uuid.Nil entry, so it can hold fewer entries than Ineligible.
type Result struct {
	Action     Action
	Eligible   []*entities.Guest
	Ineligible []*entities.Guest
	Reasons    map[uuid.UUID]string
}

// Reason returns the ineligibility reason of a guest, if any
func (r Result) Reason(g *entities.Guest) (string, bool) {
	reason, ok := r.Reasons[guestKey(g)]
	return reason, ok
}

// EligibleIDs returns the IDs of the eligible guests in order
func (r Result) EligibleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Eligible))
	for _, g := range r.Eligible {
		ids = append(ids, g.ID)
	}
	return ids
}

// Classify splits guests into those the action applies to and those it does not.
// Malformed records are reported as ineligible instead of failing the whole batch.
func Classify(guests []*entities.Guest, action Action) (Result, error) {
	r, ok := rules[action]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidBulkAction, action)
	}

	result := Result{
		Action:     action,
		Eligible:   make([]*entities.Guest, 0, len(guests)),
		Ineligible: make([]*entities.Guest, 0),
		Reasons:    make(map[uuid.UUID]string),
	}

	for _, g := range guests {
		reason := ReasonIncompleteGuest
		if !isMalformed(g) {
			reason = r.check(g)
		}

		if reason == "" {
			result.Eligible = append(result.Eligible, g)
			continue
		}
		result.Ineligible = append(result.Ineligible, g)
		result.Reasons[guestKey(g)] = reason
	}

	return result, nil
}

func isMalformed(g *entities.Guest) bool {
	return g == nil || g.ID == uuid.Nil || strings.TrimSpace(g.Name) == ""
}

// guestKey keys nil records under uuid.Nil
func guestKey(g *entities.Guest) uuid.UUID {
	if g == nil {
		return uuid.Nil
	}
	return g.ID
}
