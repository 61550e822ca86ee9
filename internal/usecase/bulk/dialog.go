package bulk

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// DialogState is a step of the confirmation dialog lifecycle
type DialogState string

const (
	DialogClosed    DialogState = "closed"
	DialogComputing DialogState = "computing"
	DialogReady     DialogState = "ready"
	DialogConfirmed DialogState = "confirmed"
	DialogCancelled DialogState = "cancelled"
)

// IneligibleGuest is one excluded guest with the reason shown to the user
type IneligibleGuest struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Reason string    `json:"reason"`
}

// DialogView is the rendered content of the dialog
type DialogView struct {
	Action        Action            `json:"action"`
	State         DialogState       `json:"state"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	SelectedCount int               `json:"selected_count"`
	EligibleCount int               `json:"eligible_count"`
	Breakdown     StatusBreakdown   `json:"breakdown,omitempty"`
	Ineligible    []IneligibleGuest `json:"ineligible"`
	CanConfirm    bool              `json:"can_confirm"`
}

// Dialog is the bulk action confirmation state machine:
// closed -> computing -> ready -> confirmed | cancelled -> closed.
// Confirm acts on the eligible guests captured by Open.
type Dialog struct {
	mu        sync.Mutex
	state     DialogState
	action    Action
	selection []*entities.Guest
	result    Result
}

// NewDialog creates a closed dialog
func NewDialog() *Dialog {
	return &Dialog{state: DialogClosed}
}

// State returns the current state
func (d *Dialog) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Open shows the dialog for a precomputed classification of the selection
func (d *Dialog) Open(action Action, selection []*entities.Guest, result Result) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != DialogClosed {
		return fmt.Errorf("%w: open from %s", usecaseErrors.ErrInvalidDialogState, d.state)
	}
	if result.Action != action {
		return fmt.Errorf("%w: result computed for %q, not %q", usecaseErrors.ErrInvalidDialogState, result.Action, action)
	}

	d.state = DialogComputing
	d.action = action
	d.selection = selection
	d.result = Result{
		Action:     result.Action,
		Eligible:   append([]*entities.Guest(nil), result.Eligible...),
		Ineligible: append([]*entities.Guest(nil), result.Ineligible...),
		Reasons:    result.Reasons,
	}
	d.state = DialogReady
	return nil
}

// View renders the dialog content
func (d *Dialog) View() DialogView {
	d.mu.Lock()
	defer d.mu.Unlock()

	view := DialogView{
		Action:        d.action,
		State:         d.state,
		SelectedCount: len(d.selection),
		EligibleCount: len(d.result.Eligible),
		Ineligible:    make([]IneligibleGuest, 0, len(d.result.Ineligible)),
		CanConfirm:    d.state == DialogReady && len(d.result.Eligible) > 0,
	}
	if d.action != "" {
		view.Title = d.action.Title()
		view.Description = d.action.Describe(len(d.result.Eligible))
	}
	// Only the guests the update will touch are counted
	if d.action == ActionUpdateRSVP {
		view.Breakdown = Aggregate(d.result.Eligible)
	}
	for _, g := range d.result.Ineligible {
		reason, _ := d.result.Reason(g)
		item := IneligibleGuest{Reason: reason}
		if g != nil {
			item.ID = g.ID
			item.Name = g.Name
		}
		view.Ineligible = append(view.Ineligible, item)
	}
	return view
}

// Eligible returns the guests captured when the dialog was opened
func (d *Dialog) Eligible() []*entities.Guest {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*entities.Guest(nil), d.result.Eligible...)
}

// Confirm calls fn exactly once when the dialog is ready and has eligible guests
func (d *Dialog) Confirm(fn func() error) error {
	d.mu.Lock()
	if d.state != DialogReady {
		state := d.state
		d.mu.Unlock()
		return fmt.Errorf("%w: confirm from %s", usecaseErrors.ErrInvalidDialogState, state)
	}
	if len(d.result.Eligible) == 0 {
		d.mu.Unlock()
		return fmt.Errorf("%w: nothing to confirm", usecaseErrors.ErrInvalidDialogState)
	}
	d.state = DialogConfirmed
	d.mu.Unlock()

	return fn()
}

// Cancel dismisses a ready dialog
func (d *Dialog) Cancel() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != DialogReady {
		return fmt.Errorf("%w: cancel from %s", usecaseErrors.ErrInvalidDialogState, d.state)
	}
	d.state = DialogCancelled
	return nil
}

// Close resets the dialog
func (d *Dialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.state = DialogClosed
	d.action = ""
	d.selection = nil
	d.result = Result{}
}
