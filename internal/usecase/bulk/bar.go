package bulk

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// ActionState describes one toolbar button
type ActionState struct {
	Action        Action `json:"action"`
	Enabled       bool   `json:"enabled"`
	EligibleCount int    `json:"eligible_count"`
}

// BarState is what the bulk actions bar renders for a selection
type BarState struct {
	Visible   bool            `json:"visible"`
	Count     int             `json:"count"`
	Breakdown StatusBreakdown `json:"breakdown,omitempty"`
	Actions   []ActionState   `json:"actions,omitempty"`
}

// Action returns the state of a toolbar action
func (s BarState) Action(a Action) (ActionState, bool) {
	for _, st := range s.Actions {
		if st.Action == a {
			return st, true
		}
	}
	return ActionState{}, false
}

// Handlers receives the toolbar callbacks
type Handlers interface {
	OnSendInvitations() error
	OnUpdateRSVP(status entities.RSVPStatus) error
	OnCheckIn() error
	OnUndoCheckIn() error
	OnDelete() error
}

// Bar derives toolbar state from a selection. The last state is memoized on a
// fingerprint of the selection and reused until the selection content changes.
type Bar struct {
	mu          sync.Mutex
	fingerprint uint64
	state       *BarState
	classify    func([]*entities.Guest, Action) (Result, error)
}

// NewBar creates an empty bulk actions bar
func NewBar() *Bar {
	return &Bar{classify: Classify}
}

// Update returns the state for the selection, recomputing only on change
func (b *Bar) Update(selection []*entities.Guest) (BarState, error) {
	if len(selection) == 0 {
		b.mu.Lock()
		b.state = nil
		b.fingerprint = 0
		b.mu.Unlock()
		return BarState{Visible: false}, nil
	}

	fp := Fingerprint(selection)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != nil && b.fingerprint == fp {
		return *b.state, nil
	}

	state := BarState{
		Visible:   true,
		Count:     len(selection),
		Breakdown: Aggregate(selection),
		Actions:   make([]ActionState, 0, len(ToolbarActions())),
	}
	for _, a := range ToolbarActions() {
		res, err := b.classify(selection, a)
		if err != nil {
			return BarState{}, err
		}
		state.Actions = append(state.Actions, ActionState{
			Action:        a,
			Enabled:       len(res.Eligible) > 0,
			EligibleCount: len(res.Eligible),
		})
	}

	b.state = &state
	b.fingerprint = fp
	return state, nil
}

// Dispatch invokes the handler matching an enabled toolbar action
func (b *Bar) Dispatch(action Action, status entities.RSVPStatus, h Handlers) error {
	b.mu.Lock()
	state := b.state
	b.mu.Unlock()

	if state == nil {
		return usecaseErrors.ErrEmptySelection
	}
	st, ok := state.Action(action)
	if !ok {
		return fmt.Errorf("%w: %q is not a toolbar action", usecaseErrors.ErrInvalidBulkAction, action)
	}
	if !st.Enabled {
		return usecaseErrors.ErrNothingEligible
	}
	return invoke(action, status, h)
}

// snapshotBar returns a bar whose only action is the one a snapshot was taken for,
// enabled when the snapshot still has guests
func snapshotBar(action Action, guests []*entities.Guest) *Bar {
	return &Bar{
		classify:    Classify,
		fingerprint: Fingerprint(guests),
		state: &BarState{
			Visible:   len(guests) > 0,
			Count:     len(guests),
			Breakdown: Aggregate(guests),
			Actions:   []ActionState{{Action: action, Enabled: len(guests) > 0, EligibleCount: len(guests)}},
		},
	}
}

// invoke calls the callback bound to a toolbar action
func invoke(action Action, status entities.RSVPStatus, h Handlers) error {
	switch action {
	case ActionSendInvitations:
		return h.OnSendInvitations()
	case ActionUpdateRSVP:
		if !status.IsValid() {
			return fmt.Errorf("%w: %q", usecaseErrors.ErrInvalidRSVPStatus, status)
		}
		return h.OnUpdateRSVP(status)
	case ActionCheckIn:
		return h.OnCheckIn()
	case ActionUndoCheckIn:
		return h.OnUndoCheckIn()
	case ActionDelete:
		return h.OnDelete()
	default:
		return fmt.Errorf("%w: %q has no toolbar handler", usecaseErrors.ErrInvalidBulkAction, action)
	}
}

// Fingerprint hashes the guest IDs and every field the eligibility rules read
func Fingerprint(guests []*entities.Guest) uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}

	writeInt(int64(len(guests)))
	for _, g := range guests {
		if g == nil {
			_, _ = d.Write([]byte{0})
			continue
		}
		_, _ = d.Write([]byte{1})
		_, _ = d.Write(g.ID[:])
		_, _ = d.WriteString(g.Name)
		_, _ = d.Write([]byte{0})
		if g.Email != nil {
			_, _ = d.WriteString(*g.Email)
		}
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(string(g.RSVPStatus))
		_, _ = d.Write([]byte{0})
		if g.CheckedInAt != nil {
			writeInt(g.CheckedInAt.UnixNano())
		} else {
			writeInt(0)
		}
		if g.InvitationSentAt != nil {
			writeInt(g.InvitationSentAt.UnixNano())
		} else {
			writeInt(0)
		}
	}
	return d.Sum64()
}
