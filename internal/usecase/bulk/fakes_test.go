package bulk

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

type guestOpt func(*entities.Guest)

func withEmail(email string) guestOpt {
	return func(g *entities.Guest) { g.Email = strPtr(email) }
}

func checkedIn() guestOpt {
	return func(g *entities.Guest) { g.CheckedInAt = timePtr(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)) }
}

func invited() guestOpt {
	return func(g *entities.Guest) { g.InvitationSentAt = timePtr(time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC)) }
}

func withRSVP(s entities.RSVPStatus) guestOpt {
	return func(g *entities.Guest) { g.RSVPStatus = s }
}

func newGuest(name string, opts ...guestOpt) *entities.Guest {
	g := &entities.Guest{
		ID:         uuid.New(),
		Name:       name,
		RSVPStatus: entities.RSVPStatusPending,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// fakeEventRepo is an in-memory EventRepository
type fakeEventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*entities.Event
}

func newFakeEventRepo(events ...*entities.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[uuid.UUID]*entities.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(_ context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *e
	return &c, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) List(_ context.Context, _ repositories.EventFilters) ([]*entities.Event, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEventRepo) FindStartingBetween(_ context.Context, _, _ time.Time) ([]*entities.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.EventStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.events[id]; ok {
		e.Status = status
	}
	return nil
}

// fakeGuestRepo is an in-memory GuestRepository returning copies like a database would
type fakeGuestRepo struct {
	mu     sync.Mutex
	guests map[uuid.UUID]*entities.Guest
	err    error
}

func newFakeGuestRepo(eventID uuid.UUID, guests ...*entities.Guest) *fakeGuestRepo {
	r := &fakeGuestRepo{guests: make(map[uuid.UUID]*entities.Guest)}
	for _, g := range guests {
		g.EventID = eventID
		r.guests[g.ID] = g
	}
	return r
}

func (r *fakeGuestRepo) get(id uuid.UUID) *entities.Guest {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guests[id]
	if !ok {
		return nil
	}
	c := *g
	return &c
}

func (r *fakeGuestRepo) Create(_ context.Context, guest *entities.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	c := *guest
	r.guests[guest.ID] = &c
	return nil
}

func (r *fakeGuestRepo) FindByID(_ context.Context, eventID, id uuid.UUID) (*entities.Guest, error) {
	g := r.get(id)
	if g == nil || g.EventID != eventID {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *fakeGuestRepo) FindByEventAndEmail(_ context.Context, eventID uuid.UUID, email string) (*entities.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.guests {
		if g.EventID == eventID && g.Email != nil && *g.Email == email {
			c := *g
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGuestRepo) FindByIDs(_ context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*entities.Guest, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Guest, 0, len(ids))
	// reverse order to make sure callers do not rely on storage order
	for i := len(ids) - 1; i >= 0; i-- {
		if g, ok := r.guests[ids[i]]; ok && g.EventID == eventID {
			c := *g
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeGuestRepo) FindByEventID(_ context.Context, eventID uuid.UUID) ([]*entities.Guest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Guest, 0, len(r.guests))
	for _, g := range r.guests {
		if g.EventID == eventID {
			c := *g
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakeGuestRepo) Update(_ context.Context, guest *entities.Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *guest
	r.guests[guest.ID] = &c
	return nil
}

func (r *fakeGuestRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guests, id)
	return nil
}

func (r *fakeGuestRepo) List(ctx context.Context, filters repositories.GuestFilters) ([]*entities.Guest, int64, error) {
	out, _ := r.FindByEventID(ctx, filters.EventID)
	return out, int64(len(out)), nil
}

func (r *fakeGuestRepo) apply(eventID uuid.UUID, ids []uuid.UUID, fn func(g *entities.Guest) bool) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if g, ok := r.guests[id]; ok && g.EventID == eventID && fn(g) {
			n++
		}
	}
	return n
}

func (r *fakeGuestRepo) MarkCheckedIn(_ context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error) {
	return r.apply(eventID, ids, func(g *entities.Guest) bool {
		if g.CheckedInAt != nil {
			return false
		}
		g.CheckIn()
		return true
	}), nil
}

func (r *fakeGuestRepo) ClearCheckedIn(_ context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error) {
	return r.apply(eventID, ids, func(g *entities.Guest) bool {
		if g.CheckedInAt == nil {
			return false
		}
		g.UndoCheckIn()
		return true
	}), nil
}

func (r *fakeGuestRepo) UpdateRSVP(_ context.Context, eventID uuid.UUID, ids []uuid.UUID, status entities.RSVPStatus) (int64, error) {
	return r.apply(eventID, ids, func(g *entities.Guest) bool {
		g.RSVPStatus = status
		return true
	}), nil
}

func (r *fakeGuestRepo) MarkInvitationSent(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.guests[id]; ok {
		g.MarkInvitationSent()
	}
	return nil
}

func (r *fakeGuestRepo) DeleteMany(_ context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if g, ok := r.guests[id]; ok && g.EventID == eventID {
			delete(r.guests, id)
			n++
		}
	}
	return n, nil
}

// fakeCache is an in-memory Cache ignoring expiration
type fakeCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string][]byte)}
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *fakeCache) Take(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	delete(c.items, key)
	return v, ok, nil
}

func (c *fakeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// fakeMailer records deliveries and fails a guest a configured number of times (-1 = always)
type fakeMailer struct {
	mu          sync.Mutex
	failures    map[uuid.UUID]int
	invitations []uuid.UUID
	reminders   []uuid.UUID
	afterSend   func()
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failures: make(map[uuid.UUID]int)}
}

func (m *fakeMailer) shouldFail(id uuid.UUID) bool {
	n, ok := m.failures[id]
	if !ok || n == 0 {
		return false
	}
	if n > 0 {
		m.failures[id] = n - 1
	}
	return true
}

func (m *fakeMailer) SendInvitation(_ context.Context, _ *entities.Event, guest *entities.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldFail(guest.ID) {
		return errors.New("smtp: connection refused")
	}
	m.invitations = append(m.invitations, guest.ID)
	if m.afterSend != nil {
		m.afterSend()
	}
	return nil
}

func (m *fakeMailer) SendReminder(_ context.Context, _ *entities.Event, guest *entities.Guest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldFail(guest.ID) {
		return errors.New("smtp: connection refused")
	}
	m.reminders = append(m.reminders, guest.ID)
	return nil
}
