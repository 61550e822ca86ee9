package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

type memoryEventRepo struct {
	events  map[uuid.UUID]*entities.Event
	listErr error
}

func newMemoryEventRepo() *memoryEventRepo {
	return &memoryEventRepo{events: make(map[uuid.UUID]*entities.Event)}
}

func (r *memoryEventRepo) Create(_ context.Context, e *entities.Event) error {
	e.ID = uuid.New()
	r.events[e.ID] = e
	return nil
}

func (r *memoryEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *e
	return &c, nil
}

func (r *memoryEventRepo) Update(_ context.Context, e *entities.Event) error {
	r.events[e.ID] = e
	return nil
}

func (r *memoryEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.events, id)
	return nil
}

func (r *memoryEventRepo) List(_ context.Context, f repositories.EventFilters) ([]*entities.Event, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	var out []*entities.Event
	for _, e := range r.events {
		if f.OrganizerID != nil && e.OrganizerID != *f.OrganizerID {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (r *memoryEventRepo) FindStartingBetween(_ context.Context, _, _ time.Time) ([]*entities.Event, error) {
	return nil, nil
}

func (r *memoryEventRepo) UpdateStatus(_ context.Context, id uuid.UUID, s entities.EventStatus) error {
	r.events[id].Status = s
	return nil
}

func TestCreateEvent(t *testing.T) {
	repo := newMemoryEventRepo()
	svc := NewEventService(repo)
	organizer := uuid.New()

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{
		OrganizerID: organizer,
		Name:        "  Gala annuel ",
		Metadata:    map[string]interface{}{"theme": "blanc"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Gala annuel", event.Name)
	assert.Equal(t, entities.EventStatusDraft, event.Status)
	assert.JSONEq(t, `{"theme":"blanc"}`, string(event.Metadata))
	assert.Len(t, repo.events, 1)
}

func TestCreateEvent_Validation(t *testing.T) {
	svc := NewEventService(newMemoryEventRepo())
	ctx := context.Background()
	start := time.Now()

	_, err := svc.CreateEvent(ctx, CreateEventInput{Name: " "})
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidInput))

	_, err = svc.CreateEvent(ctx, CreateEventInput{Name: "Fête", Status: "archived"})
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidEventStatus))

	end := start.Add(-time.Hour)
	_, err = svc.CreateEvent(ctx, CreateEventInput{Name: "Fête", StartsAt: &start, EndsAt: &end})
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidEventWindow))
}

func TestGetEvent_OrganizerOnly(t *testing.T) {
	repo := newMemoryEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()
	organizer := uuid.New()

	event, err := svc.CreateEvent(ctx, CreateEventInput{OrganizerID: organizer, Name: "Fête"})
	require.NoError(t, err)

	got, err := svc.GetEvent(ctx, event.ID, organizer)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)

	_, err = svc.GetEvent(ctx, event.ID, uuid.New())
	assert.True(t, errors.Is(err, usecaseErrors.ErrNotOrganizer))

	_, err = svc.GetEvent(ctx, uuid.New(), organizer)
	assert.True(t, errors.Is(err, usecaseErrors.ErrEventNotFound))
}

func TestUpdateEvent(t *testing.T) {
	repo := newMemoryEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()
	organizer := uuid.New()

	event, err := svc.CreateEvent(ctx, CreateEventInput{OrganizerID: organizer, Name: "Fête"})
	require.NoError(t, err)

	name := "Fête d'été"
	status := entities.EventStatusPublished
	updated, err := svc.UpdateEvent(ctx, UpdateEventInput{
		EventID: event.ID,
		UserID:  organizer,
		Name:    &name,
		Status:  &status,
	})
	require.NoError(t, err)

	assert.Equal(t, name, updated.Name)
	assert.Equal(t, entities.EventStatusPublished, repo.events[event.ID].Status)

	bad := entities.EventStatus("archived")
	_, err = svc.UpdateEvent(ctx, UpdateEventInput{EventID: event.ID, UserID: organizer, Status: &bad})
	assert.True(t, errors.Is(err, usecaseErrors.ErrInvalidEventStatus))

	_, err = svc.UpdateEvent(ctx, UpdateEventInput{EventID: event.ID, UserID: uuid.New(), Name: &name})
	assert.True(t, errors.Is(err, usecaseErrors.ErrNotOrganizer))
}

func TestDeleteEvent(t *testing.T) {
	repo := newMemoryEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()
	organizer := uuid.New()

	event, err := svc.CreateEvent(ctx, CreateEventInput{OrganizerID: organizer, Name: "Fête"})
	require.NoError(t, err)

	err = svc.DeleteEvent(ctx, event.ID, uuid.New())
	assert.True(t, errors.Is(err, usecaseErrors.ErrNotOrganizer))

	require.NoError(t, svc.DeleteEvent(ctx, event.ID, organizer))
	assert.Empty(t, repo.events)
}

func TestListEvents_WrapsRepositoryError(t *testing.T) {
	repo := newMemoryEventRepo()
	repo.listErr = errors.New("timeout")
	svc := NewEventService(repo)

	_, _, err := svc.ListEvents(context.Background(), repositories.EventFilters{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list events")
}
