package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
)

var eventSortColumns = map[string]bool{
	"created_at": true,
	"starts_at":  true,
	"name":       true,
}

// eventRepository implements the EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) repositories.EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event
func (r *eventRepository) Create(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByID retrieves an event by its ID
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var event entities.Event
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update updates an existing event
func (r *eventRepository) Update(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete deletes an event
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Event{}, id).Error
}

// List retrieves events with filters and pagination
func (r *eventRepository) List(ctx context.Context, filters repositories.EventFilters) ([]*entities.Event, int64, error) {
	var events []*entities.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Event{})

	// Apply filters
	if filters.OrganizerID != nil {
		query = query.Where("organizer_id = ?", *filters.OrganizerID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR description ILIKE ? OR location ILIKE ?", searchPattern, searchPattern, searchPattern)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, eventSortColumns, "created_at"))

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&events).Error
	return events, total, err
}

// FindStartingBetween retrieves published events starting inside the window
func (r *eventRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*entities.Event, error) {
	var events []*entities.Event
	err := r.db.WithContext(ctx).
		Where("status = ? AND starts_at >= ? AND starts_at < ?", entities.EventStatusPublished, from, to).
		Order("starts_at ASC").
		Find(&events).Error
	return events, err
}

// UpdateStatus updates the event status
func (r *eventRepository) UpdateStatus(ctx context.Context, eventID uuid.UUID, status entities.EventStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Event{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": gorm.Expr("NOW()"),
		}).
		Error
}

// orderClause builds an ORDER BY clause restricted to whitelisted columns
func orderClause(sortBy, sortOrder string, allowed map[string]bool, fallback string) string {
	if !allowed[sortBy] {
		sortBy = fallback
	}
	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}
	return fmt.Sprintf("%s %s", sortBy, order)
}
