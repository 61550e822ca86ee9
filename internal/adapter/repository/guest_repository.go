package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
)

var guestSortColumns = map[string]bool{
	"name":        true,
	"created_at":  true,
	"rsvp_status": true,
}

// guestRepository implements the GuestRepository interface
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) repositories.GuestRepository {
	return &guestRepository{db: db}
}

// Create creates a new guest record
func (r *guestRepository) Create(ctx context.Context, guest *entities.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

// FindByID retrieves a guest by ID within an event
func (r *guestRepository) FindByID(ctx context.Context, eventID, id uuid.UUID) (*entities.Guest, error) {
	var guest entities.Guest
	err := r.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", id, eventID).
		First(&guest).Error

	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// FindByEventAndEmail retrieves a guest of an event by email
func (r *guestRepository) FindByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) (*entities.Guest, error) {
	var guest entities.Guest
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND LOWER(email) = LOWER(?)", eventID, email).
		First(&guest).Error

	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// FindByIDs retrieves the guests of an event matching the given IDs
func (r *guestRepository) FindByIDs(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) ([]*entities.Guest, error) {
	var guests []*entities.Guest
	if len(ids) == 0 {
		return guests, nil
	}
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND id IN ?", eventID, ids).
		Find(&guests).Error
	return guests, err
}

// FindByEventID retrieves every guest of an event
func (r *guestRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) ([]*entities.Guest, error) {
	var guests []*entities.Guest
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&guests).Error
	return guests, err
}

// Update updates an existing guest
func (r *guestRepository) Update(ctx context.Context, guest *entities.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

// Delete deletes a guest record
func (r *guestRepository) Delete(ctx context.Context, eventID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&entities.Guest{}, id).Error
}

// List retrieves guests with filters and pagination
func (r *guestRepository) List(ctx context.Context, filters repositories.GuestFilters) ([]*entities.Guest, int64, error) {
	var guests []*entities.Guest
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Guest{}).Where("event_id = ?", filters.EventID)

	// Apply filters
	if filters.RSVPStatus != nil {
		query = query.Where("rsvp_status = ?", *filters.RSVPStatus)
	}
	if filters.CheckedIn != nil {
		if *filters.CheckedIn {
			query = query.Where("checked_in_at IS NOT NULL")
		} else {
			query = query.Where("checked_in_at IS NULL")
		}
	}
	if filters.Invited != nil {
		if *filters.Invited {
			query = query.Where("invitation_sent_at IS NOT NULL")
		} else {
			query = query.Where("invitation_sent_at IS NULL")
		}
	}
	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", searchPattern, searchPattern, searchPattern)
	}

	// Count total
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause(filters.SortBy, filters.SortOrder, guestSortColumns, "created_at"))

	// Apply pagination
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&guests).Error
	return guests, total, err
}

// MarkCheckedIn stamps checked_in_at on guests that are not checked in yet
func (r *guestRepository) MarkCheckedIn(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Guest{}).
		Where("event_id = ? AND id IN ? AND checked_in_at IS NULL", eventID, ids).
		Updates(map[string]interface{}{
			"checked_in_at": gorm.Expr("NOW()"),
			"updated_at":    gorm.Expr("NOW()"),
		})
	return result.RowsAffected, result.Error
}

// ClearCheckedIn clears checked_in_at on guests that are checked in
func (r *guestRepository) ClearCheckedIn(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Guest{}).
		Where("event_id = ? AND id IN ? AND checked_in_at IS NOT NULL", eventID, ids).
		Updates(map[string]interface{}{
			"checked_in_at": nil,
			"updated_at":    gorm.Expr("NOW()"),
		})
	return result.RowsAffected, result.Error
}

// UpdateRSVP sets the RSVP status of the given guests
func (r *guestRepository) UpdateRSVP(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID, status entities.RSVPStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Guest{}).
		Where("event_id = ? AND id IN ?", eventID, ids).
		Updates(map[string]interface{}{
			"rsvp_status": status,
			"updated_at":  gorm.Expr("NOW()"),
		})
	return result.RowsAffected, result.Error
}

// MarkInvitationSent stamps invitation_sent_at on a guest
func (r *guestRepository) MarkInvitationSent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Guest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"invitation_sent_at": gorm.Expr("NOW()"),
			"updated_at":         gorm.Expr("NOW()"),
		}).
		Error
}

// DeleteMany deletes the given guests in a single statement
func (r *guestRepository) DeleteMany(ctx context.Context, eventID uuid.UUID, ids []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND id IN ?", eventID, ids).
		Delete(&entities.Guest{})
	return result.RowsAffected, result.Error
}
