package bulk

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

// Cache is the key-value store holding open dialog snapshots
type Cache interface {
	// Set stores a value with expiration
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Take returns and removes a value in one step; found is false on a miss
	Take(ctx context.Context, key string) (value []byte, found bool, err error)
}

// Snapshot is the decision taken when a dialog was opened.
// Confirming applies the action to EligibleIDs and nothing else.
type Snapshot struct {
	ID          uuid.UUID            `json:"id"`
	EventID     uuid.UUID            `json:"event_id"`
	OrganizerID uuid.UUID            `json:"organizer_id"`
	Action      Action               `json:"action"`
	RSVPStatus  entities.RSVPStatus  `json:"rsvp_status,omitempty"`
	Requested   int                  `json:"requested"`
	EligibleIDs []uuid.UUID          `json:"eligible_ids"`
	Ineligible  map[uuid.UUID]string `json:"ineligible"`
	CreatedAt   time.Time            `json:"created_at"`
	ExpiresAt   time.Time            `json:"expires_at"`
}

// snapshotKey scopes a snapshot to its event and organizer
func snapshotKey(eventID, organizerID, snapshotID uuid.UUID) string {
	return fmt.Sprintf("bulk:snapshot:%s:%s:%s", eventID, organizerID, snapshotID)
}

func saveSnapshot(ctx context.Context, cache Cache, snap *Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := cache.Set(ctx, snapshotKey(snap.EventID, snap.OrganizerID, snap.ID), data, ttl); err != nil {
		return fmt.Errorf("%w: store: %w", usecaseErrors.ErrSnapshotStore, err)
	}
	return nil
}

// takeSnapshot loads a snapshot and removes it so it can be used only once
func takeSnapshot(ctx context.Context, cache Cache, eventID, organizerID, snapshotID uuid.UUID) (*Snapshot, error) {
	data, found, err := cache.Take(ctx, snapshotKey(eventID, organizerID, snapshotID))
	if err != nil {
		return nil, fmt.Errorf("%w: load: %w", usecaseErrors.ErrSnapshotStore, err)
	}
	if !found {
		return nil, usecaseErrors.ErrSnapshotNotFound
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}
