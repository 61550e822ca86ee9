package guest

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/event-planner/internal/usecase/errors"
)

var exportHeader = []string{
	"id", "name", "email", "phone", "rsvp_status",
	"plus_one", "plus_one_name", "checked_in_at", "invitation_sent_at", "notes",
}

// ExportOutput describes an uploaded guest list
type ExportOutput struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	Rows       int       `json:"rows"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ExportGuests uploads the guest list as CSV and returns a download link
func (s *GuestService) ExportGuests(ctx context.Context, eventID, userID uuid.UUID) (*ExportOutput, error) {
	if _, err := s.organizedEvent(ctx, eventID, userID); err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, usecaseErrors.ErrStorageUnavailable
	}

	guests, err := s.guestRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}

	data, err := EncodeCSV(guests)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	objectName := fmt.Sprintf("exports/%s/guests-%s.csv", eventID, now.Format("20060102-150405"))
	if err := s.storage.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), "text/csv"); err != nil {
		return nil, fmt.Errorf("%w: upload: %w", usecaseErrors.ErrStorageFailed, err)
	}

	url, err := s.storage.GetFileURL(ctx, objectName, s.exportTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: sign url: %w", usecaseErrors.ErrStorageFailed, err)
	}

	s.logger.Info("guest.export.uploaded",
		zap.String("event_id", eventID.String()),
		zap.String("object", objectName),
		zap.Int("rows", len(guests)),
	)

	return &ExportOutput{
		ObjectName: objectName,
		URL:        url,
		Rows:       len(guests),
		ExpiresAt:  now.Add(s.exportTTL),
	}, nil
}

// EncodeCSV renders guests as CSV with a header row
func EncodeCSV(guests []*entities.Guest) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, g := range guests {
		if g == nil {
			continue
		}
		record := []string{
			g.ID.String(),
			g.Name,
			deref(g.Email),
			deref(g.Phone),
			string(g.RSVPStatus),
			strconv.FormatBool(g.PlusOne),
			deref(g.PlusOneName),
			formatTime(g.CheckedInAt),
			formatTime(g.InvitationSentAt),
			deref(g.Notes),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
