package bulk

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
)

// executor applies a confirmed action to the snapshot's guests
type executor struct {
	ctx    context.Context
	svc    *BulkService
	event  *entities.Event
	guests []*entities.Guest
	result *BulkResult
}

var _ Handlers = (*executor)(nil)

func (e *executor) ids() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.guests))
	for _, g := range e.guests {
		ids = append(ids, g.ID)
	}
	return ids
}

// OnSendInvitations mails every guest and stamps invitation_sent_at on success
func (e *executor) OnSendInvitations() error {
	return e.mailEach(ReasonNoEmail, e.svc.mailer.SendInvitation, true)
}

// sendReminders mails every guest without touching invitation_sent_at
func (e *executor) sendReminders() error {
	return e.mailEach(ReasonReminderNoEmail, e.svc.mailer.SendReminder, false)
}

// OnUpdateRSVP sets the RSVP status of every guest
func (e *executor) OnUpdateRSVP(status entities.RSVPStatus) error {
	n, err := e.svc.guestRepo.UpdateRSVP(e.ctx, e.event.ID, e.ids(), status)
	if err != nil {
		return fmt.Errorf("failed to update rsvp status: %w", err)
	}
	e.result.Processed = int(n)
	return nil
}

// OnCheckIn checks every guest in
func (e *executor) OnCheckIn() error {
	n, err := e.svc.guestRepo.MarkCheckedIn(e.ctx, e.event.ID, e.ids())
	if err != nil {
		return fmt.Errorf("failed to check in guests: %w", err)
	}
	e.result.Processed = int(n)
	return nil
}

// OnUndoCheckIn clears the check-in of every guest
func (e *executor) OnUndoCheckIn() error {
	n, err := e.svc.guestRepo.ClearCheckedIn(e.ctx, e.event.ID, e.ids())
	if err != nil {
		return fmt.Errorf("failed to undo check in: %w", err)
	}
	e.result.Processed = int(n)
	return nil
}

// OnDelete deletes every guest
func (e *executor) OnDelete() error {
	n, err := e.svc.guestRepo.DeleteMany(e.ctx, e.event.ID, e.ids())
	if err != nil {
		return fmt.Errorf("failed to delete guests: %w", err)
	}
	e.result.Processed = int(n)
	return nil
}

type sendFunc func(ctx context.Context, event *entities.Event, guest *entities.Guest) error

// mailEach sends one mail per guest. Failures are collected, not returned.
// When ctx ends mid-batch the unsent guests are reported as failed.
func (e *executor) mailEach(noEmailReason string, send sendFunc, stamp bool) error {
	for i, g := range e.guests {
		if err := e.ctx.Err(); err != nil {
			e.svc.logger.Warn("bulk.mail.interrupted",
				zap.String("event_id", e.event.ID.String()),
				zap.Int("sent", e.result.Processed),
				zap.Int("unsent", len(e.guests)-i),
				zap.Error(err),
			)
			for _, rest := range e.guests[i:] {
				e.fail(rest.ID, err.Error())
			}
			return nil
		}
		if !g.HasEmail() {
			e.fail(g.ID, noEmailReason)
			continue
		}

		guest := g
		err := e.svc.deliver(e.ctx, func() error {
			return send(e.ctx, e.event, guest)
		})
		if err != nil {
			e.svc.logger.Warn("bulk.mail.failed",
				zap.String("guest_id", g.ID.String()),
				zap.Error(err),
			)
			e.fail(g.ID, err.Error())
			continue
		}

		if stamp {
			if err := e.svc.guestRepo.MarkInvitationSent(e.ctx, g.ID); err != nil {
				e.fail(g.ID, fmt.Sprintf("invitation sent but not recorded: %v", err))
				continue
			}
		}
		e.result.Processed++
	}
	return nil
}

func (e *executor) fail(id uuid.UUID, reason string) {
	e.result.Failed = append(e.result.Failed, FailedGuest{GuestID: id, Reason: reason})
}
