package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/domain/repositories"
	"github.com/johnquangdev/event-planner/internal/usecase/guest"
	"github.com/johnquangdev/event-planner/pkg/config"
	"github.com/johnquangdev/event-planner/pkg/jobcontext"
)

// Scheduler runs periodic jobs
type Scheduler struct {
	cron      *cron.Cron
	eventRepo repositories.EventRepository
	guestRepo repositories.GuestRepository
	cfg       config.SchedulerConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewScheduler creates a new scheduler
func NewScheduler(
	eventRepo repositories.EventRepository,
	guestRepo repositories.GuestRepository,
	cfg config.SchedulerConfig,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.RSVPDigestSpec, func() {
		ctx, cancel := jobcontext.Begin(context.Background(), "rsvp_digest", 5*time.Minute)
		defer cancel()
		err := jobcontext.Run(ctx, jobcontext.Options{MaxRetries: 3}, func(ctx context.Context) error {
			_, err := s.RunRSVPDigest(ctx)
			return err
		})
		if err != nil {
			s.logger.Error("scheduler.rsvp_digest.failed", append(jobcontext.Fields(ctx), zap.Error(err))...)
		}
	}); err != nil {
		return fmt.Errorf("invalid rsvp digest schedule %q: %w", s.cfg.RSVPDigestSpec, err)
	}

	s.cron.Start()
	s.logger.Info("scheduler.started", zap.String("rsvp_digest", s.cfg.RSVPDigestSpec))
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler.stopped")
}

// RunRSVPDigest logs the RSVP breakdown of every published event starting within the lookahead window
func (s *Scheduler) RunRSVPDigest(ctx context.Context) ([]*guest.Summary, error) {
	from := s.now()
	to := from.Add(s.cfg.Lookahead)

	events, err := s.eventRepo.FindStartingBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	summaries := make([]*guest.Summary, 0, len(events))
	for _, event := range events {
		guests, err := s.guestRepo.FindByEventID(ctx, event.ID)
		if err != nil {
			s.logger.Warn("scheduler.rsvp_digest.guests_failed",
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
			continue
		}

		summary := guest.Summarize(event.ID, guests)
		summaries = append(summaries, summary)

		s.logger.Info("scheduler.rsvp_digest", append(jobcontext.Fields(ctx),
			zap.String("event_id", event.ID.String()),
			zap.String("event", event.Name),
			zap.Timep("starts_at", event.StartsAt),
			zap.Int("total", summary.Total),
			zap.Int(string(entities.RSVPStatusPending), summary.Breakdown[entities.RSVPStatusPending]),
			zap.Int(string(entities.RSVPStatusAccepted), summary.Breakdown[entities.RSVPStatusAccepted]),
			zap.Int(string(entities.RSVPStatusDeclined), summary.Breakdown[entities.RSVPStatusDeclined]),
			zap.Int(string(entities.RSVPStatusMaybe), summary.Breakdown[entities.RSVPStatusMaybe]),
			zap.Int("invited", summary.Invited),
		)...)
	}

	return summaries, nil
}
