package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/sparkred/curatord/internal/database/types"
	"go.uber.org/zap"
)

// CommunityResolver resolves a community by its internal id during
// recovery, when only the stored tracking row is available.
type CommunityResolver interface {
	GetByID(ctx context.Context, id uint64) (*types.Community, error)
}

// Loader rebuilds the in-memory notification schedule from open tracking
// records after a restart. Records still inside the notification window
// are rescheduled with their remaining delay; records whose window
// already passed are escalated immediately.
type Loader struct {
	store       TrackingStore
	communities CommunityResolver
	scheduler   *Scheduler
	send        SendFunc
	delay       time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

// NewLoader creates a recovery loader.
func NewLoader(
	store TrackingStore, communities CommunityResolver, scheduler *Scheduler,
	send SendFunc, delay time.Duration, logger *zap.Logger,
) *Loader {
	return &Loader{
		store:       store,
		communities: communities,
		scheduler:   scheduler,
		send:        send,
		delay:       delay,
		now:         time.Now,
		logger:      logger.Named("recovery"),
	}
}

// Run loads every unresponded tracking record and either reschedules or
// immediately escalates it. Failures on individual records are logged and
// skipped so one bad row cannot block the rest of the recovery.
func (l *Loader) Run(ctx context.Context) error {
	trackings, err := l.store.ListUnresponded(ctx)
	if err != nil {
		return fmt.Errorf("failed to list unresponded trackings: %w", err)
	}

	var rescheduled, escalated int

	for _, tracking := range trackings {
		community, err := l.communities.GetByID(ctx, tracking.CommunityID)
		if err != nil {
			l.logger.Warn("Skipping tracking with unresolvable community",
				zap.Uint64("trackingID", tracking.ID),
				zap.Uint64("communityID", tracking.CommunityID),
				zap.Error(err))

			continue
		}

		payload := NewPayload(community, tracking.ChannelID, tracking.MentionMessageID, tracking.MentionTimestamp)
		key := Key{CommunityID: tracking.CommunityID, MentionMessageID: tracking.MentionMessageID}

		remaining := l.delay - l.now().Sub(tracking.MentionTimestamp)
		if remaining > 0 {
			l.scheduler.Schedule(key, remaining, payload)

			rescheduled++

			continue
		}

		if err := l.send(ctx, payload); err != nil {
			l.logger.Error("Failed to send overdue notification",
				zap.Uint64("mentionMessageID", tracking.MentionMessageID),
				zap.Error(err))

			continue
		}

		escalated++
	}

	l.logger.Info("Recovered pending notifications",
		zap.Int("total", len(trackings)),
		zap.Int("rescheduled", rescheduled),
		zap.Int("escalatedImmediately", escalated))

	return nil
}
