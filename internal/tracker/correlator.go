package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
	"go.uber.org/zap"
)

// Correlator matches a curator's reply or reaction to an open tracking
// record and finalizes it. Closing and cancelling form one logical unit
// per mention: the close guard in the store ensures at most one closure,
// so at most one cancellation is ever attempted even when duplicate
// platform events arrive concurrently.
type Correlator struct {
	tracker   *Tracker
	scheduler *Scheduler
	logger    *zap.Logger
}

// NewCorrelator creates a correlator over the tracker and scheduler.
func NewCorrelator(tracker *Tracker, scheduler *Scheduler, logger *zap.Logger) *Correlator {
	return &Correlator{
		tracker:   tracker,
		scheduler: scheduler,
		logger:    logger.Named("correlator"),
	}
}

// Correlate attempts to close the open tracking record for the target
// message and cancel its pending notification. A response that does not
// correspond to a tracked mention, or that lost the race to another
// responder, is a no-op and returns (nil, nil).
func (c *Correlator) Correlate(
	ctx context.Context, curator *types.Curator, communityID, targetMessageID uint64,
	responseMessageID *uint64, responseTimestamp time.Time, kind enum.ResponseKind,
) (*types.MentionTracking, error) {
	tracking, err := c.tracker.Find(ctx, targetMessageID)
	if err != nil {
		if errors.Is(err, types.ErrTrackingNotFound) {
			// Not a tracked mention, or already answered.
			return nil, nil
		}

		return nil, fmt.Errorf("failed to look up tracking record: %w", err)
	}

	closed, err := c.tracker.Close(ctx, tracking, curator.ID, responseMessageID, responseTimestamp, kind)
	if err != nil {
		if errors.Is(err, types.ErrTrackingClosed) || errors.Is(err, types.ErrTrackingNotFound) {
			c.logger.Debug("Stale correlation ignored",
				zap.Uint64("targetMessageID", targetMessageID),
				zap.Uint64("curatorID", curator.ID))

			return nil, nil
		}

		return nil, fmt.Errorf("failed to close tracking record: %w", err)
	}

	c.scheduler.Cancel(Key{
		CommunityID:      communityID,
		MentionMessageID: targetMessageID,
	})

	c.logger.Info("Correlated curator response",
		zap.Uint64("targetMessageID", targetMessageID),
		zap.String("curator", curator.Name),
		zap.String("kind", kind.String()))

	return closed, nil
}
