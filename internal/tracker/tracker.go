package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
	"go.uber.org/zap"
)

// TrackingStore is the persistence surface the tracker operates through.
// *models.TrackingModel implements it; tests substitute an in-memory fake.
type TrackingStore interface {
	Create(ctx context.Context, tracking *types.MentionTracking) error
	GetOpenByMention(ctx context.Context, mentionMessageID uint64) (*types.MentionTracking, error)
	Close(
		ctx context.Context, id uint64, curatorID uint64, responseMessageID *uint64,
		responseTimestamp time.Time, kind enum.ResponseKind, responseTimeSeconds int64,
	) (*types.MentionTracking, error)
	ListUnresponded(ctx context.Context) ([]*types.MentionTracking, error)
}

// Tracker owns the canonical state of messages awaiting a curator response.
// The store enforces the structural invariants (a partial unique index for
// "at most one open record per mention id", a conditional update for
// "closed exactly once"), so concurrent duplicate deliveries degrade to
// logged no-ops rather than corrupted state.
type Tracker struct {
	store  TrackingStore
	logger *zap.Logger
}

// NewTracker creates a tracker over the given store.
func NewTracker(store TrackingStore, logger *zap.Logger) *Tracker {
	return &Tracker{
		store:  store,
		logger: logger.Named("tracker"),
	}
}

// Open creates a new open tracking record for a mention. The curator
// reference stays unset until a responder closes the record.
// Returns types.ErrTrackingExists when an open record already exists for
// the mention; callers treat that as a duplicate delivery, not a failure.
func (t *Tracker) Open(
	ctx context.Context, communityID, channelID, mentionMessageID uint64, mentionTimestamp time.Time,
) (*types.MentionTracking, error) {
	tracking := &types.MentionTracking{
		CommunityID:      communityID,
		ChannelID:        channelID,
		MentionMessageID: mentionMessageID,
		MentionTimestamp: mentionTimestamp,
		ResponseKind:     enum.ResponseKindNone,
	}

	if err := t.store.Create(ctx, tracking); err != nil {
		if errors.Is(err, types.ErrTrackingExists) {
			t.logger.Debug("Duplicate mention delivery ignored",
				zap.Uint64("mentionMessageID", mentionMessageID))
		}

		return nil, err
	}

	t.logger.Info("Opened tracking record",
		zap.Uint64("communityID", communityID),
		zap.Uint64("mentionMessageID", mentionMessageID))

	return tracking, nil
}

// Find retrieves the open tracking record for a mention message id.
// Returns types.ErrTrackingNotFound when no open record exists.
func (t *Tracker) Find(ctx context.Context, mentionMessageID uint64) (*types.MentionTracking, error) {
	return t.store.GetOpenByMention(ctx, mentionMessageID)
}

// Close finalizes an open tracking record with the measured response time,
// computed from the response event's own timestamp and floored at one
// second. A record already closed by another responder yields
// types.ErrTrackingClosed and stays unchanged; callers treat that as a
// lost race, not a failure.
func (t *Tracker) Close(
	ctx context.Context, tracking *types.MentionTracking, curatorID uint64,
	responseMessageID *uint64, responseTimestamp time.Time, kind enum.ResponseKind,
) (*types.MentionTracking, error) {
	seconds := tracking.ResponseTimeSince(responseTimestamp)

	closed, err := t.store.Close(ctx, tracking.ID, curatorID, responseMessageID, responseTimestamp, kind, seconds)
	if err != nil {
		if errors.Is(err, types.ErrTrackingClosed) {
			t.logger.Debug("Tracking record already closed by another responder",
				zap.Uint64("mentionMessageID", tracking.MentionMessageID),
				zap.Uint64("curatorID", curatorID))
		}

		return nil, err
	}

	t.logger.Info("Closed tracking record",
		zap.Uint64("mentionMessageID", tracking.MentionMessageID),
		zap.Uint64("curatorID", curatorID),
		zap.String("kind", kind.String()),
		zap.Int64("responseTimeSeconds", seconds))

	return closed, nil
}
