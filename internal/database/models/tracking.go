package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sparkred/curatord/internal/database/dbretry"
	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TrackingModel handles database operations for mention tracking records.
type TrackingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTracking creates a repository with database access for
// storing and retrieving mention tracking records.
func NewTracking(db *bun.DB, logger *zap.Logger) *TrackingModel {
	return &TrackingModel{
		db:     db,
		logger: logger.Named("db_tracking"),
	}
}

// Create inserts a new open tracking record for a mention.
// Returns types.ErrTrackingExists if an open record already exists for the
// mention message id; the partial unique index enforces this even under
// concurrent delivery of duplicate platform events.
func (m *TrackingModel) Create(ctx context.Context, tracking *types.MentionTracking) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		res, err := m.db.NewInsert().
			Model(tracking).
			On("CONFLICT (mention_message_id) WHERE response_timestamp IS NULL DO NOTHING").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create tracking record: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read insert result: %w", err)
		}

		if rows == 0 {
			return types.ErrTrackingExists
		}

		return nil
	})
}

// GetOpenByMention retrieves the open tracking record for a mention message.
// Returns types.ErrTrackingNotFound if no open record exists.
func (m *TrackingModel) GetOpenByMention(ctx context.Context, mentionMessageID uint64) (*types.MentionTracking, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.MentionTracking, error) {
		var tracking types.MentionTracking

		err := m.db.NewSelect().
			Model(&tracking).
			Where("mention_message_id = ?", mentionMessageID).
			Where("response_timestamp IS NULL").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrTrackingNotFound
			}

			return nil, fmt.Errorf("failed to get open tracking record: %w", err)
		}

		return &tracking, nil
	})
}

// Close finalizes an open tracking record with the measured response.
// The update is conditional on the record still being open; a record closed
// by another responder yields types.ErrTrackingClosed and leaves the row
// unchanged.
func (m *TrackingModel) Close(
	ctx context.Context, id uint64, curatorID uint64, responseMessageID *uint64,
	responseTimestamp time.Time, kind enum.ResponseKind, responseTimeSeconds int64,
) (*types.MentionTracking, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.MentionTracking, error) {
		var tracking types.MentionTracking

		err := m.db.NewUpdate().
			Model(&tracking).
			Set("curator_id = ?", curatorID).
			Set("response_message_id = ?", responseMessageID).
			Set("response_timestamp = ?", responseTimestamp).
			Set("response_kind = ?", kind).
			Set("response_time_seconds = ?", responseTimeSeconds).
			Where("id = ?", id).
			Where("response_timestamp IS NULL").
			Returning("*").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, m.classifyMissedClose(ctx, id)
			}

			return nil, fmt.Errorf("failed to close tracking record: %w", err)
		}

		return &tracking, nil
	})
}

// classifyMissedClose distinguishes a lost close race from a missing row.
func (m *TrackingModel) classifyMissedClose(ctx context.Context, id uint64) error {
	exists, err := m.db.NewSelect().
		Model((*types.MentionTracking)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check tracking record: %w", err)
	}

	if exists {
		return types.ErrTrackingClosed
	}

	return types.ErrTrackingNotFound
}

// ListUnresponded retrieves all open tracking records, oldest first.
// The recovery loader uses this to rebuild scheduler state after a restart.
func (m *TrackingModel) ListUnresponded(ctx context.Context) ([]*types.MentionTracking, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.MentionTracking, error) {
		var trackings []*types.MentionTracking

		err := m.db.NewSelect().
			Model(&trackings).
			Where("response_timestamp IS NULL").
			Order("mention_timestamp ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list unresponded trackings: %w", err)
		}

		return trackings, nil
	})
}

// ResponseTimeSamples retrieves the measured response times of all closed
// records answered by the given curator.
func (m *TrackingModel) ResponseTimeSamples(ctx context.Context, curatorID uint64) ([]int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]int64, error) {
		var samples []int64

		err := m.db.NewSelect().
			Model((*types.MentionTracking)(nil)).
			Column("response_time_seconds").
			Where("curator_id = ?", curatorID).
			Where("response_timestamp IS NOT NULL").
			Scan(ctx, &samples)
		if err != nil {
			return nil, fmt.Errorf("failed to get response time samples: %w", err)
		}

		return samples, nil
	})
}
