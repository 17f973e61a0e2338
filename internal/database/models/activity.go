package models

import (
	"context"
	"fmt"

	"github.com/sparkred/curatord/internal/database/dbretry"
	"github.com/sparkred/curatord/internal/database/types"
	"github.com/sparkred/curatord/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ActivityModel handles database operations for curator activity logs.
type ActivityModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewActivity creates a repository with database access for
// storing and retrieving curator activity logs.
func NewActivity(db *bun.DB, logger *zap.Logger) *ActivityModel {
	return &ActivityModel{
		db:     db,
		logger: logger.Named("db_activity"),
	}
}

// Append stores one curator action in the activity log.
func (m *ActivityModel) Append(ctx context.Context, log *types.ActivityLog) error {
	err := dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := m.db.NewInsert().Model(log).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to append activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Debug("Appended activity",
		zap.Uint64("curatorID", log.CuratorID),
		zap.Uint64("communityID", log.CommunityID),
		zap.String("kind", log.Kind.String()))

	return nil
}

// CountsByCurator aggregates activity totals per kind for one curator.
func (m *ActivityModel) CountsByCurator(ctx context.Context, curatorID uint64) (*types.ActivityCounts, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ActivityCounts, error) {
		var rows []struct {
			Kind  enum.ActivityKind `bun:"kind"`
			Count int64             `bun:"count"`
		}

		err := m.db.NewSelect().
			Model((*types.ActivityLog)(nil)).
			Column("kind").
			ColumnExpr("COUNT(*) AS count").
			Where("curator_id = ?", curatorID).
			Group("kind").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to count activities: %w", err)
		}

		counts := &types.ActivityCounts{}

		for _, row := range rows {
			switch row.Kind {
			case enum.ActivityKindMessage:
				counts.Messages = row.Count
			case enum.ActivityKindReply:
				counts.Replies = row.Count
			case enum.ActivityKindReaction:
				counts.Reactions = row.Count
			case enum.ActivityKindTaskVerification:
				counts.TaskVerifications = row.Count
			case enum.ActivityKindAll:
			}
		}

		return counts, nil
	})
}

// GetLogs retrieves activity logs matching the filter, newest first.
func (m *ActivityModel) GetLogs(
	ctx context.Context, filter types.ActivityFilter, limit int,
) ([]*types.ActivityLog, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ActivityLog, error) {
		var logs []*types.ActivityLog

		query := m.db.NewSelect().Model(&logs)

		if filter.CuratorID != 0 {
			query = query.Where("curator_id = ?", filter.CuratorID)
		}

		if filter.CommunityID != 0 {
			query = query.Where("community_id = ?", filter.CommunityID)
		}

		if filter.Kind != enum.ActivityKindAll {
			query = query.Where("kind = ?", filter.Kind)
		}

		if !filter.StartDate.IsZero() && !filter.EndDate.IsZero() {
			query = query.Where("timestamp BETWEEN ? AND ?", filter.StartDate, filter.EndDate)
		}

		err := query.
			Order("timestamp DESC", "id DESC").
			Limit(limit).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get activity logs: %w", err)
		}

		return logs, nil
	})
}
