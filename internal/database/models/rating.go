package models

import (
	"context"
	"fmt"

	"github.com/sparkred/curatord/internal/database/dbretry"
	"github.com/sparkred/curatord/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// RatingModel handles database operations for scoring weights and rating tiers.
type RatingModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewRating creates a new rating model instance.
func NewRating(db *bun.DB, logger *zap.Logger) *RatingModel {
	return &RatingModel{
		db:     db,
		logger: logger.Named("db_rating"),
	}
}

// GetScoringConfig retrieves the global scoring weights.
// The single row is seeded by migration.
func (m *RatingModel) GetScoringConfig(ctx context.Context) (*types.ScoringConfig, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ScoringConfig, error) {
		var config types.ScoringConfig

		err := m.db.NewSelect().
			Model(&config).
			Limit(1).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get scoring config: %w", err)
		}

		return &config, nil
	})
}

// GetRatingTiers retrieves all rating tiers sorted by minimum score descending,
// the order tier selection expects.
func (m *RatingModel) GetRatingTiers(ctx context.Context) ([]types.RatingTier, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]types.RatingTier, error) {
		var tiers []types.RatingTier

		err := m.db.NewSelect().
			Model(&tiers).
			Order("min_score DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get rating tiers: %w", err)
		}

		return tiers, nil
	})
}
