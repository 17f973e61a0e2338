package migrations

import (
	"context"
	"fmt"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		config := &types.ScoringConfig{
			PointsMessage:           3,
			PointsReaction:          1,
			PointsReply:             2,
			PointsTaskVerification:  5,
			ResponseTimeGoodSeconds: 60,
			ResponseTimePoorSeconds: 300,
		}

		if _, err := db.NewInsert().Model(config).Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed scoring config: %w", err)
		}

		tiers := types.DefaultRatingTiers()
		if _, err := db.NewInsert().Model(&tiers).On("CONFLICT (name) DO NOTHING").Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed rating tiers: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewTruncateTable().Model((*types.RatingTier)(nil)).Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear rating tiers: %w", err)
		}

		if _, err := db.NewTruncateTable().Model((*types.ScoringConfig)(nil)).Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear scoring config: %w", err)
		}

		return nil
	})
}
