package migrations

import (
	"context"
	"fmt"

	"github.com/sparkred/curatord/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.Curator)(nil),
			(*types.Community)(nil),
			(*types.MentionTracking)(nil),
			(*types.ActivityLog)(nil),
			(*types.ScoringConfig)(nil),
			(*types.RatingTier)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.RatingTier)(nil),
			(*types.ScoringConfig)(nil),
			(*types.ActivityLog)(nil),
			(*types.MentionTracking)(nil),
			(*types.Community)(nil),
			(*types.Curator)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table for %T: %w", model, err)
			}
		}

		return nil
	})
}
