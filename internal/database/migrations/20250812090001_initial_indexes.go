package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			// At most one open tracking record per mention message id.
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_mention_trackings_open_mention
				ON mention_trackings (mention_message_id)
				WHERE response_timestamp IS NULL`,
			`CREATE INDEX IF NOT EXISTS idx_mention_trackings_unresponded
				ON mention_trackings (mention_timestamp)
				WHERE response_timestamp IS NULL`,
			`CREATE INDEX IF NOT EXISTS idx_mention_trackings_curator
				ON mention_trackings (curator_id)
				WHERE response_timestamp IS NOT NULL`,
			`CREATE INDEX IF NOT EXISTS idx_activity_logs_curator_kind
				ON activity_logs (curator_id, kind)`,
			`CREATE INDEX IF NOT EXISTS idx_activity_logs_timestamp
				ON activity_logs (timestamp DESC)`,
		}

		for _, index := range indexes {
			if _, err := db.ExecContext(ctx, index); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"DROP INDEX IF EXISTS idx_mention_trackings_open_mention",
			"DROP INDEX IF EXISTS idx_mention_trackings_unresponded",
			"DROP INDEX IF EXISTS idx_mention_trackings_curator",
			"DROP INDEX IF EXISTS idx_activity_logs_curator_kind",
			"DROP INDEX IF EXISTS idx_activity_logs_timestamp",
		}

		for _, index := range indexes {
			if _, err := db.ExecContext(ctx, index); err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
		}

		return nil
	})
}
