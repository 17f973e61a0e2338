package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sparkred/curatord/internal/database/dbretry"
	"github.com/sparkred/curatord/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CuratorModel handles database operations for curator identity records.
type CuratorModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewCurator creates a new curator model instance.
func NewCurator(db *bun.DB, logger *zap.Logger) *CuratorModel {
	return &CuratorModel{
		db:     db,
		logger: logger.Named("db_curator"),
	}
}

// GetByDiscordID retrieves an active curator by their Discord account id.
// Returns types.ErrCuratorNotFound if no active curator matches.
func (m *CuratorModel) GetByDiscordID(ctx context.Context, discordID uint64) (*types.Curator, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Curator, error) {
		var curator types.Curator

		err := m.db.NewSelect().
			Model(&curator).
			Where("discord_id = ?", discordID).
			Where("is_active = TRUE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrCuratorNotFound
			}

			return nil, fmt.Errorf("failed to get curator by discord id: %w", err)
		}

		return &curator, nil
	})
}

// ListActive retrieves all active curators.
func (m *CuratorModel) ListActive(ctx context.Context) ([]*types.Curator, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Curator, error) {
		var curators []*types.Curator

		err := m.db.NewSelect().
			Model(&curators).
			Where("is_active = TRUE").
			Order("name ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active curators: %w", err)
		}

		return curators, nil
	})
}
