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

// CommunityModel handles database operations for monitored communities.
type CommunityModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewCommunity creates a new community model instance.
func NewCommunity(db *bun.DB, logger *zap.Logger) *CommunityModel {
	return &CommunityModel{
		db:     db,
		logger: logger.Named("db_community"),
	}
}

// GetByServerID retrieves an active community by its chat server id.
// Returns types.ErrCommunityNotFound if the server is not monitored.
func (m *CommunityModel) GetByServerID(ctx context.Context, serverID uint64) (*types.Community, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Community, error) {
		var community types.Community

		err := m.db.NewSelect().
			Model(&community).
			Where("server_id = ?", serverID).
			Where("is_active = TRUE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrCommunityNotFound
			}

			return nil, fmt.Errorf("failed to get community by server id: %w", err)
		}

		return &community, nil
	})
}

// GetByID retrieves a community by its internal id.
func (m *CommunityModel) GetByID(ctx context.Context, id uint64) (*types.Community, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Community, error) {
		var community types.Community

		err := m.db.NewSelect().
			Model(&community).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, types.ErrCommunityNotFound
			}

			return nil, fmt.Errorf("failed to get community: %w", err)
		}

		return &community, nil
	})
}
