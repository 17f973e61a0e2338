// Package cache provides Redis-backed lookup caches in front of the
// database models.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/rueidis"
	"github.com/sparkred/curatord/internal/database/types"
	"go.uber.org/zap"
)

const (
	// CuratorTTL bounds staleness after roster changes.
	CuratorTTL = 10 * time.Minute

	// notCuratorSentinel marks accounts known not to be curators so hot
	// channels do not hammer the database with misses.
	notCuratorSentinel = "-"
)

// CuratorLookup is the underlying store the cache fronts.
type CuratorLookup interface {
	GetByDiscordID(ctx context.Context, discordID uint64) (*types.Curator, error)
}

// Curators caches curator lookups by account id. Every message and
// reaction triggers a lookup, so results (including negative ones) are
// held in Redis for a short TTL. Redis failures fall through to the
// database.
type Curators struct {
	client rueidis.Client
	store  CuratorLookup
	logger *zap.Logger
}

// NewCurators creates a curator lookup cache.
func NewCurators(client rueidis.Client, store CuratorLookup, logger *zap.Logger) *Curators {
	return &Curators{
		client: client,
		store:  store,
		logger: logger.Named("curator_cache"),
	}
}

// GetByDiscordID resolves an account id to an active curator, serving
// from Redis when possible. Returns types.ErrCuratorNotFound for
// non-curators, cached or otherwise.
func (c *Curators) GetByDiscordID(ctx context.Context, discordID uint64) (*types.Curator, error) {
	key := fmt.Sprintf("curator:%d", discordID)

	cached, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).ToString()
	switch {
	case err == nil:
		if cached == notCuratorSentinel {
			return nil, types.ErrCuratorNotFound
		}

		var curator types.Curator
		if err := sonic.Unmarshal([]byte(cached), &curator); err == nil {
			return &curator, nil
		}

		c.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	case !rueidis.IsRedisNil(err):
		c.logger.Warn("Cache read failed, falling back to database", zap.Error(err))
	}

	curator, err := c.store.GetByDiscordID(ctx, discordID)
	if err != nil {
		if errors.Is(err, types.ErrCuratorNotFound) {
			c.set(ctx, key, notCuratorSentinel)
		}

		return nil, err
	}

	if data, err := sonic.Marshal(curator); err == nil {
		c.set(ctx, key, string(data))
	}

	return curator, nil
}

// Invalidate drops a cached entry, for use after roster updates.
func (c *Curators) Invalidate(ctx context.Context, discordID uint64) {
	key := fmt.Sprintf("curator:%d", discordID)
	if err := c.client.Do(ctx, c.client.B().Del().Key(key).Build()).Error(); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Curators) set(ctx context.Context, key, value string) {
	cmd := c.client.B().Set().Key(key).Value(value).
		Ex(CuratorTTL).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
