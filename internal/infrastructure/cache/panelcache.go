package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	"github.com/faena-hq/faena/internal/shared/logger"
)

const panelKeyPrefix = "panel:project:"

// RedisPanelCache caches serialized project panels in Redis. The cache is
// advisory: any Redis failure is logged at debug level and treated as a
// miss, never surfaced to the request.
type RedisPanelCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisPanelCache creates a new Redis-backed panel cache
func NewRedisPanelCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisPanelCache {
	return &RedisPanelCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisPanelCache) key(projectID uint) string {
	return fmt.Sprintf("%s%d", panelKeyPrefix, projectID)
}

// Get retrieves a cached panel; the second return reports a hit
func (c *RedisPanelCache) Get(ctx context.Context, projectID uint) (*dto.ProjectPanelDTO, bool) {
	payload, err := c.client.Get(ctx, c.key(projectID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debugw("panel cache get failed", "project_id", projectID, "error", err)
		}
		return nil, false
	}

	var panel dto.ProjectPanelDTO
	if err := json.Unmarshal(payload, &panel); err != nil {
		c.logger.Debugw("panel cache payload corrupt, dropping", "project_id", projectID, "error", err)
		c.client.Del(ctx, c.key(projectID))
		return nil, false
	}

	return &panel, true
}

// Set stores a panel with the configured TTL
func (c *RedisPanelCache) Set(ctx context.Context, projectID uint, panel *dto.ProjectPanelDTO) {
	payload, err := json.Marshal(panel)
	if err != nil {
		c.logger.Debugw("panel cache marshal failed", "project_id", projectID, "error", err)
		return
	}

	if err := c.client.Set(ctx, c.key(projectID), payload, c.ttl).Err(); err != nil {
		c.logger.Debugw("panel cache set failed", "project_id", projectID, "error", err)
	}
}

// Invalidate drops the cached panel for a project
func (c *RedisPanelCache) Invalidate(ctx context.Context, projectID uint) {
	if err := c.client.Del(ctx, c.key(projectID)).Err(); err != nil {
		c.logger.Debugw("panel cache invalidate failed", "project_id", projectID, "error", err)
	}
}
