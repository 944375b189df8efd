package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"health-monitor/internal/config"
	"health-monitor/internal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("cache miss")

// SnapshotCache 概览快照缓存（Redis）
// Cache failures degrade to direct repository reads; they are logged and
// never surfaced to callers of the dashboard.
type SnapshotCache struct {
	config      *config.Config
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewSnapshotCache 创建快照缓存
func NewSnapshotCache(cfg *config.Config, redisClient *redis.Client, logger *zap.Logger) *SnapshotCache {
	return &SnapshotCache{
		config:      cfg,
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetOverview 从缓存读取用户概览
func (c *SnapshotCache) GetOverview(ctx context.Context, userID string) (*models.Overview, error) {
	key := c.overviewKey(userID)

	val, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get overview cache: %w", err)
	}

	var overview models.Overview
	if err := json.Unmarshal([]byte(val), &overview); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached overview: %w", err)
	}

	return &overview, nil
}

// SetOverview 写入用户概览缓存（带 TTL）
func (c *SnapshotCache) SetOverview(ctx context.Context, userID string, overview *models.Overview) error {
	key := c.overviewKey(userID)

	jsonData, err := json.Marshal(overview)
	if err != nil {
		return fmt.Errorf("failed to marshal overview: %w", err)
	}

	ttl := time.Duration(c.config.Cache.OverviewTTL) * time.Second
	if err := c.redisClient.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set overview cache: %w", err)
	}

	c.logger.Debug("Updated overview cache",
		zap.String("user_id", userID),
		zap.String("key", key),
		zap.Duration("ttl", ttl),
	)

	return nil
}

// InvalidateOverview 删除用户概览缓存
func (c *SnapshotCache) InvalidateOverview(ctx context.Context, userID string) error {
	if err := c.redisClient.Del(ctx, c.overviewKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete overview cache: %w", err)
	}
	return nil
}

func (c *SnapshotCache) overviewKey(userID string) string {
	return fmt.Sprintf("%s%s%s",
		c.config.Cache.OverviewKeyPrefix,
		userID,
		c.config.Cache.OverviewSuffix,
	)
}
