package service

import (
	"career_advisor_backend/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const recommendationTTL = 10 * time.Minute

// RecommendationCache keeps computed recommendation payloads in redis for
// a short while. Fit scores are recomputed from the latest profile and
// test results, so any write to either drops the entry. Cache failures
// are logged and otherwise ignored; redis being down must never break the
// request path.
type RecommendationCache struct {
	rdb *redis.Client
}

func NewRecommendationCache(rdb *redis.Client) *RecommendationCache {
	return &RecommendationCache{rdb: rdb}
}

func (c *RecommendationCache) key(userID uint) string {
	return fmt.Sprintf("recommendations:%d", userID)
}

func (c *RecommendationCache) Get(ctx context.Context, userID uint, out interface{}) bool {
	if c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Log.Warn("dropping undecodable recommendation cache entry",
			zap.Uint("userId", userID), zap.Error(err))
		c.Invalidate(ctx, userID)
		return false
	}
	return true
}

func (c *RecommendationCache) Set(ctx context.Context, userID uint, value interface{}) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(userID), raw, recommendationTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache recommendations", zap.Uint("userId", userID), zap.Error(err))
	}
}

func (c *RecommendationCache) Invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.key(userID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate recommendation cache", zap.Uint("userId", userID), zap.Error(err))
	}
}
