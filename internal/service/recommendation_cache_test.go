package service

import (
	"context"
	"testing"
	"time"

	"career_advisor_backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*RecommendationCache, *miniredis.Miniredis) {
	t.Helper()
	logger.Log = zap.NewNop()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRecommendationCache(rdb), mr
}

func TestRecommendationCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	stored := Recommendations{
		Aptitude20:  17,
		Personality: "Analytical",
		Courses: []CourseSuggestion{
			{Code: "CSE", Name: "Computer Science & Engineering", Fit: 100},
			{Code: "DS", Name: "Data Science", Fit: 92},
		},
	}
	cache.Set(ctx, 42, stored)

	var loaded Recommendations
	require.True(t, cache.Get(ctx, 42, &loaded))
	assert.Equal(t, stored, loaded)
}

func TestRecommendationCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var loaded Recommendations
	assert.False(t, cache.Get(context.Background(), 7, &loaded))
}

func TestRecommendationCacheIsolatedPerUser(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, Recommendations{Aptitude20: 5})
	cache.Set(ctx, 2, Recommendations{Aptitude20: 15})

	var loaded Recommendations
	require.True(t, cache.Get(ctx, 1, &loaded))
	assert.Equal(t, 5, loaded.Aptitude20)
	require.True(t, cache.Get(ctx, 2, &loaded))
	assert.Equal(t, 15, loaded.Aptitude20)
}

func TestRecommendationCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 9, Recommendations{Personality: "Creative"})
	cache.Invalidate(ctx, 9)

	var loaded Recommendations
	assert.False(t, cache.Get(ctx, 9, &loaded))
}

func TestRecommendationCacheExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 3, Recommendations{Aptitude20: 20})
	mr.FastForward(recommendationTTL + time.Second)

	var loaded Recommendations
	assert.False(t, cache.Get(ctx, 3, &loaded))
}

func TestRecommendationCacheDropsCorruptEntry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("recommendations:11", "{not json"))

	var loaded Recommendations
	assert.False(t, cache.Get(ctx, 11, &loaded))
	assert.False(t, mr.Exists("recommendations:11"))
}

func TestRecommendationCacheNilClient(t *testing.T) {
	cache := NewRecommendationCache(nil)
	ctx := context.Background()

	cache.Set(ctx, 1, Recommendations{Aptitude20: 10})
	cache.Invalidate(ctx, 1)

	var loaded Recommendations
	assert.False(t, cache.Get(ctx, 1, &loaded))
}
