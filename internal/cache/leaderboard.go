// Package cache 排行榜读穿缓存
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/tunewave/server/internal/domain"
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("cache miss")

const leaderboardKey = "tunewave:leaderboard:top_rated"

// Leaderboard 基于Redis的歌曲评分排行榜缓存
// 并发回源通过singleflight合并为一次计算
type Leaderboard struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewLeaderboard 创建排行榜缓存
func NewLeaderboard(client *redis.Client, ttl time.Duration) *Leaderboard {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Leaderboard{client: client, ttl: ttl}
}

// Get 获取缓存的排行榜
func (l *Leaderboard) Get(ctx context.Context) ([]*domain.SongRatingStat, error) {
	data, err := l.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var stats []*domain.SongRatingStat
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Set 写入排行榜缓存
func (l *Leaderboard) Set(ctx context.Context, stats []*domain.SongRatingStat) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return l.client.Set(ctx, leaderboardKey, data, l.ttl).Err()
}

// Invalidate 评分写操作后使缓存失效
func (l *Leaderboard) Invalidate(ctx context.Context) error {
	return l.client.Del(ctx, leaderboardKey).Err()
}

// GetOrCompute 读取缓存，未命中时通过compute回源并写回
func (l *Leaderboard) GetOrCompute(ctx context.Context, compute func(ctx context.Context) ([]*domain.SongRatingStat, error)) ([]*domain.SongRatingStat, error) {
	if stats, err := l.Get(ctx); err == nil {
		return stats, nil
	}

	v, err, _ := l.group.Do(leaderboardKey, func() (any, error) {
		stats, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		// 写缓存失败不影响本次结果
		_ = l.Set(ctx, stats)
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.SongRatingStat), nil
}
