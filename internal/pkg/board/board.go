package board

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Entry is one row of a lesson leaderboard, best quiz percentage first.
type Entry struct {
	UserID string
	Score  float64
}

// Board keeps a per-lesson best-score leaderboard in a redis sorted set.
type Board struct {
	redis  redis.UniversalClient
	prefix string
}

func New(rc redis.UniversalClient, prefix string) *Board {
	return &Board{redis: rc, prefix: prefix}
}

// RecordScore stores the user's percentage for a lesson, keeping only their
// best score so retaking a quiz can never lower a leaderboard position.
func (b *Board) RecordScore(ctx context.Context, lessonSlug, userID string, percentage int) error {
	key := b.key(lessonSlug)

	current, err := b.redis.ZScore(ctx, key, userID).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("read leaderboard score: %w", err)
	}
	if err == nil && current >= float64(percentage) {
		return nil
	}

	if err := b.redis.ZAdd(ctx, key, redis.Z{
		Score:  float64(percentage),
		Member: userID,
	}).Err(); err != nil {
		return fmt.Errorf("update leaderboard: %w", err)
	}

	return nil
}

// Top returns up to limit entries in descending score order.
func (b *Board) Top(ctx context.Context, lessonSlug string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	res, err := b.redis.ZRevRangeWithScores(ctx, b.key(lessonSlug), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	entries := make([]Entry, 0, len(res))
	for _, z := range res {
		entries = append(entries, Entry{
			UserID: z.Member.(string),
			Score:  z.Score,
		})
	}

	return entries, nil
}

func (b *Board) key(lessonSlug string) string {
	return fmt.Sprintf("%s:%s:leaderboard", b.prefix, lessonSlug)
}
