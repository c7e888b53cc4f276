package conditions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aryangodara/limits"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	maxSortedSetScore = "+inf"
	minSortedSetScore = "-inf"
)

// RedisQuota returns a Predicate holding while fewer than max evaluations held
// during the trailing window. Each evaluation that holds is recorded as a hit
// in a sorted set stored under key, so the quota is shared by every process
// using the same key.
func RedisQuota(ctx context.Context, client *redis.Client, key string, max uint64, window time.Duration, now func() time.Time) limits.Predicate {
	return func() (bool, error) {
		current := now()
		minimum := strconv.FormatInt(current.Add(-window).UnixMilli(), 10)

		p := client.Pipeline()

		// drop hits that left the window, then count the rest
		removeByScore := p.ZRemRangeByScore(ctx, key, minSortedSetScore, "("+minimum)
		count := p.ZCount(ctx, key, minimum, maxSortedSetScore)

		if _, err := p.Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to execute sorted set pipeline for key %v: %w", key, err)
		}

		if err := removeByScore.Err(); err != nil {
			return false, fmt.Errorf("failed to remove old hits from key %v: %w", key, err)
		}

		hits, err := count.Uint64()
		if err != nil {
			return false, fmt.Errorf("failed to count hits for key %v: %w", key, err)
		}
		if hits >= max {
			return false, nil
		}

		// every hit needs an UUID
		item := uuid.New()

		p = client.Pipeline()
		add := p.ZAdd(ctx, key, redis.Z{
			Score:  float64(current.UnixMilli()),
			Member: item.String(),
		})
		p.Expire(ctx, key, window)

		if _, err := p.Exec(ctx); err != nil {
			return false, fmt.Errorf("failed to record hit for key %v: %w", key, err)
		}
		if err := add.Err(); err != nil {
			return false, fmt.Errorf("failed to add item to key %v: %w", key, err)
		}

		return true, nil
	}
}
