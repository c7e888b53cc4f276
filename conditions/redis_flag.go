package conditions

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aryangodara/limits"
	"github.com/redis/go-redis/v9"
)

// RedisFlag returns a Predicate holding while key stores a true value as
// understood by strconv.ParseBool ("1", "t", "true", ...). A missing or
// expired key does not hold. Redis and parse errors are returned.
func RedisFlag(ctx context.Context, client *redis.Client, key string) limits.Predicate {
	return func() (bool, error) {
		value, err := client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("error reading flag %v: %w", key, err)
		}

		set, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("error parsing flag %v: %w", key, err)
		}
		return set, nil
	}
}
