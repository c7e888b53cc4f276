package conditions

import (
	"time"

	"github.com/aryangodara/limits"
	"golang.org/x/time/rate"
)

// TokenBucket returns a Predicate holding while lim has a token to spend.
// Each evaluation that holds consumes one token.
func TokenBucket(lim *rate.Limiter) limits.Predicate {
	return limits.Func(lim.Allow)
}

// NewTokenBucket creates a bucket of maxTokens refilled with refillAmount
// tokens every refillTime and returns a Predicate over it.
func NewTokenBucket(maxTokens int, refillTime time.Duration, refillAmount int) limits.Predicate {
	if refillAmount <= 0 {
		refillAmount = 1
	}
	every := refillTime / time.Duration(refillAmount)
	return TokenBucket(rate.NewLimiter(rate.Every(every), maxTokens))
}
