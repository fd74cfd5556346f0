package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"mentecare-backend/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RateCounter increments the hit counter for key inside a fixed window and
// returns the new count and the time left in the window.
type RateCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// atomic INCR, with PEXPIRE on the first hit of a window
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

type redisRateCounter struct {
	client *redis.Client
}

func NewRedisRateCounter(client *redis.Client) RateCounter {
	return &redisRateCounter{client: client}
}

func (c *redisRateCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := incrExpireScript.Run(ctx, c.client, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, fmt.Errorf("unexpected rate limit reply: %v", res)
	}
	ttl := time.Duration(res[1]) * time.Millisecond
	if ttl < 0 {
		ttl = 0
	}
	return res[0], ttl, nil
}

// RateLimit limits requests per client IP and route prefix. Counter errors
// fail open so a redis outage does not take the search offline.
func RateLimit(log *logrus.Logger, counter RateCounter, scope string, max int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if counter == nil || max <= 0 || window <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			key := "rl:" + scope + ":ip:" + clientIP(r)
			count, ttl, err := counter.Incr(r.Context(), key, window)
			if err != nil {
				log.Warnf("Failed to increment rate limit counter: %+v", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := max - int(count)
			if remaining < 0 {
				remaining = 0
			}
			resetSec := int((ttl + time.Second - 1) / time.Second)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(max))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetSec))

			if int(count) > max {
				w.Header().Set("Retry-After", strconv.Itoa(resetSec))
				response.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}
