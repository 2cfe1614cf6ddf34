package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// incrWindow bumps the window counter and arms its expiry in one round
// trip, so a crash between INCR and EXPIRE cannot leave an immortal key.
var incrWindow = goredis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimitStore implements ports.RateLimitStore with fixed windows keyed
// by "<key>:<window index>".
type RateLimitStore struct {
	client goredis.Scripter
	now    func() time.Time
}

func NewRateLimitStore(client goredis.Scripter) *RateLimitStore {
	return &RateLimitStore{client: client, now: time.Now}
}

// Allow counts one request against key and reports whether it fits within
// limit for the current window, plus how many are left.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	if window < time.Second {
		window = time.Second
	}
	slot := s.now().UnixNano() / int64(window)
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, slot)

	count, err := incrWindow.Run(ctx, s.client, []string{redisKey}, (window + time.Second).Milliseconds()).Int64()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return count <= limit, max(limit-count, 0), nil
}
