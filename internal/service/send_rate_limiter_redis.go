package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// SendRateLimiter limita cuántos mensajes puede enviar un remitente por
// ventana de tiempo.
type SendRateLimiter interface {
	Allow(key string) bool
}

const redisSendAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisSendRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisSendRateLimiter(client *redis.Client, window time.Duration, max int) SendRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisSendRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "chat:rl:",
	}
}

// Allow falla abierto: si redis no responde, el mensaje pasa igual.
func (l *redisSendRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.TrimSpace(key)
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisSendAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
