package docsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds a client from a redis:// URL or a bare host:port and
// checks it answers.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// extendScript refreshes the expiry only while the key still holds our token.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker is a Locker shared by every replica pointing at the same Redis.
// The lease is extended every TTL/3 while held, so a holder that dies leaves
// the key to expire after TTL and a live one keeps it however long it runs.
type RedisLocker struct {
	Client *redis.Client
	Logger *slog.Logger
	Prefix string
	TTL    time.Duration
	Retry  time.Duration
}

func NewRedisLocker(client *redis.Client, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{
		Client: client,
		Logger: logger,
		Prefix: "roadwatch:lock:",
		TTL:    30 * time.Second,
		Retry:  50 * time.Millisecond,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := l.Prefix + key
	owner := uuid.NewString()

	for {
		ok, err := l.Client.SetNX(ctx, redisKey, owner, l.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.Retry)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	stop := make(chan struct{})
	renewed := make(chan struct{})
	go func() {
		defer close(renewed)
		l.renew(redisKey, owner, stop)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-renewed

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := releaseScript.Run(ctx, l.Client, []string{redisKey}, owner).Err()
			if err != nil && !errors.Is(err, redis.Nil) && l.Logger != nil {
				l.Logger.Warn("failed to release lock, leaving it to expire",
					"key", redisKey, "ttl", l.TTL, "error", err)
			}
		})
	}, nil
}

func (l *RedisLocker) renew(redisKey, owner string, stop <-chan struct{}) {
	interval := l.TTL / 3
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), interval)
		n, err := extendScript.Run(ctx, l.Client, []string{redisKey}, owner, l.TTL.Milliseconds()).Int()
		cancel()
		switch {
		case err != nil:
			if l.Logger != nil {
				l.Logger.Warn("failed to extend lock", "key", redisKey, "error", err)
			}
		case n == 0:
			if l.Logger != nil {
				l.Logger.Error("lock lost before release", "key", redisKey)
			}
			return
		}
	}
}
