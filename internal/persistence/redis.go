package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/config"
)

// Redis wraps the go-redis client. Its one job here is allocating the
// per-day ticket key sequence.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. Returns nil
// when no address is configured.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Warn("REDIS_ADDR not provided; using in-memory ticket sequence")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// NextSequence returns the next per-day ticket sequence number for the given
// YYYYMMDD day key. INCR gives each calendar day its own counter starting at
// 1; the key expires after two days since no ticket is keyed against it later.
func (r *Redis) NextSequence(ctx context.Context, day string) (int, error) {
	if r == nil || r.Client == nil {
		return 0, errors.New("redis client not configured")
	}
	key := "helpdesk:ticket_seq:" + day
	seq, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if seq == 1 {
		r.Client.Expire(ctx, key, 48*time.Hour)
	}
	return int(seq), nil
}

// advanceScript bumps a day counter to at least ARGV[1] without ever moving
// it backwards.
var advanceScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
if tonumber(ARGV[1]) > cur then
    redis.call('SET', KEYS[1], ARGV[1], 'EX', 172800)
end
return 1`)

// Advance raises the per-day counter to at least seq. Snapshot imports call
// this so freshly created tickets skip the keys the snapshot already used.
func (r *Redis) Advance(ctx context.Context, day string, seq int) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	key := "helpdesk:ticket_seq:" + day
	return advanceScript.Run(ctx, r.Client, []string{key}, seq).Err()
}
