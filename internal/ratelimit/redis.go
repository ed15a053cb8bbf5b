package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis conta tentativas em janelas fixas de um minuto, compartilhadas
// entre instâncias.
type Redis struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

func NewRedis(url string, perMinute int) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisClient(redis.NewClient(opt), perMinute), nil
}

func NewRedisClient(client *redis.Client, perMinute int) *Redis {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &Redis{
		client: client,
		limit:  int64(perMinute),
		window: time.Minute,
		prefix: "odutech:login:",
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Allow cria a chave já com TTL e incrementa na mesma transação, assim
// nenhum contador fica sem expiração.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	k := r.prefix + key

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, r.window)
		incr = pipe.Incr(ctx, k)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= r.limit, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
