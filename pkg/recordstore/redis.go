package recordstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores records as plain Redis strings under prefix+key.
type Redis struct {
	rdb    *redis.Client
	prefix string
	ctx    context.Context
}

// NewRedis connects and verifies the connection with a ping.
func NewRedis(addr, password, prefix string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("recordstore/redis: ping: %w", err)
	}
	return &Redis{rdb: rdb, prefix: prefix, ctx: ctx}, nil
}

func (r *Redis) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	val, err := r.rdb.Get(r.ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("recordstore/redis: get %s: %w", key, err)
	}
	return val, true, nil
}

func (r *Redis) Put(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := r.rdb.Set(r.ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("recordstore/redis: put %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := r.rdb.Del(r.ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("recordstore/redis: delete %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error { return r.rdb.Close() }
