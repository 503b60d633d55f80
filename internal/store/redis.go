package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

const redisKeyPrefix = "room:"

// Redis stores each room as a JSON value under room:<code>. Keys carry no
// TTL; room lifetime is governed by the last-player-leaves rule and the
// optional expiry sweeper.
type Redis struct {
	client *redis.Client
}

func OpenRedis(ctx context.Context, addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping redis %s: %v", domain.ErrStorage, addr, err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Load(ctx context.Context, code string) (*domain.Room, error) {
	doc, err := r.client.Get(ctx, redisKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load room %s: %v", domain.ErrStorage, code, err)
	}
	var room domain.Room
	if err := json.Unmarshal([]byte(doc), &room); err != nil {
		return nil, fmt.Errorf("%w: decode room %s: %v", domain.ErrStorage, code, err)
	}
	return &room, nil
}

func (r *Redis) Save(ctx context.Context, code string, room *domain.Room) error {
	doc, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("%w: encode room %s: %v", domain.ErrStorage, code, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+code, doc, 0).Err(); err != nil {
		return fmt.Errorf("%w: save room %s: %v", domain.ErrStorage, code, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, code string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+code).Err(); err != nil {
		return fmt.Errorf("%w: delete room %s: %v", domain.ErrStorage, code, err)
	}
	return nil
}

func (r *Redis) Codes(ctx context.Context) ([]string, error) {
	var codes []string
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		codes = append(codes, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan rooms: %v", domain.ErrStorage, err)
	}
	return codes, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
