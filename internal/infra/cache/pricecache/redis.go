package pricecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "pricing:"
	flushScanSize = 500
)

// Redis кэш цен в Redis, общий для всех реплик сервиса
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis создает кэш поверх готового клиента
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("%w: Get - %v", ErrBackend, err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}
	return entry, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrBackend, err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrBackend, err)
	}
	return nil
}

// Flush удаляет только ключи с префиксом цен, остальные данные в Redis не трогаются
func (r *Redis) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", flushScanSize).Result()
		if err != nil {
			return fmt.Errorf("%w: Flush - scan: %v", ErrBackend, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: Flush - del: %v", ErrBackend, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
