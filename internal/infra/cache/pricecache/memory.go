package pricecache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Memory кэш цен в памяти процесса
type Memory struct {
	cache *cache.Cache
}

// NewMemory создает кэш в памяти с заданным TTL.
// Просроченные записи вычищаются раз в два TTL
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{cache: cache.New(ttl, 2*ttl)}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	v, ok := m.cache.Get(key)
	if !ok {
		return Entry{}, false, nil
	}
	entry, ok := v.(Entry)
	if !ok {
		return Entry{}, false, ErrDecode
	}
	return entry, true, nil
}

func (m *Memory) Set(_ context.Context, key string, entry Entry) error {
	m.cache.SetDefault(key, entry)
	return nil
}

// Flush удаляет все записи
func (m *Memory) Flush(_ context.Context) error {
	m.cache.Flush()
	return nil
}
