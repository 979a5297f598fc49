package usecase

import (
	"strconv"
	"sync"
	"time"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/service/redis"
)

// memRedis is an in-process redis.Service shared by use cases under test
type memRedis struct {
	mu   sync.Mutex
	vals map[string][]byte
}

func newMemRedis() *memRedis {
	return &memRedis{vals: map[string][]byte{}}
}

func (m *memRedis) value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.vals[key])
}

func (m *memRedis) Get(_ ctx.Ctx, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	if !ok {
		return nil, redis.ErrNotFound
	}
	return v, nil
}

func (m *memRedis) Set(_ ctx.Ctx, key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = val
	return nil
}

func (m *memRedis) SetNX(_ ctx.Ctx, key string, val []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vals[key]; ok {
		return redis.ErrKeyExists
	}
	m.vals[key] = val
	return nil
}

func (m *memRedis) Del(_ ctx.Ctx, ks ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, k := range ks {
		if _, ok := m.vals[k]; ok {
			delete(m.vals, k)
			n++
		}
	}
	return n, nil
}

func (m *memRedis) Exists(_ ctx.Ctx, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.vals[key]
	return ok, nil
}

func (m *memRedis) Incrby(_ ctx.Ctx, key string, val int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, _ := strconv.ParseInt(string(m.vals[key]), 10, 64)
	n += int64(val)
	m.vals[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

func (m *memRedis) TTL(_ ctx.Ctx, key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vals[key]; !ok {
		return 0, redis.ErrNotFound
	}
	return 0, redis.ErrNoTTL
}
