package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/nftescrow/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL when the key has no expire
	ErrNoTTL = errors.New("redis: key has no ttl")
	// ErrKeyExists is returned by SetNX when the key is already set
	ErrKeyExists = errors.New("redis: key exists")
)

// Forever means no expire
const Forever = time.Duration(0)

// Service wraps the redis commands used by the service
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX returns ErrKeyExists when key is already set
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	// TTL in seconds
	TTL(context ctx.Ctx, key string) (int, error)
}
