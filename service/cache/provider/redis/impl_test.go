package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/service/cache/provider"
	"github.com/x-xyz/nftescrow/service/redis"
	mockRedis "github.com/x-xyz/nftescrow/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func (ts *testsuite) SetupTest() {
	ts.redis = &mockRedis.Service{}
	ts.im = NewRedis(ts.redis).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.redis.AssertExpectations(ts.T())
}

func TestRedisProvider(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	k := "listing:abc"
	v := []byte("value")

	ts.redis.On("Set", mockCtx, k, v, time.Minute).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
}

func (ts *testsuite) TestGet() {
	k := "listing:abc"
	v := []byte("value")

	ts.redis.On("Get", mockCtx, k).Return(nil, redis.ErrNotFound).Once()
	res, _, err := ts.im.Get(mockCtx, k)
	ts.Nil(res)
	ts.Equal(provider.ErrNotFound, err)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(30, nil).Once()
	res, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, res)
	ts.Equal(30*time.Second, ttl)

	ts.redis.On("Get", mockCtx, k).Return(v, nil).Once()
	ts.redis.On("TTL", mockCtx, k).Return(-2, redis.ErrNotFound).Once()
	_, _, err = ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	errBoom := errors.New("boom")
	ts.redis.On("Del", mockCtx, "k").Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, "k"))

	ts.redis.On("Del", mockCtx, "k").Return(0, errBoom).Once()
	ts.Equal(errBoom, ts.im.Del(mockCtx, "k"))
}
