package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/domain/keys"
	"github.com/x-xyz/nftescrow/service/cache/provider"
	"github.com/x-xyz/nftescrow/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type record struct {
	Address string `json:"address"`
	Price   int64  `json:"price"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func TestCache(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	c := &record{}
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "abc", c))

	sv, err := json.Marshal(record{"abc", 5})
	ts.Require().NoError(err)
	ts.Require().NoError(ts.cache.Set(mockCtx, keys.RedisKey("testing", "abc"), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, "abc", c))
	ts.Equal(record{"abc", 5}, *c)
}

func (ts *testsuite) TestSetDel() {
	ts.NoError(ts.im.Set(mockCtx, "abc", record{"abc", 7}))

	sv, _, err := ts.cache.Get(mockCtx, "testing:abc")
	ts.Require().NoError(err)
	ts.JSONEq(`{"address":"abc","price":7}`, string(sv))

	ts.NoError(ts.im.Del(mockCtx, "abc"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "abc", &record{}))
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &record{"abc", 9}, nil
	}

	c := &record{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "abc", c, getter))
	ts.Equal(record{"abc", 9}, *c)

	c = &record{}
	ts.NoError(ts.im.GetByFunc(mockCtx, "abc", c, getter))
	ts.Equal(record{"abc", 9}, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterError() {
	errBoom := errors.New("boom")
	err := ts.im.GetByFunc(mockCtx, "abc", &record{}, func() (interface{}, error) {
		return nil, errBoom
	})
	ts.Equal(errBoom, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "abc", &record{}))
}
