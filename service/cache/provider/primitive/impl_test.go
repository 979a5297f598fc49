package primitive

import (
	"testing"
	"time"

	"github.com/coocood/freecache"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 1).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func TestPrimitive(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetExpires() {
	k := "listing:abc"
	v := []byte(`{"status":"sold"}`)

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Second))
	r, e := ts.im.cache.Get([]byte(k))
	ts.NoError(e)
	ts.Equal(v, r)

	time.Sleep(1100 * time.Millisecond)
	_, e = ts.im.cache.Get([]byte(k))
	ts.Equal(freecache.ErrNotFound, e)
}

func (ts *testsuite) TestGet() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	v, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
	ts.True(ttl > 0 && ttl <= time.Minute, ttl.String())

	ts.NoError(ts.im.Set(mockCtx, "forever", []byte("v"), 0))
	_, ttl, err = ts.im.Get(mockCtx, "forever")
	ts.NoError(err)
	ts.Equal(time.Duration(0), ttl)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}
