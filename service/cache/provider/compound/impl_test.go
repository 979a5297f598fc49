package compound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/service/cache/provider"
	"github.com/x-xyz/nftescrow/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	local  provider.Provider
	shared provider.Provider
	im     *impl
}

func (ts *testsuite) SetupTest() {
	ts.local = primitive.NewPrimitive("local", 1)
	ts.shared = primitive.NewPrimitive("shared", 1)
	ts.im = NewCompound(ts.local, ts.shared).(*impl)
}

func TestCompound(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetWritesAllLayers() {
	k := "listing:abc"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, time.Minute))
	for _, lyr := range []provider.Provider{ts.local, ts.shared} {
		r, _, err := lyr.Get(mockCtx, k)
		ts.NoError(err)
		ts.Equal(v, r)
	}
}

func (ts *testsuite) TestGetFillsFrontLayers() {
	k := "listing:def"
	v := []byte("value")

	ts.NoError(ts.shared.Set(mockCtx, k, v, time.Minute))
	_, _, err := ts.local.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)

	r, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, r)
	ts.True(ttl > 0)

	r, _, err = ts.local.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, r)
}

func (ts *testsuite) TestMissAndDel() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)

	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, err = ts.shared.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}
