package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftescrow/base/ctx"
	hcdomain "github.com/x-xyz/nftescrow/domain/healthcheck"
)

type fakeRepo struct {
	mongo error
	redis error
}

func (f *fakeRepo) PingMongo(ctx.Ctx) error { return f.mongo }

func (f *fakeRepo) PingRedis(ctx.Ctx) error { return f.redis }

func TestCheck(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	r := New(&fakeRepo{}).Check(c)
	req.True(r.Healthy())
	req.Equal(hcdomain.Report{Mongo: hcdomain.StatusOk, Redis: hcdomain.StatusOk}, r)

	r = New(&fakeRepo{redis: errors.New("conn refused")}).Check(c)
	req.False(r.Healthy())
	req.Equal(hcdomain.StatusOk, r.Mongo)
	req.Equal(hcdomain.StatusDown, r.Redis)
}
