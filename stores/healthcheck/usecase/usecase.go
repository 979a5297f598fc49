package usecase

import (
	"github.com/x-xyz/nftescrow/base/ctx"
	hcdomain "github.com/x-xyz/nftescrow/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) hcdomain.Report {
	return hcdomain.Report{
		Mongo: status(im.repo.PingMongo(context)),
		Redis: status(im.repo.PingRedis(context)),
	}
}

func status(err error) string {
	if err != nil {
		return hcdomain.StatusDown
	}
	return hcdomain.StatusOk
}
