package healthcheck

import (
	"github.com/x-xyz/nftescrow/base/ctx"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"
)

// Report is the per dependency result of a check
type Report struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}

// Healthy reports whether every dependency answered
func (r Report) Healthy() bool {
	return r.Mongo == StatusOk && r.Redis == StatusOk
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) Report
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingMongo(context ctx.Ctx) error
	PingRedis(context ctx.Ctx) error
}
