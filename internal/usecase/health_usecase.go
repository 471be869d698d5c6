package usecase

import (
	"context"

	"jobready-backend/pkg/logger"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

type healthUsecase struct {
	gateway string
	store   string
	ping    Pinger
}

func NewHealthUsecase(gateway, store string, ping Pinger) HealthUsecase {
	return &healthUsecase{gateway: gateway, store: store, ping: ping}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := "ok"
	if u.ping != nil {
		if err := u.ping(ctx); err != nil {
			logger.Log.Warnw("Health check failed", "store", u.store, "error", err)
			status = "degraded"
		}
	}
	return map[string]string{
		"status":  status,
		"gateway": u.gateway,
		"store":   u.store,
	}
}
