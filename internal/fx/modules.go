package fx

import (
	"go.uber.org/fx"

	"pug-tracker/internal/api"
	"pug-tracker/internal/config"
	"pug-tracker/internal/logger"
	"pug-tracker/internal/ratelimit"
	"pug-tracker/internal/service"
)

func ProvideCounterStore() ratelimit.CounterStore {
	return ratelimit.NewMemoryStore()
}

func ProvideLimiter(cfg *config.Config, store ratelimit.CounterStore) *ratelimit.Limiter {
	return ratelimit.NewLimiter(store, cfg.RateLimit, cfg.RateWindow)
}

func ProvideBackend(client *api.Client) service.Backend {
	return client
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// rate limiting
	fx.Provide(ProvideCounterStore),
	fx.Provide(ProvideLimiter),
	// api client
	fx.Provide(api.NewClient),
	fx.Provide(ProvideBackend),
	// svc
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewStandingsService),
	fx.Provide(service.NewLeaderboardService),
	fx.Provide(service.NewHeadToHeadService),
)
