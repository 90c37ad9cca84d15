package api

import (
	"fmt"

	"flightcal/server/internal/common"
	"flightcal/server/internal/config"
	"flightcal/server/internal/logging"
	"flightcal/server/internal/metrics"
	"flightcal/server/internal/providers"
	"flightcal/server/internal/services"
)

type Services struct {
	Lookup   *services.FlightLookupService
	Sessions common.SessionStore
	Signer   *common.SessionSigner
}

type Dependencies struct {
	Config   *config.Config
	Metrics  *metrics.MetricsRegistry
	Services *Services
}

func InitDependencies(cfg *config.Config, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	provider := providers.NewAviationStackProvider(
		cfg.AviationStack.APIKey,
		cfg.AviationStack.BaseURL,
		cfg.AviationStack.Timeout,
	)
	if !provider.Configured() {
		logging.Warn("AVIATION_STACK_API_KEY is not set; flight lookups will fail until it is configured")
	}

	sessions, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	svcs := &Services{
		Lookup:   services.NewFlightLookupService(provider, metricsReg),
		Sessions: sessions,
		Signer:   common.NewSessionSigner([]byte(cfg.Session.Secret), cfg.Session.TTL),
	}

	return &Dependencies{
		Config:   cfg,
		Metrics:  metricsReg,
		Services: svcs,
	}, nil
}

func newSessionStore(cfg *config.Config) (common.SessionStore, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		logging.Info("Using in-memory session store", "ttl", cfg.Session.TTL.String())
		return common.NewMemorySessionStore(cfg.Session.TTL), nil
	case config.SessionBackendRedis:
		logging.Info("Using Redis session store", "ttl", cfg.Session.TTL.String())
		return common.NewRedisSessionStore(common.NewRedisClient(cfg), cfg.Session.TTL), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q (want %q or %q)",
			cfg.Session.Backend, config.SessionBackendMemory, config.SessionBackendRedis)
	}
}

// Close releases the session store connection
func (d *Dependencies) Close() error {
	return d.Services.Sessions.Close()
}
