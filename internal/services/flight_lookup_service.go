package services

import (
	"context"
	"time"

	"flightcal/server/internal/constants"
	"flightcal/server/internal/logging"
	"flightcal/server/internal/metrics"
	"flightcal/server/internal/models/dtos"
	"flightcal/server/internal/providers"
)

// lookupLimit is sent upstream; only the first match is ever shown.
const lookupLimit = 1

// LookupResult holds zero or one normalized flight.
type LookupResult struct {
	Flights []dtos.NormalizedFlight
}

// Found reports whether the provider matched a flight.
func (r *LookupResult) Found() bool {
	return r != nil && len(r.Flights) > 0
}

type FlightLookupService struct {
	provider providers.FlightProvider
	metrics  *metrics.MetricsRegistry
}

// NewFlightLookupService wires the provider; metricsReg may be nil.
func NewFlightLookupService(provider providers.FlightProvider, metricsReg *metrics.MetricsRegistry) *FlightLookupService {
	return &FlightLookupService{
		provider: provider,
		metrics:  metricsReg,
	}
}

// Lookup fetches the first flight matching q. An empty result is not an error.
func (s *FlightLookupService) Lookup(ctx context.Context, q LookupQuery) (*LookupResult, error) {
	start := time.Now()
	resp, err := s.provider.FetchFlights(ctx, q.fetchOptions(lookupLimit))
	s.observeUpstream(start, err)

	if err != nil {
		s.countLookup(q, constants.LookupOutcomeFailed)
		return nil, err
	}

	matches := 0
	if resp != nil {
		matches = len(resp.Data)
	}

	result := &LookupResult{Flights: []dtos.NormalizedFlight{}}
	if matches > 0 {
		result.Flights = append(result.Flights, NormalizeFlight(resp.Data[0]))
		s.countLookup(q, constants.LookupOutcomeFound)
	} else {
		s.countLookup(q, constants.LookupOutcomeNotFound)
	}

	logging.Debug("Flight lookup completed",
		"query_type", q.QueryType(),
		"matches", matches,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// ProviderConfigured reports whether the upstream credential is present.
func (s *FlightLookupService) ProviderConfigured() bool {
	return s.provider.Configured()
}

func (s *FlightLookupService) observeUpstream(start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = providers.ErrorCode(err)
		if outcome == "" {
			outcome = "unknown"
		}
	}
	s.metrics.UpstreamRequestsTotal.WithLabelValues(outcome).Inc()
	s.metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
}

func (s *FlightLookupService) countLookup(q LookupQuery, outcome constants.LookupOutcome) {
	if s.metrics == nil {
		return
	}
	s.metrics.LookupsTotal.WithLabelValues(q.QueryType(), string(outcome)).Inc()
}
