package ui

import (
	"context"
	"fmt"

	"flightcal/server/internal/common"
	"flightcal/server/internal/constants"
	"flightcal/server/internal/logging"
	"flightcal/server/internal/metrics"
)

const (
	searchOutcomeFound       = "found"
	searchOutcomeAPIError    = "api_error"
	searchOutcomeNotFound    = "not_found"
	searchOutcomeFetchFailed = "fetch_failed"
)

// Controller drives a session's search state through one lookup.
// Submissions are not serialized; the page disables submit while Loading.
type Controller struct {
	client   FlightLookupClient
	sessions common.SessionStore
	metrics  *metrics.MetricsRegistry
}

func NewController(client FlightLookupClient, sessions common.SessionStore, metricsReg *metrics.MetricsRegistry) *Controller {
	return &Controller{
		client:   client,
		sessions: sessions,
		metrics:  metricsReg,
	}
}

// Submit runs a search for the session's current inputs.
// Blank inputs for the selected mode leave the session untouched.
// The returned error only reports session store failures; lookup failures
// end up in the session state.
// Saves outlive ctx so a disconnected browser cannot leave the session stuck
// in the searching state.
func (c *Controller) Submit(ctx context.Context, sessionID string, s *SearchSession, lang constants.Language) error {
	query, ok := s.lookupQuery()
	if !ok {
		return nil
	}
	saveCtx := context.WithoutCancel(ctx)

	s.State = Searching()
	if err := c.sessions.Save(saveCtx, sessionID, s); err != nil {
		return fmt.Errorf("save searching state: %w", err)
	}

	resp, err := c.client.Lookup(ctx, query)
	if err != nil {
		logging.Warn("UI lookup failed", "session_id", sessionID, "mode", s.SearchMode, "error", err)
	}

	state, outcome := settle(resp, err, constants.T(lang))
	s.State = state
	c.countSearch(s.SearchMode, outcome)

	if err := c.sessions.Save(saveCtx, sessionID, s); err != nil {
		return fmt.Errorf("save search result: %w", err)
	}
	return nil
}

// settle maps a lookup response onto exactly one terminal state.
func settle(resp *LookupResponse, err error, t constants.Translation) (SearchState, string) {
	switch {
	case err != nil || resp == nil:
		return Failed(t.ErrorFetch), searchOutcomeFetchFailed
	case resp.OK() && len(resp.Flights) > 0:
		return Succeeded(resp.Flights[0]), searchOutcomeFound
	case resp.Error != "":
		return Failed(resp.Error), searchOutcomeAPIError
	default:
		return Failed(t.ErrorNotFound), searchOutcomeNotFound
	}
}

func (c *Controller) countSearch(mode SearchMode, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.UISearchesTotal.WithLabelValues(string(mode), outcome).Inc()
}
