package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightcal/server/internal/models/entities"
)

type stubProviderStatus bool

func (s stubProviderStatus) ProviderConfigured() bool { return bool(s) }

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func runHealthCheck(t *testing.T, provider ProviderStatus, store Pinger) entities.HealthCheckResponse {
	t.Helper()
	handler := HealthCheckHandler(provider, store, time.Now().Add(-time.Minute))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthCheck", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var resp entities.HealthCheckResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp
}

func TestHealthCheckHandler_AllOk(t *testing.T) {
	resp := runHealthCheck(t, stubProviderStatus(true), stubPinger{})

	if resp.Status != "ok" {
		t.Errorf("Expected ok, got %s", resp.Status)
	}
	if resp.Services["aviationstack"].Status != "ok" || resp.Services["session_store"].Status != "ok" {
		t.Errorf("Unexpected services %+v", resp.Services)
	}
	if resp.Uptime != "1m0s" {
		t.Errorf("Expected uptime 1m0s, got %s", resp.Uptime)
	}
}

func TestHealthCheckHandler_MissingKey(t *testing.T) {
	resp := runHealthCheck(t, stubProviderStatus(false), stubPinger{})

	if resp.Services["aviationstack"].Status != "misconfigured" {
		t.Errorf("Expected misconfigured, got %+v", resp.Services["aviationstack"])
	}
	if resp.Status != "down" {
		t.Errorf("Expected overall down, got %s", resp.Status)
	}
}

func TestHealthCheckHandler_StoreDown(t *testing.T) {
	resp := runHealthCheck(t, stubProviderStatus(true), stubPinger{err: errors.New("dial tcp: refused")})

	if resp.Services["session_store"].Status != "down" {
		t.Errorf("Expected session store down, got %+v", resp.Services["session_store"])
	}
	if resp.Services["session_store"].Details != "dial tcp: refused" {
		t.Errorf("Expected error details, got %q", resp.Services["session_store"].Details)
	}
}
