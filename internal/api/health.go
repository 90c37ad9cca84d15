package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"flightcal/server/internal/constants"
	"flightcal/server/internal/models/entities"
)

// ProviderStatus is satisfied by *services.FlightLookupService
type ProviderStatus interface {
	ProviderConfigured() bool
}

// Pinger is satisfied by every common.SessionStore
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Reports provider configuration and session store reachability.
// @Tags Misc
// @Success 200 {object} entities.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(provider ProviderStatus, sessions Pinger, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		// Aviation Stack only needs a key; it is never called from here
		avStatus := constants.APIStatusOk
		avDetails := "API key configured"
		if !provider.ProviderConfigured() {
			avStatus = constants.APIStatusMisconfigured
			avDetails = constants.GetErrorMessage(constants.ErrCodeMissingAPIKey)
		}
		services["aviationstack"] = entities.ServiceStatus{
			Status:  string(avStatus),
			Details: avDetails,
		}

		// Check session store
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		storeStatus := constants.APIStatusOk
		storeDetails := "Session store reachable"
		if err := sessions.Ping(ctx); err != nil {
			storeStatus = constants.APIStatusDown
			storeDetails = err.Error()
		}
		services["session_store"] = entities.ServiceStatus{
			Status:  string(storeStatus),
			Details: storeDetails,
		}

		overallStatus := constants.APIStatusOk
		for _, svc := range services {
			if svc.Status != string(constants.APIStatusOk) {
				overallStatus = constants.APIStatusDown
				break
			}
		}

		uptime := time.Since(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   string(overallStatus),
			UpSince:  upSince.UTC(),
			Uptime:   uptime,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
