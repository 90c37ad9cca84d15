package entities

import "time"

// ServiceStatus is one dependency's entry in the health report
type ServiceStatus struct {
	Status  string `json:"status"` // ok, down or misconfigured
	Details string `json:"details,omitempty"`
}

// HealthCheckResponse is the body of GET /healthCheck
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Services map[string]ServiceStatus `json:"services"`
	UpSince  time.Time                `json:"up_since"`
	Uptime   string                   `json:"uptime"`
}
