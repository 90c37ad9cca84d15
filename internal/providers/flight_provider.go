package providers

import (
	"context"
	"errors"
	"fmt"

	"flightcal/server/internal/constants"
	"flightcal/server/internal/models/dtos"
)

// FlightProvider defines the interface for external flight data sources
type FlightProvider interface {
	// FetchFlights runs one query against the provider and returns its decoded response
	FetchFlights(ctx context.Context, opts FetchOptions) (*dtos.AviationStackFlightsResponse, error)

	// GetProviderType returns the provider type identifier
	GetProviderType() string

	// Configured reports whether the provider has the credential it needs
	Configured() bool
}

// FetchOptions selects flights either by flight code or by route.
// Empty fields are left out of the upstream query.
type FetchOptions struct {
	FlightNumber string // flight_iata
	DepIATA      string // dep_iata
	ArrIATA      string // arr_iata
	Limit        int
}

// ProviderError represents a provider-specific error
type ProviderError struct {
	Code       string
	Message    string
	Details    string
	StatusCode int // upstream HTTP status, 0 when no response was received
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the ProviderError code in err's chain, or "".
func ErrorCode(err error) string {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr.Code
	}
	return ""
}

// IsConfigurationError reports whether err comes from a missing credential.
func IsConfigurationError(err error) bool {
	return ErrorCode(err) == constants.ErrCodeMissingAPIKey
}
