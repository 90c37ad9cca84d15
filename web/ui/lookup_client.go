package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"flightcal/server/internal/models/dtos"
)

// LookupResponse is what the lookup endpoint answered, whatever its status.
type LookupResponse struct {
	StatusCode int
	Flights    []dtos.NormalizedFlight
	Error      string
}

func (r *LookupResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// FlightLookupClient issues lookups against GET /api/flights.
type FlightLookupClient interface {
	Lookup(ctx context.Context, query url.Values) (*LookupResponse, error)
}

// APILookupClient calls the lookup endpoint over HTTP.
type APILookupClient struct {
	BaseURL string
	Client  *http.Client
}

func NewAPILookupClient(baseURL string) *APILookupClient {
	return &APILookupClient{
		BaseURL: baseURL,
		Client:  &http.Client{},
	}
}

// Lookup returns an error only for transport and body-decode failures.
func (c *APILookupClient) Lookup(ctx context.Context, query url.Values) (*LookupResponse, error) {
	endpoint := c.BaseURL + "/api/flights?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read lookup response: %w", err)
	}

	out := &LookupResponse{StatusCode: resp.StatusCode}

	// The endpoint answers either an array of flights or an {"error": ...} object
	trimmed := bytes.TrimSpace(body)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		if err := json.Unmarshal(trimmed, &out.Flights); err != nil {
			return nil, fmt.Errorf("decode lookup response: %w", err)
		}
	default:
		var errBody dtos.ErrorResponse
		if err := json.Unmarshal(trimmed, &errBody); err != nil {
			return nil, fmt.Errorf("decode lookup response: %w", err)
		}
		out.Error = errBody.Error
	}
	return out, nil
}
