package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flightcal/server/internal/constants"
	"flightcal/server/internal/logging"
	"flightcal/server/internal/models/dtos"
)

const DefaultAviationStackBaseURL = "http://api.aviationstack.com/v1"

// AviationStackProvider implements FlightProvider for the AviationStack API
type AviationStackProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAviationStackProvider creates a provider with an injected access key.
// A zero timeout keeps the http.Client default (no client-side deadline).
func NewAviationStackProvider(apiKey, baseURL string, timeout time.Duration) *AviationStackProvider {
	if baseURL == "" {
		baseURL = DefaultAviationStackBaseURL
	}

	return &AviationStackProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetProviderType returns the provider type identifier
func (p *AviationStackProvider) GetProviderType() string {
	return "aviationstack"
}

func (p *AviationStackProvider) Configured() bool {
	return p.APIKey != ""
}

// FetchFlights queries /flights once. No retries.
func (p *AviationStackProvider) FetchFlights(ctx context.Context, opts FetchOptions) (*dtos.AviationStackFlightsResponse, error) {
	var result dtos.AviationStackFlightsResponse
	if err := p.doGET(ctx, "/flights", opts.values(), &result); err != nil {
		logging.Error("Failed to fetch flights",
			"provider", p.GetProviderType(),
			"code", ErrorCode(err),
			"error", err.Error(),
		)
		return nil, err
	}

	if result.Error != nil {
		err := &ProviderError{
			Code:    constants.ErrCodeUpstreamAPI,
			Message: fmt.Sprintf("Aviation Stack API error: %s: %s", result.Error.Code, result.Error.Message),
			Details: result.Error.Code,
		}
		logging.Error("Failed to fetch flights",
			"provider", p.GetProviderType(),
			"code", err.Code,
			"error", err.Error(),
		)
		return nil, err
	}

	return &result, nil
}

func (o FetchOptions) values() url.Values {
	params := url.Values{}
	if o.FlightNumber != "" {
		params.Set("flight_iata", o.FlightNumber)
	}
	if o.DepIATA != "" {
		params.Set("dep_iata", o.DepIATA)
	}
	if o.ArrIATA != "" {
		params.Set("arr_iata", o.ArrIATA)
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	return params
}

// ============================================================================
// HTTP Helper Methods
// ============================================================================

// doGET performs an authenticated GET and decodes the JSON body into result
func (p *AviationStackProvider) doGET(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	// Credential is checked per call, not at construction
	if p.APIKey == "" {
		return &ProviderError{
			Code:    constants.ErrCodeMissingAPIKey,
			Message: constants.GetErrorMessage(constants.ErrCodeMissingAPIKey),
		}
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("access_key", p.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: "Failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.GetErrorMessage(constants.ErrCodeNetworkError),
			Err:     redactKey(err, p.APIKey),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &ProviderError{
			Code:       constants.ErrCodeUpstreamHTTP,
			Message:    fmt.Sprintf("Aviation Stack API error: %d %s", resp.StatusCode, reasonPhrase(resp)),
			Details:    string(bodyBytes),
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &ProviderError{
			Code:       constants.ErrCodeDecodeError,
			Message:    constants.GetErrorMessage(constants.ErrCodeDecodeError),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	return nil
}

// reasonPhrase returns the status text the upstream sent, e.g. "Service Unavailable".
func reasonPhrase(resp *http.Response) string {
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

// redactKey keeps the access key out of *url.Error messages, which embed the request URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), key, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
