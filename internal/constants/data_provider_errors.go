package constants

// Flight data provider error codes
const (
	ErrCodeMissingAPIKey = "MISSING_API_KEY"
	ErrCodeUpstreamHTTP  = "UPSTREAM_HTTP_ERROR"
	ErrCodeNetworkError  = "NETWORK_ERROR"
	ErrCodeDecodeError   = "DECODE_ERROR"
	ErrCodeUpstreamAPI   = "UPSTREAM_API_ERROR"
)

var DataProviderErrorMessages = map[string]string{
	ErrCodeMissingAPIKey: "AVIATION_STACK_API_KEY is not defined in environment variables",
	ErrCodeUpstreamHTTP:  "Aviation Stack API returned an error status",
	ErrCodeNetworkError:  "Unable to reach Aviation Stack",
	ErrCodeDecodeError:   "Failed to decode Aviation Stack response",
	ErrCodeUpstreamAPI:   "Aviation Stack rejected the request",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
