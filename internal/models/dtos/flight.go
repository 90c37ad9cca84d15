package dtos

// NormalizedFlight is the flat display record returned by GET /api/flights.
type NormalizedFlight struct {
	FlightNumber  string `json:"flightNumber"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
	TimeZone      string `json:"timeZone"`
	Status        string `json:"status"`
}

// ErrorResponse is the body of 400 and 500 lookup responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
