package dtos

// ---- AVIATIONSTACK /flights ----

type AviationStackFlightsResponse struct {
	Pagination *AviationStackPagination `json:"pagination"`
	Data       []AviationStackFlight    `json:"data"`
	Error      *AviationStackAPIError   `json:"error,omitempty"` // set on 200 OK rejections
}

type AviationStackPagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

type AviationStackAPIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AviationStackFlight is one flight occurrence. Every group is nullable.
type AviationStackFlight struct {
	FlightDate   string                   `json:"flight_date"`
	FlightStatus string                   `json:"flight_status"`
	Departure    *AviationStackDeparture  `json:"departure"`
	Arrival      *AviationStackArrival    `json:"arrival"`
	Airline      *AviationStackAirline    `json:"airline"`
	Flight       *AviationStackFlightInfo `json:"flight"`
	Aircraft     *AviationStackAircraft   `json:"aircraft"`
	Live         *AviationStackLive       `json:"live"`
}

type AviationStackDeparture struct {
	Airport         string `json:"airport"`
	Timezone        string `json:"timezone"`
	IATA            string `json:"iata"`
	ICAO            string `json:"icao"`
	Terminal        string `json:"terminal"`
	Gate            string `json:"gate"`
	Delay           *int   `json:"delay"`
	Scheduled       string `json:"scheduled"`
	Estimated       string `json:"estimated"`
	Actual          string `json:"actual"`
	EstimatedRunway string `json:"estimated_runway"`
	ActualRunway    string `json:"actual_runway"`
}

type AviationStackArrival struct {
	Airport         string `json:"airport"`
	Timezone        string `json:"timezone"`
	IATA            string `json:"iata"`
	ICAO            string `json:"icao"`
	Terminal        string `json:"terminal"`
	Gate            string `json:"gate"`
	Baggage         string `json:"baggage"`
	Delay           *int   `json:"delay"`
	Scheduled       string `json:"scheduled"`
	Estimated       string `json:"estimated"`
	Actual          string `json:"actual"`
	EstimatedRunway string `json:"estimated_runway"`
	ActualRunway    string `json:"actual_runway"`
}

type AviationStackAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

type AviationStackFlightInfo struct {
	Number     string                   `json:"number"`
	IATA       string                   `json:"iata"`
	ICAO       string                   `json:"icao"`
	Codeshared *AviationStackCodeshared `json:"codeshared"`
}

type AviationStackCodeshared struct {
	AirlineName  string `json:"airline_name"`
	AirlineIATA  string `json:"airline_iata"`
	AirlineICAO  string `json:"airline_icao"`
	FlightNumber string `json:"flight_number"`
	FlightIATA   string `json:"flight_iata"`
	FlightICAO   string `json:"flight_icao"`
}

type AviationStackAircraft struct {
	Registration string `json:"registration"`
	IATA         string `json:"iata"`
	ICAO         string `json:"icao"`
	ICAO24       string `json:"icao24"`
}

type AviationStackLive struct {
	Updated         string  `json:"updated"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	Direction       float64 `json:"direction"`
	SpeedHorizontal float64 `json:"speed_horizontal"`
	SpeedVertical   float64 `json:"speed_vertical"`
	IsGround        bool    `json:"is_ground"`
}
