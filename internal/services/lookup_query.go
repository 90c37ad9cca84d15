package services

import (
	"errors"
	"strings"

	"flightcal/server/internal/constants"
	"flightcal/server/internal/providers"
)

// ErrInvalidQuery is returned when neither a flight number nor a full route is given.
var ErrInvalidQuery = errors.New(constants.MsgInvalidLookupQuery)

// LookupQuery is either a FlightNumberQuery or a RouteQuery.
type LookupQuery interface {
	// QueryType names the variant for logs and metrics
	QueryType() string
	fetchOptions(limit int) providers.FetchOptions
}

type FlightNumberQuery struct {
	FlightNumber string
}

type RouteQuery struct {
	DepartureIata string
	ArrivalIata   string
}

func (q FlightNumberQuery) QueryType() string { return "flight_number" }
func (q RouteQuery) QueryType() string        { return "route" }

func (q FlightNumberQuery) fetchOptions(limit int) providers.FetchOptions {
	return providers.FetchOptions{FlightNumber: q.FlightNumber, Limit: limit}
}

func (q RouteQuery) fetchOptions(limit int) providers.FetchOptions {
	return providers.FetchOptions{DepIATA: q.DepartureIata, ArrIATA: q.ArrivalIata, Limit: limit}
}

// ParseLookupQuery builds the query from raw request parameters.
// A flight number wins over route parameters when both are supplied.
func ParseLookupQuery(flightNumber, departureIata, arrivalIata string) (LookupQuery, error) {
	flightNumber = strings.TrimSpace(flightNumber)
	departureIata = strings.TrimSpace(departureIata)
	arrivalIata = strings.TrimSpace(arrivalIata)

	if flightNumber != "" {
		return FlightNumberQuery{FlightNumber: flightNumber}, nil
	}
	if departureIata != "" && arrivalIata != "" {
		return RouteQuery{DepartureIata: departureIata, ArrivalIata: arrivalIata}, nil
	}
	return nil, ErrInvalidQuery
}
