package api

import (
	"context"
	"fmt"
	"net/http"

	"flightcal/server/internal/constants"
	"flightcal/server/internal/logging"
	"flightcal/server/internal/middleware"
	"flightcal/server/internal/models/dtos"
	"flightcal/server/internal/services"
)

// FlightLookup is satisfied by *services.FlightLookupService
type FlightLookup interface {
	Lookup(ctx context.Context, q services.LookupQuery) (*services.LookupResult, error)
}

// FlightsLookupHandler godoc
// @Summary      Look up a flight
// @Description  Returns the first flight matching a flight number, or a departure/arrival pair.
// @Tags         Flights
// @Produce      json
// @Param        flightNumber   query    string  false  "Flight IATA code"
// @Param        departureIata  query    string  false  "Departure airport IATA code"
// @Param        arrivalIata    query    string  false  "Arrival airport IATA code"
// @Success      200            {array}  dtos.NormalizedFlight
// @Failure      404            {array}  dtos.NormalizedFlight
// @Failure      400,500        {object} dtos.ErrorResponse
// @Router       /api/flights [get]
func FlightsLookupHandler(lookup FlightLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		q, err := services.ParseLookupQuery(
			params.Get("flightNumber"),
			params.Get("departureIata"),
			params.Get("arrivalIata"),
		)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := lookup.Lookup(r.Context(), q)
		if err != nil {
			logging.WithRequest(middleware.GetRequestID(r.Context()), r.URL.Path).
				Errorw("Flight lookup failed", "query_type", q.QueryType(), "error", err)
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("%s: %v", constants.MsgLookupFailedPrefix, err))
			return
		}

		if !result.Found() {
			respondWithJSON(w, http.StatusNotFound, []dtos.NormalizedFlight{})
			return
		}
		respondWithJSON(w, http.StatusOK, result.Flights)
	}
}

