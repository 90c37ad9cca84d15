package services

import (
	"errors"
	"testing"
)

func TestParseLookupQuery(t *testing.T) {
	tests := []struct {
		name          string
		flightNumber  string
		departureIata string
		arrivalIata   string
		want          LookupQuery
		wantErr       bool
	}{
		{name: "flight number", flightNumber: "AB123", want: FlightNumberQuery{FlightNumber: "AB123"}},
		{name: "flight number wins over route", flightNumber: "AB123", departureIata: "NRT", arrivalIata: "LHR", want: FlightNumberQuery{FlightNumber: "AB123"}},
		{name: "route", departureIata: "NRT", arrivalIata: "LHR", want: RouteQuery{DepartureIata: "NRT", ArrivalIata: "LHR"}},
		{name: "trimmed", flightNumber: "  AB123 ", want: FlightNumberQuery{FlightNumber: "AB123"}},
		{name: "nothing", wantErr: true},
		{name: "departure only", departureIata: "NRT", wantErr: true},
		{name: "arrival only", arrivalIata: "LHR", wantErr: true},
		{name: "blank flight number and half route", flightNumber: "   ", arrivalIata: "LHR", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLookupQuery(tt.flightNumber, tt.departureIata, tt.arrivalIata)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidQuery) {
					t.Fatalf("Expected ErrInvalidQuery, got %v", err)
				}
				if got != nil {
					t.Errorf("Expected nil query, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestLookupQuery_QueryType(t *testing.T) {
	if (FlightNumberQuery{}).QueryType() != "flight_number" {
		t.Error("Unexpected flight number query type")
	}
	if (RouteQuery{}).QueryType() != "route" {
		t.Error("Unexpected route query type")
	}
}
