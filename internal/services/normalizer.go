package services

import (
	"fmt"

	"flightcal/server/internal/models/dtos"
)

const (
	unknownAirport = "Unknown"
	unknownCode    = "-"
)

// NormalizeFlight maps one provider record onto the flat display shape.
// It is total: every missing group or field falls back to a placeholder.
func NormalizeFlight(record dtos.AviationStackFlight) dtos.NormalizedFlight {
	var flightNumber string
	if record.Flight != nil {
		flightNumber = orDefault(record.Flight.IATA, record.Flight.Number)
	}

	var depAirport, depIATA, depTZ, depScheduled string
	if dep := record.Departure; dep != nil {
		depAirport, depIATA, depTZ, depScheduled = dep.Airport, dep.IATA, dep.Timezone, dep.Scheduled
	}

	var arrAirport, arrIATA, arrTZ, arrScheduled string
	if arr := record.Arrival; arr != nil {
		arrAirport, arrIATA, arrTZ, arrScheduled = arr.Airport, arr.IATA, arr.Timezone, arr.Scheduled
	}

	return dtos.NormalizedFlight{
		FlightNumber:  flightNumber,
		StartTime:     depScheduled,
		EndTime:       arrScheduled,
		StartLocation: formatLocation(depAirport, depIATA),
		EndLocation:   formatLocation(arrAirport, arrIATA),
		TimeZone:      fmt.Sprintf("%s / %s", orDefault(depTZ, unknownCode), orDefault(arrTZ, unknownCode)),
		Status:        record.FlightStatus,
	}
}

// formatLocation renders "<airport> (<IATA>)".
func formatLocation(airport, iata string) string {
	return fmt.Sprintf("%s (%s)", orDefault(airport, unknownAirport), orDefault(iata, unknownCode))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
