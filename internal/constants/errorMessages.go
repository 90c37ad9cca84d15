package constants

const (
	MsgInvalidLookupQuery = "Either flight number OR both departure and arrival IATA codes are required"
	MsgLookupFailedPrefix = "Failed to fetch flight data"
)
