package ui

import (
	"fmt"
	"strings"

	"flightcal/server/internal/calendar"
	"flightcal/server/internal/constants"
	"flightcal/server/internal/models/dtos"
)

// ResultCard is the display form of a matched flight.
type ResultCard struct {
	FlightNumber    string
	TimeZone        string
	OriginCode      string
	DestinationCode string
	OriginName      string
	DestinationName string
	DepartureTime   string
	ArrivalTime     string
	Date            string
	Duration        string
	Status          string
	CalendarURL     string
}

// PageData is everything the search page template renders.
type PageData struct {
	T             constants.Translation
	Lang          constants.Language
	Mode          SearchMode
	FlightNumber  string
	DepartureIata string
	ArrivalIata   string
	Loading       bool
	Error         string
	Result        *ResultCard
}

func newPageData(s *SearchSession, lang constants.Language) PageData {
	data := PageData{
		T:             constants.T(lang),
		Lang:          lang,
		Mode:          s.SearchMode,
		FlightNumber:  s.FlightNumber,
		DepartureIata: s.DepartureIata,
		ArrivalIata:   s.ArrivalIata,
		Loading:       s.State.Loading(),
		Error:         s.State.Message(),
	}
	if f, ok := s.State.Flight(); ok {
		card := NewResultCard(f, lang)
		data.Result = &card
	}
	return data
}

// NewResultCard derives the card fields from a normalized flight.
// Clock times and the date are shown in each timestamp's own offset.
func NewResultCard(f dtos.NormalizedFlight, lang constants.Language) ResultCard {
	t := constants.T(lang)

	card := ResultCard{
		FlightNumber:    f.FlightNumber,
		TimeZone:        f.TimeZone,
		OriginCode:      locationCode(f.StartLocation),
		DestinationCode: locationCode(f.EndLocation),
		OriginName:      locationName(f.StartLocation),
		DestinationName: locationName(f.EndLocation),
		Status:          t.StatusLabel(f.Status),
		CalendarURL:     calendar.BuildCalendarURL(f, lang),
	}

	start, startOK := calendar.ParseTimestamp(f.StartTime)
	end, endOK := calendar.ParseTimestamp(f.EndTime)
	if startOK {
		card.DepartureTime = start.Format("15:04")
		card.Date = start.Format("2006-01-02")
	}
	if endOK {
		card.ArrivalTime = end.Format("15:04")
	}
	if startOK && endOK && !end.Before(start) {
		total := int(end.Sub(start).Minutes())
		card.Duration = fmt.Sprintf("%d%s %d%s", total/60, t.Hours, total%60, t.Minutes)
	}
	return card
}

// locationCode returns the text inside the parentheses of "<name> (<code>)".
func locationCode(location string) string {
	_, rest, found := strings.Cut(location, "(")
	if !found {
		return ""
	}
	code, _, _ := strings.Cut(rest, ")")
	return strings.TrimSpace(code)
}

// locationName returns the text before the parenthesis.
func locationName(location string) string {
	name, _, _ := strings.Cut(location, "(")
	return strings.TrimSpace(name)
}
