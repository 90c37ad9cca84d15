package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"flightcal/server/internal/constants"
	"flightcal/server/internal/models/dtos"
)

const (
	googleCalendarRenderURL = "https://www.google.com/calendar/render"

	// basic ISO 8601 in UTC, as Google Calendar expects in the dates param
	compactUTCLayout = "20060102T150405Z"
)

// accepted forms of provider timestamps, most specific first
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

var rawTimestampReplacer = strings.NewReplacer("-", "", ":", "")

// BuildCalendarURL returns a Google Calendar "create event" link for the flight.
// Unsupported languages fall back to Japanese.
func BuildCalendarURL(flight dtos.NormalizedFlight, lang constants.Language) string {
	var title, details string
	switch constants.ParseLanguage(string(lang)) {
	case constants.LanguageEnglish:
		title = fmt.Sprintf("Flight %s", flight.FlightNumber)
		details = fmt.Sprintf("Flight from %s to %s", flight.StartLocation, flight.EndLocation)
	default:
		title = fmt.Sprintf("フライト %s", flight.FlightNumber)
		details = fmt.Sprintf("%s から %s へのフライト", flight.StartLocation, flight.EndLocation)
	}
	location := fmt.Sprintf("%s to %s", flight.StartLocation, flight.EndLocation)

	dates := FormatCompactUTC(flight.StartTime) + "/" + FormatCompactUTC(flight.EndTime)

	var b strings.Builder
	b.WriteString(googleCalendarRenderURL)
	b.WriteString("?action=TEMPLATE")
	b.WriteString("&text=" + encodeComponent(title))
	b.WriteString("&dates=" + dates)
	b.WriteString("&details=" + encodeComponent(details))
	b.WriteString("&location=" + encodeComponent(location))
	return b.String()
}

// FormatCompactUTC renders an ISO 8601 timestamp as 20060102T150405Z.
// Timestamps without an offset are read as UTC. Text that does not parse
// has its punctuation and fractional seconds stripped instead.
func FormatCompactUTC(ts string) string {
	if t, ok := ParseTimestamp(ts); ok {
		return t.UTC().Format(compactUTCLayout)
	}

	ts = strings.TrimSpace(ts)
	if i := strings.IndexByte(ts, '.'); i >= 0 {
		end := i + 1
		for end < len(ts) && ts[end] >= '0' && ts[end] <= '9' {
			end++
		}
		ts = ts[:i] + ts[end:]
	}
	return rawTimestampReplacer.Replace(ts)
}

// ParseTimestamp reads a provider timestamp, keeping its own offset.
// Timestamps without an offset are read as UTC.
func ParseTimestamp(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// encodeComponent percent-encodes s the way browsers' encodeURIComponent does.
func encodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return componentUnreserved.Replace(escaped)
}

var componentUnreserved = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
