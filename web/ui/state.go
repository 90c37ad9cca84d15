package ui

import (
	"encoding/json"
	"net/url"
	"strings"

	"flightcal/server/internal/models/dtos"
)

// SearchMode selects which form inputs drive a lookup.
type SearchMode string

const (
	SearchModeNumber SearchMode = "number"
	SearchModeRoute  SearchMode = "route"
)

// ParseSearchMode maps form input onto a mode; anything unknown is rejected.
func ParseSearchMode(s string) (SearchMode, bool) {
	switch SearchMode(s) {
	case SearchModeNumber, SearchModeRoute:
		return SearchMode(s), true
	default:
		return "", false
	}
}

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSearching Phase = "searching"
	PhaseSuccess   Phase = "success"
	PhaseError     Phase = "error"
)

// SearchState is the outcome of the most recent search.
// A flight is only present in PhaseSuccess and a message only in PhaseError.
// The zero value is idle.
type SearchState struct {
	phase   Phase
	flight  *dtos.NormalizedFlight
	message string
}

func Idle() SearchState      { return SearchState{phase: PhaseIdle} }
func Searching() SearchState { return SearchState{phase: PhaseSearching} }

func Succeeded(f dtos.NormalizedFlight) SearchState {
	return SearchState{phase: PhaseSuccess, flight: &f}
}

func Failed(message string) SearchState {
	return SearchState{phase: PhaseError, message: message}
}

func (s SearchState) Phase() Phase {
	if s.phase == "" {
		return PhaseIdle
	}
	return s.phase
}

// Loading is true while a lookup is in flight.
func (s SearchState) Loading() bool { return s.phase == PhaseSearching }

// Flight returns the matched flight in PhaseSuccess.
func (s SearchState) Flight() (dtos.NormalizedFlight, bool) {
	if s.phase != PhaseSuccess || s.flight == nil {
		return dtos.NormalizedFlight{}, false
	}
	return *s.flight, true
}

// Message returns the error text in PhaseError, or "".
func (s SearchState) Message() string {
	if s.phase != PhaseError {
		return ""
	}
	return s.message
}

type searchStateJSON struct {
	Phase   Phase                  `json:"phase"`
	Flight  *dtos.NormalizedFlight `json:"flight,omitempty"`
	Message string                 `json:"message,omitempty"`
}

func (s SearchState) MarshalJSON() ([]byte, error) {
	out := searchStateJSON{Phase: s.Phase()}
	if f, ok := s.Flight(); ok {
		out.Flight = &f
	}
	out.Message = s.Message()
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the state through its constructors; inconsistent input decodes as idle.
func (s *SearchState) UnmarshalJSON(data []byte) error {
	var in searchStateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Phase {
	case PhaseSearching:
		*s = Searching()
	case PhaseSuccess:
		if in.Flight == nil {
			*s = Idle()
			return nil
		}
		*s = Succeeded(*in.Flight)
	case PhaseError:
		*s = Failed(in.Message)
	default:
		*s = Idle()
	}
	return nil
}

// SearchSession is the per-browser form and result state.
type SearchSession struct {
	SearchMode    SearchMode  `json:"search_mode"`
	FlightNumber  string      `json:"flight_number"`
	DepartureIata string      `json:"departure_iata"`
	ArrivalIata   string      `json:"arrival_iata"`
	State         SearchState `json:"state"`
}

func NewSearchSession() *SearchSession {
	return &SearchSession{SearchMode: SearchModeNumber, State: Idle()}
}

// lookupQuery builds the lookup query string for the current mode.
// It reports false when the required inputs are blank, in which case no search happens.
func (s *SearchSession) lookupQuery() (url.Values, bool) {
	q := url.Values{}
	if s.SearchMode == SearchModeRoute {
		if strings.TrimSpace(s.DepartureIata) == "" || strings.TrimSpace(s.ArrivalIata) == "" {
			return nil, false
		}
		q.Set("departureIata", s.DepartureIata)
		q.Set("arrivalIata", s.ArrivalIata)
		return q, true
	}

	if strings.TrimSpace(s.FlightNumber) == "" {
		return nil, false
	}
	q.Set("flightNumber", s.FlightNumber)
	return q, true
}
