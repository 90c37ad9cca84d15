package ui

import (
	"encoding/json"
	"testing"
)

func TestSearchState_Accessors(t *testing.T) {
	var zero SearchState
	if zero.Phase() != PhaseIdle || zero.Loading() {
		t.Errorf("Expected zero value to be idle, got %s", zero.Phase())
	}

	if !Searching().Loading() {
		t.Error("Expected searching to be loading")
	}

	failed := Failed("boom")
	if _, ok := failed.Flight(); ok {
		t.Error("Expected no flight on error state")
	}
	if failed.Message() != "boom" {
		t.Errorf("Expected boom, got %q", failed.Message())
	}

	success := Succeeded(testFlight)
	if success.Message() != "" {
		t.Errorf("Expected no message on success, got %q", success.Message())
	}
	if f, ok := success.Flight(); !ok || f.FlightNumber != "AB123" {
		t.Errorf("Expected flight AB123, got %+v", f)
	}
}

func TestSearchSession_JSONRoundTrip(t *testing.T) {
	in := &SearchSession{SearchMode: SearchModeRoute, DepartureIata: "NRT", ArrivalIata: "LHR", State: Succeeded(testFlight)}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out SearchSession
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if f, ok := out.State.Flight(); !ok || f != testFlight {
		t.Errorf("Expected flight to survive round trip, got %+v", out.State)
	}
	if out.SearchMode != SearchModeRoute || out.ArrivalIata != "LHR" {
		t.Errorf("Unexpected session %+v", out)
	}
}

func TestSearchState_UnmarshalInconsistent(t *testing.T) {
	var s SearchState
	if err := json.Unmarshal([]byte(`{"phase":"success"}`), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("Expected success without flight to decode as idle, got %s", s.Phase())
	}

	if err := json.Unmarshal([]byte(`{"phase":"error","message":"x","flight":{"flightNumber":"AB1"}}`), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := s.Flight(); ok || s.Message() != "x" {
		t.Errorf("Expected error state without flight, got %+v", s)
	}
}

func TestParseSearchMode(t *testing.T) {
	if m, ok := ParseSearchMode("route"); !ok || m != SearchModeRoute {
		t.Errorf("Expected route, got %q", m)
	}
	if _, ok := ParseSearchMode("airline"); ok {
		t.Error("Expected unknown mode to be rejected")
	}
}
