package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestAPILookupClient_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantFlights int
		wantError   string
		wantErr     bool
	}{
		{name: "flights", status: 200, body: `[{"flightNumber":"AB123"}]`, wantFlights: 1},
		{name: "not found", status: 404, body: `[]`},
		{name: "error object", status: 400, body: `{"error":"Either flight number OR both departure and arrival IATA codes are required"}`, wantError: "Either flight number OR both departure and arrival IATA codes are required"},
		{name: "html", status: 502, body: `<html>bad gateway</html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/flights" {
					t.Errorf("Expected /api/flights, got %s", r.URL.Path)
				}
				if r.URL.Query().Get("flightNumber") != "AB 123" {
					t.Errorf("Expected encoded flight number, got %q", r.URL.RawQuery)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewAPILookupClient(server.URL)
			resp, err := client.Lookup(context.Background(), url.Values{"flightNumber": {"AB 123"}})

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, resp.StatusCode)
			}
			if len(resp.Flights) != tt.wantFlights {
				t.Errorf("Expected %d flights, got %d", tt.wantFlights, len(resp.Flights))
			}
			if resp.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, resp.Error)
			}
		})
	}
}

func TestAPILookupClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	if _, err := NewAPILookupClient(base).Lookup(context.Background(), url.Values{"flightNumber": {"AB123"}}); err == nil {
		t.Error("Expected transport error")
	}
}
