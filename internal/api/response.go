package api

import (
	"encoding/json"
	"net/http"

	"flightcal/server/internal/logging"
	"flightcal/server/internal/models/dtos"
)

// respondWithJSON writes body as-is; the lookup endpoint has no envelope.
func respondWithJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err)
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, dtos.ErrorResponse{Error: message})
}
