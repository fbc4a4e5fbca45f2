package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data interface{}, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format. The message is
// what web clients surface to the user verbatim.
func WriteError(w http.ResponseWriter, status int, message string, log *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, log)
}
