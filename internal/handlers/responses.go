package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeJSONError renders the uniform error body. Internal details never
// reach the client.
func writeJSONError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps sentinel errors from the service layer to status
// codes; anything unexpected becomes a generic 500.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrOrderNotFound):
		writeJSONError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, models.ErrProductNotFound):
		writeJSONError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, models.ErrForbidden):
		writeJSONError(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrInvalidOrderUpdate):
		writeJSONError(w, "Invalid update data", http.StatusBadRequest)
	default:
		writeJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}
