package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/deveshkun/Rental-Fleet/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps a service error to a {message} body, the shape the
// frontend falls back on when things go wrong. Unknown errors get the
// provided generic message rather than leaking internals.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Code, map[string]string{"message": httpErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": fallback})
}
