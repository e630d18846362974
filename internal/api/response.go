package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "balneario/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps engine errors onto the wire: coded validation/conflict
// errors keep their status and code, anything else is an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		writeJSON(w, httpErr.Status, map[string]string{
			"error":   httpErr.Code,
			"message": httpErr.Message,
		})
		return
	}
	log.Printf("Internal error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "internal_error",
		"message": "internal server error",
	})
}
