package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// errStatus maps the error taxonomy to HTTP statuses. NotFound and
// CorruptDocument only reach here when they escape a single-item operation;
// batch paths absorb them earlier.
func errStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrMalformedIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrCorruptDocument):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func jsonErrorFor(w http.ResponseWriter, err error) {
	jsonError(w, err.Error(), errStatus(err))
}
