package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/kasrt/internal/auth"
	"github.com/mmynk/kasrt/internal/models"
)

// okResponse is the body returned by successful mutations.
var okResponse = map[string]bool{"ok": true}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses. Every failure surfaces
// as {"error": message}; nothing is swallowed.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr), errors.Is(err, models.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	}

	if status == http.StatusInternalServerError {
		slog.Error("internal error", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeJSON parses a request body, converting malformed JSON (including
// bad amount values) into a 400-class error.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			return models.ErrInvalidAmount
		}
		return models.Validationf("body", "malformed JSON: %v", err)
	}
	return nil
}
