package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"skillswap_server/logger"
	"skillswap_server/models"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondError maps the error taxonomy to HTTP status codes. Store failures
// deliberately return a fixed message; the cause is logged, not leaked.
func respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		respondMessage(w, http.StatusNotFound, trimSentinel(err, models.ErrNotFound))
	case errors.Is(err, models.ErrForbidden):
		respondMessage(w, http.StatusForbidden, trimSentinel(err, models.ErrForbidden))
	case errors.Is(err, models.ErrInvalidTransition):
		respondMessage(w, http.StatusBadRequest, trimSentinel(err, models.ErrInvalidTransition))
	case errors.Is(err, models.ErrValidation):
		respondMessage(w, http.StatusBadRequest, trimSentinel(err, models.ErrValidation))
	case errors.Is(err, models.ErrConflict):
		respondMessage(w, http.StatusConflict, trimSentinel(err, models.ErrConflict))
	default:
		logger.Errorf("%s: %v", fallback, err)
		respondMessage(w, http.StatusInternalServerError, fallback)
	}
}

// trimSentinel strips the "sentinel: " prefix so clients see the human part
func trimSentinel(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return capitalize(msg[len(prefix):])
	}
	return capitalize(msg)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}
