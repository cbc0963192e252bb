package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"movierec/internal/container"
	"movierec/internal/recommend"
	"movierec/internal/repository"
	"movierec/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps the closed error taxonomy onto HTTP statuses.
// Anything unrecognized is a store/transport failure the caller should retry.
func writeDomainError(c *container.Container, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateReview):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrUserExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, recommend.ErrEmptyReview):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrClassifierUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		c.Logger.WithError(err).Error("Unhandled error")
		writeError(w, http.StatusInternalServerError, "internal error, please retry")
	}
}

func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
