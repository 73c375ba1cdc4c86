package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/isdelr/accounts-api/internal/apperr"
)

// envelope is the success response body shape.
type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// errorBody is the error response body shape. Status is "fail" for 4xx and
// "error" for 5xx.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, statusCode int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Failed to encode response body")
	}
}

// respondError is the centralized error handler. Every handler forwards its
// failures here untouched: classified errors keep their status and message
// and are logged at info level; anything outside the taxonomy becomes a
// generic 500 logged at error level.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperr.Classify(err)
	if ok {
		event := log.Info().Str("path", r.URL.Path).Int("status", appErr.StatusCode).Str("message", appErr.Message)
		if cause := errors.Unwrap(appErr); cause != nil {
			event = event.AnErr("cause", cause)
		}
		event.Msg("Request failed")
	} else {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Unexpected error")
		appErr = apperr.Internal(err)
	}

	status := "fail"
	if appErr.StatusCode >= http.StatusInternalServerError {
		status = "error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	if err := json.NewEncoder(w).Encode(errorBody{Status: status, Message: appErr.Message}); err != nil {
		log.Error().Err(err).Msg("Failed to encode error body")
	}
}
