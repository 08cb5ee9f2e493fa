// Package render writes JSON responses and maps errors to HTTP statuses.
package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/logger"
)

// MessageResponse is the body of every error and of simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageResponse{Message: msg})
}

// Error writes err as a JSON message. Errors that are not *apierrors.APIError
// are logged and reported as 500 without details.
func Error(w http.ResponseWriter, logger *logger.Logger, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.Error("unexpected error while handling request",
			"error", err.Error())
		apiErr = apierrors.NewErrInternalServerError(err)
	} else if apiErr.Code >= http.StatusInternalServerError {
		logger.Error("request failed",
			"error", err.Error())
	}

	for k, vs := range apiErr.Header {
		w.Header()[k] = vs
	}
	Message(w, apiErr.Code, apiErr.Message)
}
