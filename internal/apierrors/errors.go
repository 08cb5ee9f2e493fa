// Package apierrors defines errors that are safe to show to API clients.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is an error with an HTTP status and a client-facing message.
type APIError struct {
	Code    int
	Message string
	// Header holds extra response headers, e.g. Content-Range for 416.
	Header http.Header
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func New(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// NewErrMissingCredentials is returned when username or password is empty.
func NewErrMissingCredentials() *APIError {
	return New(http.StatusBadRequest, "username and password are required")
}

// NewErrUsernameTaken is returned on duplicate registration.
// Conflict is reported as 400 to stay compatible with existing clients.
func NewErrUsernameTaken(username string) *APIError {
	return &APIError{
		Code:    http.StatusBadRequest,
		Message: "user already exists",
		Err:     fmt.Errorf("username %q is already taken", username),
	}
}

// NewErrPasswordTooLong is returned when bcrypt cannot hash the password.
func NewErrPasswordTooLong() *APIError {
	return New(http.StatusBadRequest, "password must not exceed 72 bytes")
}

// NewErrInvalidCredentials is shared by "unknown user" and "wrong password".
func NewErrInvalidCredentials() *APIError {
	return New(http.StatusUnauthorized, "invalid username or password")
}

func NewErrMissingAuthorizationToken() *APIError {
	return New(http.StatusUnauthorized, "authorization token not provided")
}

func NewErrInvalidAuthorizationToken(err error) *APIError {
	return &APIError{Code: http.StatusForbidden, Message: "invalid authorization token", Err: err}
}

func NewErrMissingTrackID() *APIError {
	return New(http.StatusBadRequest, "trackId is required")
}

func NewErrMalformedBody(err error) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: "malformed request body", Err: err}
}

func NewErrTrackNotFound(id string) *APIError {
	return &APIError{
		Code:    http.StatusNotFound,
		Message: "track not found",
		Err:     fmt.Errorf("track %q", id),
	}
}

// NewErrAudioFileNotFound tells the caller where the audio file should be placed.
func NewErrAudioFileNotFound(location string) *APIError {
	return New(http.StatusNotFound, fmt.Sprintf(
		"audio file not found: place it at %s (files are named after the track id, with an mp3, wav or ogg extension)",
		location,
	))
}

func NewErrRangeNotSatisfiable(size int64, err error) *APIError {
	return &APIError{
		Code:    http.StatusRequestedRangeNotSatisfiable,
		Message: "requested range not satisfiable",
		Header:  http.Header{"Content-Range": []string{fmt.Sprintf("bytes */%d", size)}},
		Err:     err,
	}
}

// NewErrInternalServerError hides err from the client; callers log it.
func NewErrInternalServerError(err error) *APIError {
	return &APIError{Code: http.StatusInternalServerError, Message: "internal server error", Err: err}
}
