package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Codes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *APIError
		code int
	}{
		{name: "missing credentials", err: NewErrMissingCredentials(), code: http.StatusBadRequest},
		{name: "username taken", err: NewErrUsernameTaken("alice"), code: http.StatusBadRequest},
		{name: "invalid credentials", err: NewErrInvalidCredentials(), code: http.StatusUnauthorized},
		{name: "missing token", err: NewErrMissingAuthorizationToken(), code: http.StatusUnauthorized},
		{name: "invalid token", err: NewErrInvalidAuthorizationToken(nil), code: http.StatusForbidden},
		{name: "missing track id", err: NewErrMissingTrackID(), code: http.StatusBadRequest},
		{name: "track not found", err: NewErrTrackNotFound("9"), code: http.StatusNotFound},
		{name: "audio not found", err: NewErrAudioFileNotFound("audio/9.mp3"), code: http.StatusNotFound},
		{name: "range", err: NewErrRangeNotSatisfiable(10, nil), code: http.StatusRequestedRangeNotSatisfiable},
		{name: "internal", err: NewErrInternalServerError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestAPIError_WrapAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk on fire")
	wrapped := fmt.Errorf("stream audio: %w", NewErrInternalServerError(cause))

	var apiErr *APIError
	require.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, "internal server error", apiErr.Message)
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, apiErr.Error(), "disk on fire")
}

func TestNewErrRangeNotSatisfiable_ContentRange(t *testing.T) {
	t.Parallel()

	err := NewErrRangeNotSatisfiable(1234, nil)
	assert.Equal(t, "bytes */1234", err.Header.Get("Content-Range"))
}

func TestNewErrAudioFileNotFound_NamesLocation(t *testing.T) {
	t.Parallel()

	err := NewErrAudioFileNotFound("/srv/audio/3.mp3")
	assert.Contains(t, err.Message, "/srv/audio/3.mp3")
}
