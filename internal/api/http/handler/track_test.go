package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/trackbox-server/internal/mocks"
	"github.com/dtroode/trackbox-server/internal/model"
	"github.com/dtroode/trackbox-server/internal/testutil"
)

func TestTrack_ListTracks(t *testing.T) {
	t.Parallel()

	svc := mocks.NewCatalogService(t)
	svc.On("ListTracks", mock.Anything).Return([]model.Track{
		{ID: "1", Title: "In Bloom", Artist: "Nirvana"},
	}, nil)
	h := NewTrack(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.ListTracks(rec, httptest.NewRequest(http.MethodGet, "/api/tracks", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"1","title":"In Bloom","artist":"Nirvana"}]`, rec.Body.String())
}

func TestTrack_ListTracks_Error(t *testing.T) {
	t.Parallel()

	svc := mocks.NewCatalogService(t)
	svc.On("ListTracks", mock.Anything).Return(nil, errors.New("boom"))
	h := NewTrack(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.ListTracks(rec, httptest.NewRequest(http.MethodGet, "/api/tracks", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
