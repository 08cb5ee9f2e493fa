package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/dtroode/trackbox-server/internal/api/http/render"
	"github.com/dtroode/trackbox-server/internal/byterange"
	"github.com/dtroode/trackbox-server/internal/logger"
)

// Audio streams track audio with byte-range support.
type Audio struct {
	audioService AudioService
	logger       *logger.Logger
}

// NewAudio creates a new Audio handler.
func NewAudio(audioService AudioService, logger *logger.Logger) *Audio {
	return &Audio{audioService: audioService, logger: logger}
}

// Stream writes the track's audio bytes. Requests with a Range header get
// 206 and the selected slice, the rest get 200 and the whole file.
func (h *Audio) Stream(w http.ResponseWriter, r *http.Request) {
	trackID := r.PathValue("id")

	stream, err := h.audioService.Open(r.Context(), trackID, r.Header.Get("Range"))
	if err != nil {
		render.Error(w, h.logger, err)
		return
	}
	defer stream.Body.Close()

	header := w.Header()
	header.Set("Content-Type", stream.ContentType)
	header.Set("Accept-Ranges", "bytes")
	header.Set("Cache-Control", "public, max-age=31536000")
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET")
	header.Set("Content-Length", strconv.FormatInt(stream.Length(), 10))

	status := http.StatusOK
	if stream.Partial {
		header.Set("Content-Range", byterange.Range{Start: stream.Start, End: stream.End}.ContentRange(stream.Size))
		status = http.StatusPartialContent
	}
	w.WriteHeader(status)

	if r.Method == http.MethodHead {
		return
	}

	n, err := io.Copy(w, stream.Body)
	if err != nil {
		// Usually the client went away mid-stream.
		h.logger.Debug("Audio handler: stream interrupted",
			"track_id", trackID,
			"written", n,
			"error", err.Error())
	}
}
