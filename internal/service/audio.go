package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/trackbox-server/internal/apierrors"
	"github.com/dtroode/trackbox-server/internal/byterange"
	"github.com/dtroode/trackbox-server/internal/logger"
	"github.com/dtroode/trackbox-server/internal/model"
)

type audioFormat struct {
	ext         string
	contentType string
}

// audioFormats is in probe order: the first existing file wins.
var audioFormats = []audioFormat{
	{ext: "mp3", contentType: "audio/mpeg"},
	{ext: "wav", contentType: "audio/wav"},
	{ext: "ogg", contentType: "audio/ogg"},
}

// TrackFinder resolves catalog tracks by id.
type TrackFinder interface {
	GetTrack(ctx context.Context, id string) (model.Track, error)
}

type Audio struct {
	tracks TrackFinder
	source model.AudioSource
	logger *logger.Logger
}

func NewAudio(tracks TrackFinder, source model.AudioSource, logger *logger.Logger) *Audio {
	return &Audio{
		tracks: tracks,
		source: source,
		logger: logger,
	}
}

// Open resolves trackID to an audio object and opens the part selected by
// rangeHeader, or the whole object when rangeHeader is empty. The caller
// closes the returned stream's Body.
func (a *Audio) Open(ctx context.Context, trackID, rangeHeader string) (*model.AudioStream, error) {
	a.logger.Debug("Audio service: stream requested",
		"track_id", trackID,
		"range", rangeHeader)

	if _, err := a.tracks.GetTrack(ctx, trackID); err != nil {
		a.logger.Info("Audio service: track lookup failed",
			"track_id", trackID,
			"error", err.Error())
		return nil, err
	}

	name, format, size, err := a.probe(ctx, trackID)
	if err != nil {
		return nil, err
	}

	stream := &model.AudioStream{
		ContentType: format.contentType,
		Size:        size,
		Start:       0,
		End:         size - 1,
	}

	if rangeHeader != "" {
		r, err := byterange.Parse(rangeHeader, size)
		if err != nil {
			a.logger.Info("Audio service: unsatisfiable range",
				"track_id", trackID,
				"range", rangeHeader,
				"error", err.Error())
			return nil, apierrors.NewErrRangeNotSatisfiable(size, err)
		}
		stream.Start = r.Start
		stream.End = r.End
		stream.Partial = true
	}

	body, err := a.source.Open(ctx, name, stream.Start, stream.Length())
	if err != nil {
		return nil, fmt.Errorf("failed to open audio %s: %w", name, err)
	}
	stream.Body = body

	return stream, nil
}

func (a *Audio) probe(ctx context.Context, trackID string) (string, audioFormat, int64, error) {
	for _, f := range audioFormats {
		name := trackID + "." + f.ext
		size, err := a.source.Stat(ctx, name)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", audioFormat{}, 0, fmt.Errorf("failed to stat audio %s: %w", name, err)
		}
		return name, f, size, nil
	}

	location := a.source.Location(trackID + "." + audioFormats[0].ext)
	a.logger.Info("Audio service: no audio file for track",
		"track_id", trackID,
		"expected", location)

	return "", audioFormat{}, 0, apierrors.NewErrAudioFileNotFound(location)
}
