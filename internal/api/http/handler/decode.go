package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dtroode/trackbox-server/internal/apierrors"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads r's body into v. An empty body leaves v untouched so the
// service reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apierrors.NewErrMalformedBody(err)
}
