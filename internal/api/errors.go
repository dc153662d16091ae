package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/joestump/joe-photos/internal/library"
	"github.com/joestump/joe-photos/internal/validation"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var errorStatus = []struct {
	err    error
	status int
	code   string
}{
	{library.ErrBlankName, http.StatusBadRequest, "BLANK_NAME"},
	{library.ErrAlbumExists, http.StatusConflict, "ALBUM_EXISTS"},
	{library.ErrAlbumNotFound, http.StatusNotFound, "ALBUM_NOT_FOUND"},
	{library.ErrPhotoNotFound, http.StatusNotFound, "PHOTO_NOT_FOUND"},
	{library.ErrDuplicateTag, http.StatusConflict, "DUPLICATE_TAG"},
	{library.ErrTagNotFound, http.StatusNotFound, "TAG_NOT_FOUND"},
}

// writeLibraryError maps a Library or validation error to a status and code.
// Anything unrecognized is logged and reported as a 500.
func writeLibraryError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Code:   "VALIDATION_FAILED",
			Fields: verr.Fields,
		})
		return
	}
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			writeError(w, e.status, err.Error(), e.code)
			return
		}
	}
	log.Error().Err(err).Msg("api: unexpected library error")
	writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
}
