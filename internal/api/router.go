package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/joestump/joe-photos/internal/library"
	"github.com/joestump/joe-photos/internal/logger"
	"github.com/joestump/joe-photos/internal/validation"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Library *library.Library
	Logger  *zerolog.Logger
}

// NewAPIRouter creates a chi sub-router for /api/v1.
// All routes return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	log := logger.New("api")
	if deps.Logger != nil {
		log = *deps.Logger
	}
	base := handlerBase{lib: deps.Library, validate: validation.New(), log: log}

	r := chi.NewRouter()
	r.Use(jsonContentType)

	registerAlbumRoutes(r, base)
	registerPhotoRoutes(r, base)
	registerTagRoutes(r, base)
	registerSearchRoutes(r, base)

	return r
}

// handlerBase is embedded by every resource handler.
type handlerBase struct {
	lib      *library.Library
	validate *validation.Validator
	log      zerolog.Logger
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// pathParam returns the decoded URL parameter. chi routes on RawPath when it
// is set, and only then is the segment still escaped.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

// decode reads a JSON body into dst and validates it. On failure it writes
// the error response and returns false.
func (h handlerBase) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return false
	}
	if err := h.validate.Validate(dst); err != nil {
		writeLibraryError(w, h.log, err)
		return false
	}
	return true
}
