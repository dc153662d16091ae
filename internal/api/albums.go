package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-photos/internal/domain"
)

// albumsAPIHandler provides REST handlers for album management.
type albumsAPIHandler struct {
	handlerBase
}

// registerAlbumRoutes registers album routes on r.
func registerAlbumRoutes(r chi.Router, base handlerBase) {
	h := &albumsAPIHandler{handlerBase: base}
	r.Get("/albums", h.List)
	r.Post("/albums", h.Create)
	r.Get("/albums/{name}", h.Get)
	r.Put("/albums/{name}", h.Rename)
	r.Delete("/albums/{name}", h.Delete)
}

// List returns album names and photo counts in collection order.
// GET /api/v1/albums
//
// @Summary      List albums
// @Description  Returns albums in collection order, paginated by an opaque cursor.
// @Tags         Albums
// @Produce      json
// @Param        cursor  query     string  false  "Cursor from a previous page"
// @Param        limit   query     int     false  "Page size (default 50, max 200)"
// @Success      200     {object}  AlbumListResponse
// @Router       /albums [get]
func (h *albumsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit := parsePagination(r)
	albums := h.lib.Snapshot(r.Context())

	start, end, next := page(len(albums), cursor, limit)
	resp := &AlbumListResponse{Albums: make([]AlbumSummary, 0, end-start), NextCursor: next}
	for _, a := range albums[start:end] {
		resp.Albums = append(resp.Albums, AlbumSummary{Name: a.Name, PhotoCount: a.PhotoCount()})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create appends a new, empty album.
// POST /api/v1/albums
//
// @Summary      Create an album
// @Description  Creates an empty album. Names are unique ignoring case.
// @Tags         Albums
// @Accept       json
// @Produce      json
// @Param        body  body      CreateAlbumRequest  true  "Album to create"
// @Success      201   {object}  AlbumResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /albums [post]
func (h *albumsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAlbumRequest
	if !h.decode(w, r, &req) {
		return
	}

	a, err := h.lib.CreateAlbum(r.Context(), req.Name)
	if err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	h.writeAlbum(w, r, http.StatusCreated, a.Name)
}

// Get returns one album with its photos.
// GET /api/v1/albums/{name}
//
// @Summary      Get an album
// @Tags         Albums
// @Produce      json
// @Param        name  path      string  true  "Album name (case-insensitive)"
// @Success      200   {object}  AlbumResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /albums/{name} [get]
func (h *albumsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeAlbum(w, r, http.StatusOK, pathParam(r, "name"))
}

// Rename changes an album's name. A case-only change of its own name is allowed.
// PUT /api/v1/albums/{name}
//
// @Summary      Rename an album
// @Tags         Albums
// @Accept       json
// @Produce      json
// @Param        name  path      string              true  "Album name"
// @Param        body  body      RenameAlbumRequest  true  "New name"
// @Success      200   {object}  AlbumResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /albums/{name} [put]
func (h *albumsAPIHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req RenameAlbumRequest
	if !h.decode(w, r, &req) {
		return
	}

	a, err := h.lib.RenameAlbum(r.Context(), pathParam(r, "name"), req.Name)
	if err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	h.writeAlbum(w, r, http.StatusOK, a.Name)
}

// Delete removes an album and all of its photos.
// DELETE /api/v1/albums/{name}
//
// @Summary      Delete an album
// @Tags         Albums
// @Param        name  path  string  true  "Album name"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /albums/{name} [delete]
func (h *albumsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.lib.DeleteAlbum(r.Context(), pathParam(r, "name")); err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeAlbum renders the named album from a fresh snapshot.
func (h handlerBase) writeAlbum(w http.ResponseWriter, r *http.Request, status int, name string) {
	a := domain.FindAlbum(h.lib.Snapshot(r.Context()), name)
	if a == nil {
		writeError(w, http.StatusNotFound, "album not found", "ALBUM_NOT_FOUND")
		return
	}
	writeJSON(w, status, toAlbumResponse(a))
}
