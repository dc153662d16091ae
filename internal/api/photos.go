package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// photosAPIHandler provides REST handlers for photos inside an album.
type photosAPIHandler struct {
	handlerBase
}

// registerPhotoRoutes registers photo routes on r.
func registerPhotoRoutes(r chi.Router, base handlerBase) {
	h := &photosAPIHandler{handlerBase: base}
	r.Post("/albums/{name}/photos", h.Add)
	r.Put("/albums/{name}/photos/{id}", h.Rename)
	r.Delete("/albums/{name}/photos/{id}", h.Remove)
	r.Post("/albums/{name}/photos/{id}/move", h.Move)
}

// Add appends a photo to an album.
// POST /api/v1/albums/{name}/photos
//
// @Summary      Add a photo
// @Description  Appends a photo with a fresh ID. The filename defaults to the last element of image_path.
// @Tags         Photos
// @Accept       json
// @Produce      json
// @Param        name  path      string           true  "Album name"
// @Param        body  body      AddPhotoRequest  true  "Photo to add"
// @Success      201   {object}  PhotoHitResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /albums/{name}/photos [post]
func (h *photosAPIHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddPhotoRequest
	if !h.decode(w, r, &req) {
		return
	}

	p, err := h.lib.AddPhoto(r.Context(), pathParam(r, "name"), req.ImagePath, req.Filename)
	if err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	h.writePhoto(w, r, http.StatusCreated, p.ID)
}

// Rename changes a photo's display name.
// PUT /api/v1/albums/{name}/photos/{id}
//
// @Summary      Rename a photo
// @Tags         Photos
// @Accept       json
// @Produce      json
// @Param        name  path      string              true  "Album name"
// @Param        id    path      string              true  "Photo ID"
// @Param        body  body      RenamePhotoRequest  true  "New filename"
// @Success      200   {object}  PhotoHitResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /albums/{name}/photos/{id} [put]
func (h *photosAPIHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req RenamePhotoRequest
	if !h.decode(w, r, &req) {
		return
	}

	id := pathParam(r, "id")
	if err := h.lib.RenamePhotoByID(r.Context(), pathParam(r, "name"), id, req.Filename); err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	h.writePhoto(w, r, http.StatusOK, id)
}

// Remove deletes a photo from its album.
// DELETE /api/v1/albums/{name}/photos/{id}
//
// @Summary      Remove a photo
// @Tags         Photos
// @Param        name  path  string  true  "Album name"
// @Param        id    path  string  true  "Photo ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /albums/{name}/photos/{id} [delete]
func (h *photosAPIHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.lib.RemovePhotoByID(r.Context(), pathParam(r, "name"), pathParam(r, "id")); err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Move transfers a photo to the end of another album, keeping its ID and tags.
// POST /api/v1/albums/{name}/photos/{id}/move
//
// @Summary      Move a photo
// @Tags         Photos
// @Accept       json
// @Produce      json
// @Param        name  path      string            true  "Source album name"
// @Param        id    path      string            true  "Photo ID"
// @Param        body  body      MovePhotoRequest  true  "Destination album"
// @Success      200   {object}  PhotoHitResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /albums/{name}/photos/{id}/move [post]
func (h *photosAPIHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req MovePhotoRequest
	if !h.decode(w, r, &req) {
		return
	}

	id := pathParam(r, "id")
	if err := h.lib.MovePhotoByID(r.Context(), pathParam(r, "name"), req.Album, id); err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	h.writePhoto(w, r, http.StatusOK, id)
}

// writePhoto renders a photo and its current album from a fresh snapshot.
func (h handlerBase) writePhoto(w http.ResponseWriter, r *http.Request, status int, id string) {
	for _, a := range h.lib.Snapshot(r.Context()) {
		if p := a.PhotoByID(id); p != nil {
			writeJSON(w, status, PhotoHitResponse{Album: a.Name, PhotoResponse: toPhotoResponse(p)})
			return
		}
	}
	writeError(w, http.StatusNotFound, "photo not found", "PHOTO_NOT_FOUND")
}
