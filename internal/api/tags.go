package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-photos/internal/domain"
	"github.com/joestump/joe-photos/internal/validation"
)

// tagsAPIHandler provides REST handlers for photo tags.
type tagsAPIHandler struct {
	handlerBase
}

// registerTagRoutes registers tag routes on r.
func registerTagRoutes(r chi.Router, base handlerBase) {
	h := &tagsAPIHandler{handlerBase: base}
	r.Post("/albums/{name}/photos/{id}/tags", h.Add)
	r.Delete("/albums/{name}/photos/{id}/tags/{type}/{value}", h.Remove)
}

// Add attaches a tag to a photo. The photo is found by ID even if it has moved
// out of the named album.
// POST /api/v1/albums/{name}/photos/{id}/tags
//
// @Summary      Tag a photo
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        name  path      string         true  "Album name"
// @Param        id    path      string         true  "Photo ID"
// @Param        body  body      AddTagRequest  true  "Tag to add"
// @Success      201   {object}  PhotoHitResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /albums/{name}/photos/{id}/tags [post]
func (h *tagsAPIHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddTagRequest
	if !h.decode(w, r, &req) {
		return
	}
	typ, err := domain.ParseTagType(req.Type)
	if err != nil {
		writeLibraryError(w, h.log, tagTypeError())
		return
	}

	id := pathParam(r, "id")
	if err := h.lib.AddTag(r.Context(), pathParam(r, "name"), id, domain.NewTag(typ, req.Value)); err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	h.writePhoto(w, r, http.StatusCreated, id)
}

// Remove detaches a tag, matching its value ignoring case.
// DELETE /api/v1/albums/{name}/photos/{id}/tags/{type}/{value}
//
// @Summary      Untag a photo
// @Tags         Tags
// @Produce      json
// @Param        name   path      string  true  "Album name"
// @Param        id     path      string  true  "Photo ID"
// @Param        type   path      string  true  "Person or Location"
// @Param        value  path      string  true  "Tag value"
// @Success      200    {object}  PhotoHitResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      404    {object}  ErrorResponse
// @Router       /albums/{name}/photos/{id}/tags/{type}/{value} [delete]
func (h *tagsAPIHandler) Remove(w http.ResponseWriter, r *http.Request) {
	typ, err := domain.ParseTagType(pathParam(r, "type"))
	if err != nil {
		writeLibraryError(w, h.log, tagTypeError())
		return
	}

	id := pathParam(r, "id")
	if err := h.lib.RemoveTag(r.Context(), pathParam(r, "name"), id, domain.NewTag(typ, pathParam(r, "value"))); err != nil {
		writeLibraryError(w, h.log, err)
		return
	}
	h.writePhoto(w, r, http.StatusOK, id)
}

func tagTypeError() error {
	return &validation.Error{Fields: map[string]string{"type": "must be Person or Location"}}
}
