package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-photos/internal/domain"
	"github.com/joestump/joe-photos/internal/search"
	"github.com/joestump/joe-photos/internal/validation"
)

// searchAPIHandler serves tag search and value suggestions.
type searchAPIHandler struct {
	handlerBase
}

// registerSearchRoutes registers search routes on r.
func registerSearchRoutes(r chi.Router, base handlerBase) {
	h := &searchAPIHandler{handlerBase: base}
	r.Get("/search", h.Search)
	r.Get("/suggestions", h.Suggestions)
}

// Search finds photos by tag prefix. With value2 set the two criteria are
// combined with op (and, or; default and).
// GET /api/v1/search
//
// @Summary      Search photos by tag
// @Tags         Search
// @Produce      json
// @Param        type1   query     string  true   "Person or Location"
// @Param        value1  query     string  true   "Case-insensitive value prefix"
// @Param        type2   query     string  false  "Person or Location"
// @Param        value2  query     string  false  "Case-insensitive value prefix"
// @Param        op      query     string  false  "and or or"
// @Success      200     {object}  SearchResponse
// @Failure      400     {object}  ErrorResponse
// @Router       /search [get]
func (h *searchAPIHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fields := map[string]string{}

	t1, err := domain.ParseTagType(q.Get("type1"))
	if err != nil {
		fields["type1"] = "must be Person or Location"
	}
	v1 := strings.TrimSpace(q.Get("value1"))
	if v1 == "" {
		fields["value1"] = "is required"
	}

	v2 := strings.TrimSpace(q.Get("value2"))
	var t2 domain.TagType
	op := search.And
	if v2 != "" {
		if t2, err = domain.ParseTagType(q.Get("type2")); err != nil {
			fields["type2"] = "must be Person or Location"
		}
		if s := q.Get("op"); s != "" {
			if op, err = search.ParseOperator(s); err != nil {
				fields["op"] = "must be one of: and or"
			}
		}
	}

	if len(fields) > 0 {
		writeLibraryError(w, h.log, &validation.Error{Fields: fields})
		return
	}

	albums := h.lib.Snapshot(r.Context())
	resp := &SearchResponse{}
	var photos []*domain.Photo
	if v2 == "" {
		photos = search.ByTag(albums, t1, v1)
	} else {
		photos = search.ByTags(albums,
			search.Criterion{Type: t1, Value: v1},
			search.Criterion{Type: t2, Value: v2},
			op)
		resp.Operator = op.String()
	}
	resp.Photos = toHits(albums, photos)

	writeJSON(w, http.StatusOK, resp)
}

// Suggestions lists distinct tag values of one type, sorted ignoring case.
// With prefix set only values starting with it are returned.
// GET /api/v1/suggestions
//
// @Summary      Suggest tag values
// @Tags         Search
// @Produce      json
// @Param        type    query     string  true   "Person or Location"
// @Param        prefix  query     string  false  "Case-insensitive value prefix"
// @Success      200     {object}  SuggestionsResponse
// @Failure      400     {object}  ErrorResponse
// @Router       /suggestions [get]
func (h *searchAPIHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	t, err := domain.ParseTagType(r.URL.Query().Get("type"))
	if err != nil {
		writeLibraryError(w, h.log, tagTypeError())
		return
	}

	albums := h.lib.Snapshot(r.Context())
	var values []string
	if prefix := strings.TrimSpace(r.URL.Query().Get("prefix")); prefix != "" {
		values = search.AutocompleteSuggestions(albums, t, prefix)
	} else {
		values = search.TagValueSuggestions(albums, t)
	}
	if values == nil {
		values = []string{}
	}

	writeJSON(w, http.StatusOK, &SuggestionsResponse{Type: t.String(), Values: values})
}
