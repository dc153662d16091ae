package api

import "github.com/joestump/joe-photos/internal/domain"

// --- Album types ---

// CreateAlbumRequest is the request body for POST /api/v1/albums.
// Blank names are rejected by the library with BLANK_NAME.
type CreateAlbumRequest struct {
	Name string `json:"name" validate:"max=255"`
}

// RenameAlbumRequest is the request body for PUT /api/v1/albums/{name}.
type RenameAlbumRequest struct {
	Name string `json:"name" validate:"max=255"`
}

// AlbumSummary is an album without its photos.
type AlbumSummary struct {
	Name       string `json:"name"`
	PhotoCount int    `json:"photo_count"`
}

// AlbumResponse is the JSON representation of a single album.
type AlbumResponse struct {
	Name       string          `json:"name"`
	PhotoCount int             `json:"photo_count"`
	Photos     []PhotoResponse `json:"photos"`
}

// AlbumListResponse is the paginated response for GET /api/v1/albums.
type AlbumListResponse struct {
	Albums     []AlbumSummary `json:"albums"`
	NextCursor *string        `json:"next_cursor"`
}

// --- Photo types ---

// AddPhotoRequest is the request body for POST /api/v1/albums/{name}/photos.
// An empty filename is derived from image_path.
type AddPhotoRequest struct {
	ImagePath string `json:"image_path" validate:"notblank,max=4096"`
	Filename  string `json:"filename,omitempty" validate:"max=255"`
}

// RenamePhotoRequest is the request body for PUT /api/v1/albums/{name}/photos/{id}.
type RenamePhotoRequest struct {
	Filename string `json:"filename" validate:"max=255"`
}

// MovePhotoRequest is the request body for POST /api/v1/albums/{name}/photos/{id}/move.
type MovePhotoRequest struct {
	Album string `json:"album" validate:"notblank"`
}

// PhotoResponse is the JSON representation of a photo.
type PhotoResponse struct {
	ID        string        `json:"id"`
	ImagePath string        `json:"image_path"`
	Filename  string        `json:"filename"`
	Tags      []TagResponse `json:"tags"`
}

// PhotoHitResponse is a search result: a photo plus the album holding it.
type PhotoHitResponse struct {
	Album string `json:"album"`
	PhotoResponse
}

// --- Tag types ---

// AddTagRequest is the request body for POST /api/v1/albums/{name}/photos/{id}/tags.
type AddTagRequest struct {
	Type  string `json:"type" validate:"tagtype"`
	Value string `json:"value" validate:"max=255"`
}

// TagResponse is the JSON representation of a tag.
type TagResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// --- Search types ---

// SearchResponse is the response for GET /api/v1/search.
type SearchResponse struct {
	Operator string             `json:"operator,omitempty"`
	Photos   []PhotoHitResponse `json:"photos"`
}

// SuggestionsResponse is the response for GET /api/v1/suggestions.
type SuggestionsResponse struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

func toTagResponses(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, TagResponse{Type: t.Type.String(), Value: t.Value})
	}
	return out
}

func toPhotoResponse(p *domain.Photo) PhotoResponse {
	return PhotoResponse{
		ID:        p.ID,
		ImagePath: p.ImagePath,
		Filename:  p.Filename,
		Tags:      toTagResponses(p.Tags),
	}
}

func toAlbumResponse(a *domain.Album) AlbumResponse {
	resp := AlbumResponse{
		Name:       a.Name,
		PhotoCount: a.PhotoCount(),
		Photos:     make([]PhotoResponse, 0, len(a.Photos)),
	}
	for _, p := range a.Photos {
		resp.Photos = append(resp.Photos, toPhotoResponse(p))
	}
	return resp
}

// toHits pairs each photo with its album name. Photos are matched by pointer
// against the same snapshot they were found in.
func toHits(albums []*domain.Album, photos []*domain.Photo) []PhotoHitResponse {
	owner := make(map[*domain.Photo]string)
	for _, a := range albums {
		for _, p := range a.Photos {
			owner[p] = a.Name
		}
	}
	out := make([]PhotoHitResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, PhotoHitResponse{Album: owner[p], PhotoResponse: toPhotoResponse(p)})
	}
	return out
}
