package domain

import "strings"

// Album is a named, ordered collection of photos. Names are unique across the
// collection, ignoring case.
type Album struct {
	Name   string   `json:"name"`
	Photos []*Photo `json:"photos"`
}

// NewAlbum returns an empty album.
func NewAlbum(name string) *Album {
	return &Album{Name: name, Photos: []*Photo{}}
}

// HasName reports whether name identifies this album.
func (a *Album) HasName(name string) bool {
	return NameKey(a.Name) == NameKey(name)
}

// NameKey is the identity of an album name: trimmed and case-folded.
func NameKey(name string) string {
	return Fold(strings.TrimSpace(name))
}

// PhotoCount returns the number of photos.
func (a *Album) PhotoCount() int {
	return len(a.Photos)
}

// PhotoAt returns the photo at index, or nil when out of range.
func (a *Album) PhotoAt(index int) *Photo {
	if index < 0 || index >= len(a.Photos) {
		return nil
	}
	return a.Photos[index]
}

// PhotoIndex returns the position of p, or -1.
func (a *Album) PhotoIndex(p *Photo) int {
	for i, candidate := range a.Photos {
		if candidate == p {
			return i
		}
	}
	return -1
}

// PhotoByID returns the photo with the given id, or nil.
func (a *Album) PhotoByID(id string) *Photo {
	if id == "" {
		return nil
	}
	for _, p := range a.Photos {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PhotoByLocation finds a photo by exact image path, then by exact filename.
// Empty arguments are skipped.
func (a *Album) PhotoByLocation(imagePath, filename string) *Photo {
	if imagePath != "" {
		for _, p := range a.Photos {
			if p.ImagePath == imagePath {
				return p
			}
		}
	}
	if filename != "" {
		for _, p := range a.Photos {
			if p.Filename == filename {
				return p
			}
		}
	}
	return nil
}

// AddPhoto appends p unless it is already in the album.
func (a *Album) AddPhoto(p *Photo) {
	if a.PhotoIndex(p) >= 0 {
		return
	}
	a.Photos = append(a.Photos, p)
}

// RemovePhoto removes p and reports whether it was present.
func (a *Album) RemovePhoto(p *Photo) bool {
	i := a.PhotoIndex(p)
	if i < 0 {
		return false
	}
	a.Photos = append(a.Photos[:i], a.Photos[i+1:]...)
	return true
}

// Clone returns a deep copy of the album and its photos.
func (a *Album) Clone() *Album {
	c := &Album{Name: a.Name, Photos: make([]*Photo, len(a.Photos))}
	for i, p := range a.Photos {
		c.Photos[i] = p.Clone()
	}
	return c
}

// CloneAll deep-copies a collection.
func CloneAll(albums []*Album) []*Album {
	out := make([]*Album, len(albums))
	for i, a := range albums {
		out[i] = a.Clone()
	}
	return out
}

// FindAlbum returns the album named name, ignoring case, or nil.
func FindAlbum(albums []*Album, name string) *Album {
	for _, a := range albums {
		if a.HasName(name) {
			return a
		}
	}
	return nil
}

// AssignMissingIDs gives every photo without an ID a fresh one and returns how
// many were assigned. Stores written before photos carried IDs load this way.
func AssignMissingIDs(albums []*Album) int {
	n := 0
	for _, a := range albums {
		for _, p := range a.Photos {
			if p.ID == "" {
				p.ID = NewID()
				n++
			}
		}
	}
	return n
}
