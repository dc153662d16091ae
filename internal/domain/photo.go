package domain

import (
	"path/filepath"

	"github.com/google/uuid"
)

// Photo references an image on disk. The ID is generated once and never
// changes, so photos with equal paths or names stay distinguishable.
type Photo struct {
	ID        string `json:"id"`
	ImagePath string `json:"imagePath"`
	Filename  string `json:"filename"`
	Tags      []Tag  `json:"tags"`
}

// NewPhoto creates a photo with a fresh ID. An empty filename is derived from
// the base name of imagePath.
func NewPhoto(imagePath, filename string) *Photo {
	if filename == "" {
		filename = filepath.Base(imagePath)
	}
	return &Photo{
		ID:        NewID(),
		ImagePath: imagePath,
		Filename:  filename,
		Tags:      []Tag{},
	}
}

// NewID returns a new opaque photo identifier.
func NewID() string {
	return uuid.New().String()
}

// HasTag reports whether an equal tag is already attached.
func (p *Photo) HasTag(tag Tag) bool {
	return p.tagIndex(tag) >= 0
}

// AddTag appends tag unless an equal one exists. It reports whether the tag
// was added.
func (p *Photo) AddTag(tag Tag) bool {
	if p.HasTag(tag) {
		return false
	}
	p.Tags = append(p.Tags, tag)
	return true
}

// RemoveTag removes the first tag equal to tag and reports whether one was found.
func (p *Photo) RemoveTag(tag Tag) bool {
	i := p.tagIndex(tag)
	if i < 0 {
		return false
	}
	p.Tags = append(p.Tags[:i], p.Tags[i+1:]...)
	return true
}

// TagsByType returns the tags of type t in attachment order.
func (p *Photo) TagsByType(t TagType) []Tag {
	var out []Tag
	for _, tag := range p.Tags {
		if tag.Type == t {
			out = append(out, tag)
		}
	}
	return out
}

// Clone returns a deep copy.
func (p *Photo) Clone() *Photo {
	c := *p
	c.Tags = make([]Tag, len(p.Tags))
	copy(c.Tags, p.Tags)
	return &c
}

func (p *Photo) tagIndex(tag Tag) int {
	for i, t := range p.Tags {
		if t.Equal(tag) {
			return i
		}
	}
	return -1
}
