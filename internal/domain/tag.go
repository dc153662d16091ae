// Package domain holds the album, photo and tag model shared by the library,
// the persistence gateways and the search functions.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownTagType is returned by ParseTagType for anything other than a
// known display name.
var ErrUnknownTagType = errors.New("tag type must be one of: Person, Location")

// TagType classifies a tag.
type TagType int

const (
	Person TagType = iota
	Location
)

// TagTypes lists every tag type in display order.
var TagTypes = []TagType{Person, Location}

// String returns the display name, which is also the persisted form.
func (t TagType) String() string {
	switch t {
	case Location:
		return "Location"
	default:
		return "Person"
	}
}

// ParseTagType matches s against the display names case-insensitively.
func ParseTagType(s string) (TagType, error) {
	for _, t := range TagTypes {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return Person, fmt.Errorf("%w: %q", ErrUnknownTagType, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t TagType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode as
// Person so that stores written by older clients keep loading.
func (t *TagType) UnmarshalText(b []byte) error {
	parsed, err := ParseTagType(string(b))
	if err != nil {
		*t = Person
		return nil
	}
	*t = parsed
	return nil
}

// Tag is a (type, value) annotation on a photo.
type Tag struct {
	Type  TagType `json:"type"`
	Value string  `json:"value"`
}

// NewTag builds a tag with a trimmed value.
func NewTag(t TagType, value string) Tag {
	return Tag{Type: t, Value: strings.TrimSpace(value)}
}

// Equal reports whether both tags have the same type and the same value,
// ignoring case.
func (t Tag) Equal(other Tag) bool {
	return t.Type == other.Type && Fold(t.Value) == Fold(other.Value)
}

func (t Tag) String() string {
	return t.Type.String() + ": " + t.Value
}

// Fold maps s to the key used for every case-insensitive comparison in the
// model: NFC normalization followed by Unicode case folding.
func Fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
