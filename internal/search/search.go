// Package search answers tag queries over an album collection. Every function
// is read-only: it neither mutates the albums nor persists anything.
package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/joestump/joe-photos/internal/domain"
)

// ErrUnknownOperator is returned by ParseOperator.
var ErrUnknownOperator = errors.New("operator must be AND or OR")

// Operator combines two criteria.
type Operator int

const (
	And Operator = iota
	Or
)

func (o Operator) String() string {
	if o == Or {
		return "OR"
	}
	return "AND"
}

// ParseOperator accepts "and" or "or" in any case.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AND":
		return And, nil
	case "OR":
		return Or, nil
	default:
		return And, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Criterion matches tags of Type whose value starts with Value, ignoring case.
type Criterion struct {
	Type  domain.TagType
	Value string
}

// ByTag returns every photo carrying at least one tag of type t whose value
// starts with prefix, ignoring case. Photos appear once, in first-seen order.
// An empty prefix matches every photo with a tag of type t; callers reject it
// before getting here.
func ByTag(albums []*domain.Album, t domain.TagType, prefix string) []*domain.Photo {
	folded := domain.Fold(prefix)
	seen := make(map[*domain.Photo]bool)
	results := []*domain.Photo{}
	for _, album := range albums {
		for _, photo := range album.Photos {
			if seen[photo] || !matches(photo, t, folded) {
				continue
			}
			seen[photo] = true
			results = append(results, photo)
		}
	}
	return results
}

// ByTags evaluates both criteria independently and combines them. And keeps
// the first result list filtered to photos also in the second; Or appends
// photos from the second list not already present. Neither repeats a photo.
func ByTags(albums []*domain.Album, first, second Criterion, op Operator) []*domain.Photo {
	r1 := ByTag(albums, first.Type, first.Value)
	r2 := ByTag(albums, second.Type, second.Value)

	in2 := make(map[*domain.Photo]bool, len(r2))
	for _, p := range r2 {
		in2[p] = true
	}

	if op == And {
		out := []*domain.Photo{}
		for _, p := range r1 {
			if in2[p] {
				out = append(out, p)
			}
		}
		return out
	}

	out := make([]*domain.Photo, 0, len(r1)+len(r2))
	seen := make(map[*domain.Photo]bool, len(r1))
	for _, p := range r1 {
		seen[p] = true
		out = append(out, p)
	}
	for _, p := range r2 {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// TagValueSuggestions returns the distinct values of tags of type t, sorted
// ignoring case. Values that differ only by case collapse to the first one
// seen.
func TagValueSuggestions(albums []*domain.Album, t domain.TagType) []string {
	type entry struct {
		key, value string
	}
	var entries []entry
	seen := make(map[string]bool)
	for _, album := range albums {
		for _, photo := range album.Photos {
			for _, tag := range photo.Tags {
				if tag.Type != t {
					continue
				}
				key := domain.Fold(tag.Value)
				if seen[key] {
					continue
				}
				seen[key] = true
				entries = append(entries, entry{key: key, value: tag.Value})
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.value
	}
	return out
}

// AutocompleteSuggestions narrows TagValueSuggestions to values starting with
// prefix, ignoring case.
func AutocompleteSuggestions(albums []*domain.Album, t domain.TagType, prefix string) []string {
	folded := domain.Fold(prefix)
	out := []string{}
	for _, s := range TagValueSuggestions(albums, t) {
		if strings.HasPrefix(domain.Fold(s), folded) {
			out = append(out, s)
		}
	}
	return out
}

func matches(p *domain.Photo, t domain.TagType, foldedPrefix string) bool {
	for _, tag := range p.Tags {
		if tag.Type == t && strings.HasPrefix(domain.Fold(tag.Value), foldedPrefix) {
			return true
		}
	}
	return false
}
