package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TagType
		wantErr error
	}{
		{name: "display name person", input: "Person", want: Person},
		{name: "display name location", input: "Location", want: Location},
		{name: "lowercase", input: "location", want: Location},
		{name: "uppercase", input: "PERSON", want: Person},
		{name: "surrounding space", input: "  Location ", want: Location},

		{name: "empty", input: "", wantErr: ErrUnknownTagType},
		{name: "unknown", input: "Event", wantErr: ErrUnknownTagType},
		{name: "prefix only", input: "Loc", wantErr: ErrUnknownTagType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTagType(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseTagType(%q) = %v, want error wrapping %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTagType(%q) = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTagType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagType_JSON(t *testing.T) {
	b, err := json.Marshal(Tag{Type: Location, Value: "Paris"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Location","value":"Paris"}`, string(b))

	var tag Tag
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Event","value":"x"}`), &tag))
	assert.Equal(t, Person, tag.Type, "unknown persisted types fall back to Person")
}

func TestTag_Equal(t *testing.T) {
	assert.True(t, NewTag(Person, "Alice").Equal(NewTag(Person, "ALICE")))
	assert.True(t, NewTag(Location, "Café").Equal(NewTag(Location, "CAFÉ")))
	assert.False(t, NewTag(Person, "Paris").Equal(NewTag(Location, "Paris")))
	assert.False(t, NewTag(Person, "Al").Equal(NewTag(Person, "Alice")))
	assert.Equal(t, "Location: Paris", NewTag(Location, " Paris ").String())
}

func TestPhoto_TagSet(t *testing.T) {
	p := NewPhoto("/img/a.jpg", "")
	assert.Equal(t, "a.jpg", p.Filename)
	assert.NotEmpty(t, p.ID)

	assert.True(t, p.AddTag(NewTag(Person, "Alice")))
	assert.False(t, p.AddTag(NewTag(Person, "alice")), "case-only duplicate must be rejected")
	assert.True(t, p.AddTag(NewTag(Location, "Alice")))
	assert.True(t, p.AddTag(NewTag(Person, "Bob")))
	require.Len(t, p.Tags, 3)

	assert.Equal(t, []Tag{NewTag(Person, "Alice"), NewTag(Person, "Bob")}, p.TagsByType(Person))

	assert.True(t, p.RemoveTag(NewTag(Person, "ALICE")))
	assert.False(t, p.RemoveTag(NewTag(Person, "Alice")))
	assert.Equal(t, []Tag{NewTag(Location, "Alice"), NewTag(Person, "Bob")}, p.Tags)
}

func TestPhoto_CloneIsDeep(t *testing.T) {
	p := NewPhoto("/img/a.jpg", "a")
	p.AddTag(NewTag(Person, "Alice"))

	c := p.Clone()
	c.AddTag(NewTag(Person, "Bob"))
	c.Filename = "b"

	assert.Len(t, p.Tags, 1)
	assert.Equal(t, "a", p.Filename)
	assert.Equal(t, p.ID, c.ID)
}

func TestAlbum_PhotoLookup(t *testing.T) {
	a := NewAlbum("Trip")
	p1 := NewPhoto("/img/a.jpg", "beach")
	p2 := NewPhoto("/img/b.jpg", "beach")
	a.AddPhoto(p1)
	a.AddPhoto(p2)
	a.AddPhoto(p1)

	assert.Equal(t, 2, a.PhotoCount())
	assert.Same(t, p2, a.PhotoAt(1))
	assert.Nil(t, a.PhotoAt(2))
	assert.Nil(t, a.PhotoAt(-1))
	assert.Equal(t, 1, a.PhotoIndex(p2))
	assert.Same(t, p2, a.PhotoByID(p2.ID))
	assert.Nil(t, a.PhotoByID(""))

	assert.Same(t, p2, a.PhotoByLocation("/img/b.jpg", "beach"), "path wins over filename")
	assert.Same(t, p1, a.PhotoByLocation("", "beach"))
	assert.Nil(t, a.PhotoByLocation("/img/c.jpg", ""))

	assert.True(t, a.RemovePhoto(p1))
	assert.False(t, a.RemovePhoto(p1))
	assert.Equal(t, []*Photo{p2}, a.Photos)
}

func TestFindAlbum(t *testing.T) {
	albums := []*Album{NewAlbum("Trip"), NewAlbum("Home")}
	assert.Same(t, albums[0], FindAlbum(albums, "TRIP"))
	assert.Nil(t, FindAlbum(albums, "Work"))
	assert.Same(t, albums[1], FindAlbum(albums, "  home "))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, NameKey("Trip"), NameKey(" trip  "))
	assert.Equal(t, NameKey("STRASSE"), NameKey("straße"))
	assert.NotEqual(t, NameKey("a%41"), NameKey("aA"))
	assert.NotEqual(t, NameKey("Cafe"), NameKey("Café"))
	assert.True(t, NewAlbum("Trip").HasName("\tTRIP\n"))
}

func TestAssignMissingIDs(t *testing.T) {
	a := NewAlbum("Old")
	a.Photos = append(a.Photos,
		&Photo{ImagePath: "/img/a.jpg", Filename: "a.jpg"},
		&Photo{ID: "keep", ImagePath: "/img/b.jpg", Filename: "b.jpg"},
	)

	n := AssignMissingIDs([]*Album{a})
	assert.Equal(t, 1, n)
	assert.NotEmpty(t, a.Photos[0].ID)
	assert.Equal(t, "keep", a.Photos[1].ID)
	assert.Zero(t, AssignMissingIDs([]*Album{a}))
}
