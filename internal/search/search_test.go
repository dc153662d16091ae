package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/joe-photos/internal/domain"
)

// fixture builds two albums:
//
//	Trip: p1 {Person Alice, Location Paris}, p2 {Person Alan}, p3 {Location Parma}
//	Home: p4 {Person alex, Location Paris}, p5 {}
func fixture(t *testing.T) ([]*domain.Album, map[string]*domain.Photo) {
	t.Helper()

	photo := func(path string, tags ...domain.Tag) *domain.Photo {
		p := domain.NewPhoto(path, "")
		for _, tag := range tags {
			require.True(t, p.AddTag(tag))
		}
		return p
	}

	ps := map[string]*domain.Photo{
		"p1": photo("/img/1.jpg", domain.NewTag(domain.Person, "Alice"), domain.NewTag(domain.Location, "Paris")),
		"p2": photo("/img/2.jpg", domain.NewTag(domain.Person, "Alan")),
		"p3": photo("/img/3.jpg", domain.NewTag(domain.Location, "Parma")),
		"p4": photo("/img/4.jpg", domain.NewTag(domain.Person, "alex"), domain.NewTag(domain.Location, "Paris")),
		"p5": photo("/img/5.jpg"),
	}

	trip := domain.NewAlbum("Trip")
	trip.Photos = []*domain.Photo{ps["p1"], ps["p2"], ps["p3"]}
	home := domain.NewAlbum("Home")
	home.Photos = []*domain.Photo{ps["p4"], ps["p5"]}

	return []*domain.Album{trip, home}, ps
}

func TestByTag(t *testing.T) {
	albums, ps := fixture(t)

	got := ByTag(albums, domain.Person, "al")
	assert.Equal(t, []*domain.Photo{ps["p1"], ps["p2"], ps["p4"]}, got)

	got = ByTag(albums, domain.Location, "PAR")
	assert.Equal(t, []*domain.Photo{ps["p1"], ps["p3"], ps["p4"]}, got)

	assert.Empty(t, ByTag(albums, domain.Person, "Paris"), "type must match as well as value")
	assert.Empty(t, ByTag(albums, domain.Person, "lice"), "match is a prefix match")
}

func TestByTag_PhotoMatchingTwiceAppearsOnce(t *testing.T) {
	p := domain.NewPhoto("/img/x.jpg", "")
	p.AddTag(domain.NewTag(domain.Person, "Alice"))
	p.AddTag(domain.NewTag(domain.Person, "Alina"))
	a := domain.NewAlbum("A")
	a.Photos = []*domain.Photo{p}

	assert.Equal(t, []*domain.Photo{p}, ByTag([]*domain.Album{a}, domain.Person, "Al"))
}

func TestByTags_And(t *testing.T) {
	albums, ps := fixture(t)

	got := ByTags(albums,
		Criterion{Type: domain.Person, Value: "Al"},
		Criterion{Type: domain.Location, Value: "Par"},
		And)

	assert.Equal(t, []*domain.Photo{ps["p1"], ps["p4"]}, got)
	for _, p := range got {
		assert.NotEmpty(t, ByTag([]*domain.Album{{Photos: []*domain.Photo{p}}}, domain.Person, "al"))
		assert.NotEmpty(t, ByTag([]*domain.Album{{Photos: []*domain.Photo{p}}}, domain.Location, "par"))
	}
}

func TestByTags_Or(t *testing.T) {
	albums, ps := fixture(t)

	got := ByTags(albums,
		Criterion{Type: domain.Person, Value: "Al"},
		Criterion{Type: domain.Location, Value: "Par"},
		Or)

	assert.ElementsMatch(t, []*domain.Photo{ps["p1"], ps["p2"], ps["p3"], ps["p4"]}, got)
	assert.Len(t, got, 4, "photos matching both criteria appear once")
}

func TestTagValueSuggestions(t *testing.T) {
	a := domain.NewAlbum("A")
	for _, v := range []string{"bob", "Alice", "ALAN", "BOB", "alice"} {
		p := domain.NewPhoto("/img/"+v+".jpg", "")
		p.AddTag(domain.NewTag(domain.Person, v))
		a.Photos = append(a.Photos, p)
	}
	loc := domain.NewPhoto("/img/paris.jpg", "")
	loc.AddTag(domain.NewTag(domain.Location, "Paris"))
	a.Photos = append(a.Photos, loc)

	albums := []*domain.Album{a}
	assert.Equal(t, []string{"ALAN", "Alice", "bob"}, TagValueSuggestions(albums, domain.Person))
	assert.Equal(t, []string{"Paris"}, TagValueSuggestions(albums, domain.Location))
	assert.Equal(t, TagValueSuggestions(albums, domain.Person), TagValueSuggestions(albums, domain.Person))

	assert.Equal(t, []string{"ALAN", "Alice"}, AutocompleteSuggestions(albums, domain.Person, "al"))
	assert.Empty(t, AutocompleteSuggestions(albums, domain.Person, "z"))
}

func TestSearchDoesNotMutate(t *testing.T) {
	albums, _ := fixture(t)
	before := domain.CloneAll(albums)

	ByTags(albums, Criterion{Type: domain.Person, Value: "a"}, Criterion{Type: domain.Location, Value: "p"}, Or)
	TagValueSuggestions(albums, domain.Location)

	assert.Equal(t, before, albums)
}

func TestParseOperator(t *testing.T) {
	op, err := ParseOperator("and")
	require.NoError(t, err)
	assert.Equal(t, And, op)

	op, err = ParseOperator(" OR ")
	require.NoError(t, err)
	assert.Equal(t, Or, op)

	_, err = ParseOperator("xor")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}
