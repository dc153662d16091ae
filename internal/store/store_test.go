package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/joestump/joe-photos/internal/domain"
	"github.com/joestump/joe-photos/internal/store"
	"github.com/joestump/joe-photos/internal/testutil"
)

// sampleAlbums builds a collection that exercises ordering, duplicate paths
// and both tag types.
func sampleAlbums() []*domain.Album {
	trip := domain.NewAlbum("Trip")
	p1 := domain.NewPhoto("/img/a.jpg", "")
	p1.AddTag(domain.NewTag(domain.Location, "Paris"))
	p1.AddTag(domain.NewTag(domain.Person, "Alice"))
	p2 := domain.NewPhoto("/img/a.jpg", "same path, other photo")
	p3 := domain.NewPhoto("/img/c.jpg", "c")
	p3.AddTag(domain.NewTag(domain.Person, "Bob"))
	trip.Photos = []*domain.Photo{p3, p1, p2}

	empty := domain.NewAlbum("Empty")
	home := domain.NewAlbum("home")
	home.Photos = []*domain.Photo{domain.NewPhoto("/img/h.jpg", "h")}

	return []*domain.Album{trip, empty, home}
}

func assertRoundTrip(t *testing.T, gw store.Gateway) {
	t.Helper()
	ctx := context.Background()

	want := sampleAlbums()
	if err := gw.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := gw.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}

	// A second save replaces the first snapshot entirely.
	want = want[2:]
	if err := gw.Save(ctx, want); err != nil {
		t.Fatalf("Save second: %v", err)
	}
	got, err = gw.Load(ctx)
	if err != nil {
		t.Fatalf("Load second: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("second round trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	assertRoundTrip(t, store.NewFileStore(filepath.Join(t.TempDir(), "nested", "albums.json")))
}

func TestSQLStore_RoundTrip(t *testing.T) {
	assertRoundTrip(t, store.NewSQLStore(testutil.NewTestDB(t)))
}

func TestSQLStore_LoadEmpty(t *testing.T) {
	got, err := store.NewSQLStore(testutil.NewTestDB(t)).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	fs := store.NewFileStore(filepath.Join(t.TempDir(), "albums.json"))
	got, err := fs.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Load = %#v, want empty non-nil slice", got)
	}
}

func TestFileStore_WritesDocumentFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albums.json")
	fs := store.NewFileStore(path)

	a := domain.NewAlbum("Trip")
	p := &domain.Photo{ID: "p-1", ImagePath: "/img/a.jpg", Filename: "a.jpg", Tags: []domain.Tag{
		{Type: domain.Location, Value: "Paris"},
	}}
	a.Photos = append(a.Photos, p)
	if err := fs.Save(context.Background(), []*domain.Album{a}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{`"name": "Trip"`, `"id": "p-1"`, `"imagePath": "/img/a.jpg"`, `"filename": "a.jpg"`, `"type": "Location"`, `"value": "Paris"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("document missing %s:\n%s", want, data)
		}
	}

	leftovers, _ := filepath.Glob(path + ".*.tmp")
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestFileStore_LoadLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "albums.json")
	doc := `[{"name":"Old","photos":[{"imagePath":"/img/x/old.jpg","tags":[{"type":"location","value":"Rome"},{"type":"mystery","value":"Ann"}]}]},{"name":"Bare"}]`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	p := got[0].Photos[0]
	if p.ID != "" {
		t.Errorf("ID = %q, want empty (assigned by the library)", p.ID)
	}
	if p.Filename != "old.jpg" {
		t.Errorf("filename = %q, want %q", p.Filename, "old.jpg")
	}
	want := []domain.Tag{{Type: domain.Location, Value: "Rome"}, {Type: domain.Person, Value: "Ann"}}
	if !reflect.DeepEqual(p.Tags, want) {
		t.Errorf("tags = %+v, want %+v", p.Tags, want)
	}
	if got[1].Photos == nil {
		t.Error("expected non-nil photos for album without photos key")
	}
}

func TestFileStore_CorruptFileIsQuarantined(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "albums.json")
	if err := os.WriteFile(path, []byte(`[{"name": "Trip", "photos": [`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := store.NewFileStore(path)
	_, err := fs.Load(context.Background())
	if !errors.Is(err, store.ErrCorrupt) {
		t.Fatalf("Load = %v, want ErrCorrupt", err)
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("corrupt file still at original path: %v", err)
	}
	backups, _ := filepath.Glob(path + ".corrupt-*")
	if len(backups) != 1 {
		t.Fatalf("backups = %v, want exactly one", backups)
	}

	// The next load starts from scratch without touching the backup.
	got, err := fs.Load(context.Background())
	if err != nil {
		t.Fatalf("Load after quarantine: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
